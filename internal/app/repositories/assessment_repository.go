package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/db"
	"github.com/canyuksel/llmassess/internal/pkg/helpers"
)

// AssessmentRepository handles database operations for assessment runs and
// their model answers.
type AssessmentRepository struct {
	db       *pgxpool.Pool
	datasets *DatasetRepository
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *pgxpool.Pool, datasets *DatasetRepository) *AssessmentRepository {
	return &AssessmentRepository{db: db, datasets: datasets}
}

// Create records one assessment run in a single transaction. The total
// score is stored as 0; this layer never recomputes it from the audit
// steps. Missing optional audit fields were already defaulted by the
// service layer.
func (r *AssessmentRepository) Create(ctx context.Context, req dto.CreateAssessmentRequest) (int64, error) {
	var assessmentID int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		assessmentID, err = insertAssessmentRun(ctx, tx, req)
		return err
	})
	if err != nil {
		return 0, err
	}
	return assessmentID, nil
}

// insertAssessmentRun inserts the assessment row, its model answers and
// their audit steps. Any returned error aborts the enclosing transaction,
// so a half-written run never appears.
func insertAssessmentRun(ctx context.Context, tx executor, req dto.CreateAssessmentRequest) (int64, error) {
	var assessmentID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO assessment (model, total_score, dataset_version_id) VALUES ($1, 0, $2) RETURNING id`,
		req.Model, req.DatasetVersionID,
	).Scan(&assessmentID); err != nil {
		return 0, fmt.Errorf("failed to insert assessment: %w", err)
	}

	for _, answer := range req.ModelAnswers {
		var modelAnswerID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO model_answer (content, total_score, std_question_version_id, assessment_id)
			 VALUES ($1, 0, $2, $3) RETURNING id`,
			answer.Content, answer.StdQuestionVersionID, assessmentID,
		).Scan(&modelAnswerID); err != nil {
			return 0, fmt.Errorf("failed to insert model answer: %w", err)
		}

		for _, process := range answer.ScoreProcesses {
			score := 0.0
			if process.Score != nil {
				score = *process.Score
			}
			maxScore := 0.0
			if process.ScoringPointMaxScore != nil {
				maxScore = *process.ScoringPointMaxScore
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO score_process (type, description, score, scoring_point_content, scoring_point_max_score, model_answer_id)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				process.Type, process.Description, score, process.ScoringPointContent, maxScore, modelAnswerID,
			); err != nil {
				return 0, fmt.Errorf("failed to insert score process: %w", err)
			}
		}
	}

	return assessmentID, nil
}

// List returns one page of assessments, each with its resolved dataset
// version tree and its full model answer tree. Resolution fans out per
// assessment and runs concurrently across the page; cost scales with the
// page size, not the corpus.
func (r *AssessmentRepository) List(ctx context.Context, q dto.AssessmentListQuery) (*dto.AssessmentListResponse, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM assessment`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count assessments: %w", err)
	}

	resp := &dto.AssessmentListResponse{Total: total, Assessments: []models.Assessment{}}

	direction := "DESC"
	if q.SortOrder == "asc" {
		direction = "ASC"
	}
	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.PageSize)

	rows, err := r.db.Query(ctx,
		`SELECT id, model, total_score, dataset_version_id, created_at
		 FROM assessment
		 ORDER BY id `+direction+`
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*models.Assessment
	for rows.Next() {
		var a models.Assessment
		if err := rows.Scan(&a.ID, &a.Model, &a.TotalScore, &a.DatasetVersionID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		a.ModelAnswers = []models.ModelAnswer{}
		assessments = append(assessments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assessments: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, assessment := range assessments {
		assessment := assessment
		g.Go(func() error {
			dataset, err := r.datasets.GetByVersionID(gctx, assessment.DatasetVersionID)
			if err != nil {
				return err
			}
			assessment.Dataset = dataset

			answers, err := r.modelAnswersByAssessmentID(gctx, assessment.ID)
			if err != nil {
				return err
			}
			assessment.ModelAnswers = answers
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, a := range assessments {
		resp.Assessments = append(resp.Assessments, *a)
	}
	return resp, nil
}

// modelAnswersByAssessmentID loads the model answers of one assessment,
// then fans out by id set for their question versions and audit steps.
func (r *AssessmentRepository) modelAnswersByAssessmentID(ctx context.Context, assessmentID int64) ([]models.ModelAnswer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, content, total_score, std_question_version_id, assessment_id
		 FROM model_answer
		 WHERE assessment_id = $1
		 ORDER BY id`, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query model answers: %w", err)
	}
	defer rows.Close()

	answers := []models.ModelAnswer{}
	var answerIDs, questionVersionIDs []int64
	for rows.Next() {
		var ma models.ModelAnswer
		if err := rows.Scan(&ma.ID, &ma.Content, &ma.TotalScore, &ma.StdQuestionVersionID, &ma.AssessmentID); err != nil {
			return nil, fmt.Errorf("failed to scan model answer: %w", err)
		}
		ma.ScoreProcesses = []models.ScoreProcess{}
		answers = append(answers, ma)
		answerIDs = append(answerIDs, ma.ID)
		questionVersionIDs = append(questionVersionIDs, ma.StdQuestionVersionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read model answers: %w", err)
	}
	if len(answers) == 0 {
		return answers, nil
	}

	trees, err := loadVersionTreesByVersionIDs(ctx, r.db, questionVersionIDs)
	if err != nil {
		return nil, err
	}

	processes, err := r.scoreProcessesByAnswerIDs(ctx, answerIDs)
	if err != nil {
		return nil, err
	}

	for i := range answers {
		if version, ok := trees[answers[i].StdQuestionVersionID]; ok {
			answers[i].QuestionVersion = &version
		}
		if list, ok := processes[answers[i].ID]; ok {
			answers[i].ScoreProcesses = list
		}
	}
	return answers, nil
}

func (r *AssessmentRepository) scoreProcessesByAnswerIDs(ctx context.Context, answerIDs []int64) (map[int64][]models.ScoreProcess, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, description, score, scoring_point_content, scoring_point_max_score, model_answer_id
		 FROM score_process
		 WHERE model_answer_id = ANY($1)
		 ORDER BY id`, answerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query score processes: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]models.ScoreProcess)
	for rows.Next() {
		var sp models.ScoreProcess
		if err := rows.Scan(&sp.ID, &sp.Type, &sp.Description, &sp.Score, &sp.ScoringPointContent, &sp.ScoringPointMaxScore, &sp.ModelAnswerID); err != nil {
			return nil, fmt.Errorf("failed to scan score process: %w", err)
		}
		result[sp.ModelAnswerID] = append(result[sp.ModelAnswerID], sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read score processes: %w", err)
	}
	return result, nil
}
