package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
	"github.com/canyuksel/llmassess/internal/pkg/dberrors"
	"github.com/canyuksel/llmassess/internal/pkg/helpers"
)

// CandidateAnswerRepository handles database operations for candidate
// answers. Candidate answers are append-only; there is no update path.
type CandidateAnswerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCandidateAnswerRepository creates a new CandidateAnswerRepository
func NewCandidateAnswerRepository(db *pgxpool.Pool) *CandidateAnswerRepository {
	return &CandidateAnswerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var candidateAnswerSortFields = []string{"id", "author", "content"}

func buildCandidateAnswerFilter(q dto.CandidateAnswerListQuery) squirrel.And {
	cond := squirrel.And{}

	if q.ID != nil {
		cond = append(cond, squirrel.Eq{"ca.id": *q.ID})
	}
	if q.StdQuestion != "" {
		cond = append(cond, squirrel.ILike{"sqv.content": "%" + q.StdQuestion + "%"})
	}
	if q.Author != "" {
		cond = append(cond, squirrel.ILike{"ca.author": "%" + q.Author + "%"})
	}
	if q.Content != "" {
		cond = append(cond, squirrel.ILike{"ca.content": "%" + q.Content + "%"})
	}
	if q.OnlyShowNoStdAnswer {
		cond = append(cond, squirrel.Expr(`NOT EXISTS (
			SELECT 1 FROM std_answer sa
			WHERE sa.std_question_version_id = ca.std_question_version_id
			  AND sa.content IS NOT NULL AND sa.content != ''
		)`))
	}

	return cond
}

const candidateAnswerJoin = "candidate_answer ca" +
	" JOIN std_question_version sqv ON ca.std_question_version_id = sqv.id"

// List returns one page of candidate answers, each embedding the question
// version it answers.
func (r *CandidateAnswerRepository) List(ctx context.Context, q dto.CandidateAnswerListQuery) (*dto.CandidateAnswerListResponse, error) {
	filter := buildCandidateAnswerFilter(q)

	countBuilder := r.sb.Select("COUNT(*)").From(candidateAnswerJoin)
	if len(filter) > 0 {
		countBuilder = countBuilder.Where(filter)
	}
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count candidate answers: %w", err)
	}

	resp := &dto.CandidateAnswerListResponse{Total: total, CandidateAnswers: []models.CandidateAnswer{}}

	sortField := helpers.AllowedSortField(q.SortField, candidateAnswerSortFields, "id")
	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.PageSize)

	pageBuilder := r.sb.Select("ca.id", "ca.author", "ca.content", "sqv.id", "sqv.content").
		From(candidateAnswerJoin).
		OrderBy("ca." + sortField + " " + helpers.OrderDirection(q.SortBy)).
		Limit(uint64(limit)).
		Offset(offset)
	if len(filter) > 0 {
		pageBuilder = pageBuilder.Where(filter)
	}
	pageSQL, pageArgs, err := pageBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build page query: %w", err)
	}

	rows, err := r.db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ca models.CandidateAnswer
		if err := rows.Scan(&ca.ID, &ca.Author, &ca.Content, &ca.StdQuestion.ID, &ca.StdQuestion.Content); err != nil {
			return nil, fmt.Errorf("failed to scan candidate answer: %w", err)
		}
		resp.CandidateAnswers = append(resp.CandidateAnswers, ca)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate answers: %w", err)
	}

	return resp, nil
}

// Create inserts a candidate answer and returns its id. A reference to a
// missing question version surfaces as a not-found error.
func (r *CandidateAnswerRepository) Create(ctx context.Context, versionID int64, answer, author string) (int64, error) {
	return insertCandidateAnswer(ctx, r.db, versionID, answer, author)
}

func insertCandidateAnswer(ctx context.Context, q executor, versionID int64, answer, author string) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO candidate_answer (author, content, std_question_version_id) VALUES ($1, $2, $3) RETURNING id`,
		author, answer, versionID,
	).Scan(&id)
	if err != nil {
		if dberrors.Classify(err) == dberrors.Constraint {
			return 0, apperrors.NewResourceNotFoundError(fmt.Sprintf("standard question version %d not found", versionID))
		}
		return 0, fmt.Errorf("failed to insert candidate answer: %w", err)
	}
	return id, nil
}
