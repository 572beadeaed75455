package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/pkg/helpers"
)

// SrcQuestionRepository handles database operations for source questions.
type SrcQuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSrcQuestionRepository creates a new SrcQuestionRepository
func NewSrcQuestionRepository(db *pgxpool.Pool) *SrcQuestionRepository {
	return &SrcQuestionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var srcQuestionSortFields = []string{"id", "content"}

func buildSrcQuestionFilter(q dto.SrcQuestionListQuery) squirrel.And {
	cond := squirrel.And{}
	if q.ID != nil {
		cond = append(cond, squirrel.Eq{"id": *q.ID})
	}
	if q.Content != "" {
		cond = append(cond, squirrel.ILike{"content": "%" + q.Content + "%"})
	}
	return cond
}

// List returns one page of source questions, each with its derived standard
// question trees and its free-text reference answers.
func (r *SrcQuestionRepository) List(ctx context.Context, q dto.SrcQuestionListQuery) (*dto.SrcQuestionListResponse, error) {
	filter := buildSrcQuestionFilter(q)

	countBuilder := r.sb.Select("COUNT(*)").From("src_question")
	if len(filter) > 0 {
		countBuilder = countBuilder.Where(filter)
	}
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count source questions: %w", err)
	}

	resp := &dto.SrcQuestionListResponse{Total: total, SrcQuestions: []models.SrcQuestion{}}

	orderField := helpers.AllowedSortField(q.OrderField, srcQuestionSortFields, "id")
	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.PageSize)

	pageBuilder := r.sb.Select("id", "content").
		From("src_question").
		OrderBy(orderField + " " + helpers.OrderDirection(q.OrderBy)).
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
		return nil, fmt.Errorf("failed to query source questions: %w", err)
	}
	defer rows.Close()

	var srcIDs []int64
	byID := make(map[int64]*models.SrcQuestion)
	for rows.Next() {
		var sq models.SrcQuestion
		if err := rows.Scan(&sq.ID, &sq.Content); err != nil {
			return nil, fmt.Errorf("failed to scan source question: %w", err)
		}
		sq.StdQuestions = []models.StdQuestion{}
		sq.Answers = []models.SrcAnswer{}
		srcIDs = append(srcIDs, sq.ID)
		byID[sq.ID] = &sq
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source questions: %w", err)
	}
	if len(srcIDs) == 0 {
		return resp, nil
	}

	if err := r.attachStdQuestions(ctx, srcIDs, byID); err != nil {
		return nil, err
	}
	if err := r.attachSrcAnswers(ctx, srcIDs, byID); err != nil {
		return nil, err
	}

	for _, id := range srcIDs {
		resp.SrcQuestions = append(resp.SrcQuestions, *byID[id])
	}
	return resp, nil
}

// attachStdQuestions loads every derived standard question for the page's
// source questions, then fans out once for all of their version trees.
func (r *SrcQuestionRepository) attachStdQuestions(ctx context.Context, srcIDs []int64, byID map[int64]*models.SrcQuestion) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, src_id FROM std_question WHERE src_id = ANY($1) ORDER BY id`, srcIDs)
	if err != nil {
		return fmt.Errorf("failed to query standard questions: %w", err)
	}
	defer rows.Close()

	var questionIDs []int64
	srcByQuestion := make(map[int64]int64)
	for rows.Next() {
		var questionID, srcID int64
		if err := rows.Scan(&questionID, &srcID); err != nil {
			return fmt.Errorf("failed to scan standard question: %w", err)
		}
		questionIDs = append(questionIDs, questionID)
		srcByQuestion[questionID] = srcID
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read standard questions: %w", err)
	}
	if len(questionIDs) == 0 {
		return nil
	}

	trees, err := loadVersionTreesByQuestionIDs(ctx, r.db, questionIDs)
	if err != nil {
		return err
	}

	for _, questionID := range questionIDs {
		src := byID[srcByQuestion[questionID]]
		if src == nil {
			continue
		}
		versions := trees[questionID]
		if versions == nil {
			versions = []models.StdQuestionVersion{}
		}
		src.StdQuestions = append(src.StdQuestions, models.StdQuestion{ID: questionID, Versions: versions})
	}
	return nil
}

func (r *SrcQuestionRepository) attachSrcAnswers(ctx context.Context, srcIDs []int64, byID map[int64]*models.SrcQuestion) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, content, src_question_id FROM src_answer WHERE src_question_id = ANY($1) ORDER BY id`, srcIDs)
	if err != nil {
		return fmt.Errorf("failed to query source answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var answer models.SrcAnswer
		var srcID int64
		if err := rows.Scan(&answer.ID, &answer.Content, &srcID); err != nil {
			return fmt.Errorf("failed to scan source answer: %w", err)
		}
		if src := byID[srcID]; src != nil {
			src.Answers = append(src.Answers, answer)
		}
	}
	return rows.Err()
}

// ListAll returns every source question with its full nested tree, for the
// data dump endpoint. No pagination; the corpus is operator-bounded.
func (r *SrcQuestionRepository) ListAll(ctx context.Context) ([]models.SrcQuestion, error) {
	rows, err := r.db.Query(ctx, `SELECT id, content FROM src_question ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query source questions: %w", err)
	}
	defer rows.Close()

	var srcIDs []int64
	byID := make(map[int64]*models.SrcQuestion)
	for rows.Next() {
		var sq models.SrcQuestion
		if err := rows.Scan(&sq.ID, &sq.Content); err != nil {
			return nil, fmt.Errorf("failed to scan source question: %w", err)
		}
		sq.StdQuestions = []models.StdQuestion{}
		sq.Answers = []models.SrcAnswer{}
		srcIDs = append(srcIDs, sq.ID)
		byID[sq.ID] = &sq
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source questions: %w", err)
	}
	if len(srcIDs) == 0 {
		return []models.SrcQuestion{}, nil
	}

	if err := r.attachStdQuestions(ctx, srcIDs, byID); err != nil {
		return nil, err
	}
	if err := r.attachSrcAnswers(ctx, srcIDs, byID); err != nil {
		return nil, err
	}

	result := make([]models.SrcQuestion, 0, len(srcIDs))
	for _, id := range srcIDs {
		result = append(result, *byID[id])
	}
	return result, nil
}
