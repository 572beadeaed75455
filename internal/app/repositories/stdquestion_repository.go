package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/db"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
	"github.com/canyuksel/llmassess/internal/pkg/dberrors"
	"github.com/canyuksel/llmassess/internal/pkg/helpers"
)

// StdQuestionRepository handles database operations for standard questions,
// their versions and standard answers.
type StdQuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStdQuestionRepository creates a new StdQuestionRepository
func NewStdQuestionRepository(db *pgxpool.Pool) *StdQuestionRepository {
	return &StdQuestionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// buildStdQuestionFilter translates the list query into squirrel conditions
// over the sq/sqv/sa join. only_show_answered takes precedence over
// only_show_no_answered when both flags are set.
func buildStdQuestionFilter(q dto.StdQuestionListQuery) squirrel.And {
	cond := squirrel.And{}

	if q.ID != nil {
		cond = append(cond, squirrel.Eq{"sq.id": *q.ID})
	}

	if q.Content != "" {
		cond = append(cond, squirrel.ILike{"sqv.content": "%" + q.Content + "%"})
	}

	if q.Category != "" {
		cond = append(cond, squirrel.Eq{"sqv.category": q.Category})
	}

	// A version must carry every requested tag, not just one of them. An
	// empty tag list applies no tag filtering at all.
	if len(q.Tags) > 0 {
		cond = append(cond, squirrel.Expr(`sqv.id IN (
			SELECT qt.std_question_version_id
			FROM question_tag qt
			JOIN tag t ON qt.tag_id = t.id
			WHERE t.tag = ANY(?)
			GROUP BY qt.std_question_version_id
			HAVING COUNT(DISTINCT t.tag) = ?
		)`, q.Tags, len(q.Tags)))
	}

	switch {
	case q.OnlyShowAnswered:
		cond = append(cond, squirrel.Expr("sa.id IS NOT NULL"))
		cond = append(cond, squirrel.Expr("sa.content IS NOT NULL AND sa.content != ''"))
		if q.Answer != "" {
			cond = append(cond, squirrel.ILike{"sa.content": "%" + q.Answer + "%"})
		}
	case q.OnlyShowNoAnswered:
		cond = append(cond, squirrel.Expr("(sa.id IS NULL OR sa.content IS NULL OR sa.content = '')"))
	default:
		if q.Answer != "" {
			cond = append(cond, squirrel.ILike{"sa.content": "%" + q.Answer + "%"})
		}
	}

	return cond
}

const stdQuestionJoin = "std_question sq" +
	" JOIN std_question_version sqv ON sq.id = sqv.std_question_id" +
	" LEFT JOIN std_answer sa ON sqv.id = sa.std_question_version_id"

// List returns one page of standard questions with fully nested version
// trees, the filtered total and the unfiltered grand total.
func (r *StdQuestionRepository) List(ctx context.Context, q dto.StdQuestionListQuery) (*dto.StdQuestionListResponse, error) {
	filter := buildStdQuestionFilter(q)

	total, err := r.countFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	var totalNoFilter int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM std_question`).Scan(&totalNoFilter); err != nil {
		return nil, fmt.Errorf("failed to count standard questions: %w", err)
	}

	resp := &dto.StdQuestionListResponse{
		Total:         total,
		TotalNoFilter: totalNoFilter,
		StdQuestions:  []models.StdQuestion{},
	}

	pageIDs, err := r.pageQuestionIDs(ctx, filter, q)
	if err != nil {
		return nil, err
	}
	if len(pageIDs) == 0 {
		return resp, nil
	}

	// All versions matching the filter within the page's questions, not
	// bounded by the page size. Pagination splits questions, never their
	// version trees.
	pairs, err := r.filteredVersionPairs(ctx, filter, pageIDs)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return resp, nil
	}

	versionIDs := make([]int64, 0, len(pairs))
	versionsByQuestion := make(map[int64][]int64)
	for _, p := range pairs {
		versionIDs = append(versionIDs, p.versionID)
		versionsByQuestion[p.questionID] = append(versionsByQuestion[p.questionID], p.versionID)
	}

	trees, err := loadVersionTreesByVersionIDs(ctx, r.db, versionIDs)
	if err != nil {
		return nil, err
	}

	for _, questionID := range pageIDs {
		ids, ok := versionsByQuestion[questionID]
		if !ok {
			continue
		}
		question := models.StdQuestion{ID: questionID, Versions: make([]models.StdQuestionVersion, 0, len(ids))}
		for _, versionID := range ids {
			if version, ok := trees[versionID]; ok {
				question.Versions = append(question.Versions, version)
			}
		}
		resp.StdQuestions = append(resp.StdQuestions, question)
	}

	return resp, nil
}

func (r *StdQuestionRepository) countFiltered(ctx context.Context, filter squirrel.And) (int64, error) {
	builder := r.sb.Select("COUNT(DISTINCT sq.id)").From(stdQuestionJoin)
	if len(filter) > 0 {
		builder = builder.Where(filter)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count filtered standard questions: %w", err)
	}
	return total, nil
}

func (r *StdQuestionRepository) pageQuestionIDs(ctx context.Context, filter squirrel.And, q dto.StdQuestionListQuery) ([]int64, error) {
	direction := "DESC"
	if q.SortBy == "asc" {
		direction = "ASC"
	}
	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.PageSize)

	builder := r.sb.Select("DISTINCT sq.id").
		From(stdQuestionJoin).
		OrderBy("sq.id " + direction).
		Limit(uint64(limit)).
		Offset(offset)
	if len(filter) > 0 {
		builder = builder.Where(filter)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build page id query: %w", err)
	}

	return collectIDs(ctx, r.db, sql, args)
}

type questionVersionPair struct {
	questionID int64
	versionID  int64
}

func (r *StdQuestionRepository) filteredVersionPairs(ctx context.Context, filter squirrel.And, questionIDs []int64) ([]questionVersionPair, error) {
	cond := append(squirrel.And{}, filter...)
	cond = append(cond, squirrel.Expr("sq.id = ANY(?)", questionIDs))

	sql, args, err := r.sb.Select("sq.id", "sqv.id").
		From(stdQuestionJoin).
		Where(cond).
		OrderBy("sq.id", "sqv.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build version pair query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query version pairs: %w", err)
	}
	defer rows.Close()

	var pairs []questionVersionPair
	for rows.Next() {
		var p questionVersionPair
		if err := rows.Scan(&p.questionID, &p.versionID); err != nil {
			return nil, fmt.Errorf("failed to scan version pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read version pairs: %w", err)
	}
	return pairs, nil
}

// SetStandardAnswer upserts the answer for a question version and replaces
// its scoring point set wholesale, atomically.
func (r *StdQuestionRepository) SetStandardAnswer(ctx context.Context, versionID int64, answer string, points []models.ScoringPoint) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return replaceStandardAnswer(ctx, tx, versionID, answer, points)
	})
}

// replaceStandardAnswer runs the upsert sequence: update or insert the
// answer row, drop every existing scoring point, insert the new set. Any
// returned error aborts the enclosing transaction, so a partial replace is
// never visible.
func replaceStandardAnswer(ctx context.Context, tx executor, versionID int64, answer string, points []models.ScoringPoint) error {
	var answerID int64
	err := tx.QueryRow(ctx, `SELECT id FROM std_answer WHERE std_question_version_id = $1`, versionID).Scan(&answerID)
	switch {
	case err == nil:
		if _, err := tx.Exec(ctx, `UPDATE std_answer SET content = $1 WHERE id = $2`, answer, answerID); err != nil {
			return fmt.Errorf("failed to update standard answer: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM scoring_point WHERE std_answer_id = $1`, answerID); err != nil {
			return fmt.Errorf("failed to delete scoring points: %w", err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		if err := tx.QueryRow(ctx,
			`INSERT INTO std_answer (std_question_version_id, content) VALUES ($1, $2) RETURNING id`,
			versionID, answer,
		).Scan(&answerID); err != nil {
			if dberrors.Classify(err) == dberrors.Constraint {
				return apperrors.ErrQuestionVersionNotFound
			}
			return fmt.Errorf("failed to insert standard answer: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up standard answer: %w", err)
	}

	for _, point := range points {
		if _, err := tx.Exec(ctx,
			`INSERT INTO scoring_point (content, score, std_answer_id) VALUES ($1, $2, $3)`,
			point.Content, point.Score, answerID,
		); err != nil {
			return fmt.Errorf("failed to insert scoring point: %w", err)
		}
	}

	return nil
}
