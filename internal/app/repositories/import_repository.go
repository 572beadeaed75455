package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/db"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
	"github.com/canyuksel/llmassess/internal/pkg/dberrors"
	"github.com/canyuksel/llmassess/internal/pkg/helpers"
)

// ImportRepository performs the structured bulk import: source questions
// with their standard question trees, answers, scoring points, tags and
// categories.
type ImportRepository struct {
	db *pgxpool.Pool
}

// NewImportRepository creates a new ImportRepository
func NewImportRepository(db *pgxpool.Pool) *ImportRepository {
	return &ImportRepository{db: db}
}

// ImportSrcQuestions walks the import structure and inserts every row in a
// single transaction. A failure at any depth leaves zero rows behind.
func (r *ImportRepository) ImportSrcQuestions(ctx context.Context, srcQuestions []dto.ImportSrcQuestion) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return importSrcQuestions(ctx, tx, srcQuestions)
	})
}

// importSrcQuestions issues the full insert walk. The first failing
// statement stops the walk and aborts the enclosing transaction.
func importSrcQuestions(ctx context.Context, tx executor, srcQuestions []dto.ImportSrcQuestion) error {
	for _, src := range srcQuestions {
		var srcID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO src_question (content) VALUES ($1) RETURNING id`, src.Content,
		).Scan(&srcID); err != nil {
			return fmt.Errorf("failed to insert source question: %w", err)
		}

		for _, std := range src.StdQuestions {
			if err := importStdQuestion(ctx, tx, srcID, std); err != nil {
				return err
			}
		}

		for _, answer := range src.Answers {
			if _, err := tx.Exec(ctx,
				`INSERT INTO src_answer (src_question_id, content) VALUES ($1, $2)`, srcID, answer,
			); err != nil {
				return fmt.Errorf("failed to insert source answer: %w", err)
			}
		}
	}
	return nil
}

func importStdQuestion(ctx context.Context, tx executor, srcID int64, std dto.ImportStdQuestion) error {
	var questionID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO std_question (src_id) VALUES ($1) RETURNING id`, srcID,
	).Scan(&questionID); err != nil {
		return fmt.Errorf("failed to insert standard question: %w", err)
	}

	for _, version := range std.Versions {
		if err := importStdQuestionVersion(ctx, tx, questionID, version); err != nil {
			return err
		}
	}
	return nil
}

func importStdQuestionVersion(ctx context.Context, tx executor, questionID int64, version dto.ImportStdQuestionVersion) error {
	var versionID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO std_question_version (std_question_id, version, content, category)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		questionID, version.Version, version.Content, helpers.GetContentNullString(version.Category),
	).Scan(&versionID); err != nil {
		return fmt.Errorf("failed to insert question version: %w", err)
	}

	var answerID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO std_answer (std_question_version_id, content) VALUES ($1, $2) RETURNING id`,
		versionID, version.Answer.Content,
	).Scan(&answerID); err != nil {
		return fmt.Errorf("failed to insert standard answer: %w", err)
	}

	for _, point := range version.Answer.ScoringPoints {
		if _, err := tx.Exec(ctx,
			`INSERT INTO scoring_point (content, score, std_answer_id) VALUES ($1, $2, $3)`,
			point.Content, point.Score, answerID,
		); err != nil {
			return fmt.Errorf("failed to insert scoring point: %w", err)
		}
	}

	for _, tagName := range version.Tags {
		tagID, err := upsertTag(ctx, tx, tagName)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO question_tag (std_question_version_id, tag_id) VALUES ($1, $2)`,
			versionID, tagID,
		); err != nil {
			if dberrors.Classify(err) == dberrors.Unique {
				return apperrors.NewConflictError(fmt.Sprintf("tag %q appears more than once on one version", tagName))
			}
			return fmt.Errorf("failed to link tag %q: %w", tagName, err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE tag SET question_count = question_count + 1 WHERE id = $1`, tagID,
		); err != nil {
			return fmt.Errorf("failed to bump tag count for %q: %w", tagName, err)
		}
	}

	if version.Category != "" {
		if err := bumpCategoryCount(ctx, tx, version.Category); err != nil {
			return err
		}
	}

	return nil
}
