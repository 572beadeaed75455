package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
)

// TagRepository handles database operations for tags.
type TagRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Search returns tags matching the optional substring, ordered by question
// count descending then name ascending, capped at q.Size.
func (r *TagRepository) Search(ctx context.Context, q dto.TagSearchQuery) ([]models.TagCount, error) {
	builder := r.sb.Select("tag", "question_count").
		From("tag").
		OrderBy("question_count DESC", "tag ASC")
	if q.Tag != "" {
		builder = builder.Where(squirrel.ILike{"tag": "%" + q.Tag + "%"})
	}
	if q.Size > 0 {
		builder = builder.Limit(uint64(q.Size))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build tag search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := []models.TagCount{}
	for rows.Next() {
		var t models.TagCount
		if err := rows.Scan(&t.Tag, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}
	return tags, nil
}

// upsertTag inserts the tag if it does not exist yet and returns its id.
// The ON CONFLICT form is atomic, so two concurrent imports of the same new
// tag name cannot race a check-then-insert into a duplicate.
func upsertTag(ctx context.Context, tx executor, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO tag (tag) VALUES ($1)
		 ON CONFLICT (tag) DO UPDATE SET tag = EXCLUDED.tag
		 RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert tag %q: %w", name, err)
	}
	return id, nil
}
