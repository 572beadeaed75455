package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canyuksel/llmassess/internal/app/models"
)

// CategoryRepository handles database operations for categories.
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListAll returns every category with its question count, ordered by name.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, question_count FROM category ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return categories, nil
}

// bumpCategoryCount upserts the category row and increments its
// denormalized question count by one.
func bumpCategoryCount(ctx context.Context, tx executor, name string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO category (name, question_count) VALUES ($1, 1)
		 ON CONFLICT (name) DO UPDATE SET question_count = category.question_count + 1`, name)
	if err != nil {
		return fmt.Errorf("failed to bump category count for %q: %w", name, err)
	}
	return nil
}
