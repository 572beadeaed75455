// Package seed populates baseline reference rows after migrations run.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// defaultCategories are created with a zero question count when missing so
// the category picker works on a fresh database.
var defaultCategories = []string{
	"General",
	"Reasoning",
	"Knowledge",
	"Math",
	"Coding",
}

// CreateDefaultData ensures the default categories exist. Existing rows are
// left untouched, counts included.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	for _, name := range defaultCategories {
		_, err := db.Exec(ctx,
			`INSERT INTO category (name, question_count) VALUES ($1, 0) ON CONFLICT (name) DO NOTHING`,
			name)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}
	lgr.Debug().Int("categories", len(defaultCategories)).Msg("Default categories ensured")
	return nil
}
