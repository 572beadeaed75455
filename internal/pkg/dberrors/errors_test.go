package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, Other},
		{"no rows", pgx.ErrNoRows, NotFound},
		{"wrapped no rows", fmt.Errorf("query failed: %w", pgx.ErrNoRows), NotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, Unique},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, Constraint},
		{"not null violation", &pgconn.PgError{Code: "23502"}, Constraint},
		{"check violation", &pgconn.PgError{Code: "23514"}, Constraint},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, Other},
		{"plain error", errors.New("boom"), Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsUniqueConstraintError(t *testing.T) {
	err := fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505", ConstraintName: "dataset_name_key"})

	if !IsUniqueConstraintError(err, "dataset_name_key") {
		t.Error("expected match on constraint name")
	}
	if IsUniqueConstraintError(err, "tag_tag_key") {
		t.Error("must not match a different constraint")
	}
	if IsUniqueConstraintError(errors.New("boom"), "dataset_name_key") {
		t.Error("plain errors are never unique violations")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(pgx.ErrNoRows) {
		t.Error("pgx.ErrNoRows must classify as not found")
	}
	if IsNotFound(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violations are not not-found")
	}
}
