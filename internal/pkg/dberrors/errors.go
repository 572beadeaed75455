package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a storage error independently of the driver's encoding,
// so call sites never inspect PostgreSQL error code strings directly.
type Kind int

const (
	Other Kind = iota
	Unique
	NotFound
	Constraint
)

// PostgreSQL error class 23 is integrity constraint violation.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
)

// Classify maps a pgx error to a Kind.
func Classify(err error) Kind {
	if err == nil {
		return Other
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return Unique
		case codeForeignKeyViolation, codeNotNullViolation, codeCheckViolation:
			return Constraint
		}
	}
	return Other
}

// IsUniqueConstraintError reports whether the error is a unique violation
// on a specific named constraint.
func IsUniqueConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsNotFound reports whether the error means no matching row existed.
func IsNotFound(err error) bool {
	return Classify(err) == NotFound
}
