package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bandstand/bandstand/internal/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// wrapDBErr maps common DB errors to repository-level errors and wraps
// them with the provided operation name.
func wrapDBErr(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		switch pge.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, repository.ErrConflict)
		case pgForeignKeyViolation:
			// An insert pointing at a missing parent and a delete still
			// pointed at by children raise the same code; the statement
			// kind tells them apart at the call site via these helpers.
			return fmt.Errorf("%s: %w", op, repository.ErrMissingReference)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// wrapDeleteErr is wrapDBErr for DELETE statements, where a foreign key
// violation means dependent shows still exist.
func wrapDeleteErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) && pge.Code == pgForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, repository.ErrReferenced)
	}

	return wrapDBErr(op, err)
}

// fkConstraint reports the violated constraint name when err is a
// foreign key violation, so show creation can say which side failed.
func fkConstraint(err error) (string, bool) {
	var pge *pgconn.PgError
	if errors.As(err, &pge) && pge.Code == pgForeignKeyViolation {
		return pge.ConstraintName, true
	}
	return "", false
}
