package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// pgError translates constraint violations into repository sentinels and
// leaves every other error untouched.
func pgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgExclusionViolation:
			return fmt.Errorf("%w: %s", ErrOverlap, pgErr.ConstraintName)
		}
	}
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
