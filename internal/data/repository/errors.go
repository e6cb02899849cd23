package repository

import (
	"errors"
	"fmt"
	"strings"

	"hotel-management/internal/data/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	// integrity_constraint_violation class
	pgIntegrityClass = "23"
)

// translateConstraintError maps storage constraint failures onto the entity
// error taxonomy. mapped is returned for a unique or foreign key violation on
// the named constraint.
func translateConstraintError(err error, constraint string, mapped error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if mapped != nil && pgErr.ConstraintName == constraint &&
		(pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation) {
		return mapped
	}

	if strings.HasPrefix(pgErr.Code, pgIntegrityClass) {
		return fmt.Errorf("%w: %s", entity.ErrIntegrityViolation, pgErr.Message)
	}

	return err
}
