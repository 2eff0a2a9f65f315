package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// SQLSTATE codes the repositories care about.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// primaryIndexSuffix names the partial unique indexes that allow one active
// primary row per owner, e.g. addresses_one_primary.
const primaryIndexSuffix = "_one_primary"

var sqlStateErrors = map[string]error{
	codeUniqueViolation:      domain.ErrAlreadyExists,
	codeForeignKeyViolation:  domain.ErrNotFound,
	codeCheckViolation:       domain.ErrValidation,
	codeSerializationFailure: domain.ErrConflict,
	codeDeadlockDetected:     domain.ErrConflict,
}

// MapError translates a driver error into a domain sentinel, prefixed with
// the entity and id it concerns. Context cancellation is kept as is so
// callers can tell a timeout from a database fault. Unknown failures wrap
// both domain.ErrPersistence and the driver error.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	prefix := entity + " " + id.String()

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", prefix, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == codeUniqueViolation && strings.HasSuffix(pgErr.ConstraintName, primaryIndexSuffix) {
			return fmt.Errorf("%s: concurrent primary write: %w", prefix, domain.ErrConflict)
		}
		if mapped, ok := sqlStateErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s: %w", prefix, mapped)
		}
	}

	return fmt.Errorf("%s: %w: %w", prefix, domain.ErrPersistence, err)
}
