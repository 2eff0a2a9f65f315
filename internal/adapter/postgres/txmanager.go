package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNoTx is returned by operations that only make sense inside RunInTx.
var ErrNoTx = errors.New("no transaction in context")

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
// A RunInTx call made inside another RunInTx callback joins the outer
// transaction instead of opening a second one.
type TxManager struct {
	db  TxBeginner
	iso pgx.TxIsoLevel
}

// NewTxManager creates a new TxManager. An empty iso uses the server default
// (Read Committed).
func NewTxManager(db TxBeginner, iso pgx.TxIsoLevel) *TxManager {
	return &TxManager{db: db, iso: iso}
}

// ParseIsoLevel maps a config value (read_committed, repeatable_read,
// serializable) to a pgx isolation level.
func ParseIsoLevel(s string) (pgx.TxIsoLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "read_committed":
		return pgx.ReadCommitted, nil
	case "repeatable_read":
		return pgx.RepeatableRead, nil
	case "serializable":
		return pgx.Serializable, nil
	default:
		return "", fmt.Errorf("unknown isolation level %q", s)
	}
}

// RunInTx executes fn within a database transaction.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
// When ctx already carries a transaction fn runs in it and the outer
// caller owns commit and rollback.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: m.iso})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

const lockOwnerSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

// LockOwner takes a transaction-scoped advisory lock on (scope, ownerID).
// The lock is released on commit or rollback. Must be called inside RunInTx.
func (m *TxManager) LockOwner(ctx context.Context, scope string, ownerID uuid.UUID) error {
	tx, ok := txFromCtx(ctx)
	if !ok {
		return fmt.Errorf("lock owner %s/%s: %w", scope, ownerID, ErrNoTx)
	}
	if _, err := tx.Exec(ctx, lockOwnerSQL, scope+":"+ownerID.String()); err != nil {
		return fmt.Errorf("lock owner %s/%s: %w", scope, ownerID, err)
	}
	return nil
}
