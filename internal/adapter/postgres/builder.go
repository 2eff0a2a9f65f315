package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Psql is the squirrel statement builder configured for PostgreSQL
// placeholders ($1, $2, ...).
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NotDeleted filters out soft-deleted rows of the given table alias.
func NotDeleted(alias string) sq.Eq {
	if alias == "" {
		return sq.Eq{"deleted_at": nil}
	}
	return sq.Eq{alias + ".deleted_at": nil}
}

// Returning renders a RETURNING clause for the given columns.
func Returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// Count returns the number of rows of table matching where.
func Count(ctx context.Context, q Querier, table string, where sq.Sqlizer) (int, error) {
	sql, args, err := Psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count %s: %w", table, err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SoftDelete marks an active tenant-scoped row as deleted.
// Returns domain.ErrNotFound if no active row of the business has that ID.
func SoftDelete(ctx context.Context, q Querier, table string, businessID, id uuid.UUID, actor domain.Actor) error {
	sql, args, err := Psql.Update(table).
		Set("deleted_at", sq.Expr("now()")).
		Set("deleted_by", actor).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"business_id": businessID}).
		Where(NotDeleted("")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return MapError(err, table, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

// HardDeleteOld physically removes rows of table soft-deleted before threshold.
// Rows matching any guard are kept; guards typically are NOT EXISTS checks
// against tables that still reference the row.
func HardDeleteOld(ctx context.Context, q Querier, table string, threshold time.Time, guards ...sq.Sqlizer) (int64, error) {
	b := Psql.Delete(table).Where(sq.Lt{"deleted_at": threshold})
	for _, g := range guards {
		b = b.Where(g)
	}
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build hard delete %s: %w", table, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("hard delete %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}
