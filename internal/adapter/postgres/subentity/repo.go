// Package subentity implements storage for the primary-designated
// sub-entities of a person (addresses, contacts, documents). One generic
// Repo serves every kind; a Table describes the kind-specific columns.
package subentity

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Entity is a sub-entity row type (a pointer embedding domain.SubEntityMeta).
type Entity interface {
	Base() *domain.SubEntityMeta
	Kind() domain.SubEntityKind
}

// Table describes the kind-specific part of a sub-entity table.
type Table[E Entity] struct {
	Name string
	// Columns are the payload columns in the order of Values and Dest.
	Columns []string
	New     func() E
	Values  func(E) []any
	Dest    func(E) []any
}

var metaColumns = []string{
	"id", "person_id", "is_primary",
	"created_at", "updated_at", "created_by", "updated_by",
	"deleted_at", "deleted_by",
}

// Repo provides sub-entity persistence backed by PostgreSQL.
type Repo[E Entity] struct {
	db      postgres.Querier
	table   Table[E]
	entity  string
	columns []string
}

// New creates a repository for the given table description.
func New[E Entity](db postgres.Querier, table Table[E]) *Repo[E] {
	var zero E
	cols := make([]string, 0, len(metaColumns)+len(table.Columns))
	cols = append(cols, metaColumns...)
	cols = append(cols, table.Columns...)
	return &Repo[E]{
		db:      db,
		table:   table,
		entity:  zero.Kind().String(),
		columns: cols,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// CountActive counts active rows of owner, skipping excludeID when set.
func (r *Repo[E]) CountActive(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID) (int, error) {
	q := postgres.Psql.Select("count(*)").From(r.table.Name).
		Where(sq.Eq{"person_id": ownerID}).
		Where(postgres.NotDeleted(""))
	if excludeID != nil {
		q = q.Where(sq.NotEq{"id": *excludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count %s: %w", r.entity, err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, r.entity, ownerID)
	}
	return n, nil
}

// FindByID returns an active row of owner.
// Returns domain.ErrNotFound if the row does not exist, is deleted or
// belongs to another owner.
func (r *Repo[E]) FindByID(ctx context.Context, ownerID, id uuid.UUID) (E, error) {
	sql, args, err := r.selectActive().
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"person_id": ownerID}).
		ToSql()
	if err != nil {
		var zero E
		return zero, fmt.Errorf("build find %s: %w", r.entity, err)
	}

	e, err := r.scanOne(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return e, postgres.MapError(err, r.entity, id)
	}
	return e, nil
}

// ListActive returns active rows of owner, primary first, then oldest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo[E]) ListActive(ctx context.Context, ownerID uuid.UUID) ([]E, error) {
	sql, args, err := r.selectActive().
		Where(sq.Eq{"person_id": ownerID}).
		OrderBy("is_primary DESC", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", r.entity, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, r.entity, ownerID)
	}
	return r.collect(rows, ownerID)
}

// ListByOwnerIDs returns active rows for many owners (batch for DataLoader),
// grouped by owner, each group primary first.
func (r *Repo[E]) ListByOwnerIDs(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID][]E, error) {
	out := make(map[uuid.UUID][]E, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}

	sql, args, err := r.selectActive().
		Where(sq.Eq{"person_id": ownerIDs}).
		OrderBy("person_id", "is_primary DESC", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s by owners: %w", r.entity, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, r.entity, uuid.Nil)
	}
	items, err := r.collect(rows, uuid.Nil)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		owner := it.Base().OwnerID
		out[owner] = append(out[owner], it)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores a new row and returns it as persisted. A missing ID is
// generated.
func (r *Repo[E]) Insert(ctx context.Context, e E) (E, error) {
	b := e.Base()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	cols := append([]string{"id", "person_id", "is_primary", "created_by", "updated_by"}, r.table.Columns...)
	vals := append([]any{b.ID, b.OwnerID, b.IsPrimary, b.CreatedBy, b.UpdatedBy}, r.table.Values(e)...)

	sql, args, err := postgres.Psql.Insert(r.table.Name).
		Columns(cols...).
		Values(vals...).
		Suffix(postgres.Returning(r.columns)).
		ToSql()
	if err != nil {
		var zero E
		return zero, fmt.Errorf("build insert %s: %w", r.entity, err)
	}

	out, err := r.scanOne(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return out, postgres.MapError(err, r.entity, b.ID)
	}
	return out, nil
}

// Update writes payload columns and is_primary of an active row.
// Returns domain.ErrNotFound if no active row of the owner has that ID.
func (r *Repo[E]) Update(ctx context.Context, e E) (E, error) {
	b := e.Base()

	set := make(map[string]any, len(r.table.Columns)+3)
	for i, v := range r.table.Values(e) {
		set[r.table.Columns[i]] = v
	}
	set["is_primary"] = b.IsPrimary
	set["updated_by"] = b.UpdatedBy
	set["updated_at"] = sq.Expr("now()")

	sql, args, err := postgres.Psql.Update(r.table.Name).
		SetMap(set).
		Where(sq.Eq{"id": b.ID}).
		Where(sq.Eq{"person_id": b.OwnerID}).
		Where(postgres.NotDeleted("")).
		Suffix(postgres.Returning(r.columns)).
		ToSql()
	if err != nil {
		var zero E
		return zero, fmt.Errorf("build update %s: %w", r.entity, err)
	}

	out, err := r.scanOne(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return out, postgres.MapError(err, r.entity, b.ID)
	}
	return out, nil
}

// DemotePrimary clears is_primary on every active row of owner except
// excludeID and returns the number of demoted rows.
func (r *Repo[E]) DemotePrimary(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID, actor domain.Actor) (int64, error) {
	q := postgres.Psql.Update(r.table.Name).
		Set("is_primary", false).
		Set("updated_at", sq.Expr("now()")).
		Set("updated_by", actor).
		Where(sq.Eq{"person_id": ownerID}).
		Where(sq.Eq{"is_primary": true}).
		Where(postgres.NotDeleted(""))
	if excludeID != nil {
		q = q.Where(sq.NotEq{"id": *excludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build demote %s: %w", r.entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, r.entity, ownerID)
	}
	return tag.RowsAffected(), nil
}

// PromoteOldest flags the oldest active row of owner, other than excludeID,
// as primary. Reports false when there is no candidate.
func (r *Repo[E]) PromoteOldest(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID, actor domain.Actor) (bool, error) {
	oldest := sq.Select("id").From(r.table.Name).
		Where(sq.Eq{"person_id": ownerID}).
		Where(postgres.NotDeleted(""))
	if excludeID != nil {
		oldest = oldest.Where(sq.NotEq{"id": *excludeID})
	}
	oldest = oldest.OrderBy("created_at", "id").Limit(1)

	sql, args, err := postgres.Psql.Update(r.table.Name).
		Set("is_primary", true).
		Set("updated_at", sq.Expr("now()")).
		Set("updated_by", actor).
		Where(sq.Expr("id = (?)", oldest)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build promote %s: %w", r.entity, err)
	}

	var id uuid.UUID
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, r.entity, ownerID)
	}
	return true, nil
}

// SoftDelete marks an active row of owner as deleted.
// Returns domain.ErrNotFound if there is no such active row.
func (r *Repo[E]) SoftDelete(ctx context.Context, ownerID, id uuid.UUID, actor domain.Actor) error {
	sql, args, err := postgres.Psql.Update(r.table.Name).
		Set("deleted_at", sq.Expr("now()")).
		Set("deleted_by", actor).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"person_id": ownerID}).
		Where(postgres.NotDeleted("")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", r.entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, r.entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", r.entity, id, domain.ErrNotFound)
	}
	return nil
}

// SoftDeleteByOwner marks every active row of owner as deleted, used when
// the owner itself is deleted.
func (r *Repo[E]) SoftDeleteByOwner(ctx context.Context, ownerID uuid.UUID, actor domain.Actor) (int64, error) {
	sql, args, err := postgres.Psql.Update(r.table.Name).
		Set("deleted_at", sq.Expr("now()")).
		Set("deleted_by", actor).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"person_id": ownerID}).
		Where(postgres.NotDeleted("")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete %s by owner: %w", r.entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, r.entity, ownerID)
	}
	return tag.RowsAffected(), nil
}

// HardDeleteOld physically removes rows soft-deleted before threshold.
func (r *Repo[E]) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	return postgres.HardDeleteOld(ctx, postgres.QuerierFromCtx(ctx, r.db), r.table.Name, threshold)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo[E]) selectActive() sq.SelectBuilder {
	return postgres.Psql.Select(r.columns...).From(r.table.Name).Where(postgres.NotDeleted(""))
}

func (r *Repo[E]) dest(e E) []any {
	b := e.Base()
	d := []any{
		&b.ID, &b.OwnerID, &b.IsPrimary,
		&b.CreatedAt, &b.UpdatedAt, &b.CreatedBy, &b.UpdatedBy,
		&b.DeletedAt, &b.DeletedBy,
	}
	return append(d, r.table.Dest(e)...)
}

func (r *Repo[E]) scanOne(row pgx.Row) (E, error) {
	e := r.table.New()
	if err := row.Scan(r.dest(e)...); err != nil {
		var zero E
		return zero, err
	}
	return e, nil
}

func (r *Repo[E]) collect(rows pgx.Rows, ownerID uuid.UUID) ([]E, error) {
	defer rows.Close()

	out := []E{}
	for rows.Next() {
		e := r.table.New()
		if err := rows.Scan(r.dest(e)...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.entity, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, r.entity, ownerID)
	}
	return out, nil
}
