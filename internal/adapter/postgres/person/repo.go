// Package person implements the Person repository using PostgreSQL.
package person

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

var columns = []string{
	"id", "business_id", "name", "email", "notes",
	"created_at", "updated_at", "created_by", "updated_by", "deleted_at", "deleted_by",
}

// Repo provides person persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new person repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an active person of the business.
func (r *Repo) GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Person, error) {
	sql, args, err := postgres.Psql.Select(columns...).From("persons").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"business_id": businessID}).
		Where(postgres.NotDeleted("")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get person: %w", err)
	}

	p, err := scanPerson(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "person", id)
	}
	return p, nil
}

// GetByIDs returns active persons by ID. Missing IDs are absent from the map.
func (r *Repo) GetByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*domain.Person, error) {
	out := make(map[uuid.UUID]*domain.Person, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	sql, args, err := postgres.Psql.Select(columns...).From("persons").
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"business_id": businessID}).
		Where(postgres.NotDeleted("")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get persons: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "person", uuid.Nil)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "person", uuid.Nil)
	}
	return out, nil
}

// List returns a page of active persons of the business, newest first.
// search matches name or email case-insensitively; empty means no filter.
func (r *Repo) List(ctx context.Context, businessID uuid.UUID, search string, page domain.PageParams) (domain.Page[*domain.Person], error) {
	page = page.Normalize()
	result := domain.Page[*domain.Person]{Items: []*domain.Person{}, Limit: page.Limit, Offset: page.Offset}

	filter := sq.And{sq.Eq{"business_id": businessID}, postgres.NotDeleted("")}
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		filter = append(filter, sq.Or{sq.ILike{"name": like}, sq.ILike{"email": like}})
	}

	total, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), "persons", filter)
	if err != nil {
		return result, postgres.MapError(err, "person", businessID)
	}
	result.Total = total
	if total == 0 {
		return result, nil
	}

	sql, args, err := postgres.Psql.Select(columns...).From("persons").
		Where(filter).
		OrderBy("created_at DESC", "id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build list persons: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return result, postgres.MapError(err, "person", businessID)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return result, fmt.Errorf("scan person: %w", err)
		}
		result.Items = append(result.Items, p)
	}
	if err := rows.Err(); err != nil {
		return result, postgres.MapError(err, "person", businessID)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a person and returns it as persisted.
func (r *Repo) Create(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	sql, args, err := postgres.Psql.Insert("persons").
		Columns("id", "business_id", "name", "email", "notes", "created_by", "updated_by").
		Values(p.ID, p.BusinessID, p.Name, p.Email, p.Notes, p.CreatedBy, p.UpdatedBy).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert person: %w", err)
	}

	out, err := scanPerson(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "person", p.ID)
	}
	return out, nil
}

// Update applies a partial update. An empty Email or Notes clears the column.
func (r *Repo) Update(ctx context.Context, businessID, id uuid.UUID, params domain.PersonUpdateParams, actor domain.Actor) (*domain.Person, error) {
	q := postgres.Psql.Update("persons").
		Set("updated_at", sq.Expr("now()")).
		Set("updated_by", actor)
	if params.Name != nil {
		q = q.Set("name", *params.Name)
	}
	if params.Email != nil {
		q = q.Set("email", nullIfEmpty(*params.Email))
	}
	if params.Notes != nil {
		q = q.Set("notes", nullIfEmpty(*params.Notes))
	}

	sql, args, err := q.
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"business_id": businessID}).
		Where(postgres.NotDeleted("")).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update person: %w", err)
	}

	out, err := scanPerson(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "person", id)
	}
	return out, nil
}

// SoftDelete marks a person as deleted.
func (r *Repo) SoftDelete(ctx context.Context, businessID, id uuid.UUID, actor domain.Actor) error {
	return postgres.SoftDelete(ctx, postgres.QuerierFromCtx(ctx, r.db), "persons", businessID, id, actor)
}

// HardDeleteOld physically removes persons soft-deleted before threshold.
// Persons still referenced by a lead, a customer or a business are kept.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	return postgres.HardDeleteOld(ctx, postgres.QuerierFromCtx(ctx, r.db), "persons", threshold,
		sq.Expr("NOT EXISTS (SELECT 1 FROM leads l WHERE l.person_id = persons.id)"),
		sq.Expr("NOT EXISTS (SELECT 1 FROM customers c WHERE c.person_id = persons.id)"),
		sq.Expr("NOT EXISTS (SELECT 1 FROM businesses b WHERE b.master_person_id = persons.id)"),
	)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanPerson(row pgx.Row) (*domain.Person, error) {
	var p domain.Person
	err := row.Scan(
		&p.ID, &p.BusinessID, &p.Name, &p.Email, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy, &p.DeletedAt, &p.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
