// Package customer implements the Customer repository using PostgreSQL.
package customer

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
	"id", "business_id", "person_id", "lead_id",
	"created_at", "updated_at", "created_by", "updated_by", "deleted_at", "deleted_by",
}

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an active customer of the business.
func (r *Repo) GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Customer, error) {
	sql, args, err := postgres.Psql.Select(columns...).From("customers").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"business_id": businessID}).
		Where(postgres.NotDeleted("")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer: %w", err)
	}

	c, err := scanCustomer(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	return c, nil
}

// List returns a page of active customers of the business, newest first.
// search matches the person's name or email.
func (r *Repo) List(ctx context.Context, businessID uuid.UUID, search string, page domain.PageParams) (domain.Page[*domain.Customer], error) {
	page = page.Normalize()
	result := domain.Page[*domain.Customer]{Items: []*domain.Customer{}, Limit: page.Limit, Offset: page.Offset}

	where := sq.And{sq.Eq{"c.business_id": businessID}, postgres.NotDeleted("c")}
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		where = append(where, sq.Or{sq.ILike{"p.name": like}, sq.ILike{"p.email": like}})
	}

	from := "customers c JOIN persons p ON p.id = c.person_id"
	q := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, q, from, where)
	if err != nil {
		return result, postgres.MapError(err, "customer", businessID)
	}
	result.Total = total
	if total == 0 {
		return result, nil
	}

	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "c." + c
	}

	sql, args, err := postgres.Psql.Select(qualified...).From(from).
		Where(where).
		OrderBy("c.created_at DESC", "c.id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build list customers: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return result, postgres.MapError(err, "customer", businessID)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return result, fmt.Errorf("scan customer: %w", err)
		}
		result.Items = append(result.Items, c)
	}
	if err := rows.Err(); err != nil {
		return result, postgres.MapError(err, "customer", businessID)
	}
	return result, nil
}

// Create inserts a customer and returns it as persisted.
// A second customer for the same lead yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	sql, args, err := postgres.Psql.Insert("customers").
		Columns("id", "business_id", "person_id", "lead_id", "created_by", "updated_by").
		Values(c.ID, c.BusinessID, c.PersonID, c.LeadID, c.CreatedBy, c.UpdatedBy).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert customer: %w", err)
	}

	out, err := scanCustomer(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}
	return out, nil
}

// Touch bumps updated_at/updated_by after the customer's person changed.
func (r *Repo) Touch(ctx context.Context, businessID, id uuid.UUID, actor domain.Actor) (*domain.Customer, error) {
	sql, args, err := postgres.Psql.Update("customers").
		Set("updated_at", sq.Expr("now()")).
		Set("updated_by", actor).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"business_id": businessID}).
		Where(postgres.NotDeleted("")).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build touch customer: %w", err)
	}

	out, err := scanCustomer(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	return out, nil
}

// SoftDelete marks a customer as deleted.
func (r *Repo) SoftDelete(ctx context.Context, businessID, id uuid.UUID, actor domain.Actor) error {
	return postgres.SoftDelete(ctx, postgres.QuerierFromCtx(ctx, r.db), "customers", businessID, id, actor)
}

// HardDeleteOld physically removes customers soft-deleted before threshold.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	return postgres.HardDeleteOld(ctx, postgres.QuerierFromCtx(ctx, r.db), "customers", threshold)
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.BusinessID, &c.PersonID, &c.LeadID,
		&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy, &c.DeletedAt, &c.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
