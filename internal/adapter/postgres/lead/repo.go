// Package lead implements the Lead repository using PostgreSQL.
package lead

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
	"id", "business_id", "person_id", "status", "source", "assigned_to", "converted_customer_id",
	"created_at", "updated_at", "created_by", "updated_by", "deleted_at", "deleted_by",
}

// Repo provides lead persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lead repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an active lead of the business.
func (r *Repo) GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Lead, error) {
	sql, args, err := postgres.Psql.Select(columns...).From("leads").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"business_id": businessID}).
		Where(postgres.NotDeleted("")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get lead: %w", err)
	}

	l, err := scanLead(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}
	return l, nil
}

// List returns a page of active leads of the business matching filter.
func (r *Repo) List(ctx context.Context, businessID uuid.UUID, filter domain.LeadFilter) (domain.Page[*domain.Lead], error) {
	filter = normalize(filter)
	result := domain.Page[*domain.Lead]{Items: []*domain.Lead{}, Limit: filter.Limit, Offset: filter.Offset}

	where := sq.And{sq.Eq{"l.business_id": businessID}, postgres.NotDeleted("l")}
	if filter.Status != nil {
		where = append(where, sq.Eq{"l.status": string(*filter.Status)})
	}
	if filter.AssignedTo != nil {
		where = append(where, sq.Eq{"l.assigned_to": *filter.AssignedTo})
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		where = append(where, sq.Or{sq.ILike{"p.name": like}, sq.ILike{"p.email": like}})
	}

	from := "leads l JOIN persons p ON p.id = l.person_id"
	q := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, q, from, where)
	if err != nil {
		return result, postgres.MapError(err, "lead", businessID)
	}
	result.Total = total
	if total == 0 {
		return result, nil
	}

	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "l." + c
	}

	sql, args, err := postgres.Psql.Select(qualified...).From(from).
		Where(where).
		OrderBy(orderBy(filter)...).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build list leads: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return result, postgres.MapError(err, "lead", businessID)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return result, fmt.Errorf("scan lead: %w", err)
		}
		result.Items = append(result.Items, l)
	}
	if err := rows.Err(); err != nil {
		return result, postgres.MapError(err, "lead", businessID)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a lead and returns it as persisted.
func (r *Repo) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = domain.LeadStatusNew
	}

	sql, args, err := postgres.Psql.Insert("leads").
		Columns("id", "business_id", "person_id", "status", "source", "assigned_to", "created_by", "updated_by").
		Values(l.ID, l.BusinessID, l.PersonID, string(l.Status), l.Source, l.AssignedTo, l.CreatedBy, l.UpdatedBy).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert lead: %w", err)
	}

	out, err := scanLead(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "lead", l.ID)
	}
	return out, nil
}

// Update applies a partial update. An empty Source clears the column.
func (r *Repo) Update(ctx context.Context, businessID, id uuid.UUID, params domain.LeadUpdateParams, actor domain.Actor) (*domain.Lead, error) {
	q := postgres.Psql.Update("leads").
		Set("updated_at", sq.Expr("now()")).
		Set("updated_by", actor)
	if params.Status != nil {
		q = q.Set("status", string(*params.Status))
	}
	if params.Source != nil {
		var source *string
		if *params.Source != "" {
			source = params.Source
		}
		q = q.Set("source", source)
	}
	if params.AssignedTo != nil {
		q = q.Set("assigned_to", *params.AssignedTo)
	}

	return r.updateReturning(ctx, q, businessID, id)
}

// MarkConverted moves a lead into the CONVERTED stage and links the customer.
func (r *Repo) MarkConverted(ctx context.Context, businessID, id, customerID uuid.UUID, actor domain.Actor) (*domain.Lead, error) {
	q := postgres.Psql.Update("leads").
		Set("status", string(domain.LeadStatusConverted)).
		Set("converted_customer_id", customerID).
		Set("updated_at", sq.Expr("now()")).
		Set("updated_by", actor)

	return r.updateReturning(ctx, q, businessID, id)
}

// SoftDelete marks a lead as deleted.
func (r *Repo) SoftDelete(ctx context.Context, businessID, id uuid.UUID, actor domain.Actor) error {
	return postgres.SoftDelete(ctx, postgres.QuerierFromCtx(ctx, r.db), "leads", businessID, id, actor)
}

// HardDeleteOld physically removes leads soft-deleted before threshold that
// no customer was converted from.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	return postgres.HardDeleteOld(ctx, postgres.QuerierFromCtx(ctx, r.db), "leads", threshold,
		sq.Expr("NOT EXISTS (SELECT 1 FROM customers c WHERE c.lead_id = leads.id)"),
	)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func (r *Repo) updateReturning(ctx context.Context, q sq.UpdateBuilder, businessID, id uuid.UUID) (*domain.Lead, error) {
	sql, args, err := q.
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"business_id": businessID}).
		Where(postgres.NotDeleted("")).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update lead: %w", err)
	}

	out, err := scanLead(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}
	return out, nil
}

func scanLead(row pgx.Row) (*domain.Lead, error) {
	var (
		l      domain.Lead
		status string
	)
	err := row.Scan(
		&l.ID, &l.BusinessID, &l.PersonID, &status, &l.Source, &l.AssignedTo, &l.ConvertedCustomerID,
		&l.CreatedAt, &l.UpdatedAt, &l.CreatedBy, &l.UpdatedBy, &l.DeletedAt, &l.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	l.Status = domain.LeadStatus(status)
	return &l, nil
}
