// Package business implements the Business (tenant) repository using PostgreSQL.
package business

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

var columns = []string{"id", "name", "master_person_id", "created_at", "updated_at"}

// Repo provides business persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new business repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a business by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	sql, args, err := postgres.Psql.Select(columns...).From("businesses").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get business: %w", err)
	}

	b, err := scanBusiness(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "business", id)
	}
	return b, nil
}

// Create inserts a business. The master person may be set in the same
// transaction afterwards; the foreign key is checked at commit.
func (r *Repo) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	var master *uuid.UUID
	if b.MasterPersonID != uuid.Nil {
		master = &b.MasterPersonID
	}

	sql, args, err := postgres.Psql.Insert("businesses").
		Columns("id", "name", "master_person_id").
		Values(b.ID, b.Name, master).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert business: %w", err)
	}

	out, err := scanBusiness(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "business", b.ID)
	}
	return out, nil
}

// SetMaster points the business at its master user person.
func (r *Repo) SetMaster(ctx context.Context, id, personID uuid.UUID) (*domain.Business, error) {
	sql, args, err := postgres.Psql.Update("businesses").
		Set("master_person_id", personID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set master: %w", err)
	}

	out, err := scanBusiness(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "business", id)
	}
	return out, nil
}

func scanBusiness(row pgx.Row) (*domain.Business, error) {
	var (
		b      domain.Business
		master uuid.NullUUID
	)
	if err := row.Scan(&b.ID, &b.Name, &master, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if master.Valid {
		b.MasterPersonID = master.UUID
	}
	return &b, nil
}
