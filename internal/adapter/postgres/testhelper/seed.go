package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedBusiness creates a business without a master person.
func SeedBusiness(t *testing.T, pool *pgxpool.Pool) domain.Business {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Business{
		ID:        uuid.New(),
		Name:      "Business " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO businesses (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		b.ID, b.Name, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBusiness: %v", err)
	}
	return b
}

// SeedPerson creates a person in a fresh business. Returns the person.
func SeedPerson(t *testing.T, pool *pgxpool.Pool) domain.Person {
	t.Helper()
	return SeedPersonIn(t, pool, SeedBusiness(t, pool).ID)
}

// SeedPersonIn creates a person in the given business.
func SeedPersonIn(t *testing.T, pool *pgxpool.Pool, businessID uuid.UUID) domain.Person {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Person{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       "Person " + uniqueSuffix(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO persons (id, business_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.BusinessID, p.Name, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPerson: %v", err)
	}
	return p
}

// CountPrimary returns the number of active primary rows of owner in table.
func CountPrimary(t *testing.T, pool *pgxpool.Pool, table string, ownerID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE person_id = $1 AND is_primary AND deleted_at IS NULL`,
		ownerID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountPrimary %s: %v", table, err)
	}
	return n
}
