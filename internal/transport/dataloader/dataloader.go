// Package dataloader provides per-request DataLoaders that batch the
// person and sub-entity reads of list endpoints into single SQL calls.
// Loaders call repositories directly, bypassing the service layer. Person
// reads are tenant-scoped by the business in the context; sub-entity reads
// are keyed by person IDs that already came from a tenant-scoped query.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type personRepo interface {
	GetByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*domain.Person, error)
}

type subEntityRepo[E any] interface {
	ListByOwnerIDs(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID][]E, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Person   personRepo
	Address  subEntityRepo[*domain.Address]
	Contact  subEntityRepo[*domain.Contact]
	Document subEntityRepo[*domain.Document]
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	PersonByID          *dataloader.Loader[uuid.UUID, *domain.Person]
	AddressesByPersonID *dataloader.Loader[uuid.UUID, []*domain.Address]
	ContactsByPersonID  *dataloader.Loader[uuid.UUID, []*domain.Contact]
	DocumentsByPersonID *dataloader.Loader[uuid.UUID, []*domain.Document]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		PersonByID:          newLoader(newPersonBatchFn(repos.Person)),
		AddressesByPersonID: newLoader(newByOwnerBatchFn(repos.Address)),
		ContactsByPersonID:  newLoader(newByOwnerBatchFn(repos.Contact)),
		DocumentsByPersonID: newLoader(newByOwnerBatchFn(repos.Document)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
