package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Persons by ID
// ---------------------------------------------------------------------------

func newPersonBatchFn(repo personRepo) dataloader.BatchFunc[uuid.UUID, *domain.Person] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Person] {
		businessID, ok := ctxutil.BusinessIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.Person](len(keys), domain.ErrUnauthorized)
		}

		persons, err := repo.GetByIDs(ctx, businessID, keys)
		if err != nil {
			return errorResults[*domain.Person](len(keys), err)
		}

		results := make([]*dataloader.Result[*domain.Person], len(keys))
		for i, key := range keys {
			if p, found := persons[key]; found {
				results[i] = &dataloader.Result[*domain.Person]{Data: p}
			} else {
				results[i] = &dataloader.Result[*domain.Person]{Error: domain.ErrNotFound}
			}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Sub-entities by person ID
// ---------------------------------------------------------------------------

func newByOwnerBatchFn[E any](repo subEntityRepo[E]) dataloader.BatchFunc[uuid.UUID, []E] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]E] {
		grouped, err := repo.ListByOwnerIDs(ctx, keys)
		if err != nil {
			return errorResults[[]E](len(keys), err)
		}
		return mapResults(keys, grouped, emptySlice[E])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
