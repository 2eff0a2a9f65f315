package primaryflag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Entity is a primary-designated sub-entity. Implementations are pointer
// types embedding domain.SubEntityMeta, e.g. *domain.Address; the zero
// value (a nil pointer) marks a missing item.
type Entity interface {
	comparable
	Base() *domain.SubEntityMeta
	Kind() domain.SubEntityKind
}

// Repository is the per-kind storage the engine drives. Every method only
// sees active (not soft-deleted) rows of one owner.
type Repository[E Entity] interface {
	// CountActive counts active rows of owner, skipping excludeID when set.
	CountActive(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID) (int, error)
	// DemotePrimary clears is_primary on every active row of owner except excludeID.
	DemotePrimary(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID, actor domain.Actor) (int64, error)
	Insert(ctx context.Context, e E) (E, error)
	// Update writes the payload columns and is_primary of an active row.
	Update(ctx context.Context, e E) (E, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (E, error)
	// ListActive returns active rows, primary first, then oldest first.
	ListActive(ctx context.Context, ownerID uuid.UUID) ([]E, error)
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID, actor domain.Actor) error
	// PromoteOldest flags the oldest active row of owner (other than
	// excludeID) as primary. Reports false when no candidate exists.
	PromoteOldest(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID, actor domain.Actor) (bool, error)
	SoftDeleteByOwner(ctx context.Context, ownerID uuid.UUID, actor domain.Actor) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type ownerLocker interface {
	LockOwner(ctx context.Context, scope string, ownerID uuid.UUID) error
}

// Item is one record of a batch write. Primary carries the caller's
// request; nil means "not specified".
type Item[E Entity] struct {
	Value   E
	Primary *bool
}

// Engine applies the primary-flag rules for one sub-entity kind against
// persisted state. Writes for one owner are serialized by an advisory lock
// held for the lifetime of the surrounding transaction.
type Engine[E Entity] struct {
	kind   domain.SubEntityKind
	repo   Repository[E]
	tx     txManager
	locker ownerLocker
	policy UnsetPolicy
	log    *slog.Logger
}

// NewEngine creates an Engine for the kind of E.
func NewEngine[E Entity](
	log *slog.Logger,
	repo Repository[E],
	tx txManager,
	locker ownerLocker,
	policy UnsetPolicy,
) *Engine[E] {
	var zero E
	kind := zero.Kind()
	if !policy.IsValid() {
		policy = PolicyPromote
	}
	return &Engine[E]{
		kind:   kind,
		repo:   repo,
		tx:     tx,
		locker: locker,
		policy: policy,
		log:    log.With("service", "primaryflag", "kind", kind.String()),
	}
}

// CreateMany inserts items for owner in input order. Each item observes the
// writes of the items before it.
func (e *Engine[E]) CreateMany(ctx context.Context, ownerID uuid.UUID, items []Item[E], actor domain.Actor) ([]E, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner id is required", domain.ErrInvalidArgument)
	}
	if len(items) == 0 {
		return []E{}, nil
	}

	out := make([]E, 0, len(items))
	err := e.withOwnerLock(ctx, ownerID, func(txCtx context.Context) error {
		for i, it := range items {
			if err := e.checkItem(it); err != nil {
				return fmt.Errorf("%s item %d: %w", e.kind, i, err)
			}
			if it.Value.Base().IsPersisted() {
				return fmt.Errorf("%s item %d: %w: id must be empty on create", e.kind, i, domain.ErrInvalidArgument)
			}
			created, err := e.createOne(txCtx, ownerID, it, actor)
			if err != nil {
				return fmt.Errorf("%s item %d: %w", e.kind, i, err)
			}
			out = append(out, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.DebugContext(ctx, "sub-entities created",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(out)),
	)
	return out, nil
}

// UpsertMany updates items carrying an id and creates the rest, in input
// order. Updating an id that has no active row of owner fails with
// domain.ErrNotFound.
func (e *Engine[E]) UpsertMany(ctx context.Context, ownerID uuid.UUID, items []Item[E], actor domain.Actor) ([]E, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner id is required", domain.ErrInvalidArgument)
	}
	if len(items) == 0 {
		return []E{}, nil
	}

	out := make([]E, 0, len(items))
	var created, updated int
	err := e.withOwnerLock(ctx, ownerID, func(txCtx context.Context) error {
		for i, it := range items {
			if err := e.checkItem(it); err != nil {
				return fmt.Errorf("%s item %d: %w", e.kind, i, err)
			}

			var (
				res E
				err error
			)
			if it.Value.Base().IsPersisted() {
				res, err = e.updateOne(txCtx, ownerID, it, actor)
				updated++
			} else {
				res, err = e.createOne(txCtx, ownerID, it, actor)
				created++
			}
			if err != nil {
				return fmt.Errorf("%s item %d: %w", e.kind, i, err)
			}
			out = append(out, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.DebugContext(ctx, "sub-entities upserted",
		slog.String("owner_id", ownerID.String()),
		slog.Int("created", created),
		slog.Int("updated", updated),
	)
	return out, nil
}

// HandlePrimaryFlag resolves requested for a record the caller is about to
// insert and demotes siblings when needed. The caller persists the record
// itself, using the returned flag; to keep the decision valid it should do
// so inside the same transaction.
func (e *Engine[E]) HandlePrimaryFlag(ctx context.Context, ownerID uuid.UUID, requested *bool, actor domain.Actor) (bool, error) {
	if ownerID == uuid.Nil {
		return false, fmt.Errorf("%w: owner id is required", domain.ErrInvalidArgument)
	}

	var effective bool
	err := e.withOwnerLock(ctx, ownerID, func(txCtx context.Context) error {
		dec, err := e.resolve(txCtx, ownerID, nil, requested)
		if err != nil {
			return err
		}
		if dec.MustDemoteOthers {
			if _, err := e.repo.DemotePrimary(txCtx, ownerID, nil, actor); err != nil {
				return fmt.Errorf("demote %s: %w", e.kind, err)
			}
		}
		effective = dec.Effective
		return nil
	})
	if err != nil {
		return false, err
	}
	return effective, nil
}

// Delete soft-deletes one record. Under PolicyPromote a deleted primary
// hands the flag to the oldest remaining sibling.
func (e *Engine[E]) Delete(ctx context.Context, ownerID, id uuid.UUID, actor domain.Actor) error {
	if ownerID == uuid.Nil || id == uuid.Nil {
		return fmt.Errorf("%w: owner id and id are required", domain.ErrInvalidArgument)
	}

	var promoted bool
	err := e.withOwnerLock(ctx, ownerID, func(txCtx context.Context) error {
		current, err := e.repo.FindByID(txCtx, ownerID, id)
		if err != nil {
			return fmt.Errorf("find %s: %w", e.kind, err)
		}
		if err := e.repo.SoftDelete(txCtx, ownerID, id, actor); err != nil {
			return fmt.Errorf("delete %s: %w", e.kind, err)
		}
		if current.Base().IsPrimary && e.policy == PolicyPromote {
			promoted, err = e.repo.PromoteOldest(txCtx, ownerID, nil, actor)
			if err != nil {
				return fmt.Errorf("promote %s: %w", e.kind, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.log.DebugContext(ctx, "sub-entity deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("id", id.String()),
		slog.Bool("promoted_sibling", promoted),
	)
	return nil
}

// SetPrimary makes an existing record the primary one of its owner,
// demoting the current primary. The payload is left untouched.
func (e *Engine[E]) SetPrimary(ctx context.Context, ownerID, id uuid.UUID, actor domain.Actor) (E, error) {
	var out E
	if ownerID == uuid.Nil || id == uuid.Nil {
		return out, fmt.Errorf("%w: owner id and id are required", domain.ErrInvalidArgument)
	}

	primary := true
	err := e.withOwnerLock(ctx, ownerID, func(txCtx context.Context) error {
		current, err := e.repo.FindByID(txCtx, ownerID, id)
		if err != nil {
			return fmt.Errorf("find %s: %w", e.kind, err)
		}
		if current.Base().IsPrimary {
			out = current
			return nil
		}
		out, err = e.updateOne(txCtx, ownerID, Item[E]{Value: current, Primary: &primary}, actor)
		return err
	})
	if err != nil {
		var zero E
		return zero, err
	}
	return out, nil
}

// DeleteAll soft-deletes every active record of owner. Used when the owner
// itself goes away, so no sibling is promoted.
func (e *Engine[E]) DeleteAll(ctx context.Context, ownerID uuid.UUID, actor domain.Actor) (int64, error) {
	if ownerID == uuid.Nil {
		return 0, fmt.Errorf("%w: owner id is required", domain.ErrInvalidArgument)
	}

	var n int64
	err := e.withOwnerLock(ctx, ownerID, func(txCtx context.Context) error {
		var err error
		n, err = e.repo.SoftDeleteByOwner(txCtx, ownerID, actor)
		if err != nil {
			return fmt.Errorf("delete %s by owner: %w", e.kind, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// List returns the active records of owner, primary first.
func (e *Engine[E]) List(ctx context.Context, ownerID uuid.UUID) ([]E, error) {
	items, err := e.repo.ListActive(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", e.kind, err)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Internal
// ---------------------------------------------------------------------------

func (e *Engine[E]) withOwnerLock(ctx context.Context, ownerID uuid.UUID, fn func(ctx context.Context) error) error {
	return e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := e.locker.LockOwner(txCtx, e.kind.String(), ownerID); err != nil {
			return fmt.Errorf("lock %s owner %s: %w", e.kind, ownerID, err)
		}
		return fn(txCtx)
	})
}

func (e *Engine[E]) checkItem(it Item[E]) error {
	var zero E
	if it.Value == zero {
		return fmt.Errorf("%w: empty item", domain.ErrInvalidArgument)
	}
	return nil
}

func (e *Engine[E]) resolve(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID, requested *bool) (Decision, error) {
	count, err := e.repo.CountActive(ctx, ownerID, excludeID)
	if err != nil {
		return Decision{}, fmt.Errorf("count %s: %w", e.kind, err)
	}
	return Resolve(count, requested)
}

func (e *Engine[E]) createOne(ctx context.Context, ownerID uuid.UUID, it Item[E], actor domain.Actor) (E, error) {
	var zero E

	dec, err := e.resolve(ctx, ownerID, nil, it.Primary)
	if err != nil {
		return zero, err
	}
	if dec.MustDemoteOthers {
		if _, err := e.repo.DemotePrimary(ctx, ownerID, nil, actor); err != nil {
			return zero, fmt.Errorf("demote %s: %w", e.kind, err)
		}
	}

	b := it.Value.Base()
	b.OwnerID = ownerID
	b.IsPrimary = dec.Effective
	b.CreatedBy = actor
	b.UpdatedBy = actor

	created, err := e.repo.Insert(ctx, it.Value)
	if err != nil {
		return zero, fmt.Errorf("insert %s: %w", e.kind, err)
	}
	return created, nil
}

func (e *Engine[E]) updateOne(ctx context.Context, ownerID uuid.UUID, it Item[E], actor domain.Actor) (E, error) {
	var zero E
	id := it.Value.Base().ID

	current, err := e.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return zero, fmt.Errorf("find %s: %w", e.kind, err)
	}
	wasPrimary := current.Base().IsPrimary

	effective := wasPrimary
	switch {
	case it.Primary == nil:
		// An update that does not mention the flag leaves it as stored.
	case !*it.Primary && e.policy == PolicyAllowOrphan:
		effective = false
	default:
		dec, err := e.resolve(ctx, ownerID, &id, it.Primary)
		if err != nil {
			return zero, err
		}
		if dec.MustDemoteOthers {
			if _, err := e.repo.DemotePrimary(ctx, ownerID, &id, actor); err != nil {
				return zero, fmt.Errorf("demote %s: %w", e.kind, err)
			}
		}
		effective = dec.Effective
	}

	b := it.Value.Base()
	b.OwnerID = ownerID
	b.IsPrimary = effective
	b.UpdatedBy = actor

	updated, err := e.repo.Update(ctx, it.Value)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", e.kind, err)
	}

	// Promote only after the update: the partial unique index admits one
	// primary row at any point inside the transaction.
	if wasPrimary && !effective && e.policy == PolicyPromote {
		if _, err := e.repo.PromoteOldest(ctx, ownerID, &id, actor); err != nil {
			return zero, fmt.Errorf("promote %s: %w", e.kind, err)
		}
	}
	return updated, nil
}
