package dataloader

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// AttachSubEntities fills addresses, contacts and documents of the given
// persons using one batch per kind.
func AttachSubEntities(ctx context.Context, persons []*domain.Person) error {
	if len(persons) == 0 {
		return nil
	}
	l := FromContext(ctx)

	ids := make([]uuid.UUID, len(persons))
	for i, p := range persons {
		ids[i] = p.ID
	}

	// Enqueue all three kinds before waiting so they dispatch together.
	addresses := l.AddressesByPersonID.LoadMany(ctx, ids)
	contacts := l.ContactsByPersonID.LoadMany(ctx, ids)
	documents := l.DocumentsByPersonID.LoadMany(ctx, ids)

	addrs, errs := addresses()
	if err := firstError(errs); err != nil {
		return err
	}
	conts, errs := contacts()
	if err := firstError(errs); err != nil {
		return err
	}
	docs, errs := documents()
	if err := firstError(errs); err != nil {
		return err
	}

	for i, p := range persons {
		p.Addresses, p.Contacts, p.Documents = addrs[i], conts[i], docs[i]
	}
	return nil
}

// LoadPersons returns the persons with the given IDs, in order, with their
// sub-entities attached.
func LoadPersons(ctx context.Context, ids []uuid.UUID) ([]*domain.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	persons, errs := FromContext(ctx).PersonByID.LoadMany(ctx, ids)()
	if err := firstError(errs); err != nil {
		return nil, err
	}
	if err := AttachSubEntities(ctx, persons); err != nil {
		return nil, err
	}
	return persons, nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
