package person

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// Create creates a person with its nested sub-entities in one transaction.
// Primary flags of each collection are resolved by the engines, in input
// order.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Person, error) {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var email *string
	if input.Email != nil {
		normalized := domain.NormalizeEmail(*input.Email)
		email = &normalized
	}

	var person *domain.Person
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		person, createErr = s.persons.Create(txCtx, &domain.Person{
			BusinessID: scope.BusinessID,
			Name:       domain.CompactSpaces(input.Name),
			Email:      email,
			Notes:      trimOrNil(input.Notes),
			CreatedBy:  scope.Actor,
			UpdatedBy:  scope.Actor,
		})
		if createErr != nil {
			return fmt.Errorf("create person: %w", createErr)
		}

		person.Addresses = []*domain.Address{}
		person.Contacts = []*domain.Contact{}
		person.Documents = []*domain.Document{}
		if err := s.writeSubEntities(txCtx, person, input.SubEntities, scope.Actor, false); err != nil {
			return err
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			BusinessID: scope.BusinessID,
			Actor:      scope.Actor,
			EntityType: domain.EntityTypePerson,
			EntityID:   &person.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":      map[string]any{"new": person.Name},
				"addresses": len(person.Addresses),
				"contacts":  len(person.Contacts),
				"documents": len(person.Documents),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "person created",
		slog.String("business_id", scope.BusinessID.String()),
		slog.String("person_id", person.ID.String()),
	)
	return person, nil
}

// writeSubEntities sends each non-empty collection through its engine and
// stores the results on p. upsert selects UpsertMany over CreateMany.
func (s *Service) writeSubEntities(ctx context.Context, p *domain.Person, in SubEntities, actor domain.Actor, upsert bool) error {
	if len(in.Addresses) > 0 {
		items := addressItems(in.Addresses)
		var err error
		if upsert {
			p.Addresses, err = s.addresses.UpsertMany(ctx, p.ID, items, actor)
		} else {
			p.Addresses, err = s.addresses.CreateMany(ctx, p.ID, items, actor)
		}
		if err != nil {
			return fmt.Errorf("write addresses: %w", err)
		}
	}

	if len(in.Contacts) > 0 {
		items := contactItems(in.Contacts)
		var err error
		if upsert {
			p.Contacts, err = s.contacts.UpsertMany(ctx, p.ID, items, actor)
		} else {
			p.Contacts, err = s.contacts.CreateMany(ctx, p.ID, items, actor)
		}
		if err != nil {
			return fmt.Errorf("write contacts: %w", err)
		}
	}

	if len(in.Documents) > 0 {
		items := documentItems(in.Documents)
		var err error
		if upsert {
			p.Documents, err = s.documents.UpsertMany(ctx, p.ID, items, actor)
		} else {
			p.Documents, err = s.documents.CreateMany(ctx, p.ID, items, actor)
		}
		if err != nil {
			return fmt.Errorf("write documents: %w", err)
		}
	}
	return nil
}

// changedField records a before/after pair in an audit diff when they differ.
func changedField(changes map[string]any, field string, old, updated *string) {
	o, n := "", ""
	if old != nil {
		o = *old
	}
	if updated != nil {
		n = *updated
	}
	if o != n || (old == nil) != (updated == nil) {
		changes[field] = map[string]any{"old": old, "new": updated}
	}
}

func clearable(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
