package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// Update changes person fields and upserts the given sub-entities.
// Returns the person with all active sub-entities loaded.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Person, error) {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PersonUpdateParams{Notes: clearable(input.Notes)}
	if input.Name != nil {
		name := domain.CompactSpaces(*input.Name)
		params.Name = &name
	}
	if input.Email != nil {
		email := domain.NormalizeEmail(*input.Email)
		params.Email = &email
	}

	var updated *domain.Person
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Fetch old state inside transaction for accurate audit diff.
		old, getErr := s.persons.GetByID(txCtx, scope.BusinessID, input.PersonID)
		if getErr != nil {
			return fmt.Errorf("get person: %w", getErr)
		}

		updated = old
		if input.HasPersonFields() {
			var updateErr error
			updated, updateErr = s.persons.Update(txCtx, scope.BusinessID, input.PersonID, params, scope.Actor)
			if updateErr != nil {
				return fmt.Errorf("update person: %w", updateErr)
			}
		}

		if err := s.writeSubEntities(txCtx, updated, input.SubEntities, scope.Actor, true); err != nil {
			return err
		}

		changes := buildPersonChanges(old, updated)
		if n := len(input.Addresses) + len(input.Contacts) + len(input.Documents); n > 0 {
			changes["sub_entities_written"] = n
		}
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				BusinessID: scope.BusinessID,
				Actor:      scope.Actor,
				EntityType: domain.EntityTypePerson,
				EntityID:   &input.PersonID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.loadSubEntities(ctx, updated); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "person updated",
		slog.String("business_id", scope.BusinessID.String()),
		slog.String("person_id", input.PersonID.String()),
	)
	return updated, nil
}

// buildPersonChanges returns only changed fields for audit.
func buildPersonChanges(old, updated *domain.Person) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	changedField(changes, "email", old.Email, updated.Email)
	changedField(changes, "notes", old.Notes, updated.Notes)
	return changes
}
