package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// SetPrimary makes one sub-entity the primary of its collection.
func (s *Service) SetPrimary(ctx context.Context, personID uuid.UUID, kind domain.SubEntityKind, subID uuid.UUID) error {
	return s.mutateSubEntity(ctx, personID, kind, subID, domain.AuditActionUpdate,
		func(ctx context.Context, actor domain.Actor) error {
			var err error
			switch kind {
			case domain.KindAddress:
				_, err = s.addresses.SetPrimary(ctx, personID, subID, actor)
			case domain.KindContact:
				_, err = s.contacts.SetPrimary(ctx, personID, subID, actor)
			case domain.KindDocument:
				_, err = s.documents.SetPrimary(ctx, personID, subID, actor)
			}
			return err
		},
		map[string]any{"is_primary": map[string]any{"new": true}},
	)
}

// DeleteSubEntity soft-deletes one sub-entity. A deleted primary hands the
// flag to the oldest remaining sibling unless the engine allows orphans.
func (s *Service) DeleteSubEntity(ctx context.Context, personID uuid.UUID, kind domain.SubEntityKind, subID uuid.UUID) error {
	return s.mutateSubEntity(ctx, personID, kind, subID, domain.AuditActionDelete,
		func(ctx context.Context, actor domain.Actor) error {
			switch kind {
			case domain.KindAddress:
				return s.addresses.Delete(ctx, personID, subID, actor)
			case domain.KindContact:
				return s.contacts.Delete(ctx, personID, subID, actor)
			default:
				return s.documents.Delete(ctx, personID, subID, actor)
			}
		},
		nil,
	)
}

func (s *Service) mutateSubEntity(
	ctx context.Context,
	personID uuid.UUID,
	kind domain.SubEntityKind,
	subID uuid.UUID,
	action domain.AuditAction,
	apply func(ctx context.Context, actor domain.Actor) error,
	changes map[string]any,
) error {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return err
	}
	if !kind.IsValid() {
		return domain.NewValidationError("kind", "invalid sub-entity kind")
	}
	if subID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The person lookup scopes the owner to the current business.
		if _, err := s.persons.GetByID(txCtx, scope.BusinessID, personID); err != nil {
			return fmt.Errorf("get person: %w", err)
		}
		if err := apply(txCtx, scope.Actor); err != nil {
			return err
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			BusinessID: scope.BusinessID,
			Actor:      scope.Actor,
			EntityType: domain.EntityTypeForKind(kind),
			EntityID:   &subID,
			Action:     action,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "sub-entity changed",
		slog.String("action", action.String()),
		slog.String("person_id", personID.String()),
		slog.String("kind", kind.String()),
		slog.String("id", subID.String()),
	)
	return nil
}
