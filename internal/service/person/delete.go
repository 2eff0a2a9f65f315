package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// Delete soft-deletes a person together with all of its sub-entities.
func (s *Service) Delete(ctx context.Context, personID uuid.UUID) error {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return err
	}

	var removed int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.persons.SoftDelete(txCtx, scope.BusinessID, personID, scope.Actor); err != nil {
			return fmt.Errorf("delete person: %w", err)
		}

		for _, deleteAll := range []func(context.Context, uuid.UUID, domain.Actor) (int64, error){
			s.addresses.DeleteAll,
			s.contacts.DeleteAll,
			s.documents.DeleteAll,
		} {
			n, err := deleteAll(txCtx, personID, scope.Actor)
			if err != nil {
				return err
			}
			removed += n
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			BusinessID: scope.BusinessID,
			Actor:      scope.Actor,
			EntityType: domain.EntityTypePerson,
			EntityID:   &personID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"sub_entities_deleted": removed},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "person deleted",
		slog.String("business_id", scope.BusinessID.String()),
		slog.String("person_id", personID.String()),
		slog.Int64("sub_entities", removed),
	)
	return nil
}
