package lead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// Delete soft-deletes a lead. The person goes with it unless the lead was
// converted, in which case the customer still owns the person.
func (s *Service) Delete(ctx context.Context, leadID uuid.UUID) error {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, getErr := s.leads.GetByID(txCtx, scope.BusinessID, leadID)
		if getErr != nil {
			return fmt.Errorf("get lead: %w", getErr)
		}
		if err := s.leads.SoftDelete(txCtx, scope.BusinessID, leadID, scope.Actor); err != nil {
			return fmt.Errorf("delete lead: %w", err)
		}
		if l.ConvertedCustomerID == nil {
			if err := s.persons.Delete(txCtx, l.PersonID); err != nil {
				return fmt.Errorf("delete lead person: %w", err)
			}
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			BusinessID: scope.BusinessID,
			Actor:      scope.Actor,
			EntityType: domain.EntityTypeLead,
			EntityID:   &leadID,
			Action:     domain.AuditActionDelete,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "lead deleted",
		slog.String("business_id", scope.BusinessID.String()),
		slog.String("lead_id", leadID.String()),
	)
	return nil
}
