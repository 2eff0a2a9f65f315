package lead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// Convert turns a lead into a customer sharing the same person. The lead
// moves to CONVERTED and keeps a link to the customer.
func (s *Service) Convert(ctx context.Context, leadID uuid.UUID) (*domain.Customer, error) {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return nil, err
	}

	var customer *domain.Customer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, getErr := s.leads.GetByID(txCtx, scope.BusinessID, leadID)
		if getErr != nil {
			return fmt.Errorf("get lead: %w", getErr)
		}
		if l.Status == domain.LeadStatusConverted {
			return fmt.Errorf("lead %s already converted: %w", leadID, domain.ErrConflict)
		}
		if l.Status == domain.LeadStatusLost {
			return domain.NewValidationError("status", "lost lead cannot be converted")
		}

		var createErr error
		customer, createErr = s.customers.Create(txCtx, &domain.Customer{
			BusinessID: scope.BusinessID,
			PersonID:   l.PersonID,
			LeadID:     &l.ID,
			CreatedBy:  scope.Actor,
			UpdatedBy:  scope.Actor,
		})
		if createErr != nil {
			return fmt.Errorf("create customer: %w", createErr)
		}

		if _, err := s.leads.MarkConverted(txCtx, scope.BusinessID, leadID, customer.ID, scope.Actor); err != nil {
			return fmt.Errorf("mark lead converted: %w", err)
		}

		for _, rec := range []domain.AuditRecord{
			{
				EntityType: domain.EntityTypeLead,
				EntityID:   &leadID,
				Action:     domain.AuditActionUpdate,
				Changes: map[string]any{
					"status":                map[string]any{"old": l.Status, "new": domain.LeadStatusConverted},
					"converted_customer_id": map[string]any{"new": customer.ID},
				},
			},
			{
				EntityType: domain.EntityTypeCustomer,
				EntityID:   &customer.ID,
				Action:     domain.AuditActionCreate,
				Changes:    map[string]any{"lead_id": map[string]any{"new": leadID}},
			},
		} {
			rec.BusinessID = scope.BusinessID
			rec.Actor = scope.Actor
			if auditErr := s.audit.Log(txCtx, rec); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "lead converted",
		slog.String("business_id", scope.BusinessID.String()),
		slog.String("lead_id", leadID.String()),
		slog.String("customer_id", customer.ID.String()),
	)
	return customer, nil
}
