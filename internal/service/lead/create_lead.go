package lead

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// Create creates a lead together with its person and sub-entities.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Lead, error) {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var lead *domain.Lead
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, createErr := s.persons.Create(txCtx, input.Person)
		if createErr != nil {
			return fmt.Errorf("create person: %w", createErr)
		}

		var assigned uuid.NullUUID
		if input.AssignedTo != nil {
			assigned = uuid.NullUUID{UUID: *input.AssignedTo, Valid: true}
		}

		lead, createErr = s.leads.Create(txCtx, &domain.Lead{
			BusinessID: scope.BusinessID,
			PersonID:   p.ID,
			Status:     domain.LeadStatusNew,
			Source:     trimOrNil(input.Source),
			AssignedTo: assigned,
			CreatedBy:  scope.Actor,
			UpdatedBy:  scope.Actor,
		})
		if createErr != nil {
			return fmt.Errorf("create lead: %w", createErr)
		}
		lead.Person = p

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			BusinessID: scope.BusinessID,
			Actor:      scope.Actor,
			EntityType: domain.EntityTypeLead,
			EntityID:   &lead.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"person_id": map[string]any{"new": p.ID},
				"status":    map[string]any{"new": lead.Status},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "lead created",
		slog.String("business_id", scope.BusinessID.String()),
		slog.String("lead_id", lead.ID.String()),
	)
	return lead, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
