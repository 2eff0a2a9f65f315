package lead

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// Update changes lead fields and, when given, the lead's person payload.
// A converted lead is frozen.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Lead, error) {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.LeadUpdateParams{
		Status:     input.Status,
		AssignedTo: input.AssignedTo,
	}
	if input.Source != nil {
		source := strings.TrimSpace(*input.Source)
		params.Source = &source
	}

	var updated *domain.Lead
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.leads.GetByID(txCtx, scope.BusinessID, input.LeadID)
		if getErr != nil {
			return fmt.Errorf("get lead: %w", getErr)
		}
		if old.Status == domain.LeadStatusConverted {
			return fmt.Errorf("lead %s is converted: %w", old.ID, domain.ErrConflict)
		}

		updated = old
		if input.hasLeadFields() {
			var updateErr error
			updated, updateErr = s.leads.Update(txCtx, scope.BusinessID, input.LeadID, params, scope.Actor)
			if updateErr != nil {
				return fmt.Errorf("update lead: %w", updateErr)
			}
		}

		if input.Person != nil {
			personInput := *input.Person
			personInput.PersonID = old.PersonID
			p, personErr := s.persons.Update(txCtx, personInput)
			if personErr != nil {
				return fmt.Errorf("update person: %w", personErr)
			}
			updated.Person = p
		}

		if changes := buildLeadChanges(old, updated); len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				BusinessID: scope.BusinessID,
				Actor:      scope.Actor,
				EntityType: domain.EntityTypeLead,
				EntityID:   &input.LeadID,
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

	s.log.InfoContext(ctx, "lead updated",
		slog.String("business_id", scope.BusinessID.String()),
		slog.String("lead_id", input.LeadID.String()),
	)
	return updated, nil
}

// buildLeadChanges returns only changed fields for audit.
func buildLeadChanges(old, updated *domain.Lead) map[string]any {
	changes := make(map[string]any)
	if old.Status != updated.Status {
		changes["status"] = map[string]any{"old": old.Status, "new": updated.Status}
	}
	oldSource, newSource := "", ""
	if old.Source != nil {
		oldSource = *old.Source
	}
	if updated.Source != nil {
		newSource = *updated.Source
	}
	if oldSource != newSource {
		changes["source"] = map[string]any{"old": old.Source, "new": updated.Source}
	}
	if old.AssignedTo != updated.AssignedTo {
		changes["assigned_to"] = map[string]any{"old": old.AssignedTo, "new": updated.AssignedTo}
	}
	return changes
}
