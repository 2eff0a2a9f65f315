package lead

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// Get returns a lead of the current business with its person loaded.
func (s *Service) Get(ctx context.Context, leadID uuid.UUID) (*domain.Lead, error) {
	scope, err := tenant.Read(ctx)
	if err != nil {
		return nil, err
	}

	l, err := s.leads.GetByID(ctx, scope.BusinessID, leadID)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	if l.Person, err = s.persons.Get(ctx, l.PersonID); err != nil {
		return nil, fmt.Errorf("get lead person: %w", err)
	}
	return l, nil
}

// List returns a page of leads of the current business.
func (s *Service) List(ctx context.Context, filter domain.LeadFilter) (domain.Page[*domain.Lead], error) {
	scope, err := tenant.Read(ctx)
	if err != nil {
		return domain.Page[*domain.Lead]{}, err
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return domain.Page[*domain.Lead]{}, domain.NewValidationError("status", "invalid status")
	}

	page, err := s.leads.List(ctx, scope.BusinessID, filter)
	if err != nil {
		return domain.Page[*domain.Lead]{}, fmt.Errorf("list leads: %w", err)
	}
	return page, nil
}
