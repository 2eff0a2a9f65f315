package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

// Get returns a person of the current business with its active
// sub-entities, each collection primary first.
func (s *Service) Get(ctx context.Context, personID uuid.UUID) (*domain.Person, error) {
	scope, err := tenant.Read(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.persons.GetByID(ctx, scope.BusinessID, personID)
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	if err := s.loadSubEntities(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns a page of persons of the current business. Sub-entities are
// not loaded; list endpoints batch them through dataloaders.
func (s *Service) List(ctx context.Context, search string, page domain.PageParams) (domain.Page[*domain.Person], error) {
	scope, err := tenant.Read(ctx)
	if err != nil {
		return domain.Page[*domain.Person]{}, err
	}

	result, err := s.persons.List(ctx, scope.BusinessID, search, page)
	if err != nil {
		return domain.Page[*domain.Person]{}, fmt.Errorf("list persons: %w", err)
	}
	return result, nil
}

// History returns the audit trail of a person, newest first. limit is
// clamped to the page bounds.
func (s *Service) History(ctx context.Context, personID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	scope, err := tenant.Read(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.persons.GetByID(ctx, scope.BusinessID, personID); err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}

	limit = domain.PageParams{Limit: limit}.Normalize().Limit
	records, err := s.audit.GetByEntity(ctx, scope.BusinessID, domain.EntityTypePerson, personID, limit)
	if err != nil {
		return nil, fmt.Errorf("person history: %w", err)
	}
	return records, nil
}

func (s *Service) loadSubEntities(ctx context.Context, p *domain.Person) error {
	var err error
	if p.Addresses, err = s.addresses.List(ctx, p.ID); err != nil {
		return err
	}
	if p.Contacts, err = s.contacts.List(ctx, p.ID); err != nil {
		return err
	}
	if p.Documents, err = s.documents.List(ctx, p.ID); err != nil {
		return err
	}
	return nil
}
