// Package customer manages customers of a business.
package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/person"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, businessID uuid.UUID, search string, page domain.PageParams) (domain.Page[*domain.Customer], error)
	Touch(ctx context.Context, businessID, id uuid.UUID, actor domain.Actor) (*domain.Customer, error)
	SoftDelete(ctx context.Context, businessID, id uuid.UUID, actor domain.Actor) error
}

type personService interface {
	Create(ctx context.Context, input person.CreateInput) (*domain.Person, error)
	Update(ctx context.Context, input person.UpdateInput) (*domain.Person, error)
	Get(ctx context.Context, personID uuid.UUID) (*domain.Person, error)
	Delete(ctx context.Context, personID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides customer management operations.
type Service struct {
	customers customerRepo
	persons   personService
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Customer service.
func NewService(log *slog.Logger, customers customerRepo, persons personService, audit auditLogger, tx txManager) *Service {
	return &Service{
		customers: customers,
		persons:   persons,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "customer"),
	}
}

// CreateInput holds the parameters for creating a customer directly,
// without a lead.
type CreateInput struct {
	Person person.CreateInput
}

// UpdateInput holds the parameters for updating a customer's person.
type UpdateInput struct {
	CustomerID uuid.UUID
	Person     person.UpdateInput
}

// Create creates a customer with its person and sub-entities.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Customer, error) {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Person.Validate(); err != nil {
		return nil, prefixed(err)
	}

	var customer *domain.Customer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, createErr := s.persons.Create(txCtx, input.Person)
		if createErr != nil {
			return fmt.Errorf("create person: %w", createErr)
		}

		customer, createErr = s.customers.Create(txCtx, &domain.Customer{
			BusinessID: scope.BusinessID,
			PersonID:   p.ID,
			CreatedBy:  scope.Actor,
			UpdatedBy:  scope.Actor,
		})
		if createErr != nil {
			return fmt.Errorf("create customer: %w", createErr)
		}
		customer.Person = p

		return s.logAudit(txCtx, scope, customer.ID, domain.AuditActionCreate, map[string]any{
			"person_id": map[string]any{"new": p.ID},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "customer created",
		slog.String("business_id", scope.BusinessID.String()),
		slog.String("customer_id", customer.ID.String()),
	)
	return customer, nil
}

// Update applies a person payload to the customer's person.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Customer, error) {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return nil, err
	}
	if input.CustomerID == uuid.Nil {
		return nil, domain.NewValidationError("customer_id", "required")
	}
	if err := input.Person.ValidatePayload(); err != nil {
		return nil, prefixed(err)
	}

	var customer *domain.Customer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.customers.GetByID(txCtx, scope.BusinessID, input.CustomerID)
		if getErr != nil {
			return fmt.Errorf("get customer: %w", getErr)
		}

		personInput := input.Person
		personInput.PersonID = current.PersonID
		p, updateErr := s.persons.Update(txCtx, personInput)
		if updateErr != nil {
			return fmt.Errorf("update person: %w", updateErr)
		}

		customer, updateErr = s.customers.Touch(txCtx, scope.BusinessID, input.CustomerID, scope.Actor)
		if updateErr != nil {
			return fmt.Errorf("touch customer: %w", updateErr)
		}
		customer.Person = p

		return s.logAudit(txCtx, scope, customer.ID, domain.AuditActionUpdate, map[string]any{
			"person_id": map[string]any{"new": p.ID},
		})
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Get returns a customer of the current business with its person loaded.
func (s *Service) Get(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	scope, err := tenant.Read(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.customers.GetByID(ctx, scope.BusinessID, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if c.Person, err = s.persons.Get(ctx, c.PersonID); err != nil {
		return nil, fmt.Errorf("get customer person: %w", err)
	}
	return c, nil
}

// List returns a page of customers of the current business.
func (s *Service) List(ctx context.Context, search string, page domain.PageParams) (domain.Page[*domain.Customer], error) {
	scope, err := tenant.Read(ctx)
	if err != nil {
		return domain.Page[*domain.Customer]{}, err
	}

	result, err := s.customers.List(ctx, scope.BusinessID, search, page)
	if err != nil {
		return domain.Page[*domain.Customer]{}, fmt.Errorf("list customers: %w", err)
	}
	return result, nil
}

// Delete soft-deletes a customer. A customer created without a lead takes
// its person along; a converted lead still references the person otherwise.
func (s *Service) Delete(ctx context.Context, customerID uuid.UUID) error {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, getErr := s.customers.GetByID(txCtx, scope.BusinessID, customerID)
		if getErr != nil {
			return fmt.Errorf("get customer: %w", getErr)
		}
		if err := s.customers.SoftDelete(txCtx, scope.BusinessID, customerID, scope.Actor); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		if c.LeadID == nil {
			if err := s.persons.Delete(txCtx, c.PersonID); err != nil {
				return fmt.Errorf("delete customer person: %w", err)
			}
		}
		return s.logAudit(txCtx, scope, customerID, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "customer deleted",
		slog.String("business_id", scope.BusinessID.String()),
		slog.String("customer_id", customerID.String()),
	)
	return nil
}

func (s *Service) logAudit(ctx context.Context, scope tenant.Scope, id uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		BusinessID: scope.BusinessID,
		Actor:      scope.Actor,
		EntityType: domain.EntityTypeCustomer,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func prefixed(err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return domain.NewValidationErrors(domain.PrefixFields("person", ve.Errors))
	}
	return err
}
