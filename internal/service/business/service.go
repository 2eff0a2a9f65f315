// Package business manages tenants and their master user.
package business

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/person"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

type businessRepo interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	SetMaster(ctx context.Context, id, personID uuid.UUID) (*domain.Business, error)
}

type personService interface {
	Create(ctx context.Context, input person.CreateInput) (*domain.Person, error)
	Update(ctx context.Context, input person.UpdateInput) (*domain.Person, error)
	Get(ctx context.Context, personID uuid.UUID) (*domain.Person, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides business management operations.
type Service struct {
	businesses businessRepo
	persons    personService
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Business service.
func NewService(log *slog.Logger, businesses businessRepo, persons personService, audit auditLogger, tx txManager) *Service {
	return &Service{
		businesses: businesses,
		persons:    persons,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "business"),
	}
}

// CreateInput holds the parameters for creating a business with its master user.
type CreateInput struct {
	Name   string
	Master person.CreateInput
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if err := i.Master.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, domain.PrefixFields("master", ve.Errors)...)
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create creates a business and its master user person in one transaction.
// Only an authenticated user is required; the business does not exist yet.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Business, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	actor := domain.ActorOf(userID)

	var business *domain.Business
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, createErr := s.businesses.Create(txCtx, &domain.Business{Name: domain.CompactSpaces(input.Name)})
		if createErr != nil {
			return fmt.Errorf("create business: %w", createErr)
		}

		tenantCtx := ctxutil.WithBusinessID(txCtx, created.ID)
		master, createErr := s.persons.Create(tenantCtx, input.Master)
		if createErr != nil {
			return fmt.Errorf("create master: %w", createErr)
		}

		business, createErr = s.businesses.SetMaster(txCtx, created.ID, master.ID)
		if createErr != nil {
			return fmt.Errorf("set master: %w", createErr)
		}
		business.Master = master

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			BusinessID: business.ID,
			Actor:      actor,
			EntityType: domain.EntityTypeBusiness,
			EntityID:   &business.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":             map[string]any{"new": business.Name},
				"master_person_id": map[string]any{"new": master.ID},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "business created",
		slog.String("business_id", business.ID.String()),
		slog.String("user_id", userID.String()),
	)
	return business, nil
}

// Get returns the current business with its master user loaded.
func (s *Service) Get(ctx context.Context) (*domain.Business, error) {
	scope, err := tenant.Read(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.businesses.GetByID(ctx, scope.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if b.MasterPersonID != uuid.Nil {
		if b.Master, err = s.persons.Get(ctx, b.MasterPersonID); err != nil {
			return nil, fmt.Errorf("get master: %w", err)
		}
	}
	return b, nil
}

// UpdateMaster applies a person payload to the master user. Only the
// owner role may do this.
func (s *Service) UpdateMaster(ctx context.Context, input person.UpdateInput) (*domain.Business, error) {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return nil, err
	}
	if role := ctxutil.RoleFromCtx(ctx); role != "" && domain.Role(role) != domain.RoleOwner {
		return nil, domain.ErrForbidden
	}
	if err := input.ValidatePayload(); err != nil {
		return nil, err
	}

	var business *domain.Business
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, getErr := s.businesses.GetByID(txCtx, scope.BusinessID)
		if getErr != nil {
			return fmt.Errorf("get business: %w", getErr)
		}
		if b.MasterPersonID == uuid.Nil {
			return fmt.Errorf("business %s has no master: %w", b.ID, domain.ErrNotFound)
		}

		input.PersonID = b.MasterPersonID
		master, updateErr := s.persons.Update(txCtx, input)
		if updateErr != nil {
			return fmt.Errorf("update master: %w", updateErr)
		}
		b.Master = master
		business = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return business, nil
}
