// Package lead manages prospective customers and their conversion.
package lead

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/person"
)

type leadRepo interface {
	Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Lead, error)
	List(ctx context.Context, businessID uuid.UUID, filter domain.LeadFilter) (domain.Page[*domain.Lead], error)
	Update(ctx context.Context, businessID, id uuid.UUID, params domain.LeadUpdateParams, actor domain.Actor) (*domain.Lead, error)
	MarkConverted(ctx context.Context, businessID, id, customerID uuid.UUID, actor domain.Actor) (*domain.Lead, error)
	SoftDelete(ctx context.Context, businessID, id uuid.UUID, actor domain.Actor) error
}

type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
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

// Service provides lead management operations.
type Service struct {
	leads     leadRepo
	customers customerRepo
	persons   personService
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Lead service.
func NewService(
	log *slog.Logger,
	leads leadRepo,
	customers customerRepo,
	persons personService,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		leads:     leads,
		customers: customers,
		persons:   persons,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "lead"),
	}
}
