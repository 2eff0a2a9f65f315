// Package person manages persons and their primary-designated sub-entities.
// Leads, customers and business masters reuse it for their person payload.
package person

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/primaryflag"
)

type personRepo interface {
	Create(ctx context.Context, p *domain.Person) (*domain.Person, error)
	GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Person, error)
	Update(ctx context.Context, businessID, id uuid.UUID, params domain.PersonUpdateParams, actor domain.Actor) (*domain.Person, error)
	SoftDelete(ctx context.Context, businessID, id uuid.UUID, actor domain.Actor) error
	List(ctx context.Context, businessID uuid.UUID, search string, page domain.PageParams) (domain.Page[*domain.Person], error)
}

// subEntityEngine is the primary-flag engine of one sub-entity kind.
type subEntityEngine[E primaryflag.Entity] interface {
	CreateMany(ctx context.Context, ownerID uuid.UUID, items []primaryflag.Item[E], actor domain.Actor) ([]E, error)
	UpsertMany(ctx context.Context, ownerID uuid.UUID, items []primaryflag.Item[E], actor domain.Actor) ([]E, error)
	SetPrimary(ctx context.Context, ownerID, id uuid.UUID, actor domain.Actor) (E, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID, actor domain.Actor) error
	DeleteAll(ctx context.Context, ownerID uuid.UUID, actor domain.Actor) (int64, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]E, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, businessID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides person management operations.
type Service struct {
	persons   personRepo
	addresses subEntityEngine[*domain.Address]
	contacts  subEntityEngine[*domain.Contact]
	documents subEntityEngine[*domain.Document]
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Person service.
func NewService(
	log *slog.Logger,
	persons personRepo,
	addresses subEntityEngine[*domain.Address],
	contacts subEntityEngine[*domain.Contact],
	documents subEntityEngine[*domain.Document],
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		persons:   persons,
		addresses: addresses,
		contacts:  contacts,
		documents: documents,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "person"),
	}
}
