package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/audit"
	businessrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/business"
	customerrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/customer"
	leadrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/lead"
	personrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/person"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/subentity"
	"github.com/heartmarshall/crm-backend/internal/adapter/redis/chatbus"
	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/business"
	"github.com/heartmarshall/crm-backend/internal/service/chat"
	"github.com/heartmarshall/crm-backend/internal/service/customer"
	"github.com/heartmarshall/crm-backend/internal/service/lead"
	"github.com/heartmarshall/crm-backend/internal/service/person"
	"github.com/heartmarshall/crm-backend/internal/service/primaryflag"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
	"github.com/heartmarshall/crm-backend/internal/transport/middleware"
	"github.com/heartmarshall/crm-backend/internal/transport/rest"
)

// Stack is the wired application: the HTTP handler plus the background
// parts the caller has to run or stop.
type Stack struct {
	Handler  http.Handler
	Registry *chat.Registry
	JWT      *auth.JWTManager

	limiter *middleware.RateLimiter
}

// NewStack wires repositories, services and handlers on top of pool. With a
// nil bus chat events are delivered to the local registry only; otherwise
// they are published on the bus and the caller forwards the bus into
// Registry.
func NewStack(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, bus *chatbus.Bus) (*Stack, error) {
	iso, err := postgres.ParseIsoLevel(cfg.Database.TxIsolation)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	policy, err := primaryflag.ParseUnsetPolicy(cfg.Primary.UnsetPolicy)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}

	tx := postgres.NewTxManager(pool, iso)

	// Repositories
	addresses := subentity.NewAddressRepo(pool)
	contacts := subentity.NewContactRepo(pool)
	documents := subentity.NewDocumentRepo(pool)
	persons := personrepo.New(pool)
	leads := leadrepo.New(pool)
	customers := customerrepo.New(pool)
	businesses := businessrepo.New(pool)
	audit := auditrepo.New(pool)

	// Services
	personSvc := person.NewService(logger, persons,
		primaryflag.NewEngine[*domain.Address](logger, addresses, tx, tx, policy),
		primaryflag.NewEngine[*domain.Contact](logger, contacts, tx, tx, policy),
		primaryflag.NewEngine[*domain.Document](logger, documents, tx, tx, policy),
		audit, tx,
	)
	leadSvc := lead.NewService(logger, leads, customers, personSvc, audit, tx)
	customerSvc := customer.NewService(logger, customers, personSvc, audit, tx)
	businessSvc := business.NewService(logger, businesses, personSvc, audit, tx)

	registry := chat.NewRegistry(logger, cfg.Chat)
	health := rest.NewHealthHandler(pool, Version)

	var publisher interface {
		Publish(ctx context.Context, event domain.ChatEvent) error
	} = registry
	if bus != nil {
		publisher = bus
		health.WithComponent("redis", bus)
	}
	chatSvc := chat.NewService(logger, publisher)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(time.Minute)

	handler := NewRouter(Handlers{
		Health:   health,
		Business: rest.NewBusinessHandler(businessSvc, logger),
		Person:   rest.NewPersonHandler(personSvc, logger),
		Lead:     rest.NewLeadHandler(leadSvc, logger),
		Customer: rest.NewCustomerHandler(customerSvc, logger),
		Chat:     rest.NewChatHandler(registry, chatSvc, cfg.Chat.HeartbeatInterval, logger),
	}, RouterDeps{
		Logger: logger,
		CORS:   cfg.CORS,
		Auth:   middleware.Auth(jwtManager),
		Loaders: &dataloader.Repos{
			Person:   persons,
			Address:  addresses,
			Contact:  contacts,
			Document: documents,
		},
		Limiter:          limiter,
		PublishPerMinute: cfg.Chat.PublishPerMinute,
	})

	return &Stack{
		Handler:  handler,
		Registry: registry,
		JWT:      jwtManager,
		limiter:  limiter,
	}, nil
}

// Close stops background helpers owned by the stack.
func (s *Stack) Close() {
	s.limiter.Stop()
}
