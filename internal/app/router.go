package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
	"github.com/heartmarshall/crm-backend/internal/transport/middleware"
	"github.com/heartmarshall/crm-backend/internal/transport/rest"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health   *rest.HealthHandler
	Business *rest.BusinessHandler
	Person   *rest.PersonHandler
	Lead     *rest.LeadHandler
	Customer *rest.CustomerHandler
	Chat     *rest.ChatHandler
}

// RouterDeps holds everything NewRouter needs besides the handlers.
type RouterDeps struct {
	Logger  *slog.Logger
	CORS    config.CORSConfig
	Auth    middleware.Middleware
	Loaders *dataloader.Repos
	Limiter *middleware.RateLimiter
	// PublishPerMinute caps chat event publishes per business; 0 disables it.
	PublishPerMinute int
}

// NewRouter mounts all routes. Health probes are public, business creation
// needs an authenticated user, and everything else needs a tenant.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/businesses", middleware.RequireUser(http.HandlerFunc(h.Business.Create)))

	tenant := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireTenant(fn)
	}
	// List endpoints batch person and sub-entity reads per request.
	batched := func(fn http.HandlerFunc) http.Handler {
		return middleware.Chain(middleware.RequireTenant, dataloader.Middleware(deps.Loaders))(fn)
	}
	var publishLimit middleware.Middleware
	if deps.Limiter != nil && deps.PublishPerMinute > 0 {
		publishLimit = deps.Limiter.Limit("chat_publish", deps.PublishPerMinute)
	}

	mux.Handle("GET /api/business", tenant(h.Business.Get))
	mux.Handle("PATCH /api/business/master", tenant(h.Business.UpdateMaster))

	mux.Handle("POST /api/persons", tenant(h.Person.Create))
	mux.Handle("GET /api/persons", batched(h.Person.List))
	mux.Handle("GET /api/persons/{id}", tenant(h.Person.Get))
	mux.Handle("PATCH /api/persons/{id}", tenant(h.Person.Update))
	mux.Handle("DELETE /api/persons/{id}", tenant(h.Person.Delete))
	mux.Handle("GET /api/persons/{id}/history", tenant(h.Person.History))
	mux.Handle("POST /api/persons/{id}/{collection}/{subID}/primary", tenant(h.Person.SetPrimary))
	mux.Handle("DELETE /api/persons/{id}/{collection}/{subID}", tenant(h.Person.DeleteSubEntity))

	mux.Handle("POST /api/leads", tenant(h.Lead.Create))
	mux.Handle("GET /api/leads", batched(h.Lead.List))
	mux.Handle("GET /api/leads/{id}", tenant(h.Lead.Get))
	mux.Handle("PATCH /api/leads/{id}", tenant(h.Lead.Update))
	mux.Handle("DELETE /api/leads/{id}", tenant(h.Lead.Delete))
	mux.Handle("POST /api/leads/{id}/convert", tenant(h.Lead.Convert))

	mux.Handle("POST /api/customers", tenant(h.Customer.Create))
	mux.Handle("GET /api/customers", batched(h.Customer.List))
	mux.Handle("GET /api/customers/{id}", tenant(h.Customer.Get))
	mux.Handle("PATCH /api/customers/{id}", tenant(h.Customer.Update))
	mux.Handle("DELETE /api/customers/{id}", tenant(h.Customer.Delete))

	mux.Handle("GET /api/chats/stream", tenant(h.Chat.Stream))
	mux.Handle("POST /api/chats/{chatID}/events",
		middleware.Chain(middleware.RequireTenant, publishLimit)(http.HandlerFunc(h.Chat.Publish)))

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
		deps.Auth,
		middleware.Logger(deps.Logger),
	)
	return chain(mux)
}
