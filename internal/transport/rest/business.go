package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/business"
	"github.com/heartmarshall/crm-backend/internal/service/person"
)

type businessService interface {
	Create(ctx context.Context, input business.CreateInput) (*domain.Business, error)
	Get(ctx context.Context) (*domain.Business, error)
	UpdateMaster(ctx context.Context, input person.UpdateInput) (*domain.Business, error)
}

// BusinessHandler serves tenant endpoints.
type BusinessHandler struct {
	svc businessService
	log *slog.Logger
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(svc businessService, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{svc: svc, log: logger.With("handler", "business")}
}

type createBusinessRequest struct {
	Name   string        `json:"name"`
	Master personRequest `json:"master"`
}

type businessResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Master    *personResponse `json:"master,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toBusinessResponse(b *domain.Business) businessResponse {
	resp := businessResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
	if b.Master != nil {
		p := toPersonResponse(b.Master)
		resp.Master = &p
	}
	return resp
}

// Create handles POST /api/businesses. The caller only needs to be
// authenticated; the new business does not exist in any token yet.
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBusinessRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	master, err := req.Master.toCreate("master.")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	b, err := h.svc.Create(r.Context(), business.CreateInput{Name: req.Name, Master: master})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBusinessResponse(b))
}

// Get handles GET /api/business.
func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}

// UpdateMaster handles PATCH /api/business/master.
func (h *BusinessHandler) UpdateMaster(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.toUpdate("", uuid.Nil)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	b, err := h.svc.UpdateMaster(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}
