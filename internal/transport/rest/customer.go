package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/customer"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
)

type customerService interface {
	Create(ctx context.Context, input customer.CreateInput) (*domain.Customer, error)
	Update(ctx context.Context, input customer.UpdateInput) (*domain.Customer, error)
	Get(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, search string, page domain.PageParams) (domain.Page[*domain.Customer], error)
	Delete(ctx context.Context, customerID uuid.UUID) error
}

// CustomerHandler serves customer REST endpoints.
type CustomerHandler struct {
	svc customerService
	log *slog.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, log: logger.With("handler", "customer")}
}

type customerRequest struct {
	Person personRequest `json:"person"`
}

type customerResponse struct {
	ID        uuid.UUID       `json:"id"`
	LeadID    *uuid.UUID      `json:"leadId,omitempty"`
	Person    *personResponse `json:"person,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	resp := customerResponse{
		ID:        c.ID,
		LeadID:    c.LeadID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Person != nil {
		p := toPersonResponse(c.Person)
		resp.Person = &p
	}
	return resp
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := req.Person.toCreate("person.")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), customer.CreateInput{Person: p})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerResponse(c))
}

// List handles GET /api/customers?search=&limit=&offset=.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), r.URL.Query().Get("search"), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]uuid.UUID, len(result.Items))
	for i, c := range result.Items {
		ids[i] = c.PersonID
	}
	persons, err := dataloader.LoadPersons(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	for i, c := range result.Items {
		c.Person = persons[i]
	}
	writeJSON(w, http.StatusOK, toPageResponse(result, toCustomerResponse))
}

// Get handles GET /api/customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

// Update handles PATCH /api/customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := req.Person.toUpdate("person.", uuid.Nil)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), customer.UpdateInput{CustomerID: id, Person: p})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

// Delete handles DELETE /api/customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
