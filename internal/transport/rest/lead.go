package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/lead"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
)

type leadService interface {
	Create(ctx context.Context, input lead.CreateInput) (*domain.Lead, error)
	Update(ctx context.Context, input lead.UpdateInput) (*domain.Lead, error)
	Get(ctx context.Context, leadID uuid.UUID) (*domain.Lead, error)
	List(ctx context.Context, filter domain.LeadFilter) (domain.Page[*domain.Lead], error)
	Delete(ctx context.Context, leadID uuid.UUID) error
	Convert(ctx context.Context, leadID uuid.UUID) (*domain.Customer, error)
}

// LeadHandler serves lead REST endpoints.
type LeadHandler struct {
	svc leadService
	log *slog.Logger
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(svc leadService, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{svc: svc, log: logger.With("handler", "lead")}
}

type createLeadRequest struct {
	Person     personRequest `json:"person"`
	Source     *string       `json:"source"`
	AssignedTo *uuid.UUID    `json:"assignedTo"`
}

type updateLeadRequest struct {
	Status     *string        `json:"status"`
	Source     *string        `json:"source"`
	AssignedTo nullableUUID   `json:"assignedTo"`
	Person     *personRequest `json:"person"`
}

type leadResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Status              string          `json:"status"`
	Source              *string         `json:"source,omitempty"`
	AssignedTo          *uuid.UUID      `json:"assignedTo,omitempty"`
	ConvertedCustomerID *uuid.UUID      `json:"convertedCustomerId,omitempty"`
	Person              *personResponse `json:"person,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

func toLeadResponse(l *domain.Lead) leadResponse {
	resp := leadResponse{
		ID:                  l.ID,
		Status:              l.Status.String(),
		Source:              l.Source,
		ConvertedCustomerID: l.ConvertedCustomerID,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
	if l.AssignedTo.Valid {
		id := l.AssignedTo.UUID
		resp.AssignedTo = &id
	}
	if l.Person != nil {
		p := toPersonResponse(l.Person)
		resp.Person = &p
	}
	return resp
}

// Create handles POST /api/leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := req.Person.toCreate("person.")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), lead.CreateInput{Person: p, Source: req.Source, AssignedTo: req.AssignedTo})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLeadResponse(l))
}

// List handles GET /api/leads?search=&status=&assignedTo=&sortBy=&sortOrder=&limit=&offset=.
// Persons and their sub-entities are batched through the request loaders.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := leadFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]uuid.UUID, len(result.Items))
	for i, l := range result.Items {
		ids[i] = l.PersonID
	}
	persons, err := dataloader.LoadPersons(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	for i, l := range result.Items {
		l.Person = persons[i]
	}
	writeJSON(w, http.StatusOK, toPageResponse(result, toLeadResponse))
}

func leadFilter(r *http.Request) (domain.LeadFilter, error) {
	page, err := pageParams(r)
	if err != nil {
		return domain.LeadFilter{}, err
	}
	q := r.URL.Query()
	f := domain.LeadFilter{
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: strings.ToUpper(q.Get("sortOrder")),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	if v := q.Get("status"); v != "" {
		s := domain.LeadStatus(strings.ToUpper(v))
		f.Status = &s
	}
	if v := q.Get("assignedTo"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return domain.LeadFilter{}, domain.NewValidationError("assignedTo", "invalid UUID")
		}
		f.AssignedTo = &id
	}
	return f, nil
}

// Get handles GET /api/leads/{id}.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeadResponse(l))
}

// Update handles PATCH /api/leads/{id}.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateLeadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := lead.UpdateInput{LeadID: id, Source: req.Source, AssignedTo: req.AssignedTo.ptr()}
	if req.Status != nil {
		s := domain.LeadStatus(strings.ToUpper(*req.Status))
		in.Status = &s
	}
	if req.Person != nil {
		p, err := req.Person.toUpdate("person.", uuid.Nil)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		in.Person = &p
	}

	l, err := h.svc.Update(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLeadResponse(l))
}

// Delete handles DELETE /api/leads/{id}.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Convert handles POST /api/leads/{id}/convert.
func (h *LeadHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.svc.Convert(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerResponse(c))
}
