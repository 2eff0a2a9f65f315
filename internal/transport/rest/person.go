package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/person"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
)

type personService interface {
	Create(ctx context.Context, input person.CreateInput) (*domain.Person, error)
	Update(ctx context.Context, input person.UpdateInput) (*domain.Person, error)
	Get(ctx context.Context, personID uuid.UUID) (*domain.Person, error)
	List(ctx context.Context, search string, page domain.PageParams) (domain.Page[*domain.Person], error)
	Delete(ctx context.Context, personID uuid.UUID) error
	SetPrimary(ctx context.Context, personID uuid.UUID, kind domain.SubEntityKind, subID uuid.UUID) error
	DeleteSubEntity(ctx context.Context, personID uuid.UUID, kind domain.SubEntityKind, subID uuid.UUID) error
	History(ctx context.Context, personID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// PersonHandler serves person REST endpoints.
type PersonHandler struct {
	svc personService
	log *slog.Logger
}

// NewPersonHandler creates a PersonHandler.
func NewPersonHandler(svc personService, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{svc: svc, log: logger.With("handler", "person")}
}

// Create handles POST /api/persons.
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.toCreate("")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPersonResponse(p))
}

// List handles GET /api/persons?search=&limit=&offset=.
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
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
	if err := dataloader.AttachSubEntities(r.Context(), result.Items); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(result, toPersonResponse))
}

// Get handles GET /api/persons/{id}.
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonResponse(p))
}

// Update handles PATCH /api/persons/{id}.
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req personRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.toUpdate("", id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonResponse(p))
}

// Delete handles DELETE /api/persons/{id}.
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// SetPrimary handles POST /api/persons/{id}/{collection}/{subID}/primary.
func (h *PersonHandler) SetPrimary(w http.ResponseWriter, r *http.Request) {
	id, kind, subID, ok := subEntityPath(w, r)
	if !ok {
		return
	}
	if err := h.svc.SetPrimary(r.Context(), id, kind, subID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSubEntity handles DELETE /api/persons/{id}/{collection}/{subID}.
func (h *PersonHandler) DeleteSubEntity(w http.ResponseWriter, r *http.Request) {
	id, kind, subID, ok := subEntityPath(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteSubEntity(r.Context(), id, kind, subID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/persons/{id}/history.
func (h *PersonHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	page, err := pageParams(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.History(r.Context(), id, page.Limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := make([]auditResponse, len(records))
	for i, rec := range records {
		resp[i] = toAuditResponse(rec)
	}
	writeJSON(w, http.StatusOK, resp)
}

var collectionKinds = map[string]domain.SubEntityKind{
	"addresses": domain.KindAddress,
	"contacts":  domain.KindContact,
	"documents": domain.KindDocument,
}

func subEntityPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.SubEntityKind, uuid.UUID, bool) {
	kind, ok := collectionKinds[r.PathValue("collection")]
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, "", uuid.Nil, false
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return uuid.Nil, "", uuid.Nil, false
	}
	subID, ok := pathUUID(w, r, "subID")
	if !ok {
		return uuid.Nil, "", uuid.Nil, false
	}
	return id, kind, subID, true
}
