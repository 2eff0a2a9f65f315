package rest

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/person"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type addressRequest struct {
	ID         *uuid.UUID `json:"id"`
	IsPrimary  *bool      `json:"isPrimary"`
	Label      *string    `json:"label"`
	Street     string     `json:"street"`
	Number     string     `json:"number"`
	Complement *string    `json:"complement"`
	District   *string    `json:"district"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	PostalCode string     `json:"postalCode"`
	Country    string     `json:"country"`
}

type contactRequest struct {
	ID        *uuid.UUID `json:"id"`
	IsPrimary *bool      `json:"isPrimary"`
	Type      string     `json:"type"`
	Value     string     `json:"value"`
	Label     *string    `json:"label"`
}

type documentRequest struct {
	ID        *uuid.UUID `json:"id"`
	IsPrimary *bool      `json:"isPrimary"`
	Type      string     `json:"type"`
	Number    string     `json:"number"`
	Issuer    *string    `json:"issuer"`
	IssuedAt  *string    `json:"issuedAt"` // YYYY-MM-DD
}

// personRequest is the person payload shared by persons, leads, customers
// and the business master. A missing collection is left untouched on update.
type personRequest struct {
	Name      *string           `json:"name"`
	Email     *string           `json:"email"`
	Notes     *string           `json:"notes"`
	Addresses []addressRequest  `json:"addresses"`
	Contacts  []contactRequest  `json:"contacts"`
	Documents []documentRequest `json:"documents"`
}

func (p personRequest) subEntities(prefix string) (person.SubEntities, []domain.FieldError) {
	var (
		out  person.SubEntities
		errs []domain.FieldError
	)
	if p.Addresses != nil {
		out.Addresses = make([]person.AddressInput, len(p.Addresses))
		for i, a := range p.Addresses {
			out.Addresses[i] = person.AddressInput{
				ID: a.ID, IsPrimary: a.IsPrimary, Label: a.Label,
				Street: a.Street, Number: a.Number, Complement: a.Complement, District: a.District,
				City: a.City, State: a.State, PostalCode: a.PostalCode, Country: a.Country,
			}
		}
	}
	if p.Contacts != nil {
		out.Contacts = make([]person.ContactInput, len(p.Contacts))
		for i, c := range p.Contacts {
			out.Contacts[i] = person.ContactInput{
				ID: c.ID, IsPrimary: c.IsPrimary, Label: c.Label,
				Type:  domain.ContactType(strings.ToUpper(strings.TrimSpace(c.Type))),
				Value: c.Value,
			}
		}
	}
	if p.Documents != nil {
		out.Documents = make([]person.DocumentInput, len(p.Documents))
		for i, d := range p.Documents {
			in := person.DocumentInput{
				ID: d.ID, IsPrimary: d.IsPrimary, Issuer: d.Issuer,
				Type:   domain.DocumentType(strings.ToUpper(strings.TrimSpace(d.Type))),
				Number: d.Number,
			}
			if d.IssuedAt != nil && *d.IssuedAt != "" {
				t, err := time.Parse(time.DateOnly, *d.IssuedAt)
				if err != nil {
					errs = append(errs, domain.FieldError{
						Field:   fmt.Sprintf("%sdocuments[%d].issued_at", prefix, i),
						Message: "must be YYYY-MM-DD",
					})
				} else {
					in.IssuedAt = &t
				}
			}
			out.Documents[i] = in
		}
	}
	return out, errs
}

// toCreate maps the payload onto a person create. prefix qualifies field
// errors of nested payloads, e.g. "person.".
func (p personRequest) toCreate(prefix string) (person.CreateInput, error) {
	subs, errs := p.subEntities(prefix)
	if len(errs) > 0 {
		return person.CreateInput{}, domain.NewValidationErrors(errs)
	}
	in := person.CreateInput{Email: p.Email, Notes: p.Notes, SubEntities: subs}
	if p.Name != nil {
		in.Name = *p.Name
	}
	return in, nil
}

func (p personRequest) toUpdate(prefix string, personID uuid.UUID) (person.UpdateInput, error) {
	subs, errs := p.subEntities(prefix)
	if len(errs) > 0 {
		return person.UpdateInput{}, domain.NewValidationErrors(errs)
	}
	return person.UpdateInput{
		PersonID:    personID,
		Name:        p.Name,
		Email:       p.Email,
		Notes:       p.Notes,
		SubEntities: subs,
	}, nil
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type addressResponse struct {
	ID         uuid.UUID `json:"id"`
	IsPrimary  bool      `json:"isPrimary"`
	Label      *string   `json:"label,omitempty"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	Complement *string   `json:"complement,omitempty"`
	District   *string   `json:"district,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type contactResponse struct {
	ID        uuid.UUID `json:"id"`
	IsPrimary bool      `json:"isPrimary"`
	Type      string    `json:"type"`
	Value     string    `json:"value"`
	Label     *string   `json:"label,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type documentResponse struct {
	ID        uuid.UUID `json:"id"`
	IsPrimary bool      `json:"isPrimary"`
	Type      string    `json:"type"`
	Number    string    `json:"number"`
	Issuer    *string   `json:"issuer,omitempty"`
	IssuedAt  *string   `json:"issuedAt,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type personResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     *string            `json:"email,omitempty"`
	Notes     *string            `json:"notes,omitempty"`
	Addresses []addressResponse  `json:"addresses"`
	Contacts  []contactResponse  `json:"contacts"`
	Documents []documentResponse `json:"documents"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func toPersonResponse(p *domain.Person) personResponse {
	resp := personResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Notes:     p.Notes,
		Addresses: make([]addressResponse, len(p.Addresses)),
		Contacts:  make([]contactResponse, len(p.Contacts)),
		Documents: make([]documentResponse, len(p.Documents)),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for i, a := range p.Addresses {
		resp.Addresses[i] = addressResponse{
			ID: a.ID, IsPrimary: a.IsPrimary, Label: a.Label,
			Street: a.Street, Number: a.Number, Complement: a.Complement, District: a.District,
			City: a.City, State: a.State, PostalCode: a.PostalCode, Country: a.Country,
			CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
		}
	}
	for i, c := range p.Contacts {
		resp.Contacts[i] = contactResponse{
			ID: c.ID, IsPrimary: c.IsPrimary, Type: c.Type.String(), Value: c.Value, Label: c.Label,
			CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
		}
	}
	for i, d := range p.Documents {
		doc := documentResponse{
			ID: d.ID, IsPrimary: d.IsPrimary, Type: d.Type.String(), Number: d.Number, Issuer: d.Issuer,
			CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		}
		if d.IssuedAt != nil {
			s := d.IssuedAt.Format(time.DateOnly)
			doc.IssuedAt = &s
		}
		resp.Documents[i] = doc
	}
	return resp
}

type auditResponse struct {
	ID        uuid.UUID      `json:"id"`
	Action    string         `json:"action"`
	ActorID   *uuid.UUID     `json:"actorId,omitempty"`
	Changes   map[string]any `json:"changes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toAuditResponse(rec domain.AuditRecord) auditResponse {
	resp := auditResponse{
		ID:        rec.ID,
		Action:    rec.Action.String(),
		Changes:   rec.Changes,
		CreatedAt: rec.CreatedAt,
	}
	if rec.Actor.Valid {
		id := rec.Actor.UUID
		resp.ActorID = &id
	}
	return resp
}

// nullableUUID tells an absent field apart from an explicit null.
type nullableUUID struct {
	Set   bool
	Value uuid.NullUUID
}

func (n *nullableUUID) UnmarshalJSON(data []byte) error {
	n.Set = true
	return n.Value.UnmarshalJSON(data)
}

func (n nullableUUID) ptr() *uuid.NullUUID {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}
