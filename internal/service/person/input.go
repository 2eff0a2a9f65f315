package person

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	maxNameLen     = 200
	maxNotesLen    = 5000
	maxSubEntities = 50
)

// AddressInput is an address write. ID set means update of that address.
type AddressInput struct {
	ID         *uuid.UUID
	IsPrimary  *bool
	Label      *string
	Street     string
	Number     string
	Complement *string
	District   *string
	City       string
	State      string
	PostalCode string
	Country    string
}

// ContactInput is a contact write. ID set means update of that contact.
type ContactInput struct {
	ID        *uuid.UUID
	IsPrimary *bool
	Type      domain.ContactType
	Value     string
	Label     *string
}

// DocumentInput is a document write. ID set means update of that document.
type DocumentInput struct {
	ID        *uuid.UUID
	IsPrimary *bool
	Type      domain.DocumentType
	Number    string
	Issuer    *string
	IssuedAt  *time.Time
}

// SubEntities groups the nested collections of a person write.
// A nil slice leaves that collection untouched on update.
type SubEntities struct {
	Addresses []AddressInput
	Contacts  []ContactInput
	Documents []DocumentInput
}

// CreateInput holds the parameters for creating a person.
type CreateInput struct {
	Name  string
	Email *string
	Notes *string
	SubEntities
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validateNotes(i.Notes)...)
	errs = append(errs, i.SubEntities.validate(false)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a person. Nested items with
// an ID are updated, items without one are added.
type UpdateInput struct {
	PersonID uuid.UUID
	Name     *string
	Email    *string // nil = don't change; ptr("") = clear
	Notes    *string // nil = don't change; ptr("") = clear
	SubEntities
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.PersonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "person_id", Message: "required"})
	}
	errs = append(errs, i.fieldErrors()...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ValidatePayload checks everything except PersonID, for callers that
// resolve the person themselves.
func (i UpdateInput) ValidatePayload() error {
	if errs := i.fieldErrors(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Email != nil && strings.TrimSpace(*i.Email) != "" {
		errs = append(errs, validateEmail(i.Email)...)
	}
	errs = append(errs, validateNotes(i.Notes)...)
	errs = append(errs, i.SubEntities.validate(true)...)
	return errs
}

// HasPersonFields reports whether the person row itself changes.
func (i UpdateInput) HasPersonFields() bool {
	return i.Name != nil || i.Email != nil || i.Notes != nil
}

// ---------------------------------------------------------------------------
// Field rules
// ---------------------------------------------------------------------------

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(name) > maxNameLen {
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)}}
	}
	return nil
}

func validateEmail(email *string) []domain.FieldError {
	if email == nil {
		return nil
	}
	if _, err := mail.ParseAddress(domain.NormalizeEmail(*email)); err != nil {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}

func validateNotes(notes *string) []domain.FieldError {
	if notes != nil && len(*notes) > maxNotesLen {
		return []domain.FieldError{{Field: "notes", Message: fmt.Sprintf("max %d characters", maxNotesLen)}}
	}
	return nil
}

func (s SubEntities) validate(allowIDs bool) []domain.FieldError {
	var errs []domain.FieldError

	if len(s.Addresses) > maxSubEntities {
		errs = append(errs, domain.FieldError{Field: "addresses", Message: fmt.Sprintf("max %d items", maxSubEntities)})
	}
	for i, a := range s.Addresses {
		prefix := fmt.Sprintf("addresses[%d]", i)
		errs = append(errs, domain.PrefixFields(prefix, a.validate(allowIDs))...)
	}

	if len(s.Contacts) > maxSubEntities {
		errs = append(errs, domain.FieldError{Field: "contacts", Message: fmt.Sprintf("max %d items", maxSubEntities)})
	}
	for i, c := range s.Contacts {
		prefix := fmt.Sprintf("contacts[%d]", i)
		errs = append(errs, domain.PrefixFields(prefix, c.validate(allowIDs))...)
	}

	if len(s.Documents) > maxSubEntities {
		errs = append(errs, domain.FieldError{Field: "documents", Message: fmt.Sprintf("max %d items", maxSubEntities)})
	}
	for i, d := range s.Documents {
		prefix := fmt.Sprintf("documents[%d]", i)
		errs = append(errs, domain.PrefixFields(prefix, d.validate(allowIDs))...)
	}
	return errs
}

func checkID(id *uuid.UUID, allowIDs bool) []domain.FieldError {
	if id == nil {
		return nil
	}
	if !allowIDs {
		return []domain.FieldError{{Field: "id", Message: "must be empty on create"}}
	}
	if *id == uuid.Nil {
		return []domain.FieldError{{Field: "id", Message: "invalid"}}
	}
	return nil
}

func (a AddressInput) validate(allowIDs bool) []domain.FieldError {
	errs := checkID(a.ID, allowIDs)
	required := []struct{ field, value string }{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"country", a.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}
	return errs
}

func (c ContactInput) validate(allowIDs bool) []domain.FieldError {
	errs := checkID(c.ID, allowIDs)
	if !c.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid contact type"})
	}

	value := domain.NormalizeContactValue(c.Type, c.Value)
	switch {
	case value == "":
		errs = append(errs, domain.FieldError{Field: "value", Message: "required"})
	case c.Type == domain.ContactTypeEmail:
		if _, err := mail.ParseAddress(value); err != nil {
			errs = append(errs, domain.FieldError{Field: "value", Message: "invalid email"})
		}
	}
	return errs
}

func (d DocumentInput) validate(allowIDs bool) []domain.FieldError {
	errs := checkID(d.ID, allowIDs)
	if !d.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid document type"})
	}
	if domain.NormalizeDocumentNumber(d.Type, d.Number) == "" {
		errs = append(errs, domain.FieldError{Field: "number", Message: "required"})
	}
	return errs
}
