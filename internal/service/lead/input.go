package lead

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/person"
)

const maxSourceLen = 100

// CreateInput holds the parameters for creating a lead with its person.
type CreateInput struct {
	Person     person.CreateInput
	Source     *string
	AssignedTo *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if err := i.Person.Validate(); err != nil {
		errs = append(errs, prefixed("person", err)...)
	}
	if i.Source != nil && len(strings.TrimSpace(*i.Source)) > maxSourceLen {
		errs = append(errs, domain.FieldError{Field: "source", Message: "max 100 characters"})
	}
	if i.AssignedTo != nil && *i.AssignedTo == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a lead. Person, when set,
// is applied to the lead's person; its PersonID is filled in by the service.
type UpdateInput struct {
	LeadID     uuid.UUID
	Status     *domain.LeadStatus
	Source     *string        // nil = don't change; ptr("") = clear
	AssignedTo *uuid.NullUUID // nil = don't change; Valid=false = unassign
	Person     *person.UpdateInput
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.LeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lead_id", Message: "required"})
	}
	if i.Status != nil {
		switch {
		case !i.Status.IsValid():
			errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
		case *i.Status == domain.LeadStatusConverted:
			errs = append(errs, domain.FieldError{Field: "status", Message: "use convert"})
		}
	}
	if i.Source != nil && len(strings.TrimSpace(*i.Source)) > maxSourceLen {
		errs = append(errs, domain.FieldError{Field: "source", Message: "max 100 characters"})
	}
	if i.Person != nil {
		if err := i.Person.ValidatePayload(); err != nil {
			errs = append(errs, prefixed("person", err)...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) hasLeadFields() bool {
	return i.Status != nil || i.Source != nil || i.AssignedTo != nil
}

func prefixed(prefix string, err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return domain.PrefixFields(prefix, ve.Errors)
	}
	return []domain.FieldError{{Field: prefix, Message: err.Error()}}
}
