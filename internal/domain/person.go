package domain

import (
	"time"

	"github.com/google/uuid"
)

// Person is the owner aggregate for addresses, contacts and documents.
// Leads, customers and the business master user each reference one Person.
type Person struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Email      *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreatedBy  Actor
	UpdatedBy  Actor
	DeletedAt  *time.Time
	DeletedBy  Actor

	// Loaded on demand; nil when not requested.
	Addresses []*Address
	Contacts  []*Contact
	Documents []*Document
}

// PersonUpdateParams is a partial update of the person row itself.
// nil fields are left unchanged.
type PersonUpdateParams struct {
	Name  *string
	Email *string // ptr("") clears
	Notes *string // ptr("") clears
}

// Lead is a prospective customer of a business.
type Lead struct {
	ID                  uuid.UUID
	BusinessID          uuid.UUID
	PersonID            uuid.UUID
	Status              LeadStatus
	Source              *string
	AssignedTo          uuid.NullUUID
	ConvertedCustomerID *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
	CreatedBy           Actor
	UpdatedBy           Actor
	DeletedAt           *time.Time
	DeletedBy           Actor

	Person *Person
}

// LeadUpdateParams is a partial update of a lead row. nil fields are unchanged.
type LeadUpdateParams struct {
	Status     *LeadStatus
	Source     *string
	AssignedTo *uuid.NullUUID
}

// Customer is a person with an established relationship with a business.
type Customer struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	PersonID   uuid.UUID
	LeadID     *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreatedBy  Actor
	UpdatedBy  Actor
	DeletedAt  *time.Time
	DeletedBy  Actor

	Person *Person
}

// Business is a tenant. Its master user is modeled as a Person.
type Business struct {
	ID             uuid.UUID
	Name           string
	MasterPersonID uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Master *Person
}

// LeadFilter defines parameters for searching and paginating leads.
type LeadFilter struct {
	// Search matches the lead person's name or email (ILIKE). Empty means no filter.
	Search     string
	Status     *LeadStatus
	AssignedTo *uuid.UUID
	// SortBy is "created_at" (default) or "updated_at".
	SortBy string
	// SortOrder is "ASC" or "DESC" (default).
	SortOrder string
	Limit     int
	Offset    int
}
