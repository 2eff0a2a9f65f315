package subentity

import (
	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// AddressTable describes the addresses table.
var AddressTable = Table[*domain.Address]{
	Name:    "addresses",
	Columns: []string{"label", "street", "number", "complement", "district", "city", "state", "postal_code", "country"},
	New:     func() *domain.Address { return &domain.Address{} },
	Values: func(a *domain.Address) []any {
		return []any{a.Label, a.Street, a.Number, a.Complement, a.District, a.City, a.State, a.PostalCode, a.Country}
	},
	Dest: func(a *domain.Address) []any {
		return []any{&a.Label, &a.Street, &a.Number, &a.Complement, &a.District, &a.City, &a.State, &a.PostalCode, &a.Country}
	},
}

// ContactTable describes the contacts table.
var ContactTable = Table[*domain.Contact]{
	Name:    "contacts",
	Columns: []string{"type", "value", "label"},
	New:     func() *domain.Contact { return &domain.Contact{} },
	Values: func(c *domain.Contact) []any {
		return []any{string(c.Type), c.Value, c.Label}
	},
	Dest: func(c *domain.Contact) []any {
		return []any{&c.Type, &c.Value, &c.Label}
	},
}

// DocumentTable describes the documents table.
var DocumentTable = Table[*domain.Document]{
	Name:    "documents",
	Columns: []string{"type", "number", "issuer", "issued_at"},
	New:     func() *domain.Document { return &domain.Document{} },
	Values: func(d *domain.Document) []any {
		return []any{string(d.Type), d.Number, d.Issuer, d.IssuedAt}
	},
	Dest: func(d *domain.Document) []any {
		return []any{&d.Type, &d.Number, &d.Issuer, &d.IssuedAt}
	},
}

// NewAddressRepo creates the address repository.
func NewAddressRepo(db postgres.Querier) *Repo[*domain.Address] { return New(db, AddressTable) }

// NewContactRepo creates the contact repository.
func NewContactRepo(db postgres.Querier) *Repo[*domain.Contact] { return New(db, ContactTable) }

// NewDocumentRepo creates the document repository.
func NewDocumentRepo(db postgres.Querier) *Repo[*domain.Document] { return New(db, DocumentTable) }
