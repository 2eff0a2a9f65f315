package domain

import (
	"time"

	"github.com/google/uuid"
)

// Actor identifies who performed a write. An invalid (zero) Actor is stored
// as NULL in the audit columns; there is no implicit "system" actor.
type Actor = uuid.NullUUID

// ActorOf returns an Actor for id. uuid.Nil yields an invalid Actor.
func ActorOf(id uuid.UUID) Actor {
	return Actor{UUID: id, Valid: id != uuid.Nil}
}

// SubEntityMeta holds the columns shared by every primary-designated
// sub-entity of a person: identity, owner back-reference, the primary flag,
// audit stamps and the soft-delete marker.
type SubEntityMeta struct {
	ID        uuid.UUID // uuid.Nil until persisted
	OwnerID   uuid.UUID
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy Actor
	UpdatedBy Actor
	DeletedAt *time.Time
	DeletedBy Actor
}

// Base gives generic code access to the shared columns.
func (m *SubEntityMeta) Base() *SubEntityMeta { return m }

// IsPersisted reports whether the record has an identity.
func (m *SubEntityMeta) IsPersisted() bool { return m.ID != uuid.Nil }

// IsActive reports whether the record is not soft-deleted.
func (m *SubEntityMeta) IsActive() bool { return m.DeletedAt == nil }

// Address is a postal address of a person.
type Address struct {
	SubEntityMeta
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

func (*Address) Kind() SubEntityKind { return KindAddress }

// Contact is a reachable channel of a person (phone, e-mail, WhatsApp...).
type Contact struct {
	SubEntityMeta
	Type  ContactType
	Value string
	Label *string
}

func (*Contact) Kind() SubEntityKind { return KindContact }

// Document is an identity document of a person.
type Document struct {
	SubEntityMeta
	Type     DocumentType
	Number   string
	Issuer   *string
	IssuedAt *time.Time
}

func (*Document) Kind() SubEntityKind { return KindDocument }

// PrimaryOf returns the first primary record in items.
func PrimaryOf[E interface{ Base() *SubEntityMeta }](items []E) (E, bool) {
	for _, it := range items {
		if it.Base().IsPrimary {
			return it, true
		}
	}
	var zero E
	return zero, false
}

// CountPrimary returns how many active records in items are primary.
func CountPrimary[E interface{ Base() *SubEntityMeta }](items []E) int {
	n := 0
	for _, it := range items {
		b := it.Base()
		if b.IsPrimary && b.IsActive() {
			n++
		}
	}
	return n
}
