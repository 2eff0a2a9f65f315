package person

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/primaryflag"
)

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func idOf(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

func addressItems(in []AddressInput) []primaryflag.Item[*domain.Address] {
	items := make([]primaryflag.Item[*domain.Address], len(in))
	for i, a := range in {
		addr := &domain.Address{
			Label:      trimOrNil(a.Label),
			Street:     domain.CompactSpaces(a.Street),
			Number:     strings.TrimSpace(a.Number),
			Complement: trimOrNil(a.Complement),
			District:   trimOrNil(a.District),
			City:       domain.CompactSpaces(a.City),
			State:      strings.ToUpper(strings.TrimSpace(a.State)),
			PostalCode: domain.DigitsOnly(a.PostalCode, false),
			Country:    strings.ToUpper(strings.TrimSpace(a.Country)),
		}
		addr.ID = idOf(a.ID)
		items[i] = primaryflag.Item[*domain.Address]{Value: addr, Primary: a.IsPrimary}
	}
	return items
}

func contactItems(in []ContactInput) []primaryflag.Item[*domain.Contact] {
	items := make([]primaryflag.Item[*domain.Contact], len(in))
	for i, c := range in {
		contact := &domain.Contact{
			Type:  c.Type,
			Value: domain.NormalizeContactValue(c.Type, c.Value),
			Label: trimOrNil(c.Label),
		}
		contact.ID = idOf(c.ID)
		items[i] = primaryflag.Item[*domain.Contact]{Value: contact, Primary: c.IsPrimary}
	}
	return items
}

func documentItems(in []DocumentInput) []primaryflag.Item[*domain.Document] {
	items := make([]primaryflag.Item[*domain.Document], len(in))
	for i, d := range in {
		doc := &domain.Document{
			Type:     d.Type,
			Number:   domain.NormalizeDocumentNumber(d.Type, d.Number),
			Issuer:   trimOrNil(d.Issuer),
			IssuedAt: d.IssuedAt,
		}
		doc.ID = idOf(d.ID)
		items[i] = primaryflag.Item[*domain.Document]{Value: doc, Primary: d.IsPrimary}
	}
	return items
}
