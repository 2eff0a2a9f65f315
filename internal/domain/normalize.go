package domain

import (
	"strings"
	"unicode"
)

// CompactSpaces trims text and collapses every run of whitespace into a
// single space. Case is preserved.
func CompactSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeEmail lowercases and trims an e-mail address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DigitsOnly strips every non-digit rune. A leading '+' is kept when keepPlus
// is set, so international phone numbers survive normalization.
func DigitsOnly(s string, keepPlus bool) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		if keepPlus && r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeContactValue brings a contact value into its canonical stored form:
// phones and WhatsApp numbers keep digits (and a leading '+'), e-mails are
// lowercased, anything else is space-compacted.
func NormalizeContactValue(t ContactType, value string) string {
	switch t {
	case ContactTypePhone, ContactTypeWhatsApp:
		return DigitsOnly(value, true)
	case ContactTypeEmail:
		return NormalizeEmail(value)
	default:
		return CompactSpaces(value)
	}
}

// NormalizeDocumentNumber strips punctuation from numeric document types
// (CPF, CNPJ). Other types are upper-cased and space-compacted.
func NormalizeDocumentNumber(t DocumentType, number string) string {
	switch t {
	case DocumentTypeCPF, DocumentTypeCNPJ:
		return DigitsOnly(number, false)
	default:
		return strings.ToUpper(CompactSpaces(number))
	}
}
