package domain

// SubEntityKind identifies one of the person sub-entity collections that
// carry a primary designation.
type SubEntityKind string

const (
	KindAddress  SubEntityKind = "address"
	KindContact  SubEntityKind = "contact"
	KindDocument SubEntityKind = "document"
)

func (k SubEntityKind) String() string { return string(k) }

func (k SubEntityKind) IsValid() bool {
	switch k {
	case KindAddress, KindContact, KindDocument:
		return true
	}
	return false
}

// ContactType is the channel a contact value belongs to.
type ContactType string

const (
	ContactTypePhone    ContactType = "PHONE"
	ContactTypeEmail    ContactType = "EMAIL"
	ContactTypeWhatsApp ContactType = "WHATSAPP"
	ContactTypeOther    ContactType = "OTHER"
)

func (c ContactType) String() string { return string(c) }

func (c ContactType) IsValid() bool {
	switch c {
	case ContactTypePhone, ContactTypeEmail, ContactTypeWhatsApp, ContactTypeOther:
		return true
	}
	return false
}

// DocumentType is the kind of identity document.
type DocumentType string

const (
	DocumentTypeCPF      DocumentType = "CPF"
	DocumentTypeCNPJ     DocumentType = "CNPJ"
	DocumentTypeRG       DocumentType = "RG"
	DocumentTypePassport DocumentType = "PASSPORT"
	DocumentTypeOther    DocumentType = "OTHER"
)

func (d DocumentType) String() string { return string(d) }

func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentTypeCPF, DocumentTypeCNPJ, DocumentTypeRG, DocumentTypePassport, DocumentTypeOther:
		return true
	}
	return false
}

// LeadStatus tracks a lead through the sales funnel.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusQualified LeadStatus = "QUALIFIED"
	LeadStatusLost      LeadStatus = "LOST"
	LeadStatusConverted LeadStatus = "CONVERTED"
)

func (s LeadStatus) String() string { return string(s) }

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost, LeadStatusConverted:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeBusiness EntityType = "BUSINESS"
	EntityTypePerson   EntityType = "PERSON"
	EntityTypeLead     EntityType = "LEAD"
	EntityTypeCustomer EntityType = "CUSTOMER"
	EntityTypeAddress  EntityType = "ADDRESS"
	EntityTypeContact  EntityType = "CONTACT"
	EntityTypeDocument EntityType = "DOCUMENT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeBusiness, EntityTypePerson, EntityTypeLead, EntityTypeCustomer,
		EntityTypeAddress, EntityTypeContact, EntityTypeDocument:
		return true
	}
	return false
}

// EntityTypeForKind maps a sub-entity kind to its audit entity type.
func EntityTypeForKind(k SubEntityKind) EntityType {
	switch k {
	case KindAddress:
		return EntityTypeAddress
	case KindContact:
		return EntityTypeContact
	default:
		return EntityTypeDocument
	}
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// Role is the role carried by an access token.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAgent  Role = "agent"
	RoleViewer Role = "viewer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAgent, RoleViewer:
		return true
	}
	return false
}

// CanWrite reports whether the role may mutate CRM data.
func (r Role) CanWrite() bool {
	return r == RoleOwner || r == RoleAgent
}
