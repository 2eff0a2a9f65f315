package auth

import "github.com/google/uuid"

// Identity is the caller described by a verified access token.
// BusinessID is uuid.Nil for a user that has not joined a business yet.
type Identity struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Role       string
}
