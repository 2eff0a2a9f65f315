// Package tenant resolves the business and actor a service call runs for.
package tenant

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// Scope is the tenant and actor of the current request.
type Scope struct {
	BusinessID uuid.UUID
	UserID     uuid.UUID
	Actor      domain.Actor
}

// Read returns the scope for a read. A business in context is required.
func Read(ctx context.Context) (Scope, error) {
	businessID, ok := ctxutil.BusinessIDFromCtx(ctx)
	if !ok {
		return Scope{}, domain.ErrUnauthorized
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)
	return Scope{
		BusinessID: businessID,
		UserID:     userID,
		Actor:      domain.ActorOf(userID),
	}, nil
}

// Write returns the scope for a mutation. Besides the business, an
// authenticated user is required, and a role, when present, must allow writes.
func Write(ctx context.Context) (Scope, error) {
	s, err := Read(ctx)
	if err != nil {
		return Scope{}, err
	}
	if !s.Actor.Valid {
		return Scope{}, domain.ErrUnauthorized
	}
	if role := ctxutil.RoleFromCtx(ctx); role != "" && !domain.Role(role).CanWrite() {
		return Scope{}, domain.ErrForbidden
	}
	return s, nil
}
