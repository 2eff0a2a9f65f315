// Package ctxutil carries the per-request caller identity through
// context.Context: the authenticated user, the tenant it acts for, its role
// and the request correlation id.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userKey     struct{}
	businessKey struct{}
	roleKey     struct{}
	requestKey  struct{}
)

// WithUserID stores the authenticated user's id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// UserIDFromCtx reports the authenticated user. A missing or nil id is
// reported as absent.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return idFrom(ctx, userKey{})
}

// WithBusinessID stores the tenant the request is scoped to.
func WithBusinessID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, businessKey{}, id)
}

func BusinessIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return idFrom(ctx, businessKey{})
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// RoleFromCtx returns "" when the token carried no tenant role.
func RoleFromCtx(ctx context.Context) string {
	r, _ := ctx.Value(roleKey{}).(string)
	return r
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestKey{}, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestKey{}).(string)
	return id
}

func idFrom(ctx context.Context, key any) (uuid.UUID, bool) {
	id, ok := ctx.Value(key).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
