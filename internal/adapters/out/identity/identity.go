// Package identity carries the authenticated user through a request context.
// Transport middleware calls WithUser after checking credentials; the core
// reads it back through ports.IdentityProvider.
package identity

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
)

type userKey struct{}

// WithUser returns a copy of ctx bound to userID. A zero userID leaves ctx anonymous.
func WithUser(ctx context.Context, userID kernel.UUID) context.Context {
	if userID.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, userID)
}

// ContextProvider implements ports.IdentityProvider on top of WithUser.
type ContextProvider struct{}

func NewContextProvider() ContextProvider {
	return ContextProvider{}
}

func (ContextProvider) CurrentUser(ctx context.Context) (kernel.UUID, bool) {
	if ctx == nil {
		return kernel.UUID{}, false
	}

	userID, ok := ctx.Value(userKey{}).(kernel.UUID)
	if !ok || userID.IsZero() {
		return kernel.UUID{}, false
	}
	return userID, true
}
