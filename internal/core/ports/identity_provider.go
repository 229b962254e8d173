package ports

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
)

// IdentityProvider resolves the user on whose behalf a request runs.
type IdentityProvider interface {
	// CurrentUser returns the authenticated user, or false when there is none.
	CurrentUser(ctx context.Context) (kernel.UUID, bool)
}
