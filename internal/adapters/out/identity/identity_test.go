package identity_test

import (
	"context"
	"testing"

	"pickup/internal/adapters/out/identity"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestContextProvider_CurrentUser(t *testing.T) {
	var provider ports.IdentityProvider = identity.NewContextProvider()

	t.Run("anonymous context", func(t *testing.T) {
		_, ok := provider.CurrentUser(t.Context())
		assert.False(t, ok)
	})

	t.Run("bound user", func(t *testing.T) {
		userID := kernel.NewUUID()

		got, ok := provider.CurrentUser(identity.WithUser(t.Context(), userID))

		assert.True(t, ok)
		assert.Equal(t, userID, got)
	})

	t.Run("zero user stays anonymous", func(t *testing.T) {
		ctx := identity.WithUser(context.Background(), kernel.UUID{})

		_, ok := provider.CurrentUser(ctx)
		assert.False(t, ok)
	})
}
