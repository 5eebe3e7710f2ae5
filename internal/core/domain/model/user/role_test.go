package user_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("accepts all known roles", func(t *testing.T) {
		for _, s := range []string{"admin", "vendor", "customer", "delivery"} {
			role, err := user.RoleFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := user.RoleFromString("superuser")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty role", func(t *testing.T) {
		_, err := user.RoleFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewIdentity(t *testing.T) {
	t.Run("creates identity with valid id and role", func(t *testing.T) {
		id := kernel.NewUUID()

		identity, err := user.NewIdentity(id, user.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, identity.Validate())
		assert.True(t, identity.ID().IsEqual(id))
		assert.Equal(t, user.RoleCustomer, identity.Role())
		assert.True(t, identity.Is(user.RoleCustomer))
		assert.False(t, identity.Is(user.RoleAdmin))
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		_, err := user.NewIdentity(kernel.UUID{}, user.RoleAdmin)
		require.Error(t, err)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := user.NewIdentity(kernel.NewUUID(), user.Role("root"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var identity user.Identity
		require.ErrorIs(t, identity.Validate(), user.ErrIdentityIsNotConstructed)
	})
}
