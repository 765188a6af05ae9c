package fakeuserrepo_test

import (
	"testing"

	"github.com/jrsteele09/go-colten/users"
	fakeuserrepo "github.com/jrsteele09/go-colten/users/repofake"
	"github.com/stretchr/testify/require"
)

func TestFakeAccountRepo(t *testing.T) {
	repo := fakeuserrepo.NewFakeAccountRepo()

	owner := &users.Account{Identity: users.Identity{Email: "Owner@Example.com", Roles: []users.RoleType{users.RoleOwner}}}
	tenant := &users.Account{Identity: users.Identity{Email: "tenant@example.com", Roles: []users.RoleType{users.RoleTenant}}}
	require.NoError(t, repo.Upsert(owner))
	require.NoError(t, repo.Upsert(tenant))
	require.Equal(t, int64(1), owner.ID)
	require.Equal(t, int64(2), tenant.ID)

	t.Run("lookup by email is case insensitive", func(t *testing.T) {
		got, err := repo.GetByEmail("owner@example.com")
		require.NoError(t, err)
		require.Same(t, owner, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(42)
		require.ErrorIs(t, err, fakeuserrepo.ErrNotFound)
	})

	t.Run("list pages", func(t *testing.T) {
		all, err := repo.List(0, 0)
		require.NoError(t, err)
		require.Len(t, all, 2)

		page, err := repo.List(1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.Same(t, tenant, page[0])

		empty, err := repo.List(5, 1)
		require.NoError(t, err)
		require.Empty(t, empty)
	})
}
