package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitorbook/internal/repository"
	"visitorbook/internal/testutil"
)

func TestParseRoles(t *testing.T) {
	assert.Equal(t, []string{"Admin", "Moderator", "User"}, parseRoles(defaultRoles))
	assert.Equal(t, []string{"Admin", "User"}, parseRoles(" Admin, ,User,Admin "))
	assert.Empty(t, parseRoles(""))
}

func TestSeedRoles_Idempotent(t *testing.T) {
	gormDB := testutil.OpenSQLite(t)
	repo := repository.NewRoleRepository(gormDB)
	ctx := context.Background()

	created, existing, err := seedRoles(ctx, repo, []string{"Admin", "User"})
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, existing)

	created, existing, err = seedRoles(ctx, repo, []string{"Admin", "Moderator", "User"})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, existing)

	roles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, "Admin", roles[0].Name)
	assert.Equal(t, "User", roles[1].Name)
	assert.Equal(t, "Moderator", roles[2].Name)
}
