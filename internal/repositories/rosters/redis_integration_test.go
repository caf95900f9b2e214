package rosters_test

import (
	"context"
	"testing"

	"github.com/wastelandforge/warband/internal/domain/roster"
	apperrors "github.com/wastelandforge/warband/internal/errors"
	"github.com/wastelandforge/warband/internal/repositories/rosters"
	"github.com/wastelandforge/warband/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisRepository_Integration runs the full CRUD cycle against a real
// Redis instance. Skipped automatically when Redis is unavailable.
func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := rosters.NewRedisRepository(client)
	ctx := context.Background()

	rst := roster.New("itest-1")
	rst.Name = "Integration Warband"
	rst.Faction = "Raiders"
	rst.Units = []*roster.Unit{
		{UID: "u1", DefID: "raider-scavver", Cards: []roster.CardSlot{
			{ItemID: "pipe-pistol", Locked: true},
		}},
	}

	require.NoError(t, repo.Create(ctx, rst))

	loaded, err := repo.Get(ctx, "itest-1")
	require.NoError(t, err)
	assert.Equal(t, rst.Name, loaded.Name)
	require.Len(t, loaded.Units, 1)
	assert.Equal(t, rst.Units[0].Cards, loaded.Units[0].Cards)

	loaded.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, loaded))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Renamed", listed[0].Name)

	require.NoError(t, repo.Delete(ctx, "itest-1"))

	_, err = repo.Get(ctx, "itest-1")
	assert.True(t, apperrors.IsNotFound(err))
}
