package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lparra/snake-hub-be/internal/models"
	"github.com/lparra/snake-hub-be/internal/services"
)

func TestSubmitScore(t *testing.T) {
	svc := services.NewLeaderboardService(newTestDB(t))

	entry, err := svc.Submit("Bo", 100, models.GameModeWalls)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Bo", entry.Username)
	assert.Equal(t, 100, entry.Score)
	assert.Equal(t, models.GameModeWalls, entry.Mode)
	assert.Equal(t, time.Now().Format("2006-01-02"), entry.Date)
}

func TestSubmitValidation(t *testing.T) {
	svc := services.NewLeaderboardService(newTestDB(t))

	_, err := svc.Submit("Bo", 10, models.GameMode("speedrun"))
	assert.ErrorIs(t, err, services.ErrInvalidGameMode)

	_, err = svc.Submit("Bo", -1, models.GameModeWalls)
	assert.ErrorIs(t, err, services.ErrNegativeScore)

	entries, err := svc.List("", "")
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected submissions must not create entries")
}

func TestListOrdersByScoreDescending(t *testing.T) {
	svc := services.NewLeaderboardService(newTestDB(t))

	_, err := svc.Submit("Ava", 50, models.GameModeWalls)
	require.NoError(t, err)
	_, err = svc.Submit("Bo", 200, models.GameModePassthrough)
	require.NoError(t, err)
	_, err = svc.Submit("Cy", 120, models.GameModeWalls)
	require.NoError(t, err)

	entries, err := svc.List("", "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 200, entries[0].Score)
	assert.Equal(t, 120, entries[1].Score)
	assert.Equal(t, 50, entries[2].Score)
}

func TestListFilters(t *testing.T) {
	svc := services.NewLeaderboardService(newTestDB(t))

	_, err := svc.Submit("Ava", 50, models.GameModeWalls)
	require.NoError(t, err)
	_, err = svc.Submit("Ava", 80, models.GameModePassthrough)
	require.NoError(t, err)
	_, err = svc.Submit("Bo", 200, models.GameModeWalls)
	require.NoError(t, err)

	walls, err := svc.List("walls", "")
	require.NoError(t, err)
	require.Len(t, walls, 2)
	assert.Equal(t, 200, walls[0].Score)
	assert.Equal(t, 50, walls[1].Score)

	ava, err := svc.List("", "Ava")
	require.NoError(t, err)
	require.Len(t, ava, 2)
	assert.Equal(t, 80, ava[0].Score)

	avaWalls, err := svc.List("walls", "Ava")
	require.NoError(t, err)
	require.Len(t, avaWalls, 1)
	assert.Equal(t, 50, avaWalls[0].Score)

	ghost, err := svc.List("", "Ghost")
	require.NoError(t, err)
	assert.Empty(t, ghost)
}
