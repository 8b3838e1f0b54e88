package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lparra/snake-hub-be/internal/models"
	"github.com/lparra/snake-hub-be/internal/services"
)

func TestPlayerRosterEmptyByDefault(t *testing.T) {
	svc := services.NewPlayerService()

	assert.Empty(t, svc.ListActivePlayers())

	_, ok := svc.GetActivePlayer("anyone")
	assert.False(t, ok)
}

func TestPlayerRosterSnapshots(t *testing.T) {
	svc := services.NewPlayerService()

	svc.SetPlayers([]models.ActivePlayer{
		{
			ID:        "p1",
			Username:  "Ava",
			Score:     40,
			Mode:      models.GameModePassthrough,
			Snake:     []models.Position{{X: 5, Y: 5}, {X: 5, Y: 6}},
			Food:      models.Position{X: 2, Y: 9},
			Direction: models.DirectionUp,
			StartedAt: time.Now(),
		},
	})

	players := svc.ListActivePlayers()
	require.Len(t, players, 1)
	assert.Equal(t, "Ava", players[0].Username)

	// Mutating the returned snapshot must not leak into the roster.
	players[0].Username = "Mallory"
	again := svc.ListActivePlayers()
	assert.Equal(t, "Ava", again[0].Username)

	p, ok := svc.GetActivePlayer("p1")
	require.True(t, ok)
	assert.Equal(t, models.DirectionUp, p.Direction)

	_, ok = svc.GetActivePlayer("p2")
	assert.False(t, ok)
}
