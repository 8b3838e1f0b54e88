package services

import (
	"sync"

	"github.com/lparra/snake-hub-be/internal/models"
)

// PlayerServiceProvider defines the read surface over the roster of
// currently-active players.
type PlayerServiceProvider interface {
	ListActivePlayers() []models.ActivePlayer
	GetActivePlayer(id string) (models.ActivePlayer, bool)
}

// PlayerService owns the ephemeral in-memory roster. Reads return
// snapshots; any future mutator must go through SetPlayers so readers
// never observe a partially-updated roster.
type PlayerService struct {
	mu      sync.RWMutex
	players []models.ActivePlayer
}

// NewPlayerService creates a PlayerService with an empty roster.
func NewPlayerService() *PlayerService {
	return &PlayerService{players: []models.ActivePlayer{}}
}

// SetPlayers replaces the roster wholesale.
func (s *PlayerService) SetPlayers(players []models.ActivePlayer) {
	snapshot := make([]models.ActivePlayer, len(players))
	copy(snapshot, players)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = snapshot
}

// ListActivePlayers returns a copy of the current roster.
func (s *PlayerService) ListActivePlayers() []models.ActivePlayer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ActivePlayer, len(s.players))
	copy(out, s.players)
	return out
}

// GetActivePlayer returns the player with the given ID, if present.
func (s *PlayerService) GetActivePlayer(id string) (models.ActivePlayer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.players {
		if p.ID == id {
			return p, true
		}
	}
	return models.ActivePlayer{}, false
}
