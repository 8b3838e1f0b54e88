package models

import "time"

// Direction is the snake's current heading.
type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// Position is a cell on the game grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActivePlayer is the ephemeral in-memory state of a player currently
// in a game. It is never persisted.
type ActivePlayer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Score     int        `json:"score"`
	Mode      GameMode   `json:"mode"`
	Snake     []Position `json:"snake"`
	Food      Position   `json:"food"`
	Direction Direction  `json:"direction"`
	StartedAt time.Time  `json:"startedAt"`
}
