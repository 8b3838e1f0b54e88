package models

// GameMode identifies the rule set a score was achieved under.
type GameMode string

const (
	GameModePassthrough GameMode = "passthrough"
	GameModeWalls       GameMode = "walls"
)

// Valid reports whether m is one of the recognized game modes.
func (m GameMode) Valid() bool {
	switch m {
	case GameModePassthrough, GameModeWalls:
		return true
	}
	return false
}

// LeaderboardEntry is a single immutable score submission.
// Username is a copy of the submitter's name at submission time;
// Date is the server's calendar date in YYYY-MM-DD form.
type LeaderboardEntry struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Score    int      `json:"score"`
	Mode     GameMode `json:"mode"`
	Date     string   `json:"date"`
}
