package models

import "time"

// DefaultSkin is assigned to every account at signup.
const DefaultSkin = "green"

// User represents a player account in the system.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Skin      string    `json:"skin"`
	CreatedAt time.Time `json:"createdAt"`
}
