package models

// Player represents a player profile. TeamID is empty when the player has
// no team assigned.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	InGameName string `json:"in_game_name"`
	Role       string `json:"role"`
	TeamID     string `json:"team_id,omitempty"`
}
