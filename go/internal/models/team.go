package models

// Team represents an esports team. Players reference teams, not the other
// way around, so deleting a team does not cascade.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Logo   string `json:"logo,omitempty"`
}
