package models

// Ticket represents a purchasable ticket tier for a tournament.
type Ticket struct {
	ID           string  `json:"id"`
	TournamentID string  `json:"tournament_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Available    int     `json:"available"`
}
