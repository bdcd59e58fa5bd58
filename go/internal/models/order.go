package models

import "time"

// OrderStatusCompleted is the only status the checkout simulator produces.
const OrderStatusCompleted = "completed"

// Order represents a ticket purchase for a tournament.
type Order struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	TournamentID string    `json:"tournament_id"`
	Quantity     int       `json:"quantity"`
	TotalAmount  float64   `json:"total_amount"`
	PaymentID    string    `json:"payment_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
