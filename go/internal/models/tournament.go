package models

// Tournament represents an esports tournament. Teams holds the ids of the
// participating teams in display order. StartDate and EndDate are opaque
// YYYY-MM-DD strings assigned by the admin forms; start <= end is not
// enforced anywhere in the system.
type Tournament struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Teams     []string `json:"teams"`
}
