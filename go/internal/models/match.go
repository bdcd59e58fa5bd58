package models

// Match represents a scored match between two distinct teams of a
// tournament. Date is an opaque YYYY-MM-DD string.
type Match struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournament_id"`
	Team1ID      string `json:"team1_id"`
	Team2ID      string `json:"team2_id"`
	Team1Score   int    `json:"team1_score"`
	Team2Score   int    `json:"team2_score"`
	Date         string `json:"date"`
}
