package models

import "time"

// PracticeSession records one completed drill. Rows are append-only; the
// live reading score stays derived from the current answer sheet and is
// never read back from here.
type PracticeSession struct {
	ID        string    `json:"id"`
	Module    string    `json:"module"`
	Day       string    `json:"day"` // YYYY-MM-DD
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
