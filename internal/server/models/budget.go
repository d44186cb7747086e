package models

import "time"

// Budget is a per-category spending ceiling for one calendar month.
// A user can have at most one budget per (category, month, year).
type Budget struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}
