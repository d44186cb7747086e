package models

import "time"

// Wallet holds the single running balance for a user. The balance changes
// only as a side effect of appending ledger transactions.
type Wallet struct {
	UserID         int64     `json:"user_id"`
	CurrentBalance float64   `json:"current_balance"`
	CreatedAt      time.Time `json:"created_at"`
}
