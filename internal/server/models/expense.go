package models

import "time"

// Expense is a row of the legacy expenses table. Each expense is mirrored
// into the ledger as an expense-type transaction when created.
type Expense struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	ExpenseDate time.Time `json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
}
