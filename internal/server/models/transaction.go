package models

import "time"

// Transaction types. A transaction is either money in or money out; the type
// is immutable once the row is created.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is one ledger entry: a typed money movement tagged with a
// category, an optional note, and the date it happened.
type Transaction struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// TransactionFilter narrows and paginates ledger listings. Zero values
// impose no constraint.
type TransactionFilter struct {
	Type     string
	Category string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}
