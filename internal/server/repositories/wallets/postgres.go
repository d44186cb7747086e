// Package wallets provides the PostgreSQL-backed repository for the per-user
// running balance.
package wallets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fintrack/internal/dbx"
)

// PostgresRepository implements wallet storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateIfMissing inserts a zero-balance wallet row for userID unless one
// already exists. The registration flow normally creates the wallet; this is
// the defensive path for ledger appends.
func (r *PostgresRepository) CreateIfMissing(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO wallets (user_id, current_balance)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Adjust moves the balance by delta (positive for income, negative for
// expense). The increment happens inside the database, so two concurrent
// adjustments never lose an update.
func (r *PostgresRepository) Adjust(ctx context.Context, userID int64, delta float64) error {
	query := `
		UPDATE wallets SET current_balance = current_balance + $1
		WHERE user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, delta, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

// GetBalance returns the current balance, defaulting to 0 when no wallet row
// exists for the user.
func (r *PostgresRepository) GetBalance(ctx context.Context, userID int64) (float64, error) {
	query := `
		SELECT current_balance FROM wallets
		WHERE user_id = $1
	`

	var balance float64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return balance, nil
}
