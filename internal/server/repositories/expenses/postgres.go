// Package expenses provides the PostgreSQL-backed repository for the legacy
// expenses table. Rows here duplicate expense-type ledger entries; the
// service layer keeps the two in step inside one transaction.
package expenses

import (
	"context"
	"fmt"

	"fintrack/internal/dbx"
	"fintrack/internal/server/models"
)

// PostgresRepository implements expense storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, amount, category, description, month, year, expense_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		e.UserID, e.Amount, e.Category, e.Description, e.Month, e.Year, e.ExpenseDate).
		Scan(&e.ID, &e.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

// List returns all of the user's expense rows, most recently created first.
func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]*models.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, COALESCE(description, ''), month, year, expense_date, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Expense
	for rows.Next() {
		var item models.Expense
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Amount, &item.Category, &item.Description,
			&item.Month, &item.Year, &item.ExpenseDate, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
