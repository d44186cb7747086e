// Package budgets provides the PostgreSQL-backed repository for monthly
// per-category spending ceilings.
package budgets

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/common"
	"fintrack/internal/dbx"
	"fintrack/internal/server/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository implements budget storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

// Create inserts a budget row. A second budget for the same
// (user, category, month, year) tuple yields common.ErrorBudgetExists.
func (r *PostgresRepository) Create(ctx context.Context, b *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, category, amount, month, year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		b.UserID, b.Category, b.Amount, b.Month, b.Year).Scan(&b.ID, &b.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorBudgetExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

// List returns all of the user's budgets, most recently created first.
func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]*models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, month, year, created_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Budget
	for rows.Next() {
		var item models.Budget
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Category, &item.Amount,
			&item.Month, &item.Year, &item.CreatedAt,
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
