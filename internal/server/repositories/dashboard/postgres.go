// Package dashboard provides read-only aggregate queries over the ledger and
// budgets. All aggregation is pushed into the database; nothing is cached or
// materialized.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/dbx"
	"fintrack/internal/server/models"
)

// PostgresRepository implements the aggregate queries over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// PeriodTotals sums income and expense amounts and counts entries by type
// for transaction dates in [from, to].
func (r *PostgresRepository) PeriodTotals(ctx context.Context, userID int64, from, to time.Time) (*PeriodTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE type = 'income'),
			COUNT(*) FILTER (WHERE type = 'expense')
		FROM wallet_transactions
		WHERE user_id = $1 AND transaction_date BETWEEN $2 AND $3
	`

	totals := &PeriodTotals{}
	err := r.db.QueryRowContext(ctx, query, userID, from, to).Scan(
		&totals.TotalIncome, &totals.TotalExpense,
		&totals.Counts.Total, &totals.Counts.IncomeCount, &totals.Counts.ExpenseCount)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return totals, nil
}

// TopExpenseCategories ranks expense categories by total amount in [from, to].
// Ties are broken by category name ascending so the ordering is deterministic.
func (r *PostgresRepository) TopExpenseCategories(ctx context.Context, userID int64, from, to time.Time, limit int) ([]models.CategoryTotal, error) {
	query := `
		SELECT COALESCE(category, 'Other') AS category, SUM(amount) AS total, COUNT(*) AS count
		FROM wallet_transactions
		WHERE user_id = $1 AND type = 'expense' AND transaction_date BETWEEN $2 AND $3
		GROUP BY COALESCE(category, 'Other')
		HAVING SUM(amount) > 0
		ORDER BY total DESC, category ASC
		LIMIT $4
	`

	rows, err := r.db.QueryContext(ctx, query, userID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.CategoryTotal
	for rows.Next() {
		var item models.CategoryTotal
		if err := rows.Scan(&item.Category, &item.Total, &item.Count); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Recent returns the limit most recent ledger entries across all types,
// newest transaction date first, then newest created first.
func (r *PostgresRepository) Recent(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, COALESCE(category, 'Other'), COALESCE(description, ''), transaction_date, created_at
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Transaction
	for rows.Next() {
		var item models.Transaction
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Type, &item.Amount, &item.Category,
			&item.Description, &item.TransactionDate, &item.CreatedAt,
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

// MonthlyTrend groups income and expense totals by calendar month over the
// trailing six months. Months without entries produce no row; results are
// chronological.
func (r *PostgresRepository) MonthlyTrend(ctx context.Context, userID int64) ([]models.TrendPoint, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM transaction_date)::int AS year,
			EXTRACT(MONTH FROM transaction_date)::int AS month,
			TO_CHAR(transaction_date, 'Mon') AS month_name,
			SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS income,
			SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS expense
		FROM wallet_transactions
		WHERE user_id = $1 AND transaction_date >= CURRENT_DATE - INTERVAL '6 months'
		GROUP BY 1, 2, 3
		ORDER BY 1, 2
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.TrendPoint
	for rows.Next() {
		var item models.TrendPoint
		if err := rows.Scan(&item.Year, &item.Month, &item.MonthName, &item.Income, &item.Expense); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// BudgetComparison joins each budget for (month, year) with the expense-type
// entries booked in the same category and date range. Budgets with no
// matching expenses still produce a row with zero spend; a zero budget
// amount yields percentage_used 0, never a division error.
func (r *PostgresRepository) BudgetComparison(ctx context.Context, userID int64, month, year int, from, to time.Time) ([]models.BudgetComparisonRow, error) {
	query := `
		SELECT
			b.category,
			b.amount AS budget_amount,
			COALESCE(SUM(t.amount), 0) AS actual_spent,
			b.amount - COALESCE(SUM(t.amount), 0) AS remaining,
			CASE
				WHEN b.amount > 0
				THEN ROUND(COALESCE(SUM(t.amount), 0) / b.amount * 100, 2)
				ELSE 0
			END AS percentage_used
		FROM budgets b
		LEFT JOIN wallet_transactions t
			ON t.user_id = b.user_id
			AND COALESCE(t.category, 'Other') = b.category
			AND t.type = 'expense'
			AND t.transaction_date BETWEEN $1 AND $2
		WHERE b.user_id = $3 AND b.month = $4 AND b.year = $5
		GROUP BY b.id, b.category, b.amount
		ORDER BY percentage_used DESC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.BudgetComparisonRow
	for rows.Next() {
		var item models.BudgetComparisonRow
		if err := rows.Scan(
			&item.Category, &item.BudgetAmount, &item.ActualSpent,
			&item.Remaining, &item.PercentageUsed,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
