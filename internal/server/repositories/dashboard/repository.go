package dashboard

import (
	"context"
	"time"

	"fintrack/internal/server/models"
)

// PeriodTotals carries the income/expense sums and entry counts for one
// date range.
type PeriodTotals struct {
	TotalIncome  float64
	TotalExpense float64
	Counts       models.TransactionCounts
}

type Repository interface {
	PeriodTotals(ctx context.Context, userID int64, from, to time.Time) (*PeriodTotals, error)
	TopExpenseCategories(ctx context.Context, userID int64, from, to time.Time, limit int) ([]models.CategoryTotal, error)
	Recent(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error)
	MonthlyTrend(ctx context.Context, userID int64) ([]models.TrendPoint, error)
	BudgetComparison(ctx context.Context, userID int64, month, year int, from, to time.Time) ([]models.BudgetComparisonRow, error)
}
