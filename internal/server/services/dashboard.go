package services

import (
	"context"
	"database/sql"
	"math"
	"time"

	"fintrack/internal/server/models"
	"fintrack/internal/server/repositories/repomanager"
)

// nowFunc is a seam for tests that need a fixed current date.
var nowFunc = time.Now

// DashboardService computes the read-only derived views over the ledger and
// budgets. Everything is computed on demand by the database; nothing is
// cached or materialized.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// resolvePeriod substitutes the current calendar month/year for zero values
// and returns the first and last day of the resolved month.
func resolvePeriod(month, year int) (int, int, time.Time, time.Time) {
	now := nowFunc()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year < 1 {
		year = now.Year()
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return month, year, from, to
}

// Summary computes the headline view for (month, year): current wallet
// balance, period income/expense sums and counts, savings, savings rate, and
// the top five expense categories.
func (s *DashboardService) Summary(ctx context.Context, userID int64, month, year int) (*models.Summary, error) {
	month, year, from, to := resolvePeriod(month, year)

	balance, err := s.repomanager.Wallets(s.db).GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Dashboard(s.db)

	totals, err := repo.PeriodTotals(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	topCategories, err := repo.TopExpenseCategories(ctx, userID, from, to, 5)
	if err != nil {
		return nil, err
	}

	savings := totals.TotalIncome - totals.TotalExpense
	var savingsRate float64
	if totals.TotalIncome > 0 {
		savingsRate = math.Round(savings / totals.TotalIncome * 100)
	}

	return &models.Summary{
		Period:        models.Period{Month: month, Year: year},
		WalletBalance: balance,
		TotalIncome:   totals.TotalIncome,
		TotalExpense:  totals.TotalExpense,
		Savings:       savings,
		SavingsRate:   savingsRate,
		Transactions:  totals.Counts,
		TopCategories: topCategories,
	}, nil
}

// RecentTransactions returns the limit most recent ledger entries, defaulting
// to 10 when limit is not positive.
func (s *DashboardService) RecentTransactions(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error) {
	if limit < 1 {
		limit = 10
	}
	return s.repomanager.Dashboard(s.db).Recent(ctx, userID, limit)
}

// MonthlyTrend returns income/expense totals per calendar month for the
// trailing six months, chronologically ascending.
func (s *DashboardService) MonthlyTrend(ctx context.Context, userID int64) ([]models.TrendPoint, error) {
	return s.repomanager.Dashboard(s.db).MonthlyTrend(ctx, userID)
}

// BudgetComparison joins every budget for (month, year) with the expenses
// actually booked in its category, ordered by percentage used descending.
func (s *DashboardService) BudgetComparison(ctx context.Context, userID int64, month, year int) ([]models.BudgetComparisonRow, error) {
	month, year, from, to := resolvePeriod(month, year)
	return s.repomanager.Dashboard(s.db).BudgetComparison(ctx, userID, month, year, from, to)
}
