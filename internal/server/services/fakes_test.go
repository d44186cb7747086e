package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"fintrack/internal/dbx"
	"fintrack/internal/server/models"
	budgetsrepo "fintrack/internal/server/repositories/budgets"
	dashboardrepo "fintrack/internal/server/repositories/dashboard"
	expensesrepo "fintrack/internal/server/repositories/expenses"
	transactionsrepo "fintrack/internal/server/repositories/transactions"
	usersrepo "fintrack/internal/server/repositories/users"
	walletsrepo "fintrack/internal/server/repositories/wallets"
)

// --- shared helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- fake repositories ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

type fakeWalletsRepo struct {
	createErr error
	adjustErr error

	balance    float64
	balanceErr error

	adjusted []float64
}

func (f *fakeWalletsRepo) CreateIfMissing(ctx context.Context, userID int64) error {
	return f.createErr
}

func (f *fakeWalletsRepo) Adjust(ctx context.Context, userID int64, delta float64) error {
	if f.adjustErr != nil {
		return f.adjustErr
	}
	f.adjusted = append(f.adjusted, delta)
	return nil
}

func (f *fakeWalletsRepo) GetBalance(ctx context.Context, userID int64) (float64, error) {
	if f.balanceErr != nil {
		return 0, f.balanceErr
	}
	return f.balance, nil
}

type fakeTransactionsRepo struct {
	createErr error
	created   []*models.Transaction

	listOut   []*models.Transaction
	listTotal int
	listErr   error

	deleteErr error

	periodOut []*models.Transaction
	periodErr error
}

func (f *fakeTransactionsRepo) Create(ctx context.Context, tr *models.Transaction) (*models.Transaction, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	tr.ID = int64(len(f.created) + 1)
	if tr.Category == "" {
		tr.Category = "Other"
	}
	f.created = append(f.created, tr)
	return tr, nil
}

func (f *fakeTransactionsRepo) List(ctx context.Context, userID int64, filter models.TransactionFilter) ([]*models.Transaction, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listOut, f.listTotal, nil
}

func (f *fakeTransactionsRepo) Delete(ctx context.Context, userID, id int64) error {
	return f.deleteErr
}

func (f *fakeTransactionsRepo) ListForPeriod(ctx context.Context, userID int64, from, to time.Time) ([]*models.Transaction, error) {
	if f.periodErr != nil {
		return nil, f.periodErr
	}
	return f.periodOut, nil
}

type fakeBudgetsRepo struct {
	createOut *models.Budget
	createErr error

	listOut []*models.Budget
	listErr error
}

func (f *fakeBudgetsRepo) Create(ctx context.Context, b *models.Budget) (*models.Budget, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	b.ID = 1
	return b, nil
}

func (f *fakeBudgetsRepo) List(ctx context.Context, userID int64) ([]*models.Budget, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeExpensesRepo struct {
	createErr error
	created   []*models.Expense

	listOut []*models.Expense
	listErr error
}

func (f *fakeExpensesRepo) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e.ID = int64(len(f.created) + 1)
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeExpensesRepo) List(ctx context.Context, userID int64) ([]*models.Expense, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeDashboardRepo struct {
	totalsOut *dashboardrepo.PeriodTotals
	totalsErr error

	topOut []models.CategoryTotal
	topErr error

	recentOut []*models.Transaction
	recentErr error

	// captures the limit Recent was called with
	recentLimit int

	trendOut []models.TrendPoint
	trendErr error

	comparisonOut []models.BudgetComparisonRow
	comparisonErr error
}

func (f *fakeDashboardRepo) PeriodTotals(ctx context.Context, userID int64, from, to time.Time) (*dashboardrepo.PeriodTotals, error) {
	if f.totalsErr != nil {
		return nil, f.totalsErr
	}
	return f.totalsOut, nil
}

func (f *fakeDashboardRepo) TopExpenseCategories(ctx context.Context, userID int64, from, to time.Time, limit int) ([]models.CategoryTotal, error) {
	if f.topErr != nil {
		return nil, f.topErr
	}
	return f.topOut, nil
}

func (f *fakeDashboardRepo) Recent(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error) {
	f.recentLimit = limit
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recentOut, nil
}

func (f *fakeDashboardRepo) MonthlyTrend(ctx context.Context, userID int64) ([]models.TrendPoint, error) {
	if f.trendErr != nil {
		return nil, f.trendErr
	}
	return f.trendOut, nil
}

func (f *fakeDashboardRepo) BudgetComparison(ctx context.Context, userID int64, month, year int, from, to time.Time) ([]models.BudgetComparisonRow, error) {
	if f.comparisonErr != nil {
		return nil, f.comparisonErr
	}
	return f.comparisonOut, nil
}

// --- fake repository manager ---

type fakeRepoManager struct {
	u  *fakeUsersRepo
	w  *fakeWalletsRepo
	tr *fakeTransactionsRepo
	b  *fakeBudgetsRepo
	e  *fakeExpensesRepo
	d  *fakeDashboardRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error       { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return m.u }
func (m *fakeRepoManager) Wallets(db dbx.DBTX) walletsrepo.Repository         { return m.w }
func (m *fakeRepoManager) Transactions(db dbx.DBTX) transactionsrepo.Repository {
	return m.tr
}
func (m *fakeRepoManager) Budgets(db dbx.DBTX) budgetsrepo.Repository   { return m.b }
func (m *fakeRepoManager) Expenses(db dbx.DBTX) expensesrepo.Repository { return m.e }
func (m *fakeRepoManager) Dashboard(db dbx.DBTX) dashboardrepo.Repository {
	return m.d
}
