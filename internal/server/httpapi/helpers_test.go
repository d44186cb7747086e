package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"fintrack/internal/dbx"
	"fintrack/internal/logging"
	"fintrack/internal/server/auth"
	"fintrack/internal/server/config"
	"fintrack/internal/server/models"
	budgetsrepo "fintrack/internal/server/repositories/budgets"
	dashboardrepo "fintrack/internal/server/repositories/dashboard"
	expensesrepo "fintrack/internal/server/repositories/expenses"
	transactionsrepo "fintrack/internal/server/repositories/transactions"
	usersrepo "fintrack/internal/server/repositories/users"
	walletsrepo "fintrack/internal/server/repositories/wallets"
	"fintrack/internal/server/services"
)

const testSecret = "test-secret"

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

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
	balance    float64
	balanceErr error
	adjusted   []float64
}

func (f *fakeWalletsRepo) CreateIfMissing(ctx context.Context, userID int64) error { return nil }

func (f *fakeWalletsRepo) Adjust(ctx context.Context, userID int64, delta float64) error {
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

	deletedIDs []int64

	periodOut []*models.Transaction
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
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeTransactionsRepo) ListForPeriod(ctx context.Context, userID int64, from, to time.Time) ([]*models.Transaction, error) {
	return f.periodOut, nil
}

type fakeBudgetsRepo struct {
	createErr error
	listOut   []*models.Budget
}

func (f *fakeBudgetsRepo) Create(ctx context.Context, b *models.Budget) (*models.Budget, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 1
	return b, nil
}

func (f *fakeBudgetsRepo) List(ctx context.Context, userID int64) ([]*models.Budget, error) {
	return f.listOut, nil
}

type fakeExpensesRepo struct {
	created []*models.Expense
	listOut []*models.Expense
}

func (f *fakeExpensesRepo) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	e.ID = int64(len(f.created) + 1)
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeExpensesRepo) List(ctx context.Context, userID int64) ([]*models.Expense, error) {
	return f.listOut, nil
}

type fakeDashboardRepo struct {
	totalsOut     *dashboardrepo.PeriodTotals
	topOut        []models.CategoryTotal
	recentOut     []*models.Transaction
	trendOut      []models.TrendPoint
	comparisonOut []models.BudgetComparisonRow
}

func (f *fakeDashboardRepo) PeriodTotals(ctx context.Context, userID int64, from, to time.Time) (*dashboardrepo.PeriodTotals, error) {
	if f.totalsOut == nil {
		return &dashboardrepo.PeriodTotals{}, nil
	}
	return f.totalsOut, nil
}

func (f *fakeDashboardRepo) TopExpenseCategories(ctx context.Context, userID int64, from, to time.Time, limit int) ([]models.CategoryTotal, error) {
	return f.topOut, nil
}

func (f *fakeDashboardRepo) Recent(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error) {
	return f.recentOut, nil
}

func (f *fakeDashboardRepo) MonthlyTrend(ctx context.Context, userID int64) ([]models.TrendPoint, error) {
	return f.trendOut, nil
}

func (f *fakeDashboardRepo) BudgetComparison(ctx context.Context, userID int64, month, year int, from, to time.Time) ([]models.BudgetComparisonRow, error) {
	return f.comparisonOut, nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	w  *fakeWalletsRepo
	tr *fakeTransactionsRepo
	b  *fakeBudgetsRepo
	e  *fakeExpensesRepo
	d  *fakeDashboardRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Wallets(db dbx.DBTX) walletsrepo.Repository   { return m.w }
func (m *fakeRepoManager) Transactions(db dbx.DBTX) transactionsrepo.Repository {
	return m.tr
}
func (m *fakeRepoManager) Budgets(db dbx.DBTX) budgetsrepo.Repository   { return m.b }
func (m *fakeRepoManager) Expenses(db dbx.DBTX) expensesrepo.Repository { return m.e }
func (m *fakeRepoManager) Dashboard(db dbx.DBTX) dashboardrepo.Repository {
	return m.d
}

// --- test server ---

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u:  &fakeUsersRepo{},
		w:  &fakeWalletsRepo{},
		tr: &fakeTransactionsRepo{},
		b:  &fakeBudgetsRepo{},
		e:  &fakeExpensesRepo{},
		d:  &fakeDashboardRepo{},
	}
}

// newTestServer wires a Server over fake repositories and a sqlmock database.
// Tests drive it through srv.Handler.ServeHTTP.
func newTestServer(t *testing.T, rm *fakeRepoManager) (*Server, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{SecretKey: testSecret, TokenValidityDuration: time.Hour}
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	srv := NewServer(":0", logger,
		services.NewUserService(db, rm, cfg),
		services.NewLedgerService(db, rm),
		services.NewBudgetService(db, rm),
		services.NewExpenseService(db, rm),
		services.NewDashboardService(db, rm),
		services.NewReportService(db, rm, &config.Config{}),
	)
	return srv, mock
}

// authToken mints a token accepted by the test server and points the fake
// users repo at the matching account.
func authToken(t *testing.T, rm *fakeRepoManager, userID int64) string {
	t.Helper()
	rm.u.byIDOut = &models.User{ID: userID, Name: "Test", Email: "test@example.com"}
	token, err := auth.GenerateToken(userID, []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}
