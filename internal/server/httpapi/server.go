package httpapi

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"fintrack/internal/logging"
	"fintrack/internal/server/services"
	"fintrack/web"
)

// Server is the JSON REST gateway in front of the domain services. It also
// serves the embedded dashboard client.
type Server struct {
	http.Server
	logger    logging.Logger
	users     *services.UserService
	ledger    *services.LedgerService
	budgets   *services.BudgetService
	expenses  *services.ExpenseService
	dashboard *services.DashboardService
	reports   *services.ReportService
}

// NewServer configures routes and the embedded client, returning a
// ready-to-run server.
func NewServer(addr string, logger logging.Logger,
	users *services.UserService, ledger *services.LedgerService,
	budgets *services.BudgetService, expenses *services.ExpenseService,
	dashboard *services.DashboardService, reports *services.ReportService) *Server {

	mux := http.NewServeMux()

	s := &Server{
		logger:    logger,
		users:     users,
		ledger:    ledger,
		budgets:   budgets,
		expenses:  expenses,
		dashboard: dashboard,
		reports:   reports,
	}
	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.withLogging(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	mux.HandleFunc("GET /health", handleHealth)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/verify", s.handleVerifyToken)
	mux.HandleFunc("GET /api/auth/me", s.withAuth(s.handleMe))

	mux.HandleFunc("GET /api/transactions", s.withAuth(s.handleListTransactions))
	mux.HandleFunc("POST /api/transactions", s.withAuth(s.handleCreateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.withAuth(s.handleDeleteTransaction))

	mux.HandleFunc("GET /api/wallet", s.withAuth(s.handleGetWallet))
	mux.HandleFunc("POST /api/wallet/transaction", s.withAuth(s.handleWalletTransaction))

	mux.HandleFunc("GET /api/budget", s.withAuth(s.handleListBudgets))
	mux.HandleFunc("POST /api/budget", s.withAuth(s.handleCreateBudget))

	mux.HandleFunc("GET /api/expenses", s.withAuth(s.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", s.withAuth(s.handleCreateExpense))

	mux.HandleFunc("GET /api/dashboard/summary", s.withAuth(s.handleSummary))
	mux.HandleFunc("GET /api/dashboard/recent-transactions", s.withAuth(s.handleRecentTransactions))
	mux.HandleFunc("GET /api/dashboard/monthly-trend", s.withAuth(s.handleMonthlyTrend))
	mux.HandleFunc("GET /api/dashboard/budget-comparison", s.withAuth(s.handleBudgetComparison))

	mux.HandleFunc("POST /api/reports/export", s.withAuth(s.handleExportStatement))

	// Dashboard client (served from the embedded FS).
	if sub, err := fs.Sub(web.StaticFS, "static"); err == nil {
		mux.Handle("/", http.FileServer(http.FS(sub)))
	}

	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]any{"timestamp": time.Now().UTC().Format(time.RFC3339)})
}
