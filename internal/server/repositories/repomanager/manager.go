package repomanager

import (
	"context"
	"database/sql"

	"fintrack/internal/dbx"
	"fintrack/internal/server/repositories/budgets"
	"fintrack/internal/server/repositories/dashboard"
	"fintrack/internal/server/repositories/expenses"
	"fintrack/internal/server/repositories/transactions"
	"fintrack/internal/server/repositories/users"
	"fintrack/internal/server/repositories/wallets"
)

// RepositoryManager vends repository implementations bound to an arbitrary
// DBTX, so the same repository code runs against *sql.DB and *sql.Tx alike.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Wallets(db dbx.DBTX) wallets.Repository
	Transactions(db dbx.DBTX) transactions.Repository
	Budgets(db dbx.DBTX) budgets.Repository
	Expenses(db dbx.DBTX) expenses.Repository
	Dashboard(db dbx.DBTX) dashboard.Repository
}
