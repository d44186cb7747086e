package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fintrack/internal/common"
	"fintrack/internal/dbx"
	"fintrack/internal/server/models"
	"fintrack/internal/server/repositories/repomanager"
)

// ExpenseService serves the legacy expenses surface. Creating an expense
// writes the expenses row, mirrors it into the ledger as an expense-type
// transaction, and adjusts the wallet — all in one database transaction, so
// the two tables cannot drift on a partial failure.
type ExpenseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewExpenseService constructs an ExpenseService.
func NewExpenseService(db *sql.DB, m repomanager.RepositoryManager) *ExpenseService {
	return &ExpenseService{db: db, repomanager: m}
}

// Create records an expense dated to the first day of (month, year).
func (s *ExpenseService) Create(ctx context.Context, userID int64, amount float64, category, description string, month, year int) (*models.Expense, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", common.ErrorValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", common.ErrorValidation)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", common.ErrorValidation)
	}
	if year < 1 {
		return nil, fmt.Errorf("%w: year is required", common.ErrorValidation)
	}

	expenseDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Month:       month,
		Year:        year,
		ExpenseDate: expenseDate,
	}

	mirror := &models.Transaction{
		UserID:          userID,
		Type:            models.TypeExpense,
		Amount:          amount,
		Category:        category,
		Description:     description,
		TransactionDate: expenseDate,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Expenses(tx).Create(ctx, expense)
		if err != nil {
			return err
		}
		expense = created

		if _, err := s.repomanager.Transactions(tx).Create(ctx, mirror); err != nil {
			return err
		}

		wallets := s.repomanager.Wallets(tx)
		if err := wallets.CreateIfMissing(ctx, userID); err != nil {
			return err
		}
		return wallets.Adjust(ctx, userID, -amount)
	}); err != nil {
		return nil, fmt.Errorf("error creating expense: %w", err)
	}

	return expense, nil
}

// List returns all of the user's expense rows, most recently created first.
func (s *ExpenseService) List(ctx context.Context, userID int64) ([]*models.Expense, error) {
	return s.repomanager.Expenses(s.db).List(ctx, userID)
}
