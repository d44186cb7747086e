package services

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/common"
	"fintrack/internal/server/models"
	"fintrack/internal/server/repositories/repomanager"
)

// BudgetService manages the per-category monthly spending ceilings. Budgets
// are immutable once created; there is no update or delete operation.
type BudgetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewBudgetService constructs a BudgetService.
func NewBudgetService(db *sql.DB, m repomanager.RepositoryManager) *BudgetService {
	return &BudgetService{db: db, repomanager: m}
}

// Create inserts a budget for (category, month, year). A duplicate tuple for
// the same user yields common.ErrorBudgetExists.
func (s *BudgetService) Create(ctx context.Context, userID int64, category string, amount float64, month, year int) (*models.Budget, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", common.ErrorValidation)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", common.ErrorValidation)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", common.ErrorValidation)
	}
	if year < 1 {
		return nil, fmt.Errorf("%w: year is required", common.ErrorValidation)
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Month:    month,
		Year:     year,
	}

	created, err := s.repomanager.Budgets(s.db).Create(ctx, budget)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List returns all of the user's budgets, most recently created first.
func (s *BudgetService) List(ctx context.Context, userID int64) ([]*models.Budget, error) {
	return s.repomanager.Budgets(s.db).List(ctx, userID)
}
