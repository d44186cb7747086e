package expenses

import (
	"context"

	"fintrack/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Expense) (*models.Expense, error)
	List(ctx context.Context, userID int64) ([]*models.Expense, error)
}
