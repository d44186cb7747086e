package budgets

import (
	"context"

	"fintrack/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Budget) (*models.Budget, error)
	List(ctx context.Context, userID int64) ([]*models.Budget, error)
}
