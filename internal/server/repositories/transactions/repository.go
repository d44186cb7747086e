package transactions

import (
	"context"
	"time"

	"fintrack/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error)
	List(ctx context.Context, userID int64, filter models.TransactionFilter) ([]*models.Transaction, int, error)
	Delete(ctx context.Context, userID, id int64) error
	ListForPeriod(ctx context.Context, userID int64, from, to time.Time) ([]*models.Transaction, error)
}
