package wallets

import "context"

type Repository interface {
	CreateIfMissing(ctx context.Context, userID int64) error
	Adjust(ctx context.Context, userID int64, delta float64) error
	GetBalance(ctx context.Context, userID int64) (float64, error)
}
