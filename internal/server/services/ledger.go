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

// LedgerService owns the append-only transaction history and the wallet
// balance derived from it. Appending an entry and adjusting the balance
// happen in one database transaction, so a movement is never half-recorded.
type LedgerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewLedgerService constructs a LedgerService.
func NewLedgerService(db *sql.DB, m repomanager.RepositoryManager) *LedgerService {
	return &LedgerService{db: db, repomanager: m}
}

// Append validates and records one money movement, then moves the wallet
// balance in the entry's direction. Both writes commit together or not at
// all.
func (s *LedgerService) Append(ctx context.Context, userID int64, entryType string, amount float64, category, description string, date time.Time) (*models.Transaction, error) {
	if entryType != models.TypeIncome && entryType != models.TypeExpense {
		return nil, fmt.Errorf("%w: type must be income or expense", common.ErrorValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", common.ErrorValidation)
	}

	entry := &models.Transaction{
		UserID:          userID,
		Type:            entryType,
		Amount:          amount,
		Category:        category,
		Description:     description,
		TransactionDate: date,
	}

	delta := amount
	if entryType == models.TypeExpense {
		delta = -amount
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Transactions(tx).Create(ctx, entry)
		if err != nil {
			return err
		}
		entry = created

		wallets := s.repomanager.Wallets(tx)
		if err := wallets.CreateIfMissing(ctx, userID); err != nil {
			return err
		}
		return wallets.Adjust(ctx, userID, delta)
	}); err != nil {
		return nil, fmt.Errorf("error appending transaction: %w", err)
	}

	return entry, nil
}

// List returns a page of the user's ledger entries matching filter plus the
// total number of matches.
func (s *LedgerService) List(ctx context.Context, userID int64, filter models.TransactionFilter) ([]*models.Transaction, int, error) {
	if filter.Type != "" && filter.Type != models.TypeIncome && filter.Type != models.TypeExpense {
		return nil, 0, fmt.Errorf("%w: type must be income or expense", common.ErrorValidation)
	}
	return s.repomanager.Transactions(s.db).List(ctx, userID, filter)
}

// Remove deletes the entry scoped to its owner. Removing an id that does not
// exist, or belongs to someone else, is a silent no-op. The wallet balance
// is deliberately left untouched: deletion is an audit-rare correction, and
// rewriting the balance would contradict previously exported statements.
func (s *LedgerService) Remove(ctx context.Context, userID, entryID int64) error {
	return s.repomanager.Transactions(s.db).Delete(ctx, userID, entryID)
}

// GetBalance returns the user's current wallet balance (0 without a wallet).
func (s *LedgerService) GetBalance(ctx context.Context, userID int64) (float64, error) {
	return s.repomanager.Wallets(s.db).GetBalance(ctx, userID)
}
