// Package transactions provides the PostgreSQL-backed repository for ledger
// entries (the wallet_transactions table).
package transactions

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/dbx"
	"fintrack/internal/server/models"
)

// PostgresRepository implements ledger storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends one ledger entry. An empty category is stored as NULL and
// read back as "Other".
func (r *PostgresRepository) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO wallet_transactions (user_id, type, amount, category, description, transaction_date)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		t.UserID, t.Type, t.Amount, t.Category, t.Description, t.TransactionDate).
		Scan(&t.ID, &t.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if t.Category == "" {
		t.Category = "Other"
	}
	return t, nil
}

// List returns a page of the user's ledger entries matching filter, newest
// transaction date first (ties broken by insertion order), together with the
// total number of matching rows.
func (r *PostgresRepository) List(ctx context.Context, userID int64, filter models.TransactionFilter) ([]*models.Transaction, int, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	addCond := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if filter.Type != "" {
		addCond("type = $%d", filter.Type)
	}
	if filter.Category != "" {
		addCond("COALESCE(category, 'Other') = $%d", filter.Category)
	}
	if filter.DateFrom != nil {
		addCond("transaction_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCond("transaction_date <= $%d", *filter.DateTo)
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM wallet_transactions WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	query := `
		SELECT id, user_id, type, amount, COALESCE(category, 'Other'), COALESCE(description, ''), transaction_date, created_at
		FROM wallet_transactions
		WHERE ` + whereClause + `
		ORDER BY transaction_date DESC, id DESC
		LIMIT ` + strconv.Itoa(pageSize) + ` OFFSET ` + strconv.Itoa(offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Transaction
	for rows.Next() {
		var item models.Transaction
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Type, &item.Amount, &item.Category,
			&item.Description, &item.TransactionDate, &item.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// Delete removes the entry scoped to userID. An id belonging to another user
// (or no row at all) deletes nothing and returns nil, so callers cannot
// probe for foreign entries.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `
		DELETE FROM wallet_transactions
		WHERE id = $1 AND user_id = $2
	`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListForPeriod returns all of the user's entries with a transaction date in
// [from, to], oldest first. Used for statement exports.
func (r *PostgresRepository) ListForPeriod(ctx context.Context, userID int64, from, to time.Time) ([]*models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, COALESCE(category, 'Other'), COALESCE(description, ''), transaction_date, created_at
		FROM wallet_transactions
		WHERE user_id = $1 AND transaction_date BETWEEN $2 AND $3
		ORDER BY transaction_date, id
	`

	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Transaction
	for rows.Next() {
		var item models.Transaction
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Type, &item.Amount, &item.Category,
			&item.Description, &item.TransactionDate, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
