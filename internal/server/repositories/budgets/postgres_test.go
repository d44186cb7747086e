package budgets

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"fintrack/internal/common"
	"fintrack/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `INSERT\s+INTO\s+budgets\s*\(user_id,\s*category,\s*amount,\s*month,\s*year\)`

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), time.Now())
	mock.ExpectQuery(q).
		WithArgs(int64(1), "Food", 300.0, 8, 2026).
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.Budget{
		UserID: 1, Category: "Food", Amount: 300, Month: 8, Year: 2026,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("unexpected budget: %+v", got)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+budgets`).
		WithArgs(int64(1), "Food", 300.0, 8, 2026).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Budget{
		UserID: 1, Category: "Food", Amount: 300, Month: 8, Year: 2026,
	})
	if !errors.Is(err, common.ErrorBudgetExists) {
		t.Fatalf("want common.ErrorBudgetExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+budgets`).
		WithArgs(int64(1), "Food", 300.0, 8, 2026).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Budget{
		UserID: 1, Category: "Food", Amount: 300, Month: 8, Year: 2026,
	})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `FROM\s+budgets\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s+DESC`

	rows := sqlmock.NewRows([]string{"id", "user_id", "category", "amount", "month", "year", "created_at"}).
		AddRow(int64(2), int64(1), "Rent", 900.0, 8, 2026, time.Now()).
		AddRow(int64(1), int64(1), "Food", 300.0, 8, 2026, time.Now())
	mock.ExpectQuery(q).WithArgs(int64(1)).WillReturnRows(rows)

	got, err := repo.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Category != "Rent" {
		t.Fatalf("unexpected budgets: %+v", got)
	}
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+budgets`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category", "amount", "month", "year", "created_at"}))

	got, err := repo.List(context.Background(), 9)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no budgets, got %+v", got)
	}
}
