package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/common"
	"fintrack/internal/server/models"
)

func TestExpenseCreate_MirrorsIntoLedger(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	wallets := &fakeWalletsRepo{}
	ledger := &fakeTransactionsRepo{}
	expRepo := &fakeExpensesRepo{}
	rm := &fakeRepoManager{e: expRepo, tr: ledger, w: wallets}
	s := NewExpenseService(db, rm)

	got, err := s.Create(context.Background(), 1, 75, "Transport", "bus pass", 8, 2026)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	wantDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if !got.ExpenseDate.Equal(wantDate) {
		t.Fatalf("expense must be dated to the first of the month: %v", got.ExpenseDate)
	}

	if len(ledger.created) != 1 {
		t.Fatalf("expected one mirrored ledger entry, got %d", len(ledger.created))
	}
	mirror := ledger.created[0]
	if mirror.Type != models.TypeExpense || mirror.Amount != 75 || mirror.Category != "Transport" {
		t.Fatalf("unexpected mirror entry: %+v", mirror)
	}
	if !mirror.TransactionDate.Equal(wantDate) {
		t.Fatalf("mirror entry date mismatch: %v", mirror.TransactionDate)
	}

	if len(wallets.adjusted) != 1 || wallets.adjusted[0] != -75 {
		t.Fatalf("expense must lower the balance by the amount, got %v", wallets.adjusted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestExpenseCreate_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{e: &fakeExpensesRepo{}, tr: &fakeTransactionsRepo{}, w: &fakeWalletsRepo{}}
	s := NewExpenseService(db, rm)

	tests := []struct {
		name     string
		amount   float64
		category string
		month    int
		year     int
	}{
		{"zero amount", 0, "Food", 8, 2026},
		{"empty category", 10, "", 8, 2026},
		{"bad month", 10, "Food", 13, 2026},
		{"missing year", 10, "Food", 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), 1, tt.amount, tt.category, "", tt.month, tt.year)
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("want ErrorValidation, got %v", err)
			}
		})
	}
}

func TestExpenseCreate_MirrorErrorRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	wallets := &fakeWalletsRepo{}
	rm := &fakeRepoManager{
		e:  &fakeExpensesRepo{},
		tr: &fakeTransactionsRepo{createErr: errBoom{}},
		w:  wallets,
	}
	s := NewExpenseService(db, rm)

	_, err := s.Create(context.Background(), 1, 75, "Transport", "", 8, 2026)
	if err == nil {
		t.Fatalf("expected error when the ledger mirror fails")
	}
	if len(wallets.adjusted) != 0 {
		t.Fatalf("balance must not move when the mirror fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestExpenseList(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	want := []*models.Expense{{ID: 1, Category: "Food", Amount: 120}}
	rm := &fakeRepoManager{e: &fakeExpensesRepo{listOut: want}}
	s := NewExpenseService(db, rm)

	got, err := s.List(context.Background(), 1)
	if err != nil || len(got) != 1 || got[0].Amount != 120 {
		t.Fatalf("List: got=%v err=%v", got, err)
	}
}
