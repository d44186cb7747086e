package models

// Period names the month a summary or comparison was computed for.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// TransactionCounts splits the number of ledger entries in a period by type.
type TransactionCounts struct {
	Total        int `json:"total"`
	IncomeCount  int `json:"income_count"`
	ExpenseCount int `json:"expense_count"`
}

// CategoryTotal is one row of the top-expense-categories ranking.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// Summary is the dashboard headline view for one month: the current wallet
// balance plus period-scoped income/expense aggregates.
type Summary struct {
	Period        Period            `json:"period"`
	WalletBalance float64           `json:"wallet_balance"`
	TotalIncome   float64           `json:"total_income"`
	TotalExpense  float64           `json:"total_expense"`
	Savings       float64           `json:"savings"`
	SavingsRate   float64           `json:"savings_rate"`
	Transactions  TransactionCounts `json:"transactions"`
	TopCategories []CategoryTotal   `json:"top_categories"`
}

// TrendPoint is one month of the trailing income/expense trend.
type TrendPoint struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	Income    float64 `json:"income"`
	Expense   float64 `json:"expense"`
}

// BudgetComparisonRow joins one budget against the expenses actually booked
// in its category and period.
type BudgetComparisonRow struct {
	Category       string  `json:"category"`
	BudgetAmount   float64 `json:"budget_amount"`
	ActualSpent    float64 `json:"actual_spent"`
	Remaining      float64 `json:"remaining"`
	PercentageUsed float64 `json:"percentage_used"`
}
