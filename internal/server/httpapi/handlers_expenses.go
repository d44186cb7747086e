package httpapi

import (
	"net/http"
	"strings"
)

type createExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	expenses, err := s.expenses.List(r.Context(), user.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"expenses": expenses})
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req createExpenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Category = strings.TrimSpace(req.Category)

	expense, err := s.expenses.Create(r.Context(), user.ID, req.Amount, req.Category, req.Description, req.Month, req.Year)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccessMessage(w, http.StatusCreated, "Expense added successfully", map[string]any{
		"expense": expense,
	})
}
