package httpapi

import (
	"net/http"
	"strings"
)

type createBudgetRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	budgets, err := s.budgets.List(r.Context(), user.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"budgets": budgets})
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req createBudgetRequest
	if err := decodeBody(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Category = strings.TrimSpace(req.Category)

	budget, err := s.budgets.Create(r.Context(), user.ID, req.Category, req.Amount, req.Month, req.Year)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccessMessage(w, http.StatusCreated, "Budget created successfully", map[string]any{
		"budget": budget,
	})
}
