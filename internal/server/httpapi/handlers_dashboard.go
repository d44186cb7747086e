package httpapi

import "net/http"

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	month, year := monthParams(r.URL.Query())

	summary, err := s.dashboard.Summary(r.Context(), user.ID, month, year)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, summary)
}

func (s *Server) handleRecentTransactions(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	limit := queryInt(r.URL.Query(), "limit", 10)

	entries, err := s.dashboard.RecentTransactions(r.Context(), user.ID, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"transactions": entries})
}

func (s *Server) handleMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	trend, err := s.dashboard.MonthlyTrend(r.Context(), user.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"trend": trend})
}

func (s *Server) handleBudgetComparison(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	month, year := monthParams(r.URL.Query())

	comparison, err := s.dashboard.BudgetComparison(r.Context(), user.ID, month, year)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"comparison": comparison})
}
