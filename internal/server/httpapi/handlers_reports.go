package httpapi

import "net/http"

type exportStatementRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (s *Server) handleExportStatement(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req exportStatementRequest
	if err := decodeBody(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	url, entries, err := s.reports.ExportStatement(r.Context(), user.ID, req.Month, req.Year)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccessMessage(w, http.StatusOK, "Statement exported", map[string]any{
		"download_url": url,
		"entries":      entries,
	})
}
