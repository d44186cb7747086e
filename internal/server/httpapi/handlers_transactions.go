package httpapi

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/server/models"
)

type createTransactionRequest struct {
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	query := r.URL.Query()

	filter := models.TransactionFilter{
		Type:     strings.TrimSpace(query.Get("type")),
		Category: strings.TrimSpace(query.Get("category")),
		DateFrom: queryDate(query, "date_from"),
		DateTo:   queryDate(query, "date_to"),
		Page:     queryInt(query, "page", 1),
		PageSize: queryInt(query, "page_size", 20),
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	entries, total, err := s.ledger.List(r.Context(), user.ID, filter)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))
	writeSuccess(w, http.StatusOK, map[string]any{
		"transactions": entries,
		"total":        total,
		"page":         filter.Page,
		"total_pages":  totalPages,
	})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req createTransactionRequest
	if err := decodeBody(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.TransactionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.TransactionDate)
		if err != nil {
			writeFail(w, http.StatusBadRequest, "transaction_date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	entry, err := s.ledger.Append(r.Context(), user.ID, req.Type, req.Amount, req.Category, req.Description, date)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccessMessage(w, http.StatusCreated, "Transaction added successfully", map[string]any{
		"transaction": entry,
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		writeFail(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	if err := s.ledger.Remove(r.Context(), user.ID, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccessMessage(w, http.StatusOK, "Transaction deleted", nil)
}

func (s *Server) handleGetWallet(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	balance, err := s.ledger.GetBalance(r.Context(), user.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"balance": balance})
}

// handleWalletTransaction is the wallet-centric alias for appending a ledger
// entry; it exists so the balance page can post without knowing the ledger
// route.
func (s *Server) handleWalletTransaction(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req createTransactionRequest
	if err := decodeBody(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.TransactionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.TransactionDate)
		if err != nil {
			writeFail(w, http.StatusBadRequest, "transaction_date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	entry, err := s.ledger.Append(r.Context(), user.ID, req.Type, req.Amount, req.Category, req.Description, date)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	balance, err := s.ledger.GetBalance(r.Context(), user.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccessMessage(w, http.StatusCreated, "Transaction added and balance updated", map[string]any{
		"transaction": entry,
		"balance":     balance,
	})
}
