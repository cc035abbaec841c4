package http

import (
	"net/http"

	"pft/internal/core"
	"pft/internal/ledger"
)

type createExpenseRequest struct {
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

type deleteExpenseRequest struct {
	ID string `json:"id"`
}

type expenseResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	AmountCents int64  `json:"amountCents"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

func toExpenseResponse(e core.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount.String(),
		AmountCents: e.Amount.Cents,
		Category:    e.Category,
		Date:        e.Date.String(),
	}
}

// handleExpenses serves the ledger collection: GET lists, POST adds,
// DELETE removes by id. Every method requires an active session.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Require(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.listExpenses(w, r, sess)
	case http.MethodPost:
		s.createExpense(w, r, sess)
	case http.MethodDelete:
		s.deleteExpense(w, r, sess)
	default:
		methodNotAllowed(w, "GET, POST, DELETE")
	}
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request, sess core.SessionAccount) {
	expenses := s.ledger.Load(r.Context(), sess)
	out := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request, sess core.SessionAccount) {
	var req createExpenseRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := s.ledger.Add(r.Context(), sess, ledger.AddInput{
		Title:    sanitizeInput(req.Title),
		Amount:   req.Amount,
		Category: sanitizeInput(req.Category),
		Date:     req.Date,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	// The ledger changed; cached summaries may now be stale.
	s.summaryCache.Purge()

	respondJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request, sess core.SessionAccount) {
	var req deleteExpenseRequest
	if err := decodeBody(r, &req); err != nil || req.ID == "" {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.ledger.Remove(r.Context(), sess, req.ID); err != nil {
		respondDomainError(w, err)
		return
	}

	s.summaryCache.Purge()

	respondJSON(w, http.StatusNoContent, nil)
}
