package http

import (
	"fmt"
	"net/http"

	"pft/internal/core"
	"pft/internal/report"
)

type categoryAmountResponse struct {
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	AmountCents int64  `json:"amountCents"`
}

type summaryResponse struct {
	Year         int                      `json:"year"`
	Month        int                      `json:"month"`
	Total        string                   `json:"total"`
	TotalCents   int64                    `json:"totalCents"`
	Average      string                   `json:"average"`
	AverageCents int64                    `json:"averageCents"`
	Count        int                      `json:"count"`
	Categories   []categoryAmountResponse `json:"categories"`
	Highest      *categoryAmountResponse  `json:"highest"`
	Lowest       *categoryAmountResponse  `json:"lowest"`
	Slices       []report.Slice           `json:"slices"`
	NoData       bool                     `json:"noData"`
}

func toCategoryAmountResponse(ca core.CategoryAmount) categoryAmountResponse {
	return categoryAmountResponse{
		Category:    ca.Category,
		Amount:      ca.Amount.String(),
		AmountCents: ca.Amount.Cents,
	}
}

// handleSummary reports the month's totals, category ranking and pie
// geometry. Year and month come from the query string, defaulting to the
// current calendar month.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	sess, err := s.sessions.Require(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	year, month := parseYearMonth(r)
	cacheKey := fmt.Sprintf("%s:%d:%d", sess.Email, year, month)
	if cached, ok := s.summaryCache.Get(cacheKey); ok {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	monthExpenses := report.FilterMonth(s.ledger.Load(r.Context(), sess), year, month)
	summary := report.Summarize(monthExpenses)
	ranked := report.Rank(report.CategoryTotals(monthExpenses))

	resp := summaryResponse{
		Year:         year,
		Month:        month,
		Total:        summary.Total.String(),
		TotalCents:   summary.Total.Cents,
		Average:      summary.Average.String(),
		AverageCents: summary.Average.Cents,
		Count:        summary.Count,
		Categories:   make([]categoryAmountResponse, 0, len(ranked)),
		Slices:       report.PieSlices(ranked),
		NoData:       len(monthExpenses) == 0,
	}
	for _, ca := range ranked {
		resp.Categories = append(resp.Categories, toCategoryAmountResponse(ca))
	}
	if hi, ok := report.Highest(ranked); ok {
		v := toCategoryAmountResponse(hi)
		resp.Highest = &v
	}
	if lo, ok := report.Lowest(ranked); ok {
		v := toCategoryAmountResponse(lo)
		resp.Lowest = &v
	}

	s.summaryCache.Set(cacheKey, resp)
	respondJSON(w, http.StatusOK, resp)
}
