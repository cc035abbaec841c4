// Package report computes summary statistics and pie-chart geometry over
// a loaded expense sequence. Everything here is a pure function: no
// persistence, no clock reads. The reference year and month are explicit
// inputs so callers decide what "current month" means.
package report

import (
	"sort"

	"pft/internal/core"
)

// Summary aggregates a sequence of expenses.
type Summary struct {
	Total   core.Money
	Average core.Money
	Count   int
}

// Summarize sums the amounts in cents and derives the half-up-rounded
// average. An empty sequence yields zeros.
func Summarize(expenses []core.Expense) Summary {
	var total int64
	for _, e := range expenses {
		total += e.Amount.Cents
	}
	count := len(expenses)
	var average int64
	if count > 0 {
		average = (2*total + int64(count)) / (2 * int64(count))
	}
	return Summary{
		Total:   core.Money{Cents: total},
		Average: core.Money{Cents: average},
		Count:   count,
	}
}

// FilterMonth keeps the expenses dated in the given calendar year and
// month. Month is 1-12. Records whose date failed to parse at load time
// carry a zero date and are excluded, not errors.
func FilterMonth(expenses []core.Expense, year, month int) []core.Expense {
	var out []core.Expense
	for _, e := range expenses {
		if e.Date.IsZero() {
			continue
		}
		if e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// CategoryTotals groups amounts by exact category string. The result
// preserves first-encountered category order, which later gives Rank a
// deterministic tie break.
func CategoryTotals(expenses []core.Expense) []core.CategoryAmount {
	index := make(map[string]int)
	var totals []core.CategoryAmount
	for _, e := range expenses {
		if i, ok := index[e.Category]; ok {
			totals[i].Amount.Cents += e.Amount.Cents
			continue
		}
		index[e.Category] = len(totals)
		totals = append(totals, core.CategoryAmount{Category: e.Category, Amount: e.Amount})
	}
	return totals
}

// Rank orders category totals descending by amount. The sort is stable,
// so ties keep the first-encountered order from CategoryTotals.
func Rank(totals []core.CategoryAmount) []core.CategoryAmount {
	ranked := append([]core.CategoryAmount(nil), totals...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.Cents > ranked[j].Amount.Cents
	})
	return ranked
}

// Highest returns the top-ranked category. ok is false when there are no
// totals; the caller renders that as "—".
func Highest(ranked []core.CategoryAmount) (core.CategoryAmount, bool) {
	if len(ranked) == 0 {
		return core.CategoryAmount{}, false
	}
	return ranked[0], true
}

// Lowest returns the bottom-ranked category.
func Lowest(ranked []core.CategoryAmount) (core.CategoryAmount, bool) {
	if len(ranked) == 0 {
		return core.CategoryAmount{}, false
	}
	return ranked[len(ranked)-1], true
}
