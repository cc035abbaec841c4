package report

import (
	"testing"

	"pft/internal/core"
)

func expense(title string, cents int64, category, date string) core.Expense {
	d, _ := core.ParseDate(date)
	return core.Expense{Title: title, Amount: core.Money{Cents: cents}, Category: category, Date: d}
}

// demoExpenses is the demo account's ledger: Food 72.45, Transport 25.00,
// Entertainment 15.50, all in November 2025.
func demoExpenses() []core.Expense {
	return []core.Expense{
		expense("Groceries", 7245, "Food", "2025-11-20"),
		expense("Bus Pass", 2500, "Transport", "2025-11-20"),
		expense("Movie Night", 1550, "Entertainment", "2025-11-20"),
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(demoExpenses())
	if s.Total.Cents != 11295 {
		t.Fatalf("total: expected 11295 cents, got %d", s.Total.Cents)
	}
	if s.Average.Cents != 3765 {
		t.Fatalf("average: expected 3765 cents, got %d", s.Average.Cents)
	}
	if s.Count != 3 {
		t.Fatalf("count: expected 3, got %d", s.Count)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total.Cents != 0 || s.Average.Cents != 0 || s.Count != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestSummarizeAverageRoundsHalfUp(t *testing.T) {
	// 100 + 101 = 201, /2 = 100.5 -> 101
	s := Summarize([]core.Expense{
		expense("a", 100, "X", "2025-01-01"),
		expense("b", 101, "X", "2025-01-01"),
	})
	if s.Average.Cents != 101 {
		t.Fatalf("expected half-up average 101, got %d", s.Average.Cents)
	}
}

func TestFilterMonth(t *testing.T) {
	expenses := []core.Expense{
		expense("in", 100, "X", "2025-11-05"),
		expense("other month", 200, "X", "2025-10-05"),
		expense("other year", 300, "X", "2024-11-05"),
		{Title: "unparsed date", Amount: core.Money{Cents: 400}, Category: "X"}, // zero date
		expense("also in", 500, "X", "2025-11-30"),
	}
	got := FilterMonth(expenses, 2025, 11)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Title != "in" || got[1].Title != "also in" {
		t.Fatalf("wrong records: %+v", got)
	}
}

func TestCategoryTotalsPartitionSumsToTotal(t *testing.T) {
	expenses := demoExpenses()
	expenses = append(expenses, expense("Takeaway", 1200, "Food", "2025-11-22"))

	totals := CategoryTotals(expenses)
	var sum int64
	for _, ca := range totals {
		sum += ca.Amount.Cents
	}
	if want := Summarize(expenses).Total.Cents; sum != want {
		t.Fatalf("category totals sum %d != overall total %d", sum, want)
	}

	// Food appears once, merged, in first-encountered position.
	if totals[0].Category != "Food" || totals[0].Amount.Cents != 8445 {
		t.Fatalf("unexpected first total: %+v", totals[0])
	}
	if len(totals) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(totals))
	}
}

func TestCategoryTotalsCaseSensitive(t *testing.T) {
	totals := CategoryTotals([]core.Expense{
		expense("a", 100, "food", "2025-11-01"),
		expense("b", 200, "Food", "2025-11-01"),
	})
	if len(totals) != 2 {
		t.Fatalf("expected case-sensitive grouping, got %+v", totals)
	}
}

func TestRankHighestLowest(t *testing.T) {
	ranked := Rank(CategoryTotals(demoExpenses()))

	hi, ok := Highest(ranked)
	if !ok || hi.Category != "Food" || hi.Amount.Cents != 7245 {
		t.Fatalf("highest: %+v ok=%v", hi, ok)
	}
	lo, ok := Lowest(ranked)
	if !ok || lo.Category != "Entertainment" || lo.Amount.Cents != 1550 {
		t.Fatalf("lowest: %+v ok=%v", lo, ok)
	}
}

func TestRankStableOnTies(t *testing.T) {
	totals := CategoryTotals([]core.Expense{
		expense("a", 500, "First", "2025-11-01"),
		expense("b", 500, "Second", "2025-11-01"),
		expense("c", 900, "Big", "2025-11-01"),
	})
	ranked := Rank(totals)
	if ranked[0].Category != "Big" || ranked[1].Category != "First" || ranked[2].Category != "Second" {
		t.Fatalf("tie break not stable: %+v", ranked)
	}
}

func TestRankEmpty(t *testing.T) {
	if _, ok := Highest(nil); ok {
		t.Fatal("expected no highest for empty input")
	}
	if _, ok := Lowest(nil); ok {
		t.Fatal("expected no lowest for empty input")
	}
}
