package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pft/internal/core"
	"pft/internal/report"
	"pft/internal/seed"
)

var (
	flagYear  int
	flagMonth int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the month's totals, category ranking and pie breakdown",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		sess, err := a.sessions.Require(cmd.Context())
		if err != nil {
			return err
		}

		year, month := flagYear, flagMonth
		if year == 0 {
			year = time.Now().Year()
		}
		if month == 0 {
			month = int(time.Now().Month())
		}

		expenses := report.FilterMonth(a.ledger.Load(cmd.Context(), sess), year, month)
		if len(expenses) == 0 {
			fmt.Printf("No data for %d-%02d\n", year, month)
			return nil
		}

		summary := report.Summarize(expenses)
		ranked := report.Rank(report.CategoryTotals(expenses))

		fmt.Printf("%d-%02d: %d expenses, total $%s, average $%s\n",
			year, month, summary.Count, summary.Total, summary.Average)

		if hi, ok := report.Highest(ranked); ok {
			fmt.Printf("Highest: %s ($%s)\n", hi.Category, hi.Amount)
		}
		if lo, ok := report.Lowest(ranked); ok {
			fmt.Printf("Lowest:  %s ($%s)\n", lo.Category, lo.Amount)
		}

		fmt.Println()
		for _, s := range report.PieSlices(ranked) {
			fmt.Printf("  %-20s %5.1f%%  $%s  %s\n",
				s.Category, s.Fraction*100, core.Money{Cents: s.Cents}, s.Color())
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the demo account when no accounts exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		now := time.Now()
		if err := seed.DemoIfEmpty(cmd.Context(), a.directory, a.ledger, now.Year(), int(now.Month())); err != nil {
			return err
		}
		fmt.Printf("Demo account is %s / %s\n", seed.DemoEmail, seed.DemoPassword)
		return nil
	},
}

func init() {
	summaryCmd.Flags().IntVar(&flagYear, "year", 0, "Calendar year (defaults to current)")
	summaryCmd.Flags().IntVar(&flagMonth, "month", 0, "Calendar month 1-12 (defaults to current)")
}
