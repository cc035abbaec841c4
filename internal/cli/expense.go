package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pft/internal/ledger"
)

var (
	flagTitle    string
	flagAmount   string
	flagCategory string
	flagDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense for the signed-in account",
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

		date := flagDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		expense, err := a.ledger.Add(cmd.Context(), sess, ledger.AddInput{
			Title:    flagTitle,
			Amount:   flagAmount,
			Category: flagCategory,
			Date:     date,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s — $%s [%s] on %s\n",
			expense.Title, expense.Amount, expense.Category, expense.Date)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the signed-in account's expenses, newest first",
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

		expenses := a.ledger.Load(cmd.Context(), sess)
		if len(expenses) == 0 {
			fmt.Println("No expenses recorded yet.")
			return nil
		}
		for _, e := range expenses {
			fmt.Printf("%s  %s  %-24s  $%8s  [%s]\n", e.ID, e.Date, e.Title, e.Amount, e.Category)
		}
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an expense by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		sess, err := a.sessions.Require(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.ledger.Remove(cmd.Context(), sess, args[0]); err != nil {
			return err
		}
		fmt.Println("Removed", args[0])
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&flagTitle, "title", "", "What the expense was for")
	addCmd.Flags().StringVar(&flagAmount, "amount", "", "Amount, e.g. 12.34")
	addCmd.Flags().StringVar(&flagCategory, "category", "", "Category label (defaults to Other)")
	addCmd.Flags().StringVar(&flagDate, "date", "", "Date as YYYY-MM-DD (defaults to today)")
}
