// Package report renders economies for the terminal: balance-sheet tables and
// indicator CSV exports. It only reads state; all mutation happens in the
// engine.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ledgersim-dev/ledgersim/internal/ledger"
	"github.com/ledgersim-dev/ledgersim/internal/model"
)

// WriteBalanceSheet renders one actor's sheet with accounts in category order,
// a Total row per category, and the closing Liabs & Eq check row.
func WriteBalanceSheet(w io.Writer, sheet *ledger.BalanceSheet) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t\n", sheet.Actor())

	totals := sheet.Totals()
	accounts := sheet.Accounts()
	categories := []struct {
		category model.Category
		total    string
	}{
		{model.CategoryAssets, totals.Assets.StringFixed(2)},
		{model.CategoryLiabilities, totals.Liabilities.StringFixed(2)},
		{model.CategoryEquity, totals.Equity.StringFixed(2)},
	}
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t\n", c.category)
		for _, acct := range accounts {
			if acct.Key.Category != c.category {
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\n", acct.Key.Name, acct.Balance.StringFixed(2))
		}
		fmt.Fprintf(tw, "  Total\t%s\n", c.total)
	}
	fmt.Fprintf(tw, "Liabs & Eq\t%s\n", totals.LiabsAndEq.StringFixed(2))

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("rendering %s balance sheet: %w", sheet.Actor(), err)
	}
	return nil
}
