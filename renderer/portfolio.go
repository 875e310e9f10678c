package renderer

import (
	"fmt"
	"strings"

	"github.com/openfolio/folio"
)

// PortfolioMarkdown renders the aggregated portfolio as a markdown report:
// one row per position, then one total per currency encountered.
func PortfolioMarkdown(p *folio.Portfolio) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "## Portfolio\n\n")

	if len(p.Positions) == 0 {
		fmt.Fprintf(b, "The portfolio is empty. Link a platform first (`fo connect`).\n")
		return b.String()
	}
	if !p.AsOf.IsZero() {
		fmt.Fprintf(b, "As of %s.\n\n", p.AsOf.Format("2006-01-02 15:04"))
	}

	fmt.Fprintf(b, "| Symbol | Name | Platform | Quantity | Price | Value |\n")
	fmt.Fprintf(b, "|:---|:---|:---|--:|--:|--:|\n")
	var currencies []string
	seen := make(map[string]struct{})
	for _, pos := range p.Positions {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			pos.Symbol, pos.Name, pos.Platform, pos.Quantity, pos.Price, pos.Value())
		if cur := pos.Price.Currency(); cur != "" {
			if _, ok := seen[cur]; !ok {
				seen[cur] = struct{}{}
				currencies = append(currencies, cur)
			}
		}
	}

	fmt.Fprintf(b, "\n")
	for _, cur := range currencies {
		fmt.Fprintf(b, "Total (%s): **%s**\n", cur, p.Total(cur))
	}
	return b.String()
}
