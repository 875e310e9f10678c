package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openfolio/folio/renderer"
)

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "prints the aggregated portfolio" }
func (*portfolioCmd) Usage() string {
	return `fo portfolio:
  Prints the positions aggregated across connected platforms, with one
  total line per currency.
`
}

func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (*portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := provider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	pf, err := p.FetchPortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch the portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PortfolioMarkdown(pf))
	return subcommands.ExitSuccess
}
