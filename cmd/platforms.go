package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type platformsCmd struct{}

func (*platformsCmd) Name() string     { return "platforms" }
func (*platformsCmd) Synopsis() string { return "lists the platforms that can be linked" }
func (*platformsCmd) Usage() string {
	return `fo platforms

Lists the catalog of third-party platforms that can be linked to the account.
`
}

func (*platformsCmd) SetFlags(_ *flag.FlagSet) {}

func (*platformsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	platforms, err := catalog(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the platform catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "## Platforms\n\n")
	fmt.Fprintf(b, "| ID | Name | Kind |\n")
	fmt.Fprintf(b, "|:---|:---|:---|\n")
	for _, p := range platforms {
		fmt.Fprintf(b, "| %s | %s | %s |\n", p.ID, p.Name, p.Kind)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
