package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/openfolio/folio/agent"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chats with the connection assistant" }
func (*assistCmd) Usage() string {
	return `fo assist [first question]:
  Starts an interactive session with the assistant. It can inspect the
  outcome of the latest 'fo connect' run and help fix failed connections.
  Requires GEMINI_API_KEY in the environment.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (*assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot reach the assistant: %v\n", err)
		return subcommands.ExitFailure
	}

	expert := agent.NewLinker(loadLastLink)
	advisor := agent.New(os.Stdout, os.Stdin, expert)

	var prompts []string
	if question := strings.Join(f.Args(), " "); question != "" {
		prompts = append(prompts, question)
	}
	if err := advisor.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
