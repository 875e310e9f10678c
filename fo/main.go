package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/openfolio/folio/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, active only when a completion script calls us.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"login":     {Flags: map[string]complete.Predictor{"email": predict.Nothing, "password": predict.Nothing}},
			"logout":    {},
			"platforms": {},
			"connect":   {Flags: map[string]complete.Predictor{"retry": predict.Nothing, "cred": predict.Nothing}},
			"portfolio": {},
			"topic":     {Args: predict.Set{"readme", "connecting", "portfolio", "configuration", "*"}},
			"assist":    {},
		},
		Flags: map[string]complete.Predictor{"config": predict.Files("*.toml")},
	}
	completion.Complete("fo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
