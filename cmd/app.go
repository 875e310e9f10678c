// Package cmd implements the CLI application of the portfolio-aggregation
// client. A main package registers Commands on a subcommands.Commander and
// executes the user-selected one.
package cmd

import (
	"context"

	"github.com/google/subcommands"
	"github.com/openfolio/folio"
	"github.com/openfolio/folio/bridge"
	"github.com/openfolio/folio/demo"
)

// Commands lists every subcommand of the fo CLI, in help order.
var Commands = []subcommands.Command{
	&loginCmd{},
	&logoutCmd{},
	&platformsCmd{},
	&connectCmd{},
	&portfolioCmd{},
	&topicCmd{},
	&assistCmd{},
}

// newClient opens a bridge client for the stored user session.
func newClient(cfg Config) (*bridge.Client, error) {
	token, err := bridge.LoadToken()
	if err != nil {
		return nil, err
	}
	return bridge.New(cfg.BaseURL, token), nil
}

// catalog returns the linkable platforms for the current mode.
func catalog(ctx context.Context, cfg Config) ([]folio.Platform, error) {
	if cfg.Mock {
		return demo.Platforms(), nil
	}
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return client.Platforms(ctx)
}

// provider returns the portfolio source for the current mode.
func provider(cfg Config) (folio.PortfolioProvider, error) {
	if cfg.Mock {
		return demo.Provider{}, nil
	}
	return newClient(cfg)
}
