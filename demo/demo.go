// Package demo provides canned collaborators for mock mode, so the whole CLI
// is exercisable without a bridge deployment: a static platform catalog and a
// static portfolio. Connections in mock mode run on the link session's
// simulated fallback connector.
package demo

import (
	"context"
	"time"

	"github.com/openfolio/folio"
)

// Platforms returns the demo platform catalog.
func Platforms() []folio.Platform {
	return []folio.Platform{
		{ID: "acme-broker", Name: "Acme Brokerage", Kind: "broker"},
		{ID: "first-bank", Name: "First Bank", Kind: "bank"},
		{ID: "oak-retirement", Name: "Oak Retirement", Kind: "retirement"},
	}
}

// Provider serves a static demo portfolio.
type Provider struct{}

// FetchPortfolio implements folio.PortfolioProvider with canned positions
// spread over the demo platforms.
func (Provider) FetchPortfolio(_ context.Context) (*folio.Portfolio, error) {
	return &folio.Portfolio{
		AsOf: time.Now(),
		Positions: []folio.Position{
			{Symbol: "VTI", Name: "Total Stock Market ETF", Platform: "acme-broker", Quantity: folio.Q(42), Price: folio.M(251.30, "USD")},
			{Symbol: "BND", Name: "Total Bond Market ETF", Platform: "acme-broker", Quantity: folio.Q(120), Price: folio.M(73.85, "USD")},
			{Symbol: "CASH", Name: "Checking balance", Platform: "first-bank", Quantity: folio.Q(1), Price: folio.M(5230.18, "USD")},
			{Symbol: "TDF2050", Name: "Target Date 2050", Platform: "oak-retirement", Quantity: folio.Q(310), Price: folio.M(28.42, "USD")},
		},
	}, nil
}

var _ folio.PortfolioProvider = Provider{}
