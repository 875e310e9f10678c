package folio

import (
	"context"
	"time"
)

// Position is one holding of the aggregated portfolio, attributed to the
// platform it was fetched from.
type Position struct {
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name,omitempty"`
	Platform string   `json:"platform"` // source platform id
	Quantity Quantity `json:"quantity"`
	Price    Money    `json:"price"` // unit price
}

// Value returns the position's market value (price times quantity).
func (p Position) Value() Money { return p.Price.Mul(p.Quantity) }

// Portfolio is the normalized multi-source portfolio as served by the
// aggregation backend. The numeric normalization itself happens server side;
// this is the client's view of it.
type Portfolio struct {
	AsOf      time.Time  `json:"as_of"`
	Positions []Position `json:"positions"`
}

// Total sums the value of all positions held in the given currency.
// Positions in other currencies are skipped, not converted.
func (p *Portfolio) Total(currency string) Money {
	total := M(0, currency)
	for _, pos := range p.Positions {
		if v := pos.Value(); v.Currency() == currency {
			total = total.Add(v)
		}
	}
	return total
}

// PlatformIDs returns the distinct source platforms, in first-seen order.
func (p *Portfolio) PlatformIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, pos := range p.Positions {
		if _, ok := seen[pos.Platform]; ok {
			continue
		}
		seen[pos.Platform] = struct{}{}
		ids = append(ids, pos.Platform)
	}
	return ids
}

// PortfolioProvider fetches the user's aggregated portfolio. It is an
// external collaborator contract: implementations live in backend adapter
// packages (bridge) or in the mock layer (demo).
type PortfolioProvider interface {
	FetchPortfolio(ctx context.Context) (*Portfolio, error)
}

// Platform is a third-party financial platform that can be linked.
type Platform struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"` // "broker", "bank", "retirement"...
}
