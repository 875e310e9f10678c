// Package folio provides the client-side logic of a portfolio-aggregation
// product: it models a multi-source investment portfolio and drives the
// process of linking third-party financial platforms to a user account.
//
// The core functionalities include:
//   - Link Orchestration: a LinkSession walks an ordered set of platforms,
//     attempts each connection through a caller-supplied Connector, tracks
//     per-platform status in a connection ledger, and supports out-of-order
//     manual retries without disturbing the automatic sequence.
//   - Portfolio Model: positions aggregated across platforms, with exact
//     monetary arithmetic and per-source attribution.
//   - Collaborator Contracts: the Connector and PortfolioProvider interfaces
//     that backend adapters (see the bridge package) implement.
//
// This package serves as the foundational logic for the `fo` command-line
// tool.
package folio
