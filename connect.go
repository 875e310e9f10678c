package folio

import "context"

// ConnectionStatus is the state of a single platform in a link session.
type ConnectionStatus int

const (
	// StatusPending means the platform has not been attempted yet.
	StatusPending ConnectionStatus = iota
	// StatusConnecting means an attempt is currently in flight.
	StatusConnecting
	// StatusConnected means the last attempt succeeded.
	StatusConnected
	// StatusFailed means the last attempt failed. A failed platform remains
	// retryable indefinitely.
	StatusFailed
)

func (s ConnectionStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ConnectionRecord is one entry of the connection ledger: the link state of a
// single platform. Records are created once, at session start, and mutate by
// whole-record replacement only; the ledger order is the display order.
type ConnectionRecord struct {
	PlatformID string
	Status     ConnectionStatus
	Err        error // reason of the last failed attempt, nil otherwise
}

// Connector attempts to link one platform to the user account.
//
// A nil return is a successful connection; anything else (including a panic
// inside the connector) is recorded as a failure on the platform's ledger
// record and never propagated to the caller. Credentials are nil on automatic
// runs and carry user input on manual retries.
type Connector func(ctx context.Context, platformID string, credentials map[string]string) error

// CountConnected returns the number of ledger records in StatusConnected.
func CountConnected(records []ConnectionRecord) int {
	n := 0
	for _, r := range records {
		if r.Status == StatusConnected {
			n++
		}
	}
	return n
}
