package folio

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Defaults for the link session timings. All of them can be overridden
// through Options.
const (
	// DefaultSettleDelay is the pause between a recorded outcome and the next
	// automatic attempt (or run completion).
	DefaultSettleDelay = 500 * time.Millisecond
	// DefaultSimulateMin and DefaultSimulateMax bound the randomized latency
	// of the simulated connector used when no Connector is supplied.
	DefaultSimulateMin = 1500 * time.Millisecond
	DefaultSimulateMax = 3000 * time.Millisecond
	// DefaultSimulateSuccessRate is the probability that a simulated attempt
	// succeeds.
	DefaultSimulateSuccessRate = 0.9
)

// Options tunes a LinkSession. The zero value gives the production defaults:
// automatic start and the package default delays.
type Options struct {
	// NoAutoStart defers sequencing until an explicit Start call.
	NoAutoStart bool
	// SettleDelay overrides DefaultSettleDelay when positive.
	SettleDelay time.Duration
	// SimulateMin/SimulateMax override the simulated connector latency bounds
	// when positive.
	SimulateMin time.Duration
	SimulateMax time.Duration
	// SimulateSuccessRate overrides DefaultSimulateSuccessRate when positive.
	SimulateSuccessRate float64
	// Rand is the randomness source of the simulated connector. Tests inject
	// a seeded source; nil falls back to a time-seeded one.
	Rand *rand.Rand
	// OnChange is invoked after every ledger or completion change, outside
	// the session lock. UIs use it to re-render from Records().
	OnChange func()
}

// LinkSession orchestrates the connection of an ordered set of platforms.
//
// The session owns the connection ledger. A single sequencer goroutine walks
// the ledger one platform at a time; Retry re-attempts a specific record out
// of sequence. All state is read through snapshot accessors, so a session can
// be observed concurrently while it runs.
//
// A session is single-use: it is created for one set of platforms and
// discarded with Close. Attempts still in flight when Close is called resolve
// into nothing; they can never write into a discarded ledger.
type LinkSession struct {
	mu       sync.Mutex
	records  []ConnectionRecord
	cursor   int
	started  bool
	complete bool
	closed   bool

	connector Connector
	settle    time.Duration
	simMin    time.Duration
	simMax    time.Duration
	simRate   float64
	rng       *rand.Rand
	onChange  func()

	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
}

// NewLinkSession creates a session for the given platform ids, in order.
// The caller is expected to pass a deduplicated list.
//
// A nil connector selects the simulated fallback, which exists so the UI is
// exercisable without a live backend; production callers always supply a real
// Connector. An empty id list yields an immediately complete session.
func NewLinkSession(platformIDs []string, connector Connector, opts Options) *LinkSession {
	s := &LinkSession{
		records:   make([]ConnectionRecord, len(platformIDs)),
		cursor:    -1,
		connector: connector,
		settle:    DefaultSettleDelay,
		simMin:    DefaultSimulateMin,
		simMax:    DefaultSimulateMax,
		simRate:   DefaultSimulateSuccessRate,
		rng:       opts.Rand,
		onChange:  opts.OnChange,
		done:      make(chan struct{}),
	}
	for i, id := range platformIDs {
		s.records[i] = ConnectionRecord{PlatformID: id, Status: StatusPending}
	}
	if opts.SettleDelay > 0 {
		s.settle = opts.SettleDelay
	}
	if opts.SimulateMin > 0 {
		s.simMin = opts.SimulateMin
	}
	if opts.SimulateMax > 0 {
		s.simMax = opts.SimulateMax
	}
	if opts.SimulateSuccessRate > 0 {
		s.simRate = opts.SimulateSuccessRate
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	if len(s.records) == 0 {
		// Nothing to link: the run is complete before it starts.
		s.complete = true
		close(s.done)
		return s
	}
	if !opts.NoAutoStart {
		s.Start()
	}
	return s
}

// Start launches the sequencer. It is idempotent: re-invoking it while a run
// is in progress (or after completion) does nothing, so callers may wire it
// to re-entrant UI setup paths safely.
func (s *LinkSession) Start() {
	s.mu.Lock()
	if s.started || s.complete || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()
	go s.run()
}

// run is the sequencer: strict forward order, one attempt in flight at a
// time, a settle delay after each recorded outcome.
func (s *LinkSession) run() {
	last := len(s.records) - 1
	for i := 0; i <= last; i++ {
		id, ok := s.beginAttempt(i, true)
		if !ok {
			return
		}
		err := s.attempt(s.ctx, id, nil)
		if !s.finishAttempt(i, err) {
			return
		}
		if !s.settleDown() {
			return
		}
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.complete = true
	close(s.done)
	notify := s.onChange
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
}

// beginAttempt transitions record i to connecting. When advance is true it
// also moves the cursor (sequencer path); retries leave the cursor alone.
// It reports false if the session was discarded.
func (s *LinkSession) beginAttempt(i int, advance bool) (platformID string, ok bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", false
	}
	if advance {
		s.cursor = i
	}
	r := s.records[i]
	r.Status = StatusConnecting
	r.Err = nil
	s.records[i] = r
	notify := s.onChange
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
	return r.PlatformID, true
}

// finishAttempt records the outcome of an attempt on record i. It reports
// false if the session was discarded, in which case nothing was written.
func (s *LinkSession) finishAttempt(i int, err error) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	r := s.records[i]
	if err != nil {
		r.Status = StatusFailed
		r.Err = err
	} else {
		r.Status = StatusConnected
		r.Err = nil
	}
	s.records[i] = r
	notify := s.onChange
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
	return true
}

// attempt invokes the connector (or the simulated fallback) for one platform.
// A connector panic is absorbed into an error outcome.
func (s *LinkSession) attempt(ctx context.Context, platformID string, credentials map[string]string) (err error) {
	if s.connector == nil {
		return s.simulate(ctx)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("connector panicked on %q: %v", platformID, r)
		}
	}()
	return s.connector(ctx, platformID, credentials)
}

// settleDown waits the settle delay, or gives up when the session is closed.
func (s *LinkSession) settleDown() bool {
	t := time.NewTimer(s.settle)
	defer t.Stop()
	select {
	case <-s.ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Retry re-attempts the connection of the record at index, forwarding the
// given credentials to the connector. An out-of-range index is a no-op: the
// UI simply has no retry affordance for a record that does not exist.
//
// The retry runs concurrently with the sequencer and writes only its own
// record; it never moves the cursor and never resets completion. Retrying the
// index the sequencer is currently processing is not protected beyond last
// write wins, and callers should avoid it.
func (s *LinkSession) Retry(index int, credentials map[string]string) {
	if index < 0 || index >= len(s.records) {
		return
	}
	id, ok := s.beginAttempt(index, false)
	if !ok {
		return
	}
	go func() {
		err := s.attempt(s.ctx, id, credentials)
		s.finishAttempt(index, err)
	}()
}

// Records returns a snapshot copy of the connection ledger.
func (s *LinkSession) Records() []ConnectionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ConnectionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// CurrentIndex returns the ledger index the sequencer is processing, or -1
// before the run starts. It is monotonically non-decreasing; retries do not
// move it.
func (s *LinkSession) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// ConnectedCount returns the number of successfully linked platforms.
func (s *LinkSession) ConnectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CountConnected(s.records)
}

// AllComplete reports whether the sequencer has advanced past the last record
// and its settle delay has elapsed. It is a fact owned by the run, not
// derivable from record statuses (an aborted run leaves pending records
// without ever completing), and once true it stays true for the session.
func (s *LinkSession) AllComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// Done returns a channel closed when the run completes. It never closes for
// a session discarded before completion.
func (s *LinkSession) Done() <-chan struct{} {
	return s.done
}

// Close discards the session. In-flight attempts and pending timers are
// cancelled, and any of their late resolutions are dropped before touching
// the ledger. Close is idempotent.
func (s *LinkSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}
