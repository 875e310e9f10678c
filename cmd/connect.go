package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/subcommands"
	"github.com/openfolio/folio"
	"github.com/openfolio/folio/renderer"
)

// credFlags collects repeated -cred key=value flags.
type credFlags []string

func (c *credFlags) String() string { return strings.Join(*c, ", ") }

func (c *credFlags) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("credential %q is not of the form key=value", value)
	}
	*c = append(*c, value)
	return nil
}

// Map parses the collected flags into the credentials mapping forwarded to
// the connector. Nil when no flag was given.
func (c credFlags) Map() map[string]string {
	if len(c) == 0 {
		return nil
	}
	m := make(map[string]string, len(c))
	for _, kv := range c {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = v
	}
	return m
}

type connectCmd struct {
	retryFailed bool
	creds       credFlags
}

func (*connectCmd) Name() string     { return "connect" }
func (*connectCmd) Synopsis() string { return "links third-party platforms to the account" }
func (*connectCmd) Usage() string {
	return `fo connect [-retry] [-cred key=value ...] [platform-id ...]

Links the given platforms (all catalog platforms by default), one at a time,
in order. A failed platform does not stop the run. With -retry, failed
platforms are re-attempted once the run completes, forwarding the -cred
credentials (e.g. -cred otp=123456).
`
}

func (c *connectCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.retryFailed, "retry", false, "retry failed platforms after the run completes")
	f.Var(&c.creds, "cred", "credential to forward on retries, key=value (can be specified multiple times)")
}

func (c *connectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ids := f.Args()
	if len(ids) == 0 {
		platforms, err := catalog(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not load the platform catalog: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, p := range platforms {
			ids = append(ids, p.ID)
		}
	}

	// In mock mode the session falls back to its simulated connector.
	var connector folio.Connector
	if !cfg.Mock {
		client, err := newClient(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		connector = client.Connector()
	}

	printer := newProgressPrinter(os.Stdout)
	var session *folio.LinkSession
	session = folio.NewLinkSession(ids, connector, folio.Options{
		NoAutoStart: true,
		SettleDelay: cfg.SettleDelay(),
		OnChange:    func() { printer.update(session.Records()) },
	})
	defer session.Close()
	session.Start()

	select {
	case <-session.Done():
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "Interrupted.")
		return subcommands.ExitFailure
	}

	if c.retryFailed {
		creds := c.creds.Map()
		for i, r := range session.Records() {
			if r.Status == folio.StatusFailed {
				fmt.Printf("retrying %s...\n", r.PlatformID)
				session.Retry(i, creds)
			}
		}
		waitSettled(ctx, session)
	}

	records := session.Records()
	if err := saveLastLink(records); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save the link report: %v\n", err)
	}
	fmt.Println()
	printMarkdown(renderer.LinkMarkdown(records, session.ConnectedCount(), session.AllComplete()))
	return subcommands.ExitSuccess
}

// waitSettled blocks until no record is connecting anymore (retries have
// resolved) or the context is cancelled.
func waitSettled(ctx context.Context, session *folio.LinkSession) {
	t := time.NewTicker(50 * time.Millisecond)
	defer t.Stop()
	for {
		settled := true
		for _, r := range session.Records() {
			if r.Status == folio.StatusConnecting {
				settled = false
				break
			}
		}
		if settled {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

// progressPrinter prints one line per record status change.
type progressPrinter struct {
	mu   sync.Mutex
	w    io.Writer
	last map[string]folio.ConnectionStatus
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w, last: make(map[string]folio.ConnectionStatus)}
}

func (p *progressPrinter) update(records []folio.ConnectionRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range records {
		if p.last[r.PlatformID] == r.Status {
			continue
		}
		p.last[r.PlatformID] = r.Status
		switch r.Status {
		case folio.StatusConnecting:
			fmt.Fprintf(p.w, "   %s: connecting...\n", r.PlatformID)
		case folio.StatusConnected:
			fmt.Fprintf(p.w, "✅ %s: connected\n", r.PlatformID)
		case folio.StatusFailed:
			fmt.Fprintf(p.w, "❌ %s: %v\n", r.PlatformID, r.Err)
		}
	}
}
