// Package renderer formats folio data structures as markdown strings, to be
// printed raw or through a terminal markdown renderer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/openfolio/folio"
)

// statusGlyph maps a connection status to its display glyph.
func statusGlyph(s folio.ConnectionStatus) string {
	switch s {
	case folio.StatusConnected:
		return "✅"
	case folio.StatusFailed:
		return "❌"
	case folio.StatusConnecting:
		return "⏳"
	default:
		return "·"
	}
}

// LinkMarkdown renders the connection ledger as a markdown progress report.
func LinkMarkdown(records []folio.ConnectionRecord, connected int, complete bool) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "## Linking Platforms\n\n")

	if len(records) == 0 {
		fmt.Fprintf(b, "No platforms to link.\n")
		return b.String()
	}

	fmt.Fprintf(b, "| # | Platform | Status | |\n")
	fmt.Fprintf(b, "|--:|:---|:---|:---|\n")
	for i, r := range records {
		note := ""
		if r.Status == folio.StatusFailed && r.Err != nil {
			note = r.Err.Error()
		}
		fmt.Fprintf(b, "| %d | %s | %s %s | %s |\n", i+1, r.PlatformID, statusGlyph(r.Status), r.Status, note)
	}
	fmt.Fprintf(b, "\n%d/%d platforms connected.\n", connected, len(records))
	if complete {
		fmt.Fprintf(b, "\nAll platforms processed. Failed platforms can be retried.\n")
	}
	return b.String()
}
