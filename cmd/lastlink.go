package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openfolio/folio"
)

const lastLinkFile = "fo-last-link.json"

type linkReport struct {
	PlatformID string `json:"platform_id"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

// saveLastLink persists the outcome of the latest connect run so the
// assistant can answer questions about it later.
func saveLastLink(records []folio.ConnectionRecord) error {
	reports := make([]linkReport, len(records))
	for i, r := range records {
		reports[i] = linkReport{PlatformID: r.PlatformID, Status: r.Status.String()}
		if r.Err != nil {
			reports[i].Reason = r.Err.Error()
		}
	}
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), lastLinkFile), data, 0600)
}

// loadLastLink returns a readable summary of the latest connect run, or a
// placeholder when none was saved.
func loadLastLink() string {
	data, err := os.ReadFile(filepath.Join(os.TempDir(), lastLinkFile))
	if err != nil {
		return "No platform connection has been attempted yet. Run 'fo connect' first."
	}
	var reports []linkReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return "The saved connection report is unreadable. Run 'fo connect' again."
	}
	var sb strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&sb, "- %s: %s", r.PlatformID, r.Status)
		if r.Reason != "" {
			fmt.Fprintf(&sb, " (%s)", r.Reason)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
