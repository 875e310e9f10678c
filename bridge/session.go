package bridge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const sessionFile = "fo-bridge-session"

func sessionPath() string { return filepath.Join(os.TempDir(), sessionFile) }

// SaveToken stores the session token for later runs of the CLI.
func SaveToken(token string) error {
	if err := os.WriteFile(sessionPath(), []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to save bridge session: %w", err)
	}
	return nil
}

// LoadToken returns the stored session token.
func LoadToken() (string, error) {
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return "", fmt.Errorf("bridge session not found. Please run 'fo login' first: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ClearToken forgets the stored session.
func ClearToken() error {
	err := os.Remove(sessionPath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear bridge session: %w", err)
	}
	return nil
}
