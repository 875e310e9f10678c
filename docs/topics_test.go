package docs

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics parses readme.md and returns the topic names announced in its
// bullet list ("* name: description").
func readmeTopics(t *testing.T) []string {
	t.Helper()

	source, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	var names []string
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindListItem {
			return ast.WalkContinue, nil
		}
		line := string(n.Text(source))
		name, _, found := strings.Cut(line, ":")
		if !found {
			return ast.WalkContinue, nil
		}
		names = append(names, strings.TrimSpace(name))
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatalf("failed to walk readme.md: %v", err)
	}
	return names
}

// The readme and the topic files must stay in sync: every announced topic
// loads, and every topic file is announced.
func TestTopicsMatchReadme(t *testing.T) {
	announced := readmeTopics(t)
	if len(announced) == 0 {
		t.Fatal("no topics announced in readme.md")
	}

	for _, name := range announced {
		if _, err := Load(name); err != nil {
			t.Errorf("announced topic %q does not load: %v", name, err)
		}
	}

	all, err := All()
	if err != nil {
		t.Fatalf("All() unexpected error: %v", err)
	}
	for _, name := range all {
		found := false
		for _, a := range announced {
			if a == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic file %q is not announced in readme.md", name)
		}
	}
}

func TestLoadUnknownTopic(t *testing.T) {
	if _, err := Load("no-such-topic"); err == nil {
		t.Error("Load() of an unknown topic returned no error")
	}
}

func TestLoadStarExpandsAllTopics(t *testing.T) {
	content, err := Load("*")
	if err != nil {
		t.Fatalf("Load(*) unexpected error: %v", err)
	}
	for _, want := range []string{"# Connecting platforms", "# The aggregated portfolio", "# Configuration"} {
		if !strings.Contains(content, want) {
			t.Errorf("Load(*) missing section %q", want)
		}
	}
}
