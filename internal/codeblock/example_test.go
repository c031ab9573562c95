package codeblock

import (
	"strings"
	"testing"

	"fencebot/internal/detect"
)

func TestExamplePythonAliasCasingPreserved(t *testing.T) {
	t.Parallel()

	a := NewAdvisor(detect.NewHeuristic(3), nil)
	out := a.Example("PyThOn")
	if !strings.HasPrefix(out, "\\`\\`\\`PyThOn\nprint('Hello, world!')\n\\`\\`\\`") {
		t.Fatalf("escaped example mismatch: %q", out)
	}
	if !strings.Contains(out, "```PyThOn\nprint('Hello, world!')```") {
		t.Fatalf("rendered example mismatch: %q", out)
	}
}

func TestExampleForeignLanguagePlaceholder(t *testing.T) {
	t.Parallel()

	a := NewAdvisor(detect.NewHeuristic(3), nil)
	out := a.Example("Ruby")
	if !strings.HasPrefix(out, "\\`\\`\\`Ruby\n...\n\\`\\`\\`") {
		t.Fatalf("escaped example mismatch: %q", out)
	}
	if !strings.Contains(out, "```Ruby\n...```") {
		t.Fatalf("rendered example mismatch: %q", out)
	}
}

func TestExampleNoLanguage(t *testing.T) {
	t.Parallel()

	a := NewAdvisor(detect.NewHeuristic(3), nil)
	out := a.Example("")
	if !strings.HasPrefix(out, "\\`\\`\\`\nHello, world!\n\\`\\`\\`") {
		t.Fatalf("escaped example mismatch: %q", out)
	}
	if !strings.Contains(out, "**This will result in the following:**") {
		t.Fatalf("missing rendered section header: %q", out)
	}
}

func TestExampleTotalOverAdversarialInput(t *testing.T) {
	t.Parallel()

	a := NewAdvisor(detect.NewHeuristic(3), nil)
	// A tag containing fence characters duplicates cosmetically but never
	// fails.
	out := a.Example("```python")
	if out == "" {
		t.Fatalf("example must never be empty")
	}
}

func TestExampleCustomAliases(t *testing.T) {
	t.Parallel()

	a := NewAdvisor(detect.NewHeuristic(3), []string{"python", "cpython"})
	if out := a.Example("CPython"); !strings.Contains(out, "print('Hello, world!')") {
		t.Fatalf("configured alias not honored: %q", out)
	}
}
