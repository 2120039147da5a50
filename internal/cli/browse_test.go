package cli

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"morehop/internal/aggregate"
	"morehop/internal/ui/tables"
)

func TestBrowseRequiresTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(io.Writer) bool { return false }

	code, _, stderr := runCommand(t, "browse", "--sample")
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr, "interactive terminal") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestBrowseRunsProgram(t *testing.T) {
	originalTerminal := isTerminal
	originalRun := runBrowser
	t.Cleanup(func() {
		isTerminal = originalTerminal
		runBrowser = originalRun
	})
	isTerminal = func(io.Writer) bool { return true }
	var got tea.Model
	runBrowser = func(model tea.Model, _ io.Writer) error {
		got = model
		return nil
	}

	code, _, stderr := runCommand(t, "browse", "--sample", "--no-color")
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	browser, ok := got.(tables.Browser)
	if !ok {
		t.Fatalf("expected tables.Browser, got %T", got)
	}
	if browser.Active() != aggregate.TableHops {
		t.Fatalf("unexpected active table %s", browser.Active())
	}
}
