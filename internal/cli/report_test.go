package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReportWritesHTML(t *testing.T) {
	output := filepath.Join(t.TempDir(), "report.html")
	code, stdout, stderr := runCommand(t, "report", "--sample", "--output", output, "--title", "Sample hops")
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Report written to "+output) {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "<h1>Sample hops</h1>") || !strings.Contains(html, "<svg") {
		t.Fatalf("unexpected report contents")
	}
}

func TestReportRequiresOutput(t *testing.T) {
	code, _, stderr := runCommand(t, "report", "--sample")
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(stderr, "Missing --output") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}
