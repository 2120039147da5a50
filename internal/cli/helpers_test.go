package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"morehop/internal/dataset"
)

// runCommand executes the CLI and returns exit code and both streams.
func runCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// writeJSONDataset marshals records into a temp file.
func writeJSONDataset(t *testing.T, records []dataset.Record) string {
	t.Helper()
	payload, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal records: %v", err)
	}
	return writeFile(t, "morehopqa.json", string(payload))
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func strPtr(value string) *string {
	return &value
}

func intPtr(value int) *int {
	return &value
}
