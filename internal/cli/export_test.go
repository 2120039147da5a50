package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"morehop/internal/dataset"
	duckdbtesting "morehop/internal/duckdb/testing"
)

func TestExportIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "morehop.duckdb")

	code, stdout, stderr := runCommand(t, "export", "--sample", "--db", dbPath)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Exported 4 records to "+dbPath+" (0 already present)") {
		t.Fatalf("unexpected stdout %q", stdout)
	}

	code, stdout, stderr = runCommand(t, "export", "--sample", "--db", dbPath)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Exported 0 records to "+dbPath+" (4 already present)") {
		t.Fatalf("unexpected stdout %q", stdout)
	}

	db := duckdbtesting.OpenFile(t, dbPath)
	var records int
	if err := db.QueryRow("SELECT count(*) FROM records").Scan(&records); err != nil {
		t.Fatalf("count records: %v", err)
	}
	if records != 4 {
		t.Fatalf("expected 4 records, got %d", records)
	}
}

func TestExportReplacesEditedRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "morehop.duckdb")
	records := []dataset.Record{
		{ID: "a", NoOfHops: intPtr(2), AnswerType: strPtr("number")},
		{ID: "b", NoOfHops: intPtr(3), AnswerType: strPtr("date")},
	}
	if code, _, stderr := runCommand(t, "export", "--data", writeJSONDataset(t, records), "--db", dbPath); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}

	records[0].Question = "edited"
	code, stdout, stderr := runCommand(t, "export", "--data", writeJSONDataset(t, records), "--db", dbPath)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Exported 1 records to "+dbPath+" (1 already present)") {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	if !strings.Contains(stdout, "Removed 1 records no longer in the dataset") {
		t.Fatalf("expected removal notice, got %q", stdout)
	}

	db := duckdbtesting.OpenFile(t, dbPath)
	var count int
	if err := db.QueryRow("SELECT count FROM v_hop_distribution WHERE no_of_hops = 2 AND answer_type = 'number'").Scan(&count); err != nil {
		t.Fatalf("query view: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected the edited record counted once, got %d", count)
	}
}

func TestExportRequiresDB(t *testing.T) {
	code, _, stderr := runCommand(t, "export", "--sample", "--config", writeFile(t, ".morehop.yml", ""))
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(stderr, "Missing --db") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}
