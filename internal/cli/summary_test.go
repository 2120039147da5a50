package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"morehop/internal/dataset"
)

func TestSummarySample(t *testing.T) {
	code, stdout, stderr := runCommand(t, "summary", "--sample", "--no-color")
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	for _, want := range []string{"Dataset sample", "Hop-depth distribution", "Maroon 5", "Decomposition shape"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in output\n%s", want, stdout)
		}
	}
}

func TestSummaryJSON(t *testing.T) {
	code, stdout, stderr := runCommand(t, "summary", "--sample", "--json")
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	var payload struct {
		Source  string `json:"source"`
		Summary struct {
			Overview struct {
				Records int `json:"records"`
			} `json:"overview"`
			Support struct {
				Rows []struct {
					Paragraph string `json:"paragraph"`
					Count     int    `json:"count"`
				} `json:"rows"`
			} `json:"support"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if payload.Source != "sample" || payload.Summary.Overview.Records != 4 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.Summary.Support.Rows[0].Paragraph != "Maroon 5" || payload.Summary.Support.Rows[0].Count != 2 {
		t.Fatalf("unexpected first support row %+v", payload.Summary.Support.Rows[0])
	}
}

func TestSummaryFromFileShowsUnavailableTable(t *testing.T) {
	path := writeJSONDataset(t, []dataset.Record{
		{ID: "a", Question: "q", Answer: "x", AnswerType: strPtr("number"), ReasoningType: strPtr("Arithmetic")},
	})
	code, stdout, stderr := runCommand(t, "summary", "--data", path, "--no-color")
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "hops: required column(s) 'no_of_hops', 'num_hops' not found in the dataset") {
		t.Fatalf("expected hop notice\n%s", stdout)
	}
	if !strings.Contains(stdout, "Arithmetic") {
		t.Fatalf("expected cross-tab rows\n%s", stdout)
	}
	if !strings.Contains(stderr, "table unavailable") {
		t.Fatalf("expected warning log, got %q", stderr)
	}
}

func TestSummaryRequiresDataset(t *testing.T) {
	code, _, stderr := runCommand(t, "summary", "--config", writeFile(t, ".morehop.yml", "top: 3\n"))
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(stderr, "Missing dataset") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestSummaryReportsLoadFailure(t *testing.T) {
	path := writeFile(t, "broken.json", `{"id": "not a list"}`)
	code, stdout, stderr := runCommand(t, "summary", "--data", path)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if stdout != "" {
		t.Fatalf("expected no stdout, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "Could not load dataset: unexpected dataset shape") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestSummaryUsesConfigDataPath(t *testing.T) {
	dataPath := writeJSONDataset(t, dataset.Sample().Records)
	configPath := writeFile(t, ".morehop.yml", "data: "+dataPath+"\ntop: 1\nno_color: true\n")

	code, stdout, stderr := runCommand(t, "summary", "--config", configPath)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "top 1 of 6 paragraphs") {
		t.Fatalf("expected config top to apply\n%s", stdout)
	}
}
