package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"morehop/internal/dataset"
)

func TestGenerateRecordsDeterministic(t *testing.T) {
	cfg := fixtureConfig{Records: 50, Paragraphs: 10, Seed: 7}
	first := generateRecords(cfg)
	second := generateRecords(cfg)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("generated records differ (-first +second):\n%s", diff)
	}
	if len(first) != 50 {
		t.Fatalf("expected 50 records, got %d", len(first))
	}
}

func TestGenerateRecordsLintClean(t *testing.T) {
	records := generateRecords(fixtureConfig{Records: 200, Paragraphs: 25, Seed: 3})
	if err := dataset.Lint(records); err != nil {
		t.Fatalf("expected clean fixture, got %v", err)
	}
}
