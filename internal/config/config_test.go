package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, payload string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `data: data/morehopqa.json
db: out/report.duckdb
addr: "127.0.0.1:9000"
top: 10
title: "  Hop report "
no_color: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Data:    filepath.Join(dir, "data", "morehopqa.json"),
		DB:      filepath.Join(dir, "out", "report.duckdb"),
		Addr:    "127.0.0.1:9000",
		Top:     10,
		Title:   "Hop report",
		NoColor: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("dataset: x.json\n"))
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
	if !strings.Contains(err.Error(), "field dataset not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsMultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("top: 1\n---\ntop: 2\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple document error, got %v", err)
	}
}

func TestParseEmptyFile(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestValidateCollectsIssues(t *testing.T) {
	err := Validate(Config{Top: -1, Addr: "nope", Data: "/x.json", DB: "/x.json"})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := make([]string, 0, len(validationErr.Issues))
	for _, issue := range validationErr.Issues {
		fields = append(fields, issue.Field)
	}
	if diff := cmp.Diff([]string{"top", "addr", "db"}, fields); diff != "" {
		t.Fatalf("issue fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPathSearchesParents(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "top: 5\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindPath(nested)
	if err != nil {
		t.Fatalf("find path: %v", err)
	}
	if found != path {
		t.Fatalf("expected %s, got %s", path, found)
	}
}

func TestDiscoverLoadsNearestConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "top: 5\n")

	cfg, path, err := Discover(root)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if path == "" || cfg.Top != 5 {
		t.Fatalf("unexpected discovery result %q %+v", path, cfg)
	}
}

func TestDiscoverReportsInvalidConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "top: -3\n")

	_, _, err := Discover(root)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
