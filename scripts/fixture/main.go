package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"morehop/internal/dataset"
	"morehop/internal/duckdb"
)

// fixtureConfig defines the shape of a generated dataset.
type fixtureConfig struct {
	Records    int
	Paragraphs int
	Seed       uint64
}

func main() {
	records := flag.Int("records", 1000, "number of records to generate")
	paragraphs := flag.Int("paragraphs", 200, "size of the paragraph title pool")
	seed := flag.Uint64("seed", 1, "random seed")
	jsonPath := flag.String("json", "", "output JSON dataset path")
	dbPath := flag.String("db", "", "optional DuckDB output path")
	flag.Parse()
	if *jsonPath == "" && *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture [--records N] [--seed S] --json <out.json> [--db <out.duckdb>]")
		os.Exit(2)
	}
	cfg := fixtureConfig{Records: *records, Paragraphs: *paragraphs, Seed: *seed}
	ds := dataset.Dataset{Source: fmt.Sprintf("fixture-%d", cfg.Seed), Records: generateRecords(cfg)}

	if *jsonPath != "" {
		if err := writeJSON(*jsonPath, ds.Records); err != nil {
			fmt.Fprintf(os.Stderr, "write json: %v\n", err)
			os.Exit(1)
		}
	}
	if *dbPath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := removeIfExists(*dbPath); err != nil {
			fmt.Fprintf(os.Stderr, "reset db: %v\n", err)
			os.Exit(1)
		}
		if err := writeDuckDB(ctx, *dbPath, ds); err != nil {
			fmt.Fprintf(os.Stderr, "write duckdb: %v\n", err)
			os.Exit(1)
		}
	}
}

func writeJSON(path string, records []dataset.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func writeDuckDB(ctx context.Context, path string, ds dataset.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = duckdb.Ingest(ctx, db, ds)
	return err
}

// removeIfExists deletes an existing fixture file so we always start fresh.
func removeIfExists(path string) error {
	err := os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return err
}
