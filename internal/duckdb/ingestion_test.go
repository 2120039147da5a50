package duckdb_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"morehop/internal/aggregate"
	"morehop/internal/dataset"
	"morehop/internal/duckdb"
	duckdbtesting "morehop/internal/duckdb/testing"
	"morehop/internal/testutil"
)

// TestCanonicalJSONStable verifies canonical JSON ignores map key order.
func TestCanonicalJSONStable(t *testing.T) {
	left, err := duckdb.CanonicalJSON(map[string]interface{}{"b": 1, "a": []interface{}{"x"}})
	if err != nil {
		t.Fatalf("canonical json: %v", err)
	}
	right, err := duckdb.CanonicalJSON(map[string]interface{}{"a": []interface{}{"x"}, "b": 1})
	if err != nil {
		t.Fatalf("canonical json: %v", err)
	}
	if string(left) != string(right) {
		t.Fatalf("canonical json mismatch: %s vs %s", left, right)
	}
}

// TestRecordKeyOccurrence verifies identical records get distinct keys per occurrence.
func TestRecordKeyOccurrence(t *testing.T) {
	record := dataset.Record{ID: "dup"}
	first, err := duckdb.RecordKey(record, 0)
	if err != nil {
		t.Fatalf("record key: %v", err)
	}
	again, err := duckdb.RecordKey(record, 0)
	if err != nil {
		t.Fatalf("record key: %v", err)
	}
	second, err := duckdb.RecordKey(record, 1)
	if err != nil {
		t.Fatalf("record key: %v", err)
	}
	if first != again {
		t.Fatalf("expected stable key")
	}
	if first == second {
		t.Fatalf("expected occurrence to change the key")
	}
}

// TestIngestSample verifies rows land in every table and views agree with the aggregator.
func TestIngestSample(t *testing.T) {
	db, ctx := openTestDB(t)
	ds := dataset.Sample()
	result, err := duckdb.Ingest(ctx, db, ds)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if result.Inserted != 4 || result.Skipped != 0 || result.IngestID == "" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if got := queryInt(t, ctx, db, "SELECT count(*) FROM records"); got != 4 {
		t.Fatalf("expected 4 records, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT count(*) FROM context_paragraphs"); got != 7 {
		t.Fatalf("expected 7 context paragraphs, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT count(*) FROM sub_questions"); got != 10 {
		t.Fatalf("expected 10 sub-questions, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT max(depth) FROM sub_questions"); got != 2 {
		t.Fatalf("expected max depth 2, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT count(*) FROM sub_questions WHERE parent_sub_id = '3'"); got != 2 {
		t.Fatalf("expected 2 children of sub-question 3, got %d", got)
	}

	hops, err := duckdb.QueryHopDistribution(ctx, db)
	if err != nil {
		t.Fatalf("query hops: %v", err)
	}
	wantHops := []aggregate.HopRow{
		{Hops: 2, AnswerType: "number", Count: 1},
		{Hops: 2, AnswerType: "person", Count: 1},
		{Hops: 3, AnswerType: "date", Count: 1},
	}
	if diff := cmp.Diff(wantHops, hops); diff != "" {
		t.Fatalf("unexpected hop rows (-want +got):\n%s", diff)
	}

	matrix, err := duckdb.QueryReasoningAnswer(ctx, db)
	if err != nil {
		t.Fatalf("query matrix: %v", err)
	}
	if len(matrix) != 4 {
		t.Fatalf("expected 4 matrix cells, got %+v", matrix)
	}

	support, err := duckdb.QuerySupportFrequency(ctx, db)
	if err != nil {
		t.Fatalf("query support: %v", err)
	}
	inMemory := aggregate.SupportFrequency(ds.Records)
	if diff := cmp.Diff(inMemory.SortedByCount()[0], support[0]); diff != "" {
		t.Fatalf("unexpected top paragraph (-want +got):\n%s", diff)
	}
	total := 0
	for _, row := range support {
		total += row.Count
	}
	if total != inMemory.Total() {
		t.Fatalf("support totals differ: %d vs %d", total, inMemory.Total())
	}
}

// TestIngestIdempotent verifies re-ingesting the same dataset adds no records.
func TestIngestIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.duckdb")
	db := duckdbtesting.OpenFile(t, path)
	ctx := testutil.Context(t, testTimeout)
	ds := dataset.Sample()
	if _, err := duckdb.Ingest(ctx, db, ds); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	result, err := duckdb.Ingest(ctx, db, ds)
	if err != nil {
		t.Fatalf("ingest again: %v", err)
	}
	if result.Inserted != 0 || result.Skipped != 4 {
		t.Fatalf("unexpected second ingest: %+v", result)
	}
	if got := queryInt(t, ctx, db, "SELECT count(*) FROM records"); got != 4 {
		t.Fatalf("expected 4 records, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT count(*) FROM ingests"); got != 2 {
		t.Fatalf("expected 2 ingest rows, got %d", got)
	}
}

// TestIngestEditedDatasetReplacesRows verifies views follow the latest dataset
// when the same file is ingested again after records change.
func TestIngestEditedDatasetReplacesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.duckdb")
	db := duckdbtesting.OpenFile(t, path)
	ctx := testutil.Context(t, testTimeout)
	original := dataset.Sample()
	if _, err := duckdb.Ingest(ctx, db, original); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	edited := dataset.Dataset{Source: original.Source}
	edited.Records = append(edited.Records, original.Records[:3]...)
	edited.Records[0].Question = "edited"
	result, err := duckdb.Ingest(ctx, db, edited)
	if err != nil {
		t.Fatalf("ingest edited: %v", err)
	}
	if result.Inserted != 1 || result.Skipped != 2 || result.Removed != 2 {
		t.Fatalf("unexpected edited ingest: %+v", result)
	}
	if got := queryInt(t, ctx, db, "SELECT count(*) FROM records"); got != 3 {
		t.Fatalf("expected 3 records, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT count(*) FROM records WHERE question = 'edited'"); got != 1 {
		t.Fatalf("expected the edited record stored once, got %d", got)
	}
	orphans := queryInt(t, ctx, db, `SELECT count(*) FROM context_paragraphs
		WHERE record_key NOT IN (SELECT record_key FROM records)`)
	if orphans != 0 {
		t.Fatalf("expected no orphaned context paragraphs, got %d", orphans)
	}

	wantHops, err := aggregate.HopDistribution(edited.Records)
	if err != nil {
		t.Fatalf("hop distribution: %v", err)
	}
	hops, err := duckdb.QueryHopDistribution(ctx, db)
	if err != nil {
		t.Fatalf("query hops: %v", err)
	}
	hopTotal := 0
	for _, row := range hops {
		hopTotal += row.Count
		if want := wantHops.Count(row.Hops, row.AnswerType); row.Count != want {
			t.Fatalf("hop row %+v, want count %d", row, want)
		}
	}
	if hopTotal != wantHops.Total() {
		t.Fatalf("hop totals differ: %d vs %d", hopTotal, wantHops.Total())
	}

	wantSupport := aggregate.SupportFrequency(edited.Records)
	support, err := duckdb.QuerySupportFrequency(ctx, db)
	if err != nil {
		t.Fatalf("query support: %v", err)
	}
	supportTotal := 0
	for _, row := range support {
		supportTotal += row.Count
		if want := wantSupport.Count(row.Title); row.Count != want {
			t.Fatalf("support row %+v, want count %d", row, want)
		}
	}
	if supportTotal != wantSupport.Total() {
		t.Fatalf("support totals differ: %d vs %d", supportTotal, wantSupport.Total())
	}
}

// TestIngestDuplicateRecords verifies identical records are both counted.
func TestIngestDuplicateRecords(t *testing.T) {
	db, ctx := openTestDB(t)
	hops := 1
	answerType := "number"
	record := dataset.Record{ID: "same", NoOfHops: &hops, AnswerType: &answerType}
	ds := dataset.Dataset{Source: "dups", Records: []dataset.Record{record, record}}
	result, err := duckdb.Ingest(ctx, db, ds)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if result.Inserted != 2 {
		t.Fatalf("expected both records inserted, got %+v", result)
	}
	rows, err := duckdb.QueryHopDistribution(ctx, db)
	if err != nil {
		t.Fatalf("query hops: %v", err)
	}
	if diff := cmp.Diff([]aggregate.HopRow{{Hops: 1, AnswerType: "number", Count: 2}}, rows); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}

// TestIngestEmpty verifies an empty dataset yields empty views.
func TestIngestEmpty(t *testing.T) {
	db, ctx := openTestDB(t)
	if _, err := duckdb.Ingest(ctx, db, dataset.Dataset{Source: "empty"}); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	support, err := duckdb.QuerySupportFrequency(ctx, db)
	if err != nil {
		t.Fatalf("query support: %v", err)
	}
	if len(support) != 0 {
		t.Fatalf("expected no rows, got %+v", support)
	}
}
