package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"morehop/internal/dataset"
)

// IngestResult reports what an Ingest call wrote.
type IngestResult struct {
	IngestID string
	Inserted int
	Skipped  int
	Removed  int
}

// RecordKey returns the stable key for a record. occurrence distinguishes
// byte-identical records inside one dataset so each is stored once.
func RecordKey(record dataset.Record, occurrence int) (string, error) {
	return FingerprintJSON(map[string]interface{}{
		"record":     record,
		"occurrence": occurrence,
	})
}

// recordKeys returns the key of every record in ds, in order.
func recordKeys(ds dataset.Dataset) ([]string, error) {
	keys := make([]string, 0, len(ds.Records))
	seen := map[string]int{}
	for position, record := range ds.Records {
		contentKey, err := FingerprintJSON(record)
		if err != nil {
			return nil, fmt.Errorf("duckdb: fingerprint record %d: %w", position, err)
		}
		occurrence := seen[contentKey]
		seen[contentKey]++
		key, err := RecordKey(record, occurrence)
		if err != nil {
			return nil, fmt.Errorf("duckdb: key record %d: %w", position, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Ingest makes the stored records mirror ds in one transaction. Records
// already stored under the same key are skipped and stored records absent
// from ds are removed, so the views always describe the latest dataset.
func Ingest(ctx context.Context, db *sql.DB, ds dataset.Dataset) (IngestResult, error) {
	if ctx == nil {
		return IngestResult{}, errors.New("duckdb: context is nil")
	}
	if db == nil {
		return IngestResult{}, errors.New("duckdb: db is nil")
	}
	keys, err := recordKeys(ds)
	if err != nil {
		return IngestResult{}, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return IngestResult{}, fmt.Errorf("duckdb: begin ingest: %w", err)
	}
	defer tx.Rollback()

	result := IngestResult{IngestID: uuid.NewString()}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO ingests (ingest_id, source, record_count) VALUES (?, ?, ?)`,
		result.IngestID,
		ds.Source,
		len(ds.Records),
	); err != nil {
		return IngestResult{}, fmt.Errorf("duckdb: insert ingest: %w", err)
	}

	if result.Removed, err = pruneStale(ctx, tx, keys); err != nil {
		return IngestResult{}, err
	}

	writer, err := newRecordWriter(ctx, tx)
	if err != nil {
		return IngestResult{}, err
	}
	defer writer.close()

	for position, record := range ds.Records {
		inserted, err := writer.write(ctx, keys[position], result.IngestID, position, record)
		if err != nil {
			return IngestResult{}, fmt.Errorf("duckdb: record %d (%s): %w", position, record.Key(), err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Skipped++
		}
	}
	if err := tx.Commit(); err != nil {
		return IngestResult{}, fmt.Errorf("duckdb: commit ingest: %w", err)
	}
	return result, nil
}

// pruneStale deletes stored records, with their children, whose key is not
// in keep. It returns the number of records removed.
func pruneStale(ctx context.Context, tx *sql.Tx, keep []string) (int, error) {
	wanted := make(map[string]struct{}, len(keep))
	for _, key := range keep {
		wanted[key] = struct{}{}
	}
	rows, err := tx.QueryContext(ctx, `SELECT record_key FROM records`)
	if err != nil {
		return 0, fmt.Errorf("duckdb: list stored records: %w", err)
	}
	var stale []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			rows.Close()
			return 0, fmt.Errorf("duckdb: scan stored record: %w", err)
		}
		if _, ok := wanted[key]; !ok {
			stale = append(stale, key)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("duckdb: list stored records: %w", err)
	}
	rows.Close()

	for _, key := range stale {
		for _, table := range []string{"context_paragraphs", "sub_questions", "records"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE record_key = ?`, key); err != nil {
				return 0, fmt.Errorf("duckdb: remove stale %s: %w", table, err)
			}
		}
	}
	return len(stale), nil
}

// recordWriter holds the prepared statements used by one ingest.
type recordWriter struct {
	exists      *sql.Stmt
	record      *sql.Stmt
	paragraph   *sql.Stmt
	subQuestion *sql.Stmt
}

func newRecordWriter(ctx context.Context, tx *sql.Tx) (*recordWriter, error) {
	w := &recordWriter{}
	var err error
	if w.exists, err = tx.PrepareContext(ctx, `SELECT count(*) FROM records WHERE record_key = ?`); err != nil {
		return nil, fmt.Errorf("duckdb: prepare exists: %w", err)
	}
	if w.record, err = tx.PrepareContext(ctx, `INSERT INTO records (
		  record_key, record_id, ingest_id, position, question, answer,
		  answer_type, reasoning_type, no_of_hops, decomposition_len, raw
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (record_key) DO NOTHING`); err != nil {
		w.close()
		return nil, fmt.Errorf("duckdb: prepare record insert: %w", err)
	}
	if w.paragraph, err = tx.PrepareContext(ctx, `INSERT INTO context_paragraphs (
		  record_key, position, title, sentence_count
		) VALUES (?, ?, ?, ?)
		ON CONFLICT (record_key, position) DO NOTHING`); err != nil {
		w.close()
		return nil, fmt.Errorf("duckdb: prepare paragraph insert: %w", err)
	}
	if w.subQuestion, err = tx.PrepareContext(ctx, `INSERT INTO sub_questions (
		  record_key, position, sub_id, parent_sub_id, depth, question, answer, support_title
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (record_key, position) DO NOTHING`); err != nil {
		w.close()
		return nil, fmt.Errorf("duckdb: prepare sub-question insert: %w", err)
	}
	return w, nil
}

func (w *recordWriter) close() {
	for _, stmt := range []*sql.Stmt{w.exists, w.record, w.paragraph, w.subQuestion} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}

// write stores one record and its children. It reports false when the key
// was already present.
func (w *recordWriter) write(ctx context.Context, key, ingestID string, position int, record dataset.Record) (bool, error) {
	var existing int
	if err := w.exists.QueryRowContext(ctx, key).Scan(&existing); err != nil {
		return false, fmt.Errorf("lookup: %w", err)
	}
	if existing > 0 {
		return false, nil
	}
	raw, err := CanonicalJSON(record)
	if err != nil {
		return false, err
	}
	var hops interface{}
	if value, ok := record.Hops(); ok {
		hops = value
	}
	if _, err := w.record.ExecContext(
		ctx,
		key,
		record.Key(),
		ingestID,
		position,
		nullableText(record.Question),
		nullableText(record.Answer),
		nullableString(record.AnswerType),
		nullableString(record.ReasoningType),
		hops,
		len(record.Decomposition),
		string(raw),
	); err != nil {
		return false, fmt.Errorf("insert: %w", err)
	}
	for i, paragraph := range record.Context {
		if _, err := w.paragraph.ExecContext(ctx, key, i, paragraph.Title, len(paragraph.Sentences)); err != nil {
			return false, fmt.Errorf("insert context %d: %w", i, err)
		}
	}
	index := 0
	var walkErr error
	for _, sub := range record.Decomposition {
		sub.Walk("", 1, func(node dataset.SubQuestion, parent string, depth int) {
			if walkErr != nil {
				return
			}
			_, walkErr = w.subQuestion.ExecContext(
				ctx,
				key,
				index,
				nullableText(node.SubID),
				nullableText(parent),
				depth,
				nullableText(node.Question),
				nullableText(node.Answer),
				nullableText(node.SupportTitle),
			)
			index++
		})
		if walkErr != nil {
			return false, fmt.Errorf("insert sub-question %s: %w", sub.SubID, walkErr)
		}
	}
	return true, nil
}
