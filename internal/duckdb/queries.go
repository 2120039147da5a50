package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	"morehop/internal/aggregate"
)

// QueryHopDistribution reads v_hop_distribution. Rows with a NULL answer type
// come back with an empty AnswerType, matching the in-memory grouping.
func QueryHopDistribution(ctx context.Context, db *sql.DB) ([]aggregate.HopRow, error) {
	rows, err := db.QueryContext(ctx, `SELECT no_of_hops, answer_type, count
		FROM v_hop_distribution
		ORDER BY no_of_hops, answer_type NULLS FIRST`)
	if err != nil {
		return nil, fmt.Errorf("duckdb: query hop distribution: %w", err)
	}
	defer rows.Close()
	out := []aggregate.HopRow{}
	for rows.Next() {
		var row aggregate.HopRow
		var answerType sql.NullString
		if err := rows.Scan(&row.Hops, &answerType, &row.Count); err != nil {
			return nil, fmt.Errorf("duckdb: scan hop distribution: %w", err)
		}
		row.AnswerType = answerType.String
		out = append(out, row)
	}
	return out, rows.Err()
}

// QueryReasoningAnswer reads v_reasoning_answer.
func QueryReasoningAnswer(ctx context.Context, db *sql.DB) ([]aggregate.ReasoningAnswerRow, error) {
	rows, err := db.QueryContext(ctx, `SELECT reasoning_type, answer_type, count
		FROM v_reasoning_answer
		ORDER BY reasoning_type, answer_type`)
	if err != nil {
		return nil, fmt.Errorf("duckdb: query reasoning/answer: %w", err)
	}
	defer rows.Close()
	out := []aggregate.ReasoningAnswerRow{}
	for rows.Next() {
		var row aggregate.ReasoningAnswerRow
		if err := rows.Scan(&row.ReasoningType, &row.AnswerType, &row.Count); err != nil {
			return nil, fmt.Errorf("duckdb: scan reasoning/answer: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// QuerySupportFrequency reads v_support_frequency, most frequent first.
func QuerySupportFrequency(ctx context.Context, db *sql.DB) ([]aggregate.SupportRow, error) {
	rows, err := db.QueryContext(ctx, `SELECT paragraph, count
		FROM v_support_frequency
		ORDER BY count DESC, paragraph`)
	if err != nil {
		return nil, fmt.Errorf("duckdb: query support frequency: %w", err)
	}
	defer rows.Close()
	out := []aggregate.SupportRow{}
	for rows.Next() {
		var row aggregate.SupportRow
		if err := rows.Scan(&row.Title, &row.Count); err != nil {
			return nil, fmt.Errorf("duckdb: scan support frequency: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
