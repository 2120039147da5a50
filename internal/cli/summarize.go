package cli

import (
	"log/slog"

	"morehop/internal/aggregate"
	"morehop/internal/dataset"
)

// summarize runs every table and logs what was skipped or excluded.
func summarize(logger *slog.Logger, ds dataset.Dataset) (aggregate.Summary, error) {
	summary, err := aggregate.Summarize(ds.Records)
	if err != nil {
		return aggregate.Summary{}, err
	}
	for _, table := range summary.UnavailableTables() {
		logger.Warn("table unavailable", "table", table, "error", summary.Unavailable[table])
	}
	if summary.Hops != nil && summary.Hops.Excluded > 0 {
		logger.Debug("records excluded", "table", aggregate.TableHops, "count", summary.Hops.Excluded)
	}
	if summary.ReasoningAnswer != nil && summary.ReasoningAnswer.Excluded > 0 {
		logger.Debug("records excluded", "table", aggregate.TableReasoningAnswer, "count", summary.ReasoningAnswer.Excluded)
	}
	if summary.Depth.Excluded > 0 {
		logger.Debug("records excluded", "table", aggregate.TableDepth, "count", summary.Depth.Excluded)
	}
	return summary, nil
}

// firstRecord returns the record shown as the report example, or nil for an
// empty dataset.
func firstRecord(ds dataset.Dataset) *dataset.Record {
	if len(ds.Records) == 0 {
		return nil
	}
	return &ds.Records[0]
}
