package aggregate

import (
	"errors"
	"sort"

	"morehop/internal/dataset"
)

// Summary bundles every table computed in one pass. A table that could not
// be computed is nil and its error is kept in Unavailable.
type Summary struct {
	Overview        Overview              `json:"overview"`
	Hops            *HopTable             `json:"hops,omitempty"`
	ReasoningAnswer *ReasoningAnswerTable `json:"reasoning_answer,omitempty"`
	Support         SupportTable          `json:"support"`
	Depth           DepthTable            `json:"depth"`
	Unavailable     map[string]error      `json:"-"`
}

// Summarize runs all operations over records. Only MissingColumn conditions
// are absorbed; any other error is returned.
func Summarize(records []dataset.Record) (Summary, error) {
	summary := Summary{
		Overview:    DatasetOverview(records),
		Support:     SupportFrequency(records),
		Depth:       DecompositionDepth(records),
		Unavailable: map[string]error{},
	}

	hops, err := HopDistribution(records)
	switch {
	case err == nil:
		summary.Hops = &hops
	case errors.Is(err, ErrMissingColumn):
		summary.Unavailable[TableHops] = err
	default:
		return Summary{}, err
	}

	matrix, err := ReasoningAnswerMatrix(records)
	switch {
	case err == nil:
		summary.ReasoningAnswer = &matrix
	case errors.Is(err, ErrMissingColumn):
		summary.Unavailable[TableReasoningAnswer] = err
	default:
		return Summary{}, err
	}
	return summary, nil
}

// Notices returns the unavailable table messages keyed by table name.
func (s Summary) Notices() map[string]string {
	out := make(map[string]string, len(s.Unavailable))
	for table, err := range s.Unavailable {
		out[table] = err.Error()
	}
	return out
}

// UnavailableTables returns the sorted names of skipped tables.
func (s Summary) UnavailableTables() []string {
	names := make([]string, 0, len(s.Unavailable))
	for table := range s.Unavailable {
		names = append(names, table)
	}
	sort.Strings(names)
	return names
}
