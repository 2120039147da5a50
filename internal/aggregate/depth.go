package aggregate

import "morehop/internal/dataset"

// TableDepth names the decomposition depth table.
const TableDepth = "depth"

// DepthRow counts records by decomposition width and nesting depth.
type DepthRow struct {
	TopLevel int `json:"top_level"`
	MaxDepth int `json:"max_depth"`
	Count    int `json:"count"`
}

// DepthTable summarises the shape of question decompositions.
type DepthTable struct {
	Rows     []DepthRow `json:"rows"`
	Excluded int        `json:"excluded"`
}

type depthKey struct {
	topLevel int
	maxDepth int
}

// DecompositionDepth groups records by (number of top-level sub-questions,
// deepest nesting level). A decomposition without details has depth 1.
// Records without a decomposition are excluded.
func DecompositionDepth(records []dataset.Record) DepthTable {
	counts := newCounter[depthKey]()
	excluded := 0
	for _, record := range records {
		if len(record.Decomposition) == 0 {
			excluded++
			continue
		}
		deepest := 0
		for _, sub := range record.Decomposition {
			if d := sub.Depth(); d > deepest {
				deepest = d
			}
		}
		counts.add(depthKey{topLevel: len(record.Decomposition), maxDepth: deepest})
	}
	table := DepthTable{Rows: make([]DepthRow, 0, counts.len()), Excluded: excluded}
	counts.each(func(key depthKey, count int) {
		table.Rows = append(table.Rows, DepthRow{TopLevel: key.topLevel, MaxDepth: key.maxDepth, Count: count})
	})
	return table
}

// Total returns the number of records counted.
func (t DepthTable) Total() int {
	total := 0
	for _, row := range t.Rows {
		total += row.Count
	}
	return total
}
