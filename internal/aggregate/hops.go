package aggregate

import "morehop/internal/dataset"

// TableHops names the hop-depth distribution table.
const TableHops = "hops"

// HopRow counts records sharing a hop count and answer type.
type HopRow struct {
	Hops       int    `json:"no_of_hops"`
	AnswerType string `json:"answer_type,omitempty"`
	Count      int    `json:"count"`
}

// HopTable is the hop-depth distribution. When ByAnswerType is false the
// AnswerType of every row is empty.
type HopTable struct {
	ByAnswerType bool     `json:"by_answer_type"`
	Rows         []HopRow `json:"rows"`
	Excluded     int      `json:"excluded"`
}

type hopKey struct {
	hops       int
	answerType string
}

// HopDistribution groups records by (hop count, answer_type). Records with
// neither no_of_hops nor num_hops are excluded. When no record has
// answer_type the table is one-dimensional. When no record has a hop count
// at all, the empty table is returned with a *MissingColumnError.
func HopDistribution(records []dataset.Record) (HopTable, error) {
	byAnswerType := false
	for _, record := range records {
		if record.AnswerType != nil {
			byAnswerType = true
			break
		}
	}

	counts := newCounter[hopKey]()
	excluded := 0
	for _, record := range records {
		hops, ok := record.Hops()
		if !ok {
			excluded++
			continue
		}
		key := hopKey{hops: hops}
		if byAnswerType {
			key.answerType, _ = dataset.StringValue(record.AnswerType)
		}
		counts.add(key)
	}

	table := HopTable{
		ByAnswerType: byAnswerType,
		Rows:         make([]HopRow, 0, counts.len()),
		Excluded:     excluded,
	}
	counts.each(func(key hopKey, count int) {
		table.Rows = append(table.Rows, HopRow{Hops: key.hops, AnswerType: key.answerType, Count: count})
	})
	if len(records) > 0 && excluded == len(records) {
		return table, &MissingColumnError{Table: TableHops, Columns: []string{"no_of_hops", "num_hops"}}
	}
	return table, nil
}

// Total returns the number of records counted.
func (t HopTable) Total() int {
	total := 0
	for _, row := range t.Rows {
		total += row.Count
	}
	return total
}

// Count returns the count for a key, or zero.
func (t HopTable) Count(hops int, answerType string) int {
	for _, row := range t.Rows {
		if row.Hops == hops && row.AnswerType == answerType {
			return row.Count
		}
	}
	return 0
}

// HopCounts collapses the answer-type split into hop count -> records, in
// first-seen order of hop counts.
func (t HopTable) HopCounts() []HopRow {
	counts := newCounter[int]()
	for _, row := range t.Rows {
		counts.addN(row.Hops, row.Count)
	}
	out := make([]HopRow, 0, counts.len())
	counts.each(func(hops int, count int) {
		out = append(out, HopRow{Hops: hops, Count: count})
	})
	return out
}

// AnswerTypes returns distinct answer types in first-seen order.
func (t HopTable) AnswerTypes() []string {
	return distinct(len(t.Rows), func(i int) string { return t.Rows[i].AnswerType })
}

func distinct(n int, at func(i int) string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		value := at(i)
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
