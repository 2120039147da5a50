package aggregate

import (
	"sort"

	"morehop/internal/dataset"
)

// TableSupport names the supporting-paragraph frequency table.
const TableSupport = "support"

// SupportRow counts how often a paragraph title appears in record contexts.
type SupportRow struct {
	Title string `json:"paragraph"`
	Count int    `json:"count"`
}

// SupportTable is the supporting-paragraph frequency table.
type SupportTable struct {
	Rows []SupportRow `json:"rows"`
}

// SupportFrequency flattens every context title across all records and counts
// each distinct title. Records without context contribute nothing.
func SupportFrequency(records []dataset.Record) SupportTable {
	counts := newCounter[string]()
	for _, record := range records {
		for _, paragraph := range record.Context {
			counts.add(paragraph.Title)
		}
	}
	table := SupportTable{Rows: make([]SupportRow, 0, counts.len())}
	counts.each(func(title string, count int) {
		table.Rows = append(table.Rows, SupportRow{Title: title, Count: count})
	})
	return table
}

// Total returns the number of context pairs counted.
func (t SupportTable) Total() int {
	total := 0
	for _, row := range t.Rows {
		total += row.Count
	}
	return total
}

// Count returns the frequency of a title, or zero.
func (t SupportTable) Count(title string) int {
	for _, row := range t.Rows {
		if row.Title == title {
			return row.Count
		}
	}
	return 0
}

// SortedByCount returns a copy ordered by descending count. Ties keep their
// first-seen order.
func (t SupportTable) SortedByCount() []SupportRow {
	rows := append([]SupportRow(nil), t.Rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// Top returns at most n rows from SortedByCount. n <= 0 means all rows.
func (t SupportTable) Top(n int) []SupportRow {
	rows := t.SortedByCount()
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
