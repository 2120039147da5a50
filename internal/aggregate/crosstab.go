package aggregate

import "morehop/internal/dataset"

// TableReasoningAnswer names the reasoning/answer cross-tabulation.
const TableReasoningAnswer = "reasoning_answer"

// ReasoningAnswerRow counts records sharing a reasoning type and answer type.
type ReasoningAnswerRow struct {
	ReasoningType string `json:"reasoning_type"`
	AnswerType    string `json:"answer_type"`
	Count         int    `json:"count"`
}

// ReasoningAnswerTable is the contingency table behind the heatmap.
type ReasoningAnswerTable struct {
	Rows     []ReasoningAnswerRow `json:"rows"`
	Excluded int                  `json:"excluded"`
}

type reasoningAnswerKey struct {
	reasoningType string
	answerType    string
}

// ReasoningAnswerMatrix counts (reasoning_type, answer_type) pairs. A
// composite reasoning type such as "Commonsense, Arithmetic" is one category.
// Records missing either field are excluded. If either column is absent from
// every record the operation is unavailable and returns *MissingColumnError.
func ReasoningAnswerMatrix(records []dataset.Record) (ReasoningAnswerTable, error) {
	table := ReasoningAnswerTable{Rows: []ReasoningAnswerRow{}}
	if len(records) == 0 {
		return table, nil
	}
	hasReasoning, hasAnswer := false, false
	for _, record := range records {
		hasReasoning = hasReasoning || record.ReasoningType != nil
		hasAnswer = hasAnswer || record.AnswerType != nil
	}
	if !hasReasoning || !hasAnswer {
		var missing []string
		if !hasReasoning {
			missing = append(missing, "reasoning_type")
		}
		if !hasAnswer {
			missing = append(missing, "answer_type")
		}
		return table, &MissingColumnError{Table: TableReasoningAnswer, Columns: missing}
	}

	counts := newCounter[reasoningAnswerKey]()
	for _, record := range records {
		reasoningType, okReasoning := dataset.StringValue(record.ReasoningType)
		answerType, okAnswer := dataset.StringValue(record.AnswerType)
		if !okReasoning || !okAnswer {
			table.Excluded++
			continue
		}
		counts.add(reasoningAnswerKey{reasoningType: reasoningType, answerType: answerType})
	}
	counts.each(func(key reasoningAnswerKey, count int) {
		table.Rows = append(table.Rows, ReasoningAnswerRow{
			ReasoningType: key.reasoningType,
			AnswerType:    key.answerType,
			Count:         count,
		})
	})
	return table, nil
}

// Total returns the number of records counted.
func (t ReasoningAnswerTable) Total() int {
	total := 0
	for _, row := range t.Rows {
		total += row.Count
	}
	return total
}

// Count returns the count for a cell, or zero.
func (t ReasoningAnswerTable) Count(reasoningType, answerType string) int {
	for _, row := range t.Rows {
		if row.ReasoningType == reasoningType && row.AnswerType == answerType {
			return row.Count
		}
	}
	return 0
}

// Max returns the largest cell count.
func (t ReasoningAnswerTable) Max() int {
	largest := 0
	for _, row := range t.Rows {
		if row.Count > largest {
			largest = row.Count
		}
	}
	return largest
}

// ReasoningTypes returns distinct reasoning types in first-seen order.
func (t ReasoningAnswerTable) ReasoningTypes() []string {
	return distinct(len(t.Rows), func(i int) string { return t.Rows[i].ReasoningType })
}

// AnswerTypes returns distinct answer types in first-seen order.
func (t ReasoningAnswerTable) AnswerTypes() []string {
	return distinct(len(t.Rows), func(i int) string { return t.Rows[i].AnswerType })
}
