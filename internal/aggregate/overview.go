package aggregate

import "morehop/internal/dataset"

// Overview holds headline numbers for the dataset.
type Overview struct {
	Records        int     `json:"records"`
	WithHops       int     `json:"with_hops"`
	MeanHops       float64 `json:"mean_hops"`
	AnswerTypes    int     `json:"answer_types"`
	ReasoningTypes int     `json:"reasoning_types"`
	ContextPairs   int     `json:"context_pairs"`
	MeanParagraphs float64 `json:"mean_paragraphs"`
	SubQuestions   int     `json:"sub_questions"`
}

// DatasetOverview computes the overview. Means are zero for empty inputs.
func DatasetOverview(records []dataset.Record) Overview {
	overview := Overview{Records: len(records)}
	answerTypes := map[string]struct{}{}
	reasoningTypes := map[string]struct{}{}
	hopSum := 0
	for _, record := range records {
		if hops, ok := record.Hops(); ok {
			overview.WithHops++
			hopSum += hops
		}
		if value, ok := dataset.StringValue(record.AnswerType); ok {
			answerTypes[value] = struct{}{}
		}
		if value, ok := dataset.StringValue(record.ReasoningType); ok {
			reasoningTypes[value] = struct{}{}
		}
		overview.ContextPairs += len(record.Context)
		for _, sub := range record.Decomposition {
			sub.Walk("", 1, func(dataset.SubQuestion, string, int) {
				overview.SubQuestions++
			})
		}
	}
	overview.AnswerTypes = len(answerTypes)
	overview.ReasoningTypes = len(reasoningTypes)
	if overview.WithHops > 0 {
		overview.MeanHops = float64(hopSum) / float64(overview.WithHops)
	}
	if overview.Records > 0 {
		overview.MeanParagraphs = float64(overview.ContextPairs) / float64(overview.Records)
	}
	return overview
}
