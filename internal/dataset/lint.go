package dataset

import (
	"fmt"
	"strings"
)

// Issue captures a lint problem in a dataset record.
type Issue struct {
	Field   string
	Message string
}

// LintError reports one or more lint issues. Lint issues never stop aggregation.
type LintError struct {
	Issues []Issue
}

// Error returns a readable message for lint failures.
func (err *LintError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("dataset lint found %d issue(s): %s", len(err.Issues), strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &LintError{Issues: collector.issues}
}

// Lint checks record invariants the aggregator takes as given.
func Lint(records []Record) error {
	collector := &issueCollector{}
	seenIDs := map[string]int{}
	for i, record := range records {
		prefix := fmt.Sprintf("records[%d]", i)
		id := strings.TrimSpace(record.Key())
		if id == "" {
			collector.add(prefix+".id", "is required")
		} else if first, exists := seenIDs[id]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q (first seen at records[%d])", id, first))
		} else {
			seenIDs[id] = i
		}

		if hops, ok := record.Hops(); ok {
			if hops < 0 {
				collector.add(prefix+".no_of_hops", fmt.Sprintf("must be non-negative, got %d", hops))
			} else if len(record.Decomposition) > 0 && hops != len(record.Decomposition) {
				collector.add(prefix+".no_of_hops", fmt.Sprintf("is %d but question_decomposition has %d entries", hops, len(record.Decomposition)))
			}
		}
		if record.NoOfHops != nil && record.NumHops != nil && *record.NoOfHops != *record.NumHops {
			collector.add(prefix+".num_hops", fmt.Sprintf("disagrees with no_of_hops (%d vs %d)", *record.NumHops, *record.NoOfHops))
		}

		for j, paragraph := range record.Context {
			if strings.TrimSpace(paragraph.Title) == "" {
				collector.add(fmt.Sprintf("%s.context[%d]", prefix, j), "title is empty")
			}
		}
	}
	return collector.result()
}
