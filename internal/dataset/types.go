package dataset

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Dataset is a loaded, read-only sequence of question records.
type Dataset struct {
	Source  string
	Records []Record
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.Records)
}

// Record is one MoreHopQA example. Pointer fields are nil when the key is
// absent from the source document.
type Record struct {
	ID                 string             `json:"id" yaml:"id"`
	LegacyID           string             `json:"_id,omitempty" yaml:"_id,omitempty"`
	Question           string             `json:"question" yaml:"question"`
	Answer             string             `json:"answer" yaml:"answer"`
	AnswerType         *string            `json:"answer_type,omitempty" yaml:"answer_type,omitempty"`
	ReasoningType      *string            `json:"reasoning_type,omitempty" yaml:"reasoning_type,omitempty"`
	NoOfHops           *int               `json:"no_of_hops,omitempty" yaml:"no_of_hops,omitempty"`
	NumHops            *int               `json:"num_hops,omitempty" yaml:"num_hops,omitempty"`
	Decomposition      []SubQuestion      `json:"question_decomposition,omitempty" yaml:"question_decomposition,omitempty"`
	Context            []ContextParagraph `json:"context,omitempty" yaml:"context,omitempty"`
	PreviousQuestion   *string            `json:"previous_question,omitempty" yaml:"previous_question,omitempty"`
	PreviousAnswer     *string            `json:"previous_answer,omitempty" yaml:"previous_answer,omitempty"`
	PreviousAnswerType *string            `json:"previous_answer_type,omitempty" yaml:"previous_answer_type,omitempty"`
	Pattern            *string            `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	SubquestionPattern []string           `json:"subquestion_patterns,omitempty" yaml:"subquestion_patterns,omitempty"`
	CuttedQuestion     *string            `json:"cutted_question,omitempty" yaml:"cutted_question,omitempty"`
	QuesOnLastHop      *string            `json:"ques_on_last_hop,omitempty" yaml:"ques_on_last_hop,omitempty"`
}

// Key returns the record identifier, falling back to the legacy _id key.
func (r Record) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.LegacyID
}

// Hops returns no_of_hops, or num_hops when the former is absent.
func (r Record) Hops() (int, bool) {
	if r.NoOfHops != nil {
		return *r.NoOfHops, true
	}
	if r.NumHops != nil {
		return *r.NumHops, true
	}
	return 0, false
}

// UnmarshalJSON decodes a record. Hop counts may be written as whole-number
// floats such as 2.0; fractional values are rejected.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	aux := struct {
		*plain
		NoOfHops json.RawMessage `json:"no_of_hops"`
		NumHops  json.RawMessage `json:"num_hops"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if r.NoOfHops, err = decodeHops("no_of_hops", aux.NoOfHops); err != nil {
		return err
	}
	if r.NumHops, err = decodeHops("num_hops", aux.NumHops); err != nil {
		return err
	}
	return nil
}

func decodeHops(field string, raw json.RawMessage) (*int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	if value != math.Trunc(value) || math.Abs(value) > math.MaxInt32 {
		return nil, fmt.Errorf("%s: %s is not a whole number", field, raw)
	}
	hops := int(value)
	return &hops, nil
}

// SubQuestion is a node in the question decomposition tree.
type SubQuestion struct {
	SubID        string        `json:"sub_id" yaml:"sub_id"`
	Question     string        `json:"question" yaml:"question"`
	Answer       string        `json:"answer" yaml:"answer"`
	SupportTitle string        `json:"paragraph_support_title" yaml:"paragraph_support_title"`
	Details      []SubQuestion `json:"details,omitempty" yaml:"details,omitempty"`
}

// Depth returns the height of the subtree rooted at q; a leaf has depth 1.
func (q SubQuestion) Depth() int {
	deepest := 0
	for _, child := range q.Details {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Walk visits q and its details in pre-order. depth starts at 1 for q.
func (q SubQuestion) Walk(parent string, depth int, fn func(node SubQuestion, parent string, depth int)) {
	fn(q, parent, depth)
	for _, child := range q.Details {
		child.Walk(q.SubID, depth+1, fn)
	}
}

// ContextParagraph is a supporting paragraph encoded as [title, [sentences...]].
type ContextParagraph struct {
	Title     string
	Sentences []string
}

// MarshalJSON writes the paragraph in its pair form.
func (p ContextParagraph) MarshalJSON() ([]byte, error) {
	sentences := p.Sentences
	if sentences == nil {
		sentences = []string{}
	}
	return json.Marshal([]interface{}{p.Title, sentences})
}

// UnmarshalJSON reads the pair form. A missing sentence list is allowed.
func (p *ContextParagraph) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("context entry must be a [title, sentences] pair: %w", err)
	}
	if len(pair) == 0 || len(pair) > 2 {
		return fmt.Errorf("context entry must have 1 or 2 elements, got %d", len(pair))
	}
	var title string
	if err := json.Unmarshal(pair[0], &title); err != nil {
		return fmt.Errorf("context title: %w", err)
	}
	var sentences []string
	if len(pair) == 2 {
		if err := json.Unmarshal(pair[1], &sentences); err != nil {
			return fmt.Errorf("context sentences for %q: %w", title, err)
		}
	}
	p.Title = title
	p.Sentences = sentences
	return nil
}

// MarshalYAML writes the paragraph as a two-element sequence.
func (p ContextParagraph) MarshalYAML() (interface{}, error) {
	sentences := p.Sentences
	if sentences == nil {
		sentences = []string{}
	}
	return []interface{}{p.Title, sentences}, nil
}

// UnmarshalYAML reads the two-element sequence form.
func (p *ContextParagraph) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: context entry must be a [title, sentences] pair", node.Line)
	}
	if len(node.Content) == 0 || len(node.Content) > 2 {
		return fmt.Errorf("line %d: context entry must have 1 or 2 elements, got %d", node.Line, len(node.Content))
	}
	var title string
	if err := node.Content[0].Decode(&title); err != nil {
		return fmt.Errorf("context title: %w", err)
	}
	var sentences []string
	if len(node.Content) == 2 {
		if err := node.Content[1].Decode(&sentences); err != nil {
			return fmt.Errorf("context sentences for %q: %w", title, err)
		}
	}
	p.Title = title
	p.Sentences = sentences
	return nil
}

// StringValue dereferences an optional string field.
func StringValue(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	return *value, true
}
