package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed record.schema.json
var recordSchemaJSON string

const recordSchemaURL = "morehop://record-list.json"

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
	compiledSchemaOnce sync.Once
)

func recordSchema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(recordSchemaURL, strings.NewReader(recordSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add record schema: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile(recordSchemaURL)
	})
	return compiledSchema, compiledSchemaErr
}

// ValidateSchema checks a raw document against the embedded record schema.
// It returns a *LintError listing schema violations, or a wrapped
// ErrSourceUnavailable when the document does not parse.
func ValidateSchema(data []byte, format Format) error {
	schema, err := recordSchema()
	if err != nil {
		return err
	}
	var doc interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: parse yaml: %w", ErrSourceUnavailable, err)
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&doc); err != nil {
			return fmt.Errorf("%w: parse json: %w", ErrSourceUnavailable, err)
		}
	}
	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if !errors.As(err, &validationErr) {
			return fmt.Errorf("validate schema: %w", err)
		}
		return &LintError{Issues: schemaIssues(validationErr)}
	}
	return nil
}

// schemaIssues flattens the leaf causes of a validation error.
func schemaIssues(err *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(node *jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			location := node.InstanceLocation
			if location == "" {
				location = "/"
			}
			issues = append(issues, Issue{Field: location, Message: node.Message})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Field < issues[j].Field
	})
	return issues
}
