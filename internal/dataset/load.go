package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSourceUnavailable indicates the dataset could not be read or parsed.
var ErrSourceUnavailable = errors.New("dataset source unavailable")

// ErrUnexpectedShape indicates the document parsed but is not a list of records.
var ErrUnexpectedShape = errors.New("unexpected dataset shape: expected a list of objects")

// Format selects the document decoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a decoder from the file extension. JSON is the default.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads a dataset document from disk.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	records, err := Parse(data, FormatForPath(path))
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Source: path, Records: records}, nil
}

// Parse decodes a document whose top-level value must be an array of objects.
func Parse(data []byte, format Format) ([]Record, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON, "":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrSourceUnavailable, format)
	}
}

func parseJSON(data []byte) ([]Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	var items []json.RawMessage
	if err := decoder.Decode(&items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: top-level value is %s", ErrUnexpectedShape, typeErr.Value)
		}
		return nil, fmt.Errorf("%w: parse json: %w", ErrSourceUnavailable, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w: parse json: multiple documents are not supported", ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("%w: parse json: %w", ErrSourceUnavailable, err)
	}
	if items == nil && !bytes.Equal(bytes.TrimSpace(data), []byte("[]")) {
		return nil, fmt.Errorf("%w: top-level value is null", ErrUnexpectedShape)
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("%w: item %d is not an object", ErrUnexpectedShape, i)
		}
		var record Record
		if err := json.Unmarshal(trimmed, &record); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrUnexpectedShape, i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseYAML(data []byte) ([]Record, error) {
	var doc yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("%w: parse yaml: %w", ErrSourceUnavailable, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w: parse yaml: multiple documents are not supported", ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("%w: parse yaml: %w", ErrSourceUnavailable, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: top-level value is not a list", ErrUnexpectedShape, root.Line)
	}
	records := make([]Record, 0, len(root.Content))
	for i, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: item %d is not an object", ErrUnexpectedShape, i)
		}
		var record Record
		if err := item.Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrUnexpectedShape, i, err)
		}
		records = append(records, record)
	}
	return records, nil
}
