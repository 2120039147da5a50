package aggregate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumn indicates a column needed by one table is absent from
// every record. Only that table is skipped.
var ErrMissingColumn = errors.New("missing column")

// MissingColumnError names the table and the columns it could not find.
type MissingColumnError struct {
	Table   string
	Columns []string
}

// Error returns a plain message suitable for showing in place of a chart.
func (err *MissingColumnError) Error() string {
	quoted := make([]string, 0, len(err.Columns))
	for _, column := range err.Columns {
		quoted = append(quoted, fmt.Sprintf("'%s'", column))
	}
	return fmt.Sprintf("%s: required column(s) %s not found in the dataset", err.Table, strings.Join(quoted, ", "))
}

// Is matches ErrMissingColumn.
func (err *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
