package duckdb

// nullableString converts an optional string pointer into a SQL argument.
// Unlike nullableText, an explicit empty string is kept.
func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// nullableText stores empty strings as NULL.
func nullableText(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
