package reconcile

import "fmt"

// ConfigError reports rules that reference a column absent from one of the
// input datasets, or rules that are structurally invalid. It is returned
// before any join is attempted.
type ConfigError struct {
	// Field is the offending column or option name.
	Field string

	// Side names the dataset the column is missing from ("internal",
	// "provider" or "rules" for structural problems).
	Side string

	// Reason is a short human-readable explanation.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("config error: %s (%s): %s", e.Field, e.Side, e.Reason)
	}
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Reason)
}

// SchemaError reports a comparison between cells whose types cannot be
// compared. The run fails rather than coercing values silently.
type SchemaError struct {
	// Field is the base name of the comparison pair that failed.
	Field string

	// Left and Right hold the two offending values.
	Left  any
	Right any
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: field %q: cannot compare %T and %T", e.Field, e.Left, e.Right)
}
