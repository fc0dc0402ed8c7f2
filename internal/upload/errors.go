package upload

import "fmt"

const (
	ReasonNotStructured  = "not valid JSON/structured data"
	ReasonMissingItems   = "missing items array"
	ReasonItemFields     = "item missing required fields"
	ReasonKeywordsFormat = "keywords must be an array of strings"
)

// ParseError reports input that is not well-formed structured data.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports well-formed input with missing or mistyped fields.
type SchemaError struct {
	Reason string
	Index  int
}

func (e *SchemaError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s (item %d)", e.Reason, e.Index)
	}
	return e.Reason
}

// IOError reports a failure to read the document at all.
type IOError struct {
	Location string
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Location, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func schemaError(reason string) *SchemaError {
	return &SchemaError{Reason: reason, Index: -1}
}
