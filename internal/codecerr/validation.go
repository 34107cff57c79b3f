package codecerr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ValidationError aggregates every field violation found while validating a
// record, not just the first. It unwraps to the underlying leaf errors so
// errors.Is still works on the aggregate.
type ValidationError struct {
	// Fields maps a field name (in-memory spelling) to its violations.
	Fields map[string][]error
}

// NewValidationError returns an empty aggregate.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]error)}
}

// Add records a violation for the named field.
func (e *ValidationError) Add(field string, err error) {
	e.Fields[field] = append(e.Fields[field], err)
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// FieldNames returns the violated field names in stable order.
func (e *ValidationError) FieldNames() []string {
	names := lo.Keys(e.Fields)
	sort.Strings(names)
	return names
}

func (e *ValidationError) Error() string {
	parts := lo.Map(e.FieldNames(), func(name string, _ int) string {
		reasons := lo.Map(e.Fields[name], func(err error, _ int) string {
			return err.Error()
		})
		return fmt.Sprintf("%s: %s", name, strings.Join(reasons, "; "))
	})
	return "validation failed: " + strings.Join(parts, ", ")
}

// Unwrap exposes every recorded violation to errors.Is / errors.As.
func (e *ValidationError) Unwrap() []error {
	return lo.Flatten(lo.Map(e.FieldNames(), func(name string, _ int) []error {
		return e.Fields[name]
	}))
}
