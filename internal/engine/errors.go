// Package engine turns the raw expense log into categorized period summaries,
// a next-period spending forecast, and the budget remaining after savings.
// Every function is a pure computation over an in-memory snapshot: callers
// read the ledger once, then hand the records in (snapshot-then-compute).
package engine

import "fmt"

// ValidationError describes malformed or semantically invalid input. It is
// always recoverable: reject the offending record or request and tell the
// user, never crash.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidf(field, format string, args ...any) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
