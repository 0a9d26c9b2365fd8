package schedule

import "fmt"

// ParseError reports a malformed clock or date string.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// InvalidRangeError reports a date range whose start falls after its end.
type InvalidRangeError struct {
	From string
	To   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: %s is after %s", e.From, e.To)
}

// ValidationError reports an entity that failed an entry guard.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
