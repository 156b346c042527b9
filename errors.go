package rokoko

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType        = "invalid_type"
	CodeConflict           = "conflict"
	CodeRequirementMissing = "requirement_missing"
	CodeTooManyArgs        = "too_many_args"
	CodePieceSlots         = "piece_slots"
	CodeTupleArity         = "tuple_arity"
	CodeOutOfRange         = "out_of_range"
	CodeInvalidSpec        = "invalid_spec"
	CodeParseError         = "parse_error"
	CodeBackendFailure     = "backend_failure"
)

// Issue represents a single construction or validation failure.
type Issue struct {
	Field   string // Offending field/event name ("size", "on_init"); empty when not field-bound.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"slots":5, "len":3})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Field == "" {
			b.WriteString(it.Code)
			continue
		}
		// e.g. conflict at size
		fmt.Fprintf(b, "%s at %s", it.Code, it.Field)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
