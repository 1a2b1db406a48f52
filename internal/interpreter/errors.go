package interpreter

import "fmt"

// Error reports a failure in the interpretation pass itself. Per spec.md §7
// this is distinct from a ParseError: it can only occur on internal
// invariant violations, since malformed input is rejected earlier by the
// parser.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("interpret: %s", e.Message)
}
