package roman

import "fmt"

// Code is a machine-readable error code.
type Code string

const (
	// CodeIllegalCharacter marks input containing characters outside IVXLCDM.
	CodeIllegalCharacter Code = "ILLEGAL_CHARACTER"
	// CodeInvalidConstruct marks input made of legal characters that breaks
	// a structural rule.
	CodeInvalidConstruct Code = "INVALID_CONSTRUCT"
	// CodeUnknownSymbol marks a failed single-character table lookup.
	CodeUnknownSymbol Code = "UNKNOWN_SYMBOL"
)

// Sentinels for use with errors.Is. They match any *Error with the same code.
var (
	ErrIllegalCharacter = &Error{Code: CodeIllegalCharacter}
	ErrInvalidConstruct = &Error{Code: CodeInvalidConstruct}
	ErrUnknownSymbol    = &Error{Code: CodeUnknownSymbol}
)

// Error is returned for every rejected input.
type Error struct {
	Code  Code
	Input string // the input as the caller passed it
	Rule  string // the structural rule that failed, for CodeInvalidConstruct
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case CodeIllegalCharacter:
		return fmt.Sprintf("input %q contains illegal characters", e.Input)
	case CodeInvalidConstruct:
		if e.Rule != "" {
			return fmt.Sprintf("input %q is not a well-formed roman numeral (%s)", e.Input, e.Rule)
		}
		return fmt.Sprintf("input %q is not a well-formed roman numeral", e.Input)
	case CodeUnknownSymbol:
		return fmt.Sprintf("no roman digit matches character %q", e.Input)
	default:
		return fmt.Sprintf("roman: %s: %q", e.Code, e.Input)
	}
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}
