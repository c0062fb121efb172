// Package errors implements the fatal error taxonomy spec.md §7 defines.
// Every kind is carried by the one CoreError type, which satisfies error and
// tags itself through a Kind() accessor, so callers branch on Kind() rather
// than string-matching
// messages the way the teacher's own internal/errors.CompilerError forced
// callers to do for source-position formatting.
package errors

import (
	"fmt"

	"github.com/kr/pretty"
)

// Kind identifies which of spec.md §7's fatal conditions occurred.
type Kind int

const (
	KindUnhandledType Kind = iota
	KindNotSupportedYet
	KindWillNotSupport
	KindTranspileFailed
	KindAssertionFailure
	KindDivisionByZero
)

func (k Kind) String() string {
	switch k {
	case KindUnhandledType:
		return "UnhandledType"
	case KindNotSupportedYet:
		return "NotSupportedYet"
	case KindWillNotSupport:
		return "WillNotSupport"
	case KindTranspileFailed:
		return "TranspileFailed"
	case KindAssertionFailure:
		return "AssertionFailure"
	case KindDivisionByZero:
		return "DivisionByZero"
	default:
		return "Unknown"
	}
}

// CoreError is the single concrete error type backing every Kind. Pipeline
// callers that need to react to a specific kind use errors.As plus Kind(),
// not string comparison (spec.md §7: "none are silently swallowed").
type CoreError struct {
	kind    Kind
	message string
}

func (e *CoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Kind reports which fatal condition this error represents.
func (e *CoreError) Kind() Kind { return e.kind }

// NewUnhandledType reports a type node the translator does not know.
func NewUnhandledType(detail string) error {
	return &CoreError{kind: KindUnhandledType, message: detail}
}

// NewNotSupportedYet reports a recognized construct not yet lowered.
func NewNotSupportedYet(detail string) error {
	return &CoreError{kind: KindNotSupportedYet, message: detail}
}

// NewWillNotSupport reports a construct deliberately excluded.
func NewWillNotSupport(detail string) error {
	return &CoreError{kind: KindWillNotSupport, message: detail}
}

// NewTranspileFailed reports internal lowering unable to proceed on valid
// input.
func NewTranspileFailed(detail string) error {
	return &CoreError{kind: KindTranspileFailed, message: detail}
}

// NewDivisionByZero reports a rational-engine division by a zero
// numerator/denominator.
func NewDivisionByZero(detail string) error {
	return &CoreError{kind: KindDivisionByZero, message: detail}
}

// NewAssertionFailure reports a broken invariant expected from earlier
// passes. nodeDescription is the offending node's printed description
// (spec.md §7 requires it in the message); fields, if given, are rendered
// with kr/pretty the way a failing invariant's surrounding state is often
// worth dumping alongside the node itself.
func NewAssertionFailure(detail, nodeDescription string, fields ...any) error {
	msg := fmt.Sprintf("%s (node: %s)", detail, nodeDescription)
	if len(fields) > 0 {
		msg = fmt.Sprintf("%s\n%s", msg, pretty.Sprint(fields))
	}
	return &CoreError{kind: KindAssertionFailure, message: msg}
}

// Is reports whether err is a CoreError of the given kind, unwrapping
// through any wrapper that supports errors.Unwrap.
func Is(err error, kind Kind) bool {
	for err != nil {
		if ce, ok := err.(*CoreError); ok {
			return ce.kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
