package expr

import (
	"errors"
	"fmt"
)

// FailureKind classifies why an evaluation failed.
type FailureKind int

const (
	// FailZeroDivisor covers division and modulo by zero.
	FailZeroDivisor FailureKind = iota
	// FailDomain covers negative sqrt/factorial and non-integer
	// modulo/factorial operands.
	FailDomain
	// FailOverflow means an intermediate or final value exceeded the
	// 1e20 magnitude bound.
	FailOverflow
	// FailRange covers operator-specific limits such as an exponent
	// above 20 or an exponentiation base above 100.
	FailRange
	// FailDoubleNegation means a negate node directly wrapped another.
	FailDoubleNegation
)

// EvalError reports a recoverable evaluation failure. The search engine
// discards the offending candidate and moves on.
type EvalError struct {
	Kind   FailureKind
	Reason string
}

func (e *EvalError) Error() string {
	return "evaluation failed: " + e.Reason
}

func evalErr(kind FailureKind, format string, args ...interface{}) error {
	return &EvalError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// IsEvalError reports whether err is an evaluation failure.
func IsEvalError(err error) bool {
	var e *EvalError
	return errors.As(err, &e)
}
