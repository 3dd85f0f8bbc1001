// SPDX-License-Identifier: MIT
// Package corelib: argument error taxonomy shared by seq, cartesian and equality.
//
// Error policy:
//   • Only the three sentinels below classify failures.
//   • Operations return *ArgumentError, which names the operation and the
//     offending parameter and unwraps to a sentinel.
//   • Callers MUST use errors.Is(err, ErrX) to branch and errors.As to read
//     ArgumentError.Param; string comparisons are not part of the contract.

package corelib

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument indicates a required sequence, comparer or collection was nil.
	ErrNilArgument = errors.New("corelib: argument is nil")

	// ErrOutOfRange indicates a numeric argument violates its bound
	// (negative index or power, insertion index past the end, segment bounds).
	ErrOutOfRange = errors.New("corelib: argument out of range")

	// ErrNilElement indicates a collection of sequences contains a nil element.
	ErrNilElement = errors.New("corelib: collection contains nil element")
)

// ArgumentError reports which parameter of which operation was rejected.
type ArgumentError struct {
	Op     string // operation, e.g. "seq.Insert"
	Param  string // parameter name, e.g. "insertAt"
	Value  any    // offending value; nil for nil arguments
	Reason string // optional human-readable detail
	Err    error  // one of the package sentinels
}

// Error implements error.
func (e *ArgumentError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Param)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ArgumentError) Unwrap() error { return e.Err }

// NilArgument builds the null-argument error for op's param.
func NilArgument(op, param string) error {
	return &ArgumentError{Op: op, Param: param, Err: ErrNilArgument}
}

// OutOfRange builds the out-of-range error for op's param holding value.
func OutOfRange(op, param string, value any, reason string) error {
	return &ArgumentError{Op: op, Param: param, Value: value, Reason: reason, Err: ErrOutOfRange}
}

// NilElement builds the invalid-collection-element error; index is the
// position of the nil element inside param.
func NilElement(op, param string, index int) error {
	return &ArgumentError{
		Op:     op,
		Param:  param,
		Reason: fmt.Sprintf("element %d is nil", index),
		Err:    ErrNilElement,
	}
}

// ParamOf returns the parameter name carried by err, or "" when err is not an
// *ArgumentError.
func ParamOf(err error) string {
	var ae *ArgumentError
	if errors.As(err, &ae) {
		return ae.Param
	}
	return ""
}
