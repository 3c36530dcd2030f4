// SPDX-License-Identifier: MIT
// Package engine: error codes reported by engine primitives.
//
// Every primitive that can fail returns an *Error. The Code classifies the
// failure; Op names the primitive; Msg carries human context. Sentinels
// below have an empty Op and match any *Error with the same Code through
// errors.Is, so callers never compare strings.

package engine

import (
	"errors"
	"fmt"
)

// Code classifies an engine failure.
type Code uint8

const (
	// CodeNoMemory reports an allocation failure (including an exhausted
	// allocation limit).
	CodeNoMemory Code = iota + 1
	// CodeInvalidHandle reports a nil, unknown, destroyed or static handle
	// where a live destroyable handle was required.
	CodeInvalidHandle
	// CodeKindMismatch reports a handle of the wrong kind.
	CodeKindMismatch
	// CodeInvalidVertex reports a vertex id outside the graph.
	CodeInvalidVertex
	// CodeInvalidEdge reports an edge id outside the graph.
	CodeInvalidEdge
	// CodeInvalidValue reports a malformed argument (negative size, from > to, odd edge list).
	CodeInvalidValue
	// CodeInvalidMode reports an unknown neighbor mode.
	CodeInvalidMode
	// CodeNotFound reports a lookup that matched nothing (e.g. no edge between two vertices).
	CodeNotFound
	// CodeInternal reports a broken engine invariant.
	CodeInternal
)

var codeNames = map[Code]string{
	CodeNoMemory:      "out of memory",
	CodeInvalidHandle: "invalid handle",
	CodeKindMismatch:  "handle kind mismatch",
	CodeInvalidVertex: "invalid vertex id",
	CodeInvalidEdge:   "invalid edge id",
	CodeInvalidValue:  "invalid value",
	CodeInvalidMode:   "invalid neighbor mode",
	CodeNotFound:      "not found",
	CodeInternal:      "internal error",
}

// String returns the canonical message for the code.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Error is the failure value of every engine primitive.
type Error struct {
	Code Code
	Op   string
	Msg  string
}

// Error implements error.
func (e *Error) Error() string {
	switch {
	case e.Op == "":
		return "engine: " + e.Code.String()
	case e.Msg == "":
		return "engine: " + e.Op + ": " + e.Code.String()
	default:
		return "engine: " + e.Op + ": " + e.Code.String() + ": " + e.Msg
	}
}

// Is matches any *Error carrying the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrNoMemory      = &Error{Code: CodeNoMemory}
	ErrInvalidHandle = &Error{Code: CodeInvalidHandle}
	ErrKindMismatch  = &Error{Code: CodeKindMismatch}
	ErrInvalidVertex = &Error{Code: CodeInvalidVertex}
	ErrInvalidEdge   = &Error{Code: CodeInvalidEdge}
	ErrInvalidValue  = &Error{Code: CodeInvalidValue}
	ErrInvalidMode   = &Error{Code: CodeInvalidMode}
	ErrNotFound      = &Error{Code: CodeNotFound}
	ErrInternal      = &Error{Code: CodeInternal}
)

// errorf builds an *Error for primitive op.
func errorf(code Code, op, format string, args ...interface{}) *Error {
	return &Error{Code: code, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the Code of an engine error, or 0 when err is not one.
func CodeOf(err error) Code {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 0
}
