// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured error type for the grimm toolkit with
//              error codes, severity levels, contextual details, cause chains,
//              and stack trace capture. All toolkit packages report failures
//              through this type.
// Version: v0.1.1
// Created: 2026-01-12
// Modified: 2026-01-20
//
// Change History:
// - 2026-01-12 v0.1.0: Initial implementation with contextual errors and stack traces
// - 2026-01-20 v0.1.1: Add end-of-input sentinel for iterator-style consumers

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	// MaxErrorChainDepth limits how deep error chains can grow to prevent
	// unbounded memory usage from cyclic or runaway wrapping
	MaxErrorChainDepth = 15

	// MaxStackFrames limits the number of captured stack frames
	MaxStackFrames = 20
)

// stackFramePool reduces allocations during stack trace capture
var stackFramePool = sync.Pool{
	New: func() interface{} {
		return make([]StackFrame, 0, MaxStackFrames)
	},
}

// StackFrame represents a single frame in a captured stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Error is the structured error type used throughout the grimm toolkit.
// It carries a code, severity, contextual details, and the failing operation
// alongside the usual message and cause chain.
type Error struct {
	message    string
	cause      error
	code       Code
	severity   Severity
	timestamp  time.Time
	details    map[string]interface{}
	operation  string
	stackTrace []StackFrame
}

// New creates a new error with the given message. The error starts with
// CodeUnknown and SeverityMedium until refined via the builder methods.
func New(message string) *Error {
	return &Error{
		message:    message,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		stackTrace: captureStackTrace(2),
	}
}

// Wrap wraps an existing error with an additional message. Returns nil if
// err is nil. Code and severity of wrapped grimm errors are preserved so
// that callers can still match on the original failure class.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Flatten instead of growing the chain past the depth limit
	if chainDepth(err) >= MaxErrorChainDepth {
		return &Error{
			message:    fmt.Sprintf("%s (chain truncated): %s", message, err.Error()),
			code:       CodeUnknown,
			severity:   SeverityMedium,
			timestamp:  time.Now(),
			stackTrace: captureStackTrace(2),
		}
	}

	if grimmErr, ok := err.(*Error); ok {
		return &Error{
			message:    message,
			cause:      err,
			code:       grimmErr.code,
			severity:   grimmErr.severity,
			timestamp:  time.Now(),
			stackTrace: captureStackTrace(2),
		}
	}

	return &Error{
		message:    message,
		cause:      err,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		stackTrace: captureStackTrace(2),
	}
}

// chainDepth counts the length of an error chain, stopping at the depth limit
func chainDepth(err error) int {
	depth := 0
	for err != nil && depth <= MaxErrorChainDepth {
		depth++
		err = errors.Unwrap(err)
	}
	return depth
}

// captureStackTrace captures the current stack trace, skipping the given
// number of frames so that the trace starts at the caller of New or Wrap
func captureStackTrace(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stackTrace := stackFramePool.Get().([]StackFrame)
	stackTrace = stackTrace[:0]

	for {
		frame, more := frames.Next()
		stackTrace = append(stackTrace, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more || len(stackTrace) >= MaxStackFrames {
			break
		}
	}

	result := make([]StackFrame, len(stackTrace))
	copy(result, stackTrace)
	stackFramePool.Put(stackTrace) //nolint:staticcheck

	return result
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the wrapped error for errors.Is and errors.As support
func (e *Error) Unwrap() error {
	return e.cause
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Operation returns the operation that failed
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	if e.details == nil {
		return nil
	}
	details := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		details[k] = v
	}
	return details
}

// StackTrace returns a copy of the captured stack trace
func (e *Error) StackTrace() []StackFrame {
	if e.stackTrace == nil {
		return nil
	}
	trace := make([]StackFrame, len(e.stackTrace))
	copy(trace, e.stackTrace)
	return trace
}

// RootCause returns the innermost error in the chain
func (e *Error) RootCause() error {
	var current error = e
	for {
		unwrapped := errors.Unwrap(current)
		if unwrapped == nil {
			return current
		}
		current = unwrapped
	}
}

// WithCode sets the error code. If the severity is still at its default,
// it is derived from the code.
func (e *Error) WithCode(code Code) *Error {
	if e == nil {
		return nil
	}
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity explicitly
func (e *Error) WithSeverity(severity Severity) *Error {
	if e == nil {
		return nil
	}
	e.severity = severity
	return e
}

// WithOperation records the operation that failed, such as "transcode.UTF8ToUTF16"
func (e *Error) WithOperation(operation string) *Error {
	if e == nil {
		return nil
	}
	e.operation = operation
	return e
}

// WithDetail adds a single key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e == nil {
		return nil
	}
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e == nil {
		return nil
	}
	if e.details == nil {
		e.details = make(map[string]interface{}, len(details))
	}
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// String returns a detailed multi-line representation for diagnostics
func (e *Error) String() string {
	if e == nil {
		return "<nil>"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s", e.message))
	sb.WriteString(fmt.Sprintf("\n  Code: %s", e.code))
	sb.WriteString(fmt.Sprintf("\n  Severity: %s", e.severity))

	if e.operation != "" {
		sb.WriteString(fmt.Sprintf("\n  Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		sb.WriteString("\n  Details: {")
		first := true
		for k, v := range e.details {
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%s=%v", k, v))
			first = false
		}
		sb.WriteString("}")
	}

	if e.cause != nil {
		sb.WriteString(fmt.Sprintf("\n  Caused by: %s", e.cause.Error()))
	}

	return sb.String()
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code.String(),
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339Nano),
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	if len(e.stackTrace) > 0 {
		data["stack_trace"] = e.stackTrace
	}

	return json.Marshal(data)
}

// HasCode checks whether err is a grimm error carrying the given code
func HasCode(err error, code Code) bool {
	var grimmErr *Error
	if errors.As(err, &grimmErr) {
		return grimmErr.code == code
	}
	return false
}

// GetCode extracts the error code, returning CodeUnknown for foreign errors
func GetCode(err error) Code {
	var grimmErr *Error
	if errors.As(err, &grimmErr) {
		return grimmErr.code
	}
	return CodeUnknown
}

// GetSeverity extracts the severity, returning SeverityMedium for foreign errors
func GetSeverity(err error) Severity {
	var grimmErr *Error
	if errors.As(err, &grimmErr) {
		return grimmErr.severity
	}
	return SeverityMedium
}

// ErrEndOfInput signals that an iterator or lexer has consumed all of its
// input. It is a terminal condition rather than a failure, comparable to
// io.EOF, and callers should check for it before treating a non-nil error
// as a real fault.
var ErrEndOfInput = New("end of input").WithCode(CodeEndOfInput)

// IsEndOfInput reports whether err represents the end-of-input condition
func IsEndOfInput(err error) bool {
	return errors.Is(err, ErrEndOfInput) || HasCode(err, CodeEndOfInput)
}
