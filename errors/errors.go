// Package errors provides the structured error type shared by the
// unicodec packages. Ill-formed input on the decode path is never a Go
// error; these errors cover the fallible surfaces around it: scalar
// validation, measurement rejection, stream source failures, and
// unsupported conversions.
package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseValidate  Phase = "validate"  // scalar validation
	PhaseDecode    Phase = "decode"    // code units to scalars
	PhaseEncode    Phase = "encode"    // scalars to code units
	PhaseTranscode Phase = "transcode" // encoding to encoding
	PhaseMeasure   Phase = "measure"   // measurement pre-pass
	PhaseStream    Phase = "stream"    // byte-stream adapters
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidScalar Kind = "invalid_scalar"
	KindIllFormed     Kind = "ill_formed"
	KindSourceFailure Kind = "source_failure"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Encoding string // encoding form name, if known
	Offset   int64  // code-unit or byte position, negative when unknown
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Encoding != "" {
		b.WriteString(" (")
		b.WriteString(e.Encoding)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Encoding sets the encoding form name
func (b *Builder) Encoding(name string) *Builder {
	b.err.Encoding = name
	return b
}

// Offset sets the code-unit or byte position
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidScalar creates an error for a value outside the scalar range
func InvalidScalar(value uint32) *Error {
	detail := fmt.Sprintf("value %#x exceeds the Unicode code space", value)
	if value >= 0xD800 && value <= 0xDFFF {
		detail = fmt.Sprintf("value %#x is a surrogate", value)
	}
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidScalar,
		Value:  value,
		Offset: -1,
		Detail: detail,
	}
}

// IllFormed creates an ill-formed sequence error
func IllFormed(phase Phase, encoding string, offset int64, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindIllFormed,
		Encoding: encoding,
		Offset:   offset,
		Detail:   detail,
	}
}

// SourceFailure creates an error for a code-unit source that failed
// mid-stream
func SourceFailure(offset int64, cause error) *Error {
	return &Error{
		Phase:  PhaseStream,
		Kind:   KindSourceFailure,
		Offset: offset,
		Detail: "source read failed",
		Cause:  cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Offset: -1,
		Detail: what,
	}
}
