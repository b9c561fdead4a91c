// Package errors provides structured error types for the unicodec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: encoding form name, stream offset, the
// offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMeasure, errors.KindIllFormed).
//		Encoding("UTF-8").
//		Offset(12).
//		Detail("ill-formed sequence after %d well-formed scalars", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidScalar(0xD800)
//	err := errors.SourceFailure(off, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Decode outcomes are never errors; the codec package reports ill-formed
// input as Result values. This package covers the fallible surfaces around
// decoding: scalar validation, measurement rejection, stream source
// failures, and unsupported conversion requests.
package errors
