// Package errors provides structured error types shared by the scoring API,
// the CLI and the benchmark harness.
//
// A StructuredError carries a machine-readable ErrorCode, a human message,
// an optional cause and optional context. The HTTP layer maps codes to
// status codes, so handlers return or write errors by code instead of
// picking statuses by hand.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeMalformedInput,
//	    "failed to decode meal",
//	    decodeErr,
//	    map[string]any{
//	        "contentType": r.Header.Get("Content-Type"),
//	    },
//	)
package errors
