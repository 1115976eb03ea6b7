// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeMalformedPattern,
//	    "failed to register recipe",
//	    parseErr,
//	    map[string]any{
//	        "recipe":  def.ID,
//	        "pattern": def.Pattern,
//	    },
//	)
//
// CodeOf recovers the code from any error chain, falling back to
// ErrCodeInternal for errors that carry none.
package errors
