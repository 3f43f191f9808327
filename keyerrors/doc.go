// Package keyerrors provides structured error types for keycase.
//
// Import path: github.com/erraggy/keycase/keyerrors
//
// Key conversion itself is total: every well-formed value converts. The
// errors in this package describe the few things that can still go wrong
// around it, so callers can tell them apart with [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ResourceLimitError]: input nesting exceeded the configured depth
//   - [ParseError]: a JSON/YAML document or acronym file could not be decoded
//   - [ConfigError]: invalid options or input (bad acronym pair, unknown mode)
//
// # Sentinel Errors
//
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	out, err := camel.ToCamelKeys(v, nil)
//	if errors.Is(err, keyerrors.ErrResourceLimit) {
//	    // Input is nested deeper than Converter.MaxDepth allows
//	}
//
//	var limitErr *keyerrors.ResourceLimitError
//	if errors.As(err, &limitErr) {
//	    fmt.Printf("depth limit %d exceeded\n", limitErr.Limit)
//	}
//
// Key collisions produced by conversion are not errors: the later entry
// wins. Callers that need unique keys must check for that themselves.
package keyerrors
