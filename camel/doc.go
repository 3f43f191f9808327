// Package camel converts the keys of nested data from snake_case to
// CamelCase or camelBack.
//
// Import path: github.com/erraggy/keycase/camel
//
// Data is modelled as a [Value]: a [Sequence], a [*Mapping] or a [Scalar].
// Conversion walks sequences and mappings to any depth, renames every
// mapping key and leaves scalars untouched. The result is a freshly
// allocated structure; the input is never modified.
//
// # Quick Start
//
//	in := camel.MappingOf(
//	    camel.Entry{Key: camel.TextKey("widget_id"), Value: camel.Scalar{V: 5}},
//	)
//	out, err := camel.ToCamelbackKeys(in, camel.Acronyms{"id": "ID"})
//	// out: {"widgetID": 5}
//
// Plain Go values (map[string]any, []any, ...) can be converted directly:
//
//	c := camel.New()
//	out, err := c.ConvertAny(map[string]any{"foo_bar": 1}, camel.ModeCamelCase)
//	// out: map[string]any{"FooBar": 1}
//
// # Key Rules
//
// In CamelCase mode every underscore-delimited word is capitalized and
// the underscores are dropped. A "/" starts a namespace segment, which is
// capitalized and joined with "::":
//
//	"foo_bar"           -> "FooBar"
//	"namespace/sub_key" -> "Namespace::SubKey"
//
// In camelBack mode everything before the first underscore is kept as-is
// and the remainder is converted in CamelCase mode:
//
//	"foo_bar"     -> "fooBar"
//	"ns/sub_key"  -> "ns/subKey"
//
// Capitalization only touches the first letter of a word ("hTTP" becomes
// "HTTP", "HTTP" stays "HTTP"). Words found in the [Acronyms] table are
// replaced verbatim instead.
//
// # Keys
//
// A [Key] is text, a symbol, or any other value. Text and symbol keys are
// converted and keep their tag; other keys pass through unchanged.
//
// # Collisions
//
// Two input keys can convert to the same output key ("foo_bar" and
// "fooBar" in camelBack mode). The later entry wins and keeps the position
// of the earlier one. Collisions are not reported.
//
// # Depth
//
// Nesting is limited by [Converter.MaxDepth] (default [DefaultMaxDepth]).
// Deeper input fails with a [*keyerrors.ResourceLimitError].
package camel
