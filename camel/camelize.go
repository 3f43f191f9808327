package camel

import "strings"

// Camelize converts a single snake_case string to CamelCase.
//
//	Camelize("foo_bar", nil)                    // "FooBar"
//	Camelize("widget_id", Acronyms{"id": "ID"}) // "WidgetID"
//	Camelize("namespace/sub_key", nil)          // "Namespace::SubKey"
func Camelize(s string, acronyms Acronyms) string {
	return camelize(s, acronyms, true)
}

// Camelback converts a single snake_case string to camelBack.
// The text before the first underscore is kept unchanged.
//
//	Camelback("foo_bar", nil)                    // "fooBar"
//	Camelback("widget_id", Acronyms{"id": "ID"}) // "widgetID"
func Camelback(s string, acronyms Acronyms) string {
	return camelize(s, acronyms, false)
}

// CamelizeKey converts k for the given mode. Text and symbol keys keep their
// tag; other keys are returned unchanged.
func CamelizeKey(k Key, acronyms Acronyms, mode Mode) Key {
	return camelizeKey(k, acronyms, mode == ModeCamelCase)
}

func camelizeKey(k Key, acronyms Acronyms, firstUpper bool) Key {
	switch k.kind {
	case KeyText:
		return TextKey(camelize(k.text, acronyms, firstUpper))
	case KeySymbol:
		return SymbolKey(camelize(k.text, acronyms, firstUpper))
	default:
		return k
	}
}

func camelize(s string, acronyms Acronyms, firstUpper bool) string {
	if !firstUpper {
		// Only the remainder goes through the namespace handling below, so a
		// "/" in the head survives as-is.
		head, rest, found := strings.Cut(s, "_")
		if !found {
			return s
		}
		return head + camelize(rest, acronyms, true)
	}
	return joinNamespaces(capitalizeWords(s, acronyms), acronyms)
}

// capitalizeWords capitalizes every word that starts the string, a line, or
// follows an underscore, dropping that underscore. A word is a run of bytes
// other than '_' and ASCII whitespace. Underscores not followed by a word
// are kept.
func capitalizeWords(s string, acronyms Acronyms) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		start := -1
		switch {
		case (i == 0 || s[i-1] == '\n') && isWordByte(s[i]):
			start = i
		case s[i] == '_' && i+1 < len(s) && isWordByte(s[i+1]):
			start = i + 1
		}
		if start < 0 {
			b.WriteByte(s[i])
			i++
			continue
		}

		end := start
		for end < len(s) && isWordByte(s[end]) {
			end++
		}
		b.WriteString(capitalize(s[start:end], acronyms))
		i = end
	}

	return b.String()
}

// joinNamespaces replaces every "/segment" with "::Segment".
func joinNamespaces(s string, acronyms Acronyms) string {
	head, rest, found := strings.Cut(s, "/")
	if !found {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + strings.Count(rest, "/") + 1)
	b.WriteString(head)
	for _, seg := range strings.Split(rest, "/") {
		b.WriteString("::")
		b.WriteString(capitalize(seg, acronyms))
	}
	return b.String()
}

func isWordByte(c byte) bool {
	switch c {
	case '_', ' ', '\t', '\n', '\v', '\f', '\r':
		return false
	}
	return true
}
