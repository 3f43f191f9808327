package camel

import "fmt"

//go:generate go tool stringer -type=KeyKind -trimprefix=Key

// KeyKind tags how a mapping key was originally represented.
type KeyKind int

const (
	// KeyText is a plain string key.
	KeyText KeyKind = iota
	// KeySymbol is a string key tagged as a symbol.
	KeySymbol
	// KeyOther is any non-string key. It is never converted.
	KeyOther
)

// Symbol marks a symbolic key in plain Go maps handled by FromAny and ToAny.
type Symbol string

// Key is a mapping key. Keys are comparable and can be used as map keys
// unless an other key wraps an uncomparable value.
type Key struct {
	kind  KeyKind
	text  string
	other any
}

// TextKey returns a plain string key.
func TextKey(s string) Key {
	return Key{kind: KeyText, text: s}
}

// SymbolKey returns a symbolic key.
func SymbolKey(s string) Key {
	return Key{kind: KeySymbol, text: s}
}

// OtherKey returns a key wrapping a non-string value.
func OtherKey(v any) Key {
	return Key{kind: KeyOther, other: v}
}

// Kind returns the key's tag.
func (k Key) Kind() KeyKind {
	return k.kind
}

// Text returns the textual form of a text or symbol key.
// The second result is false for other keys.
func (k Key) Text() (string, bool) {
	if k.kind == KeyOther {
		return "", false
	}
	return k.text, true
}

// Raw returns the value wrapped by an other key, or nil.
func (k Key) Raw() any {
	return k.other
}

// String implements fmt.Stringer.
func (k Key) String() string {
	switch k.kind {
	case KeyText:
		return k.text
	case KeySymbol:
		return ":" + k.text
	default:
		return fmt.Sprint(k.other)
	}
}
