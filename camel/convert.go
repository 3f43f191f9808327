package camel

import (
	"strings"

	"github.com/erraggy/keycase/keyerrors"
)

//go:generate go tool stringer -type=Mode -trimprefix=Mode

// Mode selects the output naming convention.
type Mode int

const (
	// ModeCamelCase capitalizes every word: "foo_bar" -> "FooBar".
	ModeCamelCase Mode = iota
	// ModeCamelBack keeps the first word as-is: "foo_bar" -> "fooBar".
	ModeCamelBack
)

// DefaultMaxDepth is the nesting limit used when Converter.MaxDepth is not positive.
const DefaultMaxDepth = 1000

// ParseMode parses a mode name. It accepts "camel", "camelcase",
// "camelback" and "camel-back" in any letter case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "camel", "camelcase", "camel-case":
		return ModeCamelCase, nil
	case "camelback", "camel-back", "lower-camel":
		return ModeCamelBack, nil
	default:
		return 0, &keyerrors.ConfigError{
			Option:  "mode",
			Value:   s,
			Message: "expected camel or camelback",
		}
	}
}

// Converter converts mapping keys throughout nested values.
// A Converter is safe for concurrent use as long as its fields are not
// modified while conversions are running.
type Converter struct {
	// Acronyms overrides the capitalization of exact word fragments.
	Acronyms Acronyms
	// MaxDepth limits how many sequences and mappings may be nested.
	// Values <= 0 use DefaultMaxDepth.
	MaxDepth int
}

// New creates a Converter with an empty acronym table and the default depth limit.
func New() *Converter {
	return &Converter{MaxDepth: DefaultMaxDepth}
}

// ToCamelKeys returns a copy of v with every mapping key converted to
// CamelCase. If two keys convert to the same name, the later one wins.
func ToCamelKeys(v Value, acronyms Acronyms) (Value, error) {
	c := Converter{Acronyms: acronyms}
	return c.Convert(v, ModeCamelCase)
}

// ToCamelbackKeys returns a copy of v with every mapping key converted to
// camelBack. If two keys convert to the same name, the later one wins.
func ToCamelbackKeys(v Value, acronyms Acronyms) (Value, error) {
	c := Converter{Acronyms: acronyms}
	return c.Convert(v, ModeCamelBack)
}

// CamelKeys converts every mapping key in v to CamelCase.
func (c *Converter) CamelKeys(v Value) (Value, error) {
	return c.Convert(v, ModeCamelCase)
}

// CamelbackKeys converts every mapping key in v to camelBack.
func (c *Converter) CamelbackKeys(v Value) (Value, error) {
	return c.Convert(v, ModeCamelBack)
}

// Convert returns a freshly allocated copy of v with every mapping key
// converted for mode. Sequences keep their order and length and scalars are
// returned unchanged. The only error is a *keyerrors.ResourceLimitError when
// v is nested deeper than MaxDepth.
func (c *Converter) Convert(v Value, mode Mode) (Value, error) {
	w := walker{
		acronyms:   c.Acronyms,
		firstUpper: mode == ModeCamelCase,
		maxDepth:   c.maxDepth(),
	}
	return w.walk(v, 0)
}

func (c *Converter) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

type walker struct {
	acronyms   Acronyms
	firstUpper bool
	maxDepth   int
}

func (w *walker) walk(v Value, depth int) (Value, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case Scalar:
		return v, nil
	case Sequence:
		if v == nil {
			return v, nil
		}
		if err := checkDepth(depth, w.maxDepth); err != nil {
			return nil, err
		}
		out := make(Sequence, len(v))
		for i, elem := range v {
			converted, err := w.walk(elem, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	case *Mapping:
		if v == nil {
			return v, nil
		}
		if err := checkDepth(depth, w.maxDepth); err != nil {
			return nil, err
		}
		out := NewMapping(v.Len())
		for _, e := range v.entries {
			converted, err := w.walk(e.Value, depth+1)
			if err != nil {
				return nil, err
			}
			out.Set(camelizeKey(e.Key, w.acronyms, w.firstUpper), converted)
		}
		return out, nil
	default:
		// Value is sealed; all implementations are handled above.
		return v, nil
	}
}

// checkDepth fails once a container sits at depth maxDepth or deeper.
func checkDepth(depth, maxDepth int) error {
	if depth < maxDepth {
		return nil
	}
	return &keyerrors.ResourceLimitError{
		ResourceType: "nesting_depth",
		Limit:        int64(maxDepth),
		Actual:       int64(depth + 1),
		Message:      "bound the input depth or raise MaxDepth",
	}
}
