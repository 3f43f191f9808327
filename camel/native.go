package camel

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// FromAny converts a plain Go value into a Value.
//
// Maps become mappings and slices or arrays (other than []byte) become
// sequences, recursively. Map keys of string kind become text keys, Symbol
// keys become symbol keys and anything else becomes an other key. Because Go
// maps are unordered, entries are sorted by key so results are deterministic.
// Values that already implement Value are returned as-is; everything else is
// wrapped in a Scalar.
//
// Nesting is bounded by DefaultMaxDepth, so self-referencing maps or slices
// yield a *keyerrors.ResourceLimitError.
func FromAny(v any) (Value, error) {
	return fromAny(v, 0, DefaultMaxDepth)
}

func fromAny(v any, depth, maxDepth int) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Scalar{}, nil
	case Value:
		return x, nil
	case []byte:
		return Scalar{V: x}, nil
	case []any:
		if err := checkDepth(depth, maxDepth); err != nil {
			return nil, err
		}
		seq := make(Sequence, len(x))
		for i, elem := range x {
			converted, err := fromAny(elem, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			seq[i] = converted
		}
		return seq, nil
	case map[string]any:
		if err := checkDepth(depth, maxDepth); err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		m := NewMapping(len(x))
		for _, k := range keys {
			converted, err := fromAny(x[k], depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			m.Set(TextKey(k), converted)
		}
		return m, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Scalar{V: v}, nil
		}
		if err := checkDepth(depth, maxDepth); err != nil {
			return nil, err
		}
		seq := make(Sequence, rv.Len())
		for i := range seq {
			converted, err := fromAny(rv.Index(i).Interface(), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			seq[i] = converted
		}
		return seq, nil
	case reflect.Map:
		if err := checkDepth(depth, maxDepth); err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			converted, err := fromAny(iter.Value().Interface(), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{
				Key:   keyFromAny(iter.Key().Interface()),
				Value: converted,
			})
		}
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return compareKeys(a.Key, b.Key)
		})
		return MappingOf(entries...), nil
	default:
		return Scalar{V: v}, nil
	}
}

func keyFromAny(k any) Key {
	if s, ok := k.(Symbol); ok {
		return SymbolKey(string(s))
	}
	if rv := reflect.ValueOf(k); rv.Kind() == reflect.String {
		return TextKey(rv.String())
	}
	return OtherKey(k)
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if a.kind != KeyOther {
		return cmp.Compare(a.text, b.text)
	}
	return cmp.Compare(fmt.Sprint(a.other), fmt.Sprint(b.other))
}

// ToAny converts a Value back into plain Go values.
//
// A mapping whose keys are all text becomes map[string]any; any other
// mapping becomes map[any]any with symbol keys as Symbol. Sequences become
// []any and scalars are unwrapped. Other keys must hold comparable values,
// as for any Go map key.
func ToAny(v Value) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Scalar:
		return x.V
	case Sequence:
		if x == nil {
			return []any(nil)
		}
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = ToAny(elem)
		}
		return out
	case *Mapping:
		if x == nil {
			return map[string]any(nil)
		}
		if allTextKeys(x) {
			out := make(map[string]any, x.Len())
			for _, e := range x.entries {
				out[e.Key.text] = ToAny(e.Value)
			}
			return out
		}
		out := make(map[any]any, x.Len())
		for _, e := range x.entries {
			out[nativeKey(e.Key)] = ToAny(e.Value)
		}
		return out
	default:
		return v
	}
}

func allTextKeys(m *Mapping) bool {
	for _, e := range m.entries {
		if e.Key.kind != KeyText {
			return false
		}
	}
	return true
}

func nativeKey(k Key) any {
	switch k.kind {
	case KeyText:
		return k.text
	case KeySymbol:
		return Symbol(k.text)
	default:
		return k.other
	}
}

// ConvertAny converts the keys of a plain Go value and returns plain Go
// values; see FromAny and ToAny for the mapping rules.
func (c *Converter) ConvertAny(v any, mode Mode) (any, error) {
	in, err := fromAny(v, 0, c.maxDepth())
	if err != nil {
		return nil, err
	}
	out, err := c.Convert(in, mode)
	if err != nil {
		return nil, err
	}
	return ToAny(out), nil
}
