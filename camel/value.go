package camel

import (
	"iter"
	"reflect"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies the shape of a Value.
type Kind int

const (
	// KindScalar is any value that is neither a sequence nor a mapping.
	KindScalar Kind = iota
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is an ordered set of key/value entries.
	KindMapping
)

// Value is the recursive data type converted by this package.
// It is implemented only by Sequence, *Mapping and Scalar.
type Value interface {
	Kind() Kind
	sealed()
}

// Sequence is an ordered list of values.
type Sequence []Value

// Kind returns KindSequence.
func (Sequence) Kind() Kind { return KindSequence }
func (Sequence) sealed()    {}

// Scalar wraps a leaf value. The wrapped value is never inspected.
type Scalar struct {
	V any
}

// Kind returns KindScalar.
func (Scalar) Kind() Kind { return KindScalar }
func (Scalar) sealed()    {}

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   Key
	Value Value
}

// Mapping is an insertion-ordered map from Key to Value.
// The zero value is an empty mapping ready to use.
type Mapping struct {
	entries []Entry
	index   map[Key]int
}

// Kind returns KindMapping.
func (*Mapping) Kind() Kind { return KindMapping }
func (*Mapping) sealed()    {}

// NewMapping returns an empty mapping with room for n entries.
func NewMapping(n int) *Mapping {
	return &Mapping{
		entries: make([]Entry, 0, n),
		index:   make(map[Key]int, n),
	}
}

// MappingOf builds a mapping by setting the entries in order.
func MappingOf(entries ...Entry) *Mapping {
	m := NewMapping(len(entries))
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set stores v under k. Setting an existing key replaces its value and
// keeps its original position.
func (m *Mapping) Set(k Key, v Value) {
	if !k.hashable() {
		m.entries = append(m.entries, Entry{Key: k, Value: v})
		return
	}
	if m.index == nil {
		m.index = make(map[Key]int)
	}
	if i, ok := m.index[k]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: k, Value: v})
}

// Get returns the value stored under k.
func (m *Mapping) Get(k Key) (Value, bool) {
	if m == nil || !k.hashable() {
		return nil, false
	}
	i, ok := m.index[k]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []Key {
	if m == nil {
		return nil
	}
	keys := make([]Key, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// All iterates over the entries in insertion order.
func (m *Mapping) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// hashable reports whether k can be used as a Go map key. Other keys
// holding slices, maps or funcs are kept in order but never deduplicated.
func (k Key) hashable() bool {
	if k.kind != KeyOther || k.other == nil {
		return true
	}
	return reflect.ValueOf(k.other).Comparable()
}
