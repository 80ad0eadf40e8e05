package wire

import (
	"fmt"
)

// Entry is a single key-value pair of a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an ordered sequence of key-value pairs, the schema-level substitute
// for a dictionary since the wire format has no native associative type. On
// the wire it is the uint32 entry count followed by each key and value in
// order; the format never reorders entries.
//
// Key uniqueness is a producer obligation, not a codec one. Put keeps the
// map unique (last write wins, original position kept), but decoding
// preserves whatever the producer wrote, duplicates included. Consumers that
// require uniqueness call ValidateUniqueKeys after decoding.
type Map[K comparable, V any] struct {
	entries []Entry[K, V]
}

// Put inserts or replaces the value for key. A replaced key keeps its
// original position.
func (m *Map[K, V]) Put(key K, value V) {
	for i := range m.entries {
		if m.entries[i].Key == key {
			m.entries[i].Value = value
			return
		}
	}
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
}

// Get returns the value for key. With duplicate keys present the first
// entry wins.
func (m Map[K, V]) Get(key K) (V, bool) {
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of entries, duplicates included.
func (m Map[K, V]) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(m.entries))
	copy(out, m.entries)
	return out
}

// ValidateUniqueKeys fails if any key appears in more than one entry.
func (m Map[K, V]) ValidateUniqueKeys() error {
	seen := make(map[K]struct{}, len(m.entries))
	for i, e := range m.entries {
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("duplicate map key at entry %d", i)
		}
		seen[e.Key] = struct{}{}
	}
	return nil
}

// Copy returns a deep copy of the entry sequence. Values are copied by
// assignment; reference-typed values still alias the originals.
func (m Map[K, V]) Copy() Map[K, V] {
	return Map[K, V]{entries: m.Entries()}
}

// EncodeMap writes m using encK and encV for the keys and values. Entries
// are written in their stored order.
func EncodeMap[K comparable, V any](w *Writer, m Map[K, V], encK func(*Writer, K), encV func(*Writer, V)) {
	w.WriteUint32(uint32(len(m.entries)))
	for _, e := range m.entries {
		encK(w, e.Key)
		encV(w, e.Value)
	}
}

// DecodeMap reads the entry count and then exactly that many pairs,
// preserving their encoded order. It does not sort, deduplicate, or reject
// duplicate keys.
func DecodeMap[K comparable, V any](r *Reader, decK func(*Reader) (K, error), decV func(*Reader) (V, error)) (Map[K, V], error) {
	entries, err := DecodeSlice(r, func(r *Reader) (Entry[K, V], error) {
		key, err := decK(r)
		if err != nil {
			return Entry[K, V]{}, err
		}
		value, err := decV(r)
		if err != nil {
			return Entry[K, V]{}, err
		}
		return Entry[K, V]{Key: key, Value: value}, nil
	})
	if err != nil {
		return Map[K, V]{}, err
	}
	return Map[K, V]{entries: entries}, nil
}
