package wire

import (
	"fmt"
)

// Discriminant tags of an Option. Any other tag value is rejected with
// ErrMalformedVariant. Changing these values breaks wire compatibility.
const (
	optionNoneTag uint8 = 0
	optionSomeTag uint8 = 1
)

// Option is an explicit presence/absence wrapper around a value of type T.
// Exactly one of the two variants is present per instance. On the wire it is
// the discriminant byte, followed by the payload for the some variant only.
type Option[T any] struct {
	value  T
	isSome bool
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, isSome: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.isSome
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Value returns the held value; the bool is false for the none variant.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.isSome
}

// EncodeOption writes o using enc for the payload. The payload codec is
// fixed by the caller's schema, not chosen at runtime.
func EncodeOption[T any](w *Writer, o Option[T], enc func(*Writer, T)) {
	if !o.isSome {
		w.WriteUint8(optionNoneTag)
		return
	}
	w.WriteUint8(optionSomeTag)
	enc(w, o.value)
}

// DecodeOption reads the discriminant and then conditionally the payload.
func DecodeOption[T any](r *Reader, dec func(*Reader) (T, error)) (Option[T], error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return None[T](), err
	}
	switch tag {
	case optionNoneTag:
		return None[T](), nil
	case optionSomeTag:
		v, err := dec(r)
		if err != nil {
			return None[T](), err
		}
		return Some(v), nil
	default:
		return None[T](), fmt.Errorf("%w: option tag %d", ErrMalformedVariant, tag)
	}
}
