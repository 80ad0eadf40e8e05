package wire

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	// U512WordCount is the number of 64-bit words in a U512.
	U512WordCount = 8

	// U512ByteLength is the encoded size of a U512.
	U512ByteLength = U512WordCount * 8
)

// U512 is an unsigned 512-bit integer stored as eight 64-bit words, least
// significant word first. It represents gas and reward quantities too large
// for native machine words. Only storage and transport are supported;
// arithmetic belongs to the layers that compute these quantities.
//
// The eight-word tuple is the unique canonical representation of the value.
// On the wire a U512 is exactly 64 bytes: the words in ascending
// significance, each little-endian.
type U512 [U512WordCount]uint64

// MaxU512 is the largest representable value, 2^512 - 1.
var MaxU512 = U512{
	^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0),
	^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0),
}

var (
	// ErrU512Negative is returned when constructing a U512 from a negative
	// big integer.
	ErrU512Negative = errors.New("wire: U512 cannot hold a negative value")

	// ErrU512Overflow is returned when constructing a U512 from a big
	// integer wider than 512 bits.
	ErrU512Overflow = errors.New("wire: value does not fit in 512 bits")
)

// NewU512FromUint64 creates a U512 holding v.
func NewU512FromUint64(v uint64) U512 {
	return U512{v}
}

// NewU512FromBig creates a U512 holding b. Fails if b is negative or does
// not fit in 512 bits.
func NewU512FromBig(b *big.Int) (U512, error) {
	if b.Sign() < 0 {
		return U512{}, ErrU512Negative
	}
	if b.BitLen() > 512 {
		return U512{}, ErrU512Overflow
	}
	var u U512
	mask := new(big.Int).SetUint64(^uint64(0))
	tmp := new(big.Int).Set(b)
	word := new(big.Int)
	for i := 0; i < U512WordCount; i++ {
		u[i] = word.And(tmp, mask).Uint64()
		tmp.Rsh(tmp, 64)
	}
	return u, nil
}

// ToBig converts u to a big integer.
func (u U512) ToBig() *big.Int {
	b := new(big.Int)
	word := new(big.Int)
	for i := U512WordCount - 1; i >= 0; i-- {
		b.Lsh(b, 64)
		b.Or(b, word.SetUint64(u[i]))
	}
	return b
}

// Cmp compares u and v, returning -1, 0 or 1.
func (u U512) Cmp(v U512) int {
	for i := U512WordCount - 1; i >= 0; i-- {
		switch {
		case u[i] < v[i]:
			return -1
		case u[i] > v[i]:
			return 1
		}
	}
	return 0
}

// IsZero reports whether u holds the value zero.
func (u U512) IsZero() bool {
	return u == U512{}
}

func (u U512) String() string {
	return u.ToBig().String()
}

// MarshalText implements encoding.TextMarshaler; the value is rendered in
// decimal, matching String.
func (u U512) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *U512) UnmarshalText(input []byte) error {
	b, ok := new(big.Int).SetString(string(input), 10)
	if !ok {
		return fmt.Errorf("wire: cannot parse %q as U512", input)
	}
	v, err := NewU512FromBig(b)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

var _ Encoder = (*U512)(nil)

// EncodeWire writes the eight words in ascending significance order.
func (u U512) EncodeWire(w *Writer) {
	for i := 0; i < U512WordCount; i++ {
		w.WriteUint64(u[i])
	}
}

var _ Decoder = (*U512)(nil)

// DecodeWire reads exactly 64 bytes. Every bit pattern is a valid value, so
// decoding can only fail on truncated input.
func (u *U512) DecodeWire(r *Reader) error {
	if r.Remaining() < U512ByteLength {
		return fmt.Errorf("%w: U512 needs %d bytes, have %d", ErrMalformedPrimitive, U512ByteLength, r.Remaining())
	}
	for i := 0; i < U512WordCount; i++ {
		word, err := r.ReadUint64()
		if err != nil {
			return err
		}
		u[i] = word
	}
	return nil
}
