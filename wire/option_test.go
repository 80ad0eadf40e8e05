package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeU512(w *Writer, v U512) { v.EncodeWire(w) }

func decodeU512(r *Reader) (U512, error) {
	var v U512
	err := v.DecodeWire(r)
	return v, err
}

func TestOptionRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	some := Some(NewU512FromUint64(1000000000))
	w := NewWriter()
	EncodeOption(w, some, encodeU512)
	assert.Equal(1+U512ByteLength, w.Len())
	assert.Equal(uint8(1), w.Bytes()[0])

	decoded, err := DecodeOption(NewReader(w.Bytes()), decodeU512)
	require.Nil(err)
	assert.Equal(some, decoded)

	none := None[U512]()
	w = NewWriter()
	EncodeOption(w, none, encodeU512)
	assert.Equal([]byte{0}, w.Bytes())

	decoded, err = DecodeOption(NewReader(w.Bytes()), decodeU512)
	require.Nil(err)
	assert.True(decoded.IsNone())
}

func TestOptionAccessors(t *testing.T) {
	assert := assert.New(t)

	some := Some(uint64(5))
	assert.True(some.IsSome())
	assert.False(some.IsNone())
	v, ok := some.Value()
	assert.True(ok)
	assert.Equal(uint64(5), v)

	none := None[uint64]()
	assert.False(none.IsSome())
	assert.True(none.IsNone())
	_, ok = none.Value()
	assert.False(ok)
}

func TestOptionBadTag(t *testing.T) {
	assert := assert.New(t)

	for _, tag := range []byte{2, 3, 0xff} {
		_, err := DecodeOption(NewReader([]byte{tag}), decodeU512)
		assert.ErrorIs(err, ErrMalformedVariant)
	}
}

func TestOptionTruncated(t *testing.T) {
	assert := assert.New(t)

	// Empty input: discriminant missing.
	_, err := DecodeOption(NewReader(nil), decodeU512)
	assert.ErrorIs(err, ErrMalformedPrimitive)

	// Some variant with a truncated payload.
	_, err = DecodeOption(NewReader([]byte{1, 0xaa}), decodeU512)
	assert.ErrorIs(err, ErrMalformedPrimitive)
}

func TestOptionNested(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// Option<Option<U512>> exercises generic nesting.
	inner := Some(NewU512FromUint64(3))
	outer := Some(inner)

	w := NewWriter()
	EncodeOption(w, outer, func(w *Writer, o Option[U512]) {
		EncodeOption(w, o, encodeU512)
	})

	decoded, err := DecodeOption(NewReader(w.Bytes()), func(r *Reader) (Option[U512], error) {
		return DecodeOption(r, decodeU512)
	})
	require.Nil(err)
	assert.Equal(outer, decoded)
}
