package wire

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU512RoundTrip(t *testing.T) {
	assert := assert.New(t)

	values := []U512{
		{},
		NewU512FromUint64(1),
		NewU512FromUint64(1000000000),
		{0x0123456789abcdef, 0xfedcba9876543210, 1, 2, 3, 4, 5, 6},
		MaxU512,
	}
	for _, v := range values {
		encoded := EncodeToBytes(v)
		assert.Equal(U512ByteLength, len(encoded))

		var decoded U512
		err := DecodeFromBytes(encoded, &decoded)
		assert.Nil(err)
		assert.Equal(v, decoded)
	}
}

func TestU512CanonicalForm(t *testing.T) {
	assert := assert.New(t)

	// Any 64 bytes decode to a value whose re-encoding is byte-identical.
	input := make([]byte, U512ByteLength)
	for i := range input {
		input[i] = byte(i*7 + 3)
	}
	var v U512
	err := DecodeFromBytes(input, &v)
	assert.Nil(err)
	assert.Equal(input, EncodeToBytes(v))
}

func TestU512WordOrder(t *testing.T) {
	assert := assert.New(t)

	// Word 0 is the least significant word and leads the encoding.
	v := NewU512FromUint64(0x01)
	encoded := EncodeToBytes(v)
	assert.Equal(byte(0x01), encoded[0])
	for _, b := range encoded[1:] {
		assert.Equal(byte(0), b)
	}
}

func TestU512Truncated(t *testing.T) {
	assert := assert.New(t)

	encoded := EncodeToBytes(MaxU512)
	for _, n := range []int{0, 1, 8, 63} {
		var v U512
		err := DecodeFromBytes(encoded[:n], &v)
		assert.NotNil(err)
		assert.True(IsMalformed(err))
	}
}

func TestU512BigConversion(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	one := big.NewInt(1)
	max := new(big.Int).Sub(new(big.Int).Lsh(one, 512), one)

	v, err := NewU512FromBig(max)
	require.Nil(err)
	assert.Equal(MaxU512, v)
	assert.Equal(0, v.ToBig().Cmp(max))

	v, err = NewU512FromBig(big.NewInt(1000000000))
	require.Nil(err)
	assert.Equal(NewU512FromUint64(1000000000), v)
	assert.Equal("1000000000", v.String())

	_, err = NewU512FromBig(big.NewInt(-1))
	assert.Equal(ErrU512Negative, err)

	_, err = NewU512FromBig(new(big.Int).Lsh(one, 512))
	assert.Equal(ErrU512Overflow, err)
}

func TestU512Cmp(t *testing.T) {
	assert := assert.New(t)

	zero := U512{}
	small := NewU512FromUint64(5)
	highWord := U512{0, 0, 0, 0, 0, 0, 0, 1}

	assert.Equal(0, zero.Cmp(U512{}))
	assert.Equal(-1, zero.Cmp(small))
	assert.Equal(1, small.Cmp(zero))
	assert.Equal(-1, small.Cmp(highWord))
	assert.Equal(1, MaxU512.Cmp(highWord))
	assert.True(zero.IsZero())
	assert.False(small.IsZero())
}

func TestU512Text(t *testing.T) {
	assert := assert.New(t)

	v := NewU512FromUint64(1000000000)
	text, err := v.MarshalText()
	assert.Nil(err)
	assert.Equal([]byte("1000000000"), text)

	var parsed U512
	assert.Nil(parsed.UnmarshalText(text))
	assert.Equal(v, parsed)

	assert.NotNil(parsed.UnmarshalText([]byte("not a number")))
	assert.NotNil(parsed.UnmarshalText([]byte("-7")))
}
