package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeString(w *Writer, s string) {
	w.WriteUint32(uint32(len(s)))
	w.WriteBytes([]byte(s))
}

func decodeString(r *Reader) (string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func mapRoundTrip(t *testing.T, m Map[string, U512]) Map[string, U512] {
	t.Helper()
	w := NewWriter()
	EncodeMap(w, m, encodeString, encodeU512)
	decoded, err := DecodeMap(NewReader(w.Bytes()), decodeString, decodeU512)
	require.Nil(t, err)
	return decoded
}

func TestMapOrderPreservation(t *testing.T) {
	assert := assert.New(t)

	var m Map[string, U512]
	m.Put("A", NewU512FromUint64(1))
	m.Put("B", NewU512FromUint64(2))

	decoded := mapRoundTrip(t, m)
	entries := decoded.Entries()
	assert.Equal(2, len(entries))
	assert.Equal("A", entries[0].Key)
	assert.Equal(NewU512FromUint64(1), entries[0].Value)
	assert.Equal("B", entries[1].Key)
	assert.Equal(NewU512FromUint64(2), entries[1].Value)
}

func TestMapEmpty(t *testing.T) {
	assert := assert.New(t)

	var m Map[string, U512]
	decoded := mapRoundTrip(t, m)
	assert.Equal(0, decoded.Len())
}

func TestMapPutReplaces(t *testing.T) {
	assert := assert.New(t)

	var m Map[string, U512]
	m.Put("A", NewU512FromUint64(1))
	m.Put("B", NewU512FromUint64(2))
	m.Put("A", NewU512FromUint64(9))

	// Last write wins but the key keeps its position.
	assert.Equal(2, m.Len())
	entries := m.Entries()
	assert.Equal("A", entries[0].Key)
	assert.Equal(NewU512FromUint64(9), entries[0].Value)

	v, ok := m.Get("A")
	assert.True(ok)
	assert.Equal(NewU512FromUint64(9), v)

	_, ok = m.Get("C")
	assert.False(ok)
}

func TestMapDuplicateKeysPreserved(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// A producer that violates the uniqueness obligation: the codec must
	// pass the duplicates through untouched.
	w := NewWriter()
	entries := []Entry[string, U512]{
		{Key: "A", Value: NewU512FromUint64(1)},
		{Key: "A", Value: NewU512FromUint64(2)},
	}
	EncodeMap(w, Map[string, U512]{entries: entries}, encodeString, encodeU512)

	decoded, err := DecodeMap(NewReader(w.Bytes()), decodeString, decodeU512)
	require.Nil(err)
	assert.Equal(2, decoded.Len())
	assert.NotNil(decoded.ValidateUniqueKeys())

	// First entry wins on lookup.
	v, ok := decoded.Get("A")
	assert.True(ok)
	assert.Equal(NewU512FromUint64(1), v)
}

func TestMapValidateUniqueKeys(t *testing.T) {
	assert := assert.New(t)

	var m Map[string, U512]
	m.Put("A", NewU512FromUint64(1))
	m.Put("B", NewU512FromUint64(2))
	assert.Nil(m.ValidateUniqueKeys())
}

func TestMapTruncated(t *testing.T) {
	assert := assert.New(t)

	var m Map[string, U512]
	m.Put("A", NewU512FromUint64(1))
	m.Put("B", NewU512FromUint64(2))

	w := NewWriter()
	EncodeMap(w, m, encodeString, encodeU512)
	encoded := w.Bytes()

	// Every strict prefix must fail with a malformed error, never succeed
	// or panic.
	for n := 0; n < len(encoded); n++ {
		_, err := DecodeMap(NewReader(encoded[:n]), decodeString, decodeU512)
		assert.NotNil(err)
		assert.True(IsMalformed(err))
	}
}

func TestMapCountExceedsInput(t *testing.T) {
	assert := assert.New(t)

	w := NewWriter()
	w.WriteUint32(1000)
	_, err := DecodeMap(NewReader(w.Bytes()), decodeString, decodeU512)
	assert.ErrorIs(err, ErrMalformedLength)
}

func TestMapCopy(t *testing.T) {
	assert := assert.New(t)

	var m Map[string, U512]
	m.Put("A", NewU512FromUint64(1))

	c := m.Copy()
	c.Put("A", NewU512FromUint64(9))

	v, _ := m.Get("A")
	assert.Equal(NewU512FromUint64(1), v)
}
