package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberledger/ember/wire"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	_, edKey, err := GenerateKeyPair(KeyTagEd25519)
	require.Nil(err)
	_, secpKey, err := GenerateKeyPair(KeyTagSecp256k1)
	require.Nil(err)

	for _, pk := range []PublicKey{SystemPublicKey(), edKey, secpKey} {
		encoded := wire.EncodeToBytes(pk)
		assert.Equal(1+pk.Tag().payloadLength(), len(encoded))
		assert.Equal(uint8(pk.Tag()), encoded[0])

		var decoded PublicKey
		err := wire.DecodeFromBytes(encoded, &decoded)
		require.Nil(err)
		assert.True(pk.Equal(decoded))
	}
}

func TestPublicKeyBadTag(t *testing.T) {
	assert := assert.New(t)

	var pk PublicKey
	err := wire.DecodeFromBytes([]byte{0x07}, &pk)
	assert.ErrorIs(err, wire.ErrMalformedVariant)
}

func TestPublicKeyTruncated(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	_, edKey, err := GenerateKeyPair(KeyTagEd25519)
	require.Nil(err)
	encoded := wire.EncodeToBytes(edKey)

	var pk PublicKey
	err = wire.DecodeFromBytes(encoded[:10], &pk)
	assert.ErrorIs(err, wire.ErrMalformedPrimitive)

	err = wire.DecodeFromBytes(nil, &pk)
	assert.ErrorIs(err, wire.ErrMalformedPrimitive)
}

func TestPublicKeyString(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	_, edKey, err := GenerateKeyPair(KeyTagEd25519)
	require.Nil(err)

	s := edKey.String()
	assert.Equal(2+2*(1+Ed25519PublicKeyLength), len(s))
	assert.Equal("0x01", s[:4])

	parsed, err := PublicKeyFromString(s)
	require.Nil(err)
	assert.True(edKey.Equal(parsed))

	system, err := PublicKeyFromString("0x00")
	require.Nil(err)
	assert.Equal(SystemPublicKey(), system)

	_, err = PublicKeyFromString("0x07")
	assert.NotNil(err)
	_, err = PublicKeyFromString("")
	assert.NotNil(err)
}

func TestSignVerify(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	msg := []byte("era 42 concluded")

	for _, tag := range []KeyTag{KeyTagEd25519, KeyTagSecp256k1} {
		sk, pk, err := GenerateKeyPair(tag)
		require.Nil(err)
		assert.Equal(pk, sk.PublicKey())

		sig := sk.Sign(msg)
		assert.True(Verify(pk, msg, sig))
		assert.False(Verify(pk, []byte("tampered"), sig))

		// Signature wire round trip.
		encoded := wire.EncodeToBytes(sig)
		var decoded Signature
		require.Nil(wire.DecodeFromBytes(encoded, &decoded))
		assert.True(Verify(pk, msg, decoded))

		// Wrong key.
		_, otherKey, err := GenerateKeyPair(tag)
		require.Nil(err)
		assert.False(Verify(otherKey, msg, sig))
	}
}

func TestSystemKeyCannotSign(t *testing.T) {
	assert := assert.New(t)

	_, _, err := GenerateKeyPair(KeyTagSystem)
	assert.NotNil(err)
	assert.False(Verify(SystemPublicKey(), []byte("msg"), Signature{}))
}

func TestSignatureBadTag(t *testing.T) {
	assert := assert.New(t)

	var sig Signature
	err := wire.DecodeFromBytes([]byte{0x00}, &sig)
	assert.ErrorIs(err, wire.ErrMalformedVariant)
}

func TestKeyFileRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	msg := []byte("persisted key")
	for _, tag := range []KeyTag{KeyTagEd25519, KeyTagSecp256k1} {
		sk, pk, err := GenerateKeyPair(tag)
		require.Nil(err)

		path := t.TempDir() + "/key"
		require.Nil(sk.SaveToFile(path))

		loaded, err := LoadPrivateKeyFromFile(path, tag)
		require.Nil(err)
		assert.Equal(pk, loaded.PublicKey())
		assert.True(Verify(pk, msg, loaded.Sign(msg)))
	}
}
