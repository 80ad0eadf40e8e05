// Package crypto holds the asymmetric key types used to identify
// validators, together with their wire codec. A public key is a tagged
// union: the discriminant byte selects the scheme, followed by the raw key
// bytes of that scheme. The system variant carries no payload and denotes
// internal, protocol-owned operations.
package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/emberledger/ember/wire"
)

// KeyTag is the discriminant of the key scheme union. The values are part
// of the wire format.
type KeyTag uint8

const (
	// KeyTagSystem is the payload-free system variant.
	KeyTagSystem KeyTag = 0
	// KeyTagEd25519 tags an Ed25519 key.
	KeyTagEd25519 KeyTag = 1
	// KeyTagSecp256k1 tags a compressed secp256k1 key.
	KeyTagSecp256k1 KeyTag = 2
)

const (
	// Ed25519PublicKeyLength is the raw size of an Ed25519 public key.
	Ed25519PublicKeyLength = 32
	// Secp256k1PublicKeyLength is the size of a compressed secp256k1
	// public key.
	Secp256k1PublicKeyLength = 33

	ed25519SignatureLength   = 64
	secp256k1SignatureLength = 65
)

func (t KeyTag) String() string {
	switch t {
	case KeyTagSystem:
		return "system"
	case KeyTagEd25519:
		return "ed25519"
	case KeyTagSecp256k1:
		return "secp256k1"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// payloadLength returns the raw key size of the scheme, or -1 for an
// unknown tag.
func (t KeyTag) payloadLength() int {
	switch t {
	case KeyTagSystem:
		return 0
	case KeyTagEd25519:
		return Ed25519PublicKeyLength
	case KeyTagSecp256k1:
		return Secp256k1PublicKeyLength
	default:
		return -1
	}
}

//
// PublicKey
//

// PublicKey is a validator's public key. The zero value is the system key.
// PublicKey is comparable; two keys are equal iff their tag and raw bytes
// match.
type PublicKey struct {
	tag KeyTag
	raw [Secp256k1PublicKeyLength]byte
}

// SystemPublicKey returns the payload-free system key.
func SystemPublicKey() PublicKey {
	return PublicKey{tag: KeyTagSystem}
}

// Ed25519PublicKeyFromBytes creates an Ed25519 public key from its 32 raw
// bytes.
func Ed25519PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != Ed25519PublicKeyLength {
		return PublicKey{}, fmt.Errorf("ed25519 public key must be %d bytes, got %d", Ed25519PublicKeyLength, len(b))
	}
	pk := PublicKey{tag: KeyTagEd25519}
	copy(pk.raw[:], b)
	return pk, nil
}

// Secp256k1PublicKeyFromBytes creates a secp256k1 public key from its 33
// compressed bytes. The point is validated.
func Secp256k1PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != Secp256k1PublicKeyLength {
		return PublicKey{}, fmt.Errorf("secp256k1 public key must be %d bytes, got %d", Secp256k1PublicKeyLength, len(b))
	}
	if _, err := secp256k1.ParsePubKey(b); err != nil {
		return PublicKey{}, fmt.Errorf("invalid secp256k1 public key: %v", err)
	}
	pk := PublicKey{tag: KeyTagSecp256k1}
	copy(pk.raw[:], b)
	return pk, nil
}

// Tag returns the key scheme discriminant.
func (pk PublicKey) Tag() KeyTag {
	return pk.tag
}

// Bytes returns the raw key bytes without the tag. The system key has no
// payload and returns an empty slice.
func (pk PublicKey) Bytes() []byte {
	n := pk.tag.payloadLength()
	out := make([]byte, n)
	copy(out, pk.raw[:n])
	return out
}

// Equal reports whether pk and other hold the same key.
func (pk PublicKey) Equal(other PublicKey) bool {
	return pk == other
}

// String returns the account-hex form of the key: the tag byte followed by
// the raw key bytes, hex encoded with the 0x prefix.
func (pk PublicKey) String() string {
	n := pk.tag.payloadLength()
	b := make([]byte, 0, 1+n)
	b = append(b, byte(pk.tag))
	b = append(b, pk.raw[:n]...)
	return "0x" + hex.EncodeToString(b)
}

// PublicKeyFromString parses the account-hex form produced by String.
func PublicKeyFromString(s string) (PublicKey, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return PublicKey{}, err
	}
	if len(b) == 0 {
		return PublicKey{}, fmt.Errorf("empty public key string")
	}
	switch KeyTag(b[0]) {
	case KeyTagSystem:
		if len(b) != 1 {
			return PublicKey{}, fmt.Errorf("system key carries no payload")
		}
		return SystemPublicKey(), nil
	case KeyTagEd25519:
		return Ed25519PublicKeyFromBytes(b[1:])
	case KeyTagSecp256k1:
		return Secp256k1PublicKeyFromBytes(b[1:])
	default:
		return PublicKey{}, fmt.Errorf("unknown key tag %d", b[0])
	}
}

// MarshalText implements encoding.TextMarshaler.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PublicKey) UnmarshalText(input []byte) error {
	parsed, err := PublicKeyFromString(string(input))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

var _ wire.Encoder = (*PublicKey)(nil)

// EncodeWire writes the tag byte followed by the raw key bytes.
func (pk PublicKey) EncodeWire(w *wire.Writer) {
	w.WriteUint8(uint8(pk.tag))
	w.WriteBytes(pk.raw[:pk.tag.payloadLength()])
}

var _ wire.Decoder = (*PublicKey)(nil)

// DecodeWire reads the tag and the scheme-sized payload. An unknown tag
// fails with ErrMalformedVariant, a short payload with
// ErrMalformedPrimitive.
func (pk *PublicKey) DecodeWire(r *wire.Reader) error {
	tagByte, err := r.ReadUint8()
	if err != nil {
		return err
	}
	tag := KeyTag(tagByte)
	n := tag.payloadLength()
	if n < 0 {
		return fmt.Errorf("%w: public key tag %d", wire.ErrMalformedVariant, tagByte)
	}
	payload, err := r.ReadBytes(n)
	if err != nil {
		return err
	}
	*pk = PublicKey{tag: tag}
	copy(pk.raw[:], payload)
	return nil
}

//
// PrivateKey and Signature
//

// PrivateKey is the signing half of a validator key pair.
type PrivateKey interface {
	// PublicKey returns the corresponding public key.
	PublicKey() PublicKey
	// Sign signs msg and returns a signature of the key's scheme.
	Sign(msg []byte) Signature
	// SaveToFile writes the key material to filepath, hex encoded.
	SaveToFile(filepath string) error
}

// Signature is a scheme-tagged digital signature.
type Signature struct {
	tag KeyTag
	raw []byte
}

// Tag returns the signature scheme discriminant.
func (s Signature) Tag() KeyTag {
	return s.tag
}

// Bytes returns the raw signature bytes without the tag.
func (s Signature) Bytes() []byte {
	return bytes.Clone(s.raw)
}

var _ wire.Encoder = (*Signature)(nil)

// EncodeWire writes the tag byte followed by the fixed-size raw signature.
func (s Signature) EncodeWire(w *wire.Writer) {
	w.WriteUint8(uint8(s.tag))
	w.WriteBytes(s.raw)
}

var _ wire.Decoder = (*Signature)(nil)

// DecodeWire reads the tag and the scheme-sized signature bytes.
func (s *Signature) DecodeWire(r *wire.Reader) error {
	tagByte, err := r.ReadUint8()
	if err != nil {
		return err
	}
	var n int
	switch KeyTag(tagByte) {
	case KeyTagEd25519:
		n = ed25519SignatureLength
	case KeyTagSecp256k1:
		n = secp256k1SignatureLength
	default:
		return fmt.Errorf("%w: signature tag %d", wire.ErrMalformedVariant, tagByte)
	}
	raw, err := r.ReadBytes(n)
	if err != nil {
		return err
	}
	s.tag = KeyTag(tagByte)
	s.raw = bytes.Clone(raw)
	return nil
}

// GenerateKeyPair generates a random private/public key pair of the given
// scheme.
func GenerateKeyPair(tag KeyTag) (PrivateKey, PublicKey, error) {
	switch tag {
	case KeyTagEd25519:
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, PublicKey{}, err
		}
		sk := &ed25519PrivateKey{key: priv}
		pk, err := Ed25519PublicKeyFromBytes(pub)
		return sk, pk, err
	case KeyTagSecp256k1:
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, PublicKey{}, err
		}
		sk := &secp256k1PrivateKey{key: priv}
		pk, err := Secp256k1PublicKeyFromBytes(priv.PubKey().SerializeCompressed())
		return sk, pk, err
	}
	return nil, PublicKey{}, fmt.Errorf("cannot generate a key pair for scheme %v", tag)
}

// LoadPrivateKeyFromFile loads a hex-encoded private key of the given
// scheme from filepath.
func LoadPrivateKeyFromFile(filepath string, tag KeyTag) (PrivateKey, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(content)))
	if err != nil {
		return nil, fmt.Errorf("key file %s is not hex encoded: %v", filepath, err)
	}
	switch tag {
	case KeyTagEd25519:
		if len(raw) != ed25519.SeedSize {
			return nil, fmt.Errorf("ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(raw))
		}
		return &ed25519PrivateKey{key: ed25519.NewKeyFromSeed(raw)}, nil
	case KeyTagSecp256k1:
		if len(raw) != 32 {
			return nil, fmt.Errorf("secp256k1 private key must be 32 bytes, got %d", len(raw))
		}
		return &secp256k1PrivateKey{key: secp256k1.PrivKeyFromBytes(raw)}, nil
	}
	return nil, fmt.Errorf("cannot load a key of scheme %v", tag)
}

// Verify checks sig over msg against pk. The system key cannot sign and
// never verifies.
func Verify(pk PublicKey, msg []byte, sig Signature) bool {
	if pk.tag != sig.tag {
		return false
	}
	switch pk.tag {
	case KeyTagEd25519:
		if len(sig.raw) != ed25519SignatureLength {
			return false
		}
		return ed25519.Verify(ed25519.PublicKey(pk.Bytes()), msg, sig.raw)
	case KeyTagSecp256k1:
		if len(sig.raw) != secp256k1SignatureLength {
			return false
		}
		digest := sha256.Sum256(msg)
		recovered, _, err := secpecdsa.RecoverCompact(sig.raw, digest[:])
		if err != nil {
			return false
		}
		return bytes.Equal(recovered.SerializeCompressed(), pk.Bytes())
	}
	return false
}

type ed25519PrivateKey struct {
	key ed25519.PrivateKey
}

func (sk *ed25519PrivateKey) PublicKey() PublicKey {
	pk, _ := Ed25519PublicKeyFromBytes(sk.key.Public().(ed25519.PublicKey))
	return pk
}

func (sk *ed25519PrivateKey) Sign(msg []byte) Signature {
	return Signature{tag: KeyTagEd25519, raw: ed25519.Sign(sk.key, msg)}
}

func (sk *ed25519PrivateKey) SaveToFile(filepath string) error {
	return saveKeyHex(filepath, sk.key.Seed())
}

type secp256k1PrivateKey struct {
	key *secp256k1.PrivateKey
}

func (sk *secp256k1PrivateKey) PublicKey() PublicKey {
	pk, _ := Secp256k1PublicKeyFromBytes(sk.key.PubKey().SerializeCompressed())
	return pk
}

func (sk *secp256k1PrivateKey) Sign(msg []byte) Signature {
	digest := sha256.Sum256(msg)
	return Signature{tag: KeyTagSecp256k1, raw: secpecdsa.SignCompact(sk.key, digest[:], true)}
}

func (sk *secp256k1PrivateKey) SaveToFile(filepath string) error {
	return saveKeyHex(filepath, sk.key.Serialize())
}

func saveKeyHex(filepath string, raw []byte) error {
	return os.WriteFile(filepath, []byte(hex.EncodeToString(raw)+"\n"), 0600)
}
