package core

import (
	"fmt"

	"github.com/emberledger/ember/common"
	"github.com/emberledger/ember/crypto"
	"github.com/emberledger/ember/wire"
)

// ContractHashLength is the size of a contract hash.
const ContractHashLength = 32

// ContractHash addresses a stored contract.
type ContractHash [ContractHashLength]byte

// ContractHashFromHex parses a hex string (with or without the 0x prefix)
// into a ContractHash.
func ContractHashFromHex(s string) (ContractHash, error) {
	b, err := common.FromHex(s)
	if err != nil {
		return ContractHash{}, err
	}
	if len(b) != ContractHashLength {
		return ContractHash{}, fmt.Errorf("contract hash must be %d bytes, got %d", ContractHashLength, len(b))
	}
	var h ContractHash
	copy(h[:], b)
	return h, nil
}

func (h ContractHash) String() string {
	return common.Bytes(h[:]).String()
}

// TransferTx is a token transfer submitted through a deployed transfer
// contract. The amount is a U512, the same quantity type era rewards use.
type TransferTx struct {
	Contract ContractHash
	From     crypto.PublicKey
	To       crypto.PublicKey
	Amount   wire.U512
	Nonce    uint64
}

var _ wire.Encoder = (*TransferTx)(nil)

// EncodeWire serializes the fields in declaration order.
func (tx *TransferTx) EncodeWire(w *wire.Writer) {
	w.WriteBytes(tx.Contract[:])
	tx.From.EncodeWire(w)
	tx.To.EncodeWire(w)
	tx.Amount.EncodeWire(w)
	w.WriteUint64(tx.Nonce)
}

var _ wire.Decoder = (*TransferTx)(nil)

// DecodeWire reconstructs the transfer; any field failure wraps the cause
// under ErrMalformedRecord.
func (tx *TransferTx) DecodeWire(r *wire.Reader) error {
	hash, err := r.ReadBytes(ContractHashLength)
	if err != nil {
		return wire.RecordError("transfer: contract", err)
	}
	var decoded TransferTx
	copy(decoded.Contract[:], hash)
	if err := decoded.From.DecodeWire(r); err != nil {
		return wire.RecordError("transfer: from", err)
	}
	if err := decoded.To.DecodeWire(r); err != nil {
		return wire.RecordError("transfer: to", err)
	}
	if err := decoded.Amount.DecodeWire(r); err != nil {
		return wire.RecordError("transfer: amount", err)
	}
	nonce, err := r.ReadUint64()
	if err != nil {
		return wire.RecordError("transfer: nonce", err)
	}
	decoded.Nonce = nonce
	*tx = decoded
	return nil
}

// SignBytes returns the bytes a sender signs.
func (tx *TransferTx) SignBytes() []byte {
	return wire.EncodeToBytes(tx)
}

// SignedTransferTx is a transfer with its sender signature.
type SignedTransferTx struct {
	Tx        TransferTx
	Signature crypto.Signature
}

// Sign produces a signed transfer using the sender's private key.
func (tx *TransferTx) Sign(key crypto.PrivateKey) *SignedTransferTx {
	return &SignedTransferTx{
		Tx:        *tx,
		Signature: key.Sign(tx.SignBytes()),
	}
}

// Verify checks the signature against the transfer's From key.
func (s *SignedTransferTx) Verify() bool {
	return crypto.Verify(s.Tx.From, s.Tx.SignBytes(), s.Signature)
}

var _ wire.Encoder = (*SignedTransferTx)(nil)

// EncodeWire writes the transfer followed by the signature.
func (s *SignedTransferTx) EncodeWire(w *wire.Writer) {
	s.Tx.EncodeWire(w)
	s.Signature.EncodeWire(w)
}

var _ wire.Decoder = (*SignedTransferTx)(nil)

// DecodeWire reads the transfer and the signature.
func (s *SignedTransferTx) DecodeWire(r *wire.Reader) error {
	if err := s.Tx.DecodeWire(r); err != nil {
		return err
	}
	if err := s.Signature.DecodeWire(r); err != nil {
		return wire.RecordError("transfer: signature", err)
	}
	return nil
}
