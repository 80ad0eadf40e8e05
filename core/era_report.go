package core

import (
	"encoding/json"
	"fmt"

	"github.com/emberledger/ember/crypto"
	"github.com/emberledger/ember/wire"
)

// EraID is the index of an era, the fixed period of consensus operation
// after which validator performance is summarized.
type EraID uint64

var _ wire.Encoder = (*EraID)(nil)

// EncodeWire writes the era index as a little-endian uint64.
func (e EraID) EncodeWire(w *wire.Writer) {
	w.WriteUint64(uint64(e))
}

var _ wire.Decoder = (*EraID)(nil)

// DecodeWire reads the era index.
func (e *EraID) DecodeWire(r *wire.Reader) error {
	v, err := r.ReadUint64()
	if err != nil {
		return err
	}
	*e = EraID(v)
	return nil
}

// EraReport is the per-era summary of validator behavior produced by the
// consensus layer: who equivocated, who earned what reward, and who failed
// to participate. A report is produced once per era and is immutable
// afterwards; this layer only encodes and decodes it.
//
// All three fields range over the same validator key domain and a key may
// legitimately appear in more than one of them. Cross-field consistency is
// a consensus-layer concern. A validator absent from Rewards earned zero.
type EraReport struct {
	// Equivocators lists the validators caught violating the single-vote
	// rule, in discovery order.
	Equivocators []crypto.PublicKey

	// Rewards maps each rewarded validator to its reward quantity.
	Rewards wire.Map[crypto.PublicKey, wire.U512]

	// InactiveValidators lists the validators that failed to participate
	// sufficiently, in discovery order.
	InactiveValidators []crypto.PublicKey
}

// EmptyEraReport creates a report with no equivocators, no rewards and no
// inactive validators.
func EmptyEraReport() *EraReport {
	return &EraReport{}
}

// IsEmpty reports whether all three fields are empty.
func (r *EraReport) IsEmpty() bool {
	return len(r.Equivocators) == 0 && r.Rewards.Len() == 0 && len(r.InactiveValidators) == 0
}

// Copy creates a copy of this report.
func (r *EraReport) Copy() *EraReport {
	ret := &EraReport{
		Rewards: r.Rewards.Copy(),
	}
	if r.Equivocators != nil {
		ret.Equivocators = append([]crypto.PublicKey{}, r.Equivocators...)
	}
	if r.InactiveValidators != nil {
		ret.InactiveValidators = append([]crypto.PublicKey{}, r.InactiveValidators...)
	}
	return ret
}

func (r *EraReport) String() string {
	return fmt.Sprintf("EraReport{equivocators: %v, rewards: %v, inactive: %v}",
		len(r.Equivocators), r.Rewards.Len(), len(r.InactiveValidators))
}

func encodePublicKey(w *wire.Writer, pk crypto.PublicKey) {
	pk.EncodeWire(w)
}

func decodePublicKey(r *wire.Reader) (crypto.PublicKey, error) {
	var pk crypto.PublicKey
	err := pk.DecodeWire(r)
	return pk, err
}

func encodeU512(w *wire.Writer, v wire.U512) {
	v.EncodeWire(w)
}

func decodeU512(r *wire.Reader) (wire.U512, error) {
	var v wire.U512
	err := v.DecodeWire(r)
	return v, err
}

var _ wire.Encoder = (*EraReport)(nil)

// EncodeWire serializes the three fields in fixed order: equivocators,
// rewards, inactive validators. Changing this order breaks wire
// compatibility.
func (r *EraReport) EncodeWire(w *wire.Writer) {
	wire.EncodeSlice(w, r.Equivocators, encodePublicKey)
	wire.EncodeMap(w, r.Rewards, encodePublicKey, encodeU512)
	wire.EncodeSlice(w, r.InactiveValidators, encodePublicKey)
}

var _ wire.Decoder = (*EraReport)(nil)

// DecodeWire reconstructs the report. Decoding is all-or-nothing: the first
// field failure aborts the decode, r is left unchanged, and the error wraps
// the originating cause under ErrMalformedRecord.
func (r *EraReport) DecodeWire(reader *wire.Reader) error {
	equivocators, err := wire.DecodeSlice(reader, decodePublicKey)
	if err != nil {
		return wire.RecordError("era report: equivocators", err)
	}
	rewards, err := wire.DecodeMap(reader, decodePublicKey, decodeU512)
	if err != nil {
		return wire.RecordError("era report: rewards", err)
	}
	inactive, err := wire.DecodeSlice(reader, decodePublicKey)
	if err != nil {
		return wire.RecordError("era report: inactive validators", err)
	}
	r.Equivocators = equivocators
	r.Rewards = rewards
	r.InactiveValidators = inactive
	return nil
}

type eraReportJSON struct {
	Equivocators       []crypto.PublicKey `json:"equivocators"`
	Rewards            []rewardJSON       `json:"rewards"`
	InactiveValidators []crypto.PublicKey `json:"inactive_validators"`
}

type rewardJSON struct {
	Validator crypto.PublicKey `json:"validator"`
	Amount    wire.U512        `json:"amount"`
}

// MarshalJSON implements json.Marshaler, rendering rewards as an ordered
// array of validator/amount pairs.
func (r EraReport) MarshalJSON() ([]byte, error) {
	out := eraReportJSON{
		Equivocators:       r.Equivocators,
		InactiveValidators: r.InactiveValidators,
	}
	for _, e := range r.Rewards.Entries() {
		out.Rewards = append(out.Rewards, rewardJSON{Validator: e.Key, Amount: e.Value})
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *EraReport) UnmarshalJSON(input []byte) error {
	var in eraReportJSON
	if err := json.Unmarshal(input, &in); err != nil {
		return err
	}
	r.Equivocators = in.Equivocators
	r.InactiveValidators = in.InactiveValidators
	r.Rewards = wire.Map[crypto.PublicKey, wire.U512]{}
	for _, reward := range in.Rewards {
		r.Rewards.Put(reward.Validator, reward.Amount)
	}
	return nil
}

// EraEnd pairs an era with its report; it is the unit the report archive
// stores.
type EraEnd struct {
	Era    EraID
	Report EraReport
}

var _ wire.Encoder = (*EraEnd)(nil)

// EncodeWire writes the era index followed by the report.
func (e *EraEnd) EncodeWire(w *wire.Writer) {
	e.Era.EncodeWire(w)
	e.Report.EncodeWire(w)
}

var _ wire.Decoder = (*EraEnd)(nil)

// DecodeWire reads the era index and the report.
func (e *EraEnd) DecodeWire(r *wire.Reader) error {
	if err := e.Era.DecodeWire(r); err != nil {
		return wire.RecordError("era end: era", err)
	}
	return e.Report.DecodeWire(r)
}
