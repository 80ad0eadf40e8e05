// Package wire implements the binary encoding shared by all persistent and
// transmitted records. The format is positional: structs serialize their
// fields in a fixed order, tagged unions write a one byte discriminant
// before the payload, and sequences write a uint32 element count before the
// elements. All multi-byte integers are little-endian. The encoded form of a
// value is canonical; re-encoding a decoded value reproduces the input bytes.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Encoder is implemented by types that can serialize themselves.
// Encoding cannot fail for a well-formed in-memory value.
type Encoder interface {
	EncodeWire(w *Writer)
}

// Decoder is implemented by types that can deserialize themselves.
type Decoder interface {
	DecodeWire(r *Reader) error
}

//
// Writer accumulates the encoded form of a value.
//

type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.WriteByte(v)
}

// WriteUint32 appends a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64 appends a little-endian uint64.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteBytes appends raw bytes with no length prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// Bytes returns the accumulated encoding.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

//
// Reader consumes an encoded byte sequence. Every read is bounds checked;
// a read past the end of the input fails with ErrMalformedPrimitive.
//

type Reader struct {
	buf []byte
	off int
}

// NewReader creates a Reader over b. The Reader does not copy b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// ReadUint8 consumes a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte, have 0", ErrMalformedPrimitive)
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

// ReadUint32 consumes a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes, have %d", ErrMalformedPrimitive, r.Remaining())
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

// ReadUint64 consumes a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, fmt.Errorf("%w: need 8 bytes, have %d", ErrMalformedPrimitive, r.Remaining())
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

// ReadBytes consumes exactly n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrMalformedPrimitive, n, r.Remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// EncodeToBytes serializes e into a fresh byte slice.
func EncodeToBytes(e Encoder) []byte {
	w := NewWriter()
	e.EncodeWire(w)
	return w.Bytes()
}

// DecodeFromBytes deserializes d from b. The whole input must be consumed;
// trailing bytes fail with ErrMalformedLength.
func DecodeFromBytes(b []byte, d Decoder) error {
	r := NewReader(b)
	if err := d.DecodeWire(r); err != nil {
		return err
	}
	if r.Remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes after value", ErrMalformedLength, r.Remaining())
	}
	return nil
}

// EncodeSlice writes the uint32 element count followed by each element in
// order, using enc for the elements.
func EncodeSlice[T any](w *Writer, xs []T, enc func(*Writer, T)) {
	w.WriteUint32(uint32(len(xs)))
	for _, x := range xs {
		enc(w, x)
	}
}

// DecodeSlice reads the uint32 element count and then exactly that many
// elements, preserving their order. A count that cannot possibly be
// satisfied by the remaining input fails with ErrMalformedLength.
func DecodeSlice[T any](r *Reader, dec func(*Reader) (T, error)) ([]T, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	// Every element in this format occupies at least one byte, so the count
	// can never exceed the remaining input of a well-formed stream.
	if int(count) > r.Remaining() {
		return nil, fmt.Errorf("%w: %d elements declared, %d bytes remain", ErrMalformedLength, count, r.Remaining())
	}
	if count == 0 {
		// An empty sequence decodes to the zero value.
		return nil, nil
	}
	xs := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		x, err := dec(r)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		xs = append(xs, x)
	}
	return xs, nil
}
