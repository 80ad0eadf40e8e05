package wire

import (
	"errors"
	"fmt"
)

// Decode failures are never recovered silently; the first failure inside a
// composite aborts the whole decode and is surfaced to the caller. All four
// sentinels can be matched with errors.Is even through wrapping.
var (
	// ErrMalformedPrimitive indicates a fixed-width primitive was read from
	// a truncated or size-mismatched source.
	ErrMalformedPrimitive = errors.New("wire: malformed primitive")

	// ErrMalformedVariant indicates an unrecognized discriminant tag in a
	// tagged union.
	ErrMalformedVariant = errors.New("wire: malformed variant")

	// ErrMalformedLength indicates a declared sequence or map count that
	// exceeds the available input.
	ErrMalformedLength = errors.New("wire: malformed length")

	// ErrMalformedRecord indicates a composite record whose nested field
	// failed to decode. It always wraps the originating error.
	ErrMalformedRecord = errors.New("wire: malformed record")
)

// RecordError marks err as a composite record failure in field. The
// originating error stays reachable through errors.Is / errors.Unwrap.
func RecordError(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedRecord, field, err)
}

// IsMalformed reports whether err is any of the decode error sentinels.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedPrimitive) ||
		errors.Is(err, ErrMalformedVariant) ||
		errors.Is(err, ErrMalformedLength) ||
		errors.Is(err, ErrMalformedRecord)
}
