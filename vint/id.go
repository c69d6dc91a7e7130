package vint

import (
	"fmt"
	"io"
	"math/bits"
)

// maxIDLen is the maximum byte length of an EBML element ID VINT.
const maxIDLen = 4

// ReadElementID reads an EBML element ID from r. The returned id retains
// its natural (non-length-marker) bits, matching the convention that an
// element ID's numeric value is what schema.Element.ID compares against.
//
// If VINT_DATA is all ones, ReadElementID returns ErrReservedID alongside
// the raw (all-ones) value; this is not fatal, and the caller decides how
// to handle a reserved ID.
//
// If the encoding uses more bytes than the value's magnitude requires,
// ReadElementID returns ErrNonMinimalVInt.
func ReadElementID(r io.Reader) (id uint32, n int, err error) {
	raw, n, err := ReadVIntRaw(r, maxIDLen)
	if err != nil {
		return 0, 0, err
	}

	dataMask := uint64(1)<<uint(7*n) - 1
	data := raw & dataMask
	if data == dataMask {
		return uint32(raw), n, fmt.Errorf("element ID 0x%X: %w", raw, ErrReservedID)
	}

	sigBits := 64 - bits.LeadingZeros64(data+1)
	if sigBits <= 7*(n-1) {
		return 0, 0, fmt.Errorf("element ID 0x%X encoded in %d bytes: %w", raw, n, ErrNonMinimalVInt)
	}

	return uint32(raw), n, nil
}

// WriteElementID encodes id (which must be non-zero) into out using the
// minimum byte count, bumped up by one byte if necessary so that VINT_DATA
// is never all ones (which would collide with the reserved-ID sentinel).
func WriteElementID(out []byte, id uint32) (n int, err error) {
	if id == 0 {
		return 0, ErrZeroID
	}

	value := uint64(id)
	minLen := minVIntLen(value)

	// If the minimal encoding's VINT_DATA would be all ones, one extra
	// byte is required: the value fits in 7*(minLen-1) bits of data plus
	// the rest, so check against a dataMask sized for minLen.
	dataMask := uint64(1)<<uint(7*minLen) - 1
	if value&dataMask == dataMask {
		minLen++
	}

	return WriteVInt(out, value, minLen, maxIDLen)
}
