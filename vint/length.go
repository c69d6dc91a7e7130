package vint

import (
	"io"
)

// maxLengthLen is the maximum byte length of an EBML element-length VINT.
const maxLengthLen = 8

// UnknownLength is the sentinel returned by ReadElementLength when
// VINT_DATA is all ones (every bit of the data portion set), denoting an
// element whose payload length is not known up front.
const UnknownLength = ^uint64(0)

// ReadElementLength reads an EBML element length from r. unknown reports
// whether the all-ones sentinel was read; in that case the returned length
// equals UnknownLength and the caller must consult the element's schema to
// decide whether an unknown length is permitted here.
func ReadElementLength(r io.Reader) (length uint64, unknown bool, n int, err error) {
	value, n, err := ReadVInt(r, maxLengthLen)
	if err != nil {
		return 0, false, 0, err
	}

	dataMask := uint64(1)<<uint(7*n) - 1
	if value&dataMask == dataMask {
		return UnknownLength, true, n, nil
	}
	return value, false, n, nil
}

// WriteElementLength encodes length into out. minLen, if non-zero, forces
// a minimum byte count (0 lets the codec pick the minimal width).
func WriteElementLength(out []byte, length uint64, minLen int) (n int, err error) {
	return WriteVInt(out, length, minLen, maxLengthLen)
}
