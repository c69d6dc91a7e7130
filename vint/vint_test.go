package vint

import (
	"bytes"
	"errors"
	"testing"
)

// TestReadVInt exercises the generic VINT reader across 1-, 2-, 4-, and
// 8-byte encodings, mirroring the table-driven style of the teacher's EBML
// reader tests.
func TestReadVInt(t *testing.T) {
	testCases := []struct {
		name        string
		input       []byte
		maxLen      int
		keepMarker  bool
		expectedVal uint64
		expectErr   bool
	}{
		{"1-byte value", []byte{0x81}, 8, false, 1, false},
		{"1-byte max value", []byte{0xFF}, 8, false, 127, false},
		{"1-byte with marker", []byte{0x81}, 8, true, 0x81, false},

		{"2-byte value", []byte{0x40, 0x01}, 8, false, 1, false},
		{"2-byte value high", []byte{0x50, 0x11}, 8, false, 0x1011, false},
		{"2-byte max value", []byte{0x7F, 0xFF}, 8, false, (1 << 14) - 1, false},
		{"2-byte with marker", []byte{0x50, 0x11}, 8, true, 0x5011, false},

		{"4-byte value", []byte{0x10, 0x00, 0x00, 0x01}, 8, false, 1, false},
		{"4-byte value high", []byte{0x1A, 0xBC, 0xDE, 0xF0}, 8, false, 0xABCDEF0, false},

		{"8-byte max value", []byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 8, false, (1 << 56) - 1, false},

		{"invalid zero first byte", []byte{0x00}, 8, false, 0, true},
		{"truncated second byte", []byte{0x40}, 8, false, 0, true},
		{"length exceeds max", []byte{0x01, 0, 0, 0, 0, 0, 0, 0}, 4, false, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := bytes.NewReader(tc.input)
			val, _, err := readVInt(r, tc.maxLen, tc.keepMarker)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if val != tc.expectedVal {
				t.Errorf("got 0x%X, want 0x%X", val, tc.expectedVal)
			}
		})
	}
}

// TestVIntIDRoundTripScenario is scenario 1 from the testable-properties
// section: id = 0x7F written into a 5-byte buffer expects exact bytes
// 40 7F 00 00 00 and reads back to 0x7F.
func TestVIntIDRoundTripScenario(t *testing.T) {
	out := make([]byte, 5)
	n, err := WriteElementID(out, 0x7F)
	if err != nil {
		t.Fatalf("WriteElementID: %v", err)
	}
	want := []byte{0x40, 0x7F, 0x00, 0x00, 0x00}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % X, want % X", out, want)
	}

	got, rn, err := ReadElementID(bytes.NewReader(out[:n]))
	if err != nil {
		t.Fatalf("ReadElementID: %v", err)
	}
	if got != 0x7F || rn != n {
		t.Fatalf("got (0x%X, %d), want (0x7F, %d)", got, rn, n)
	}
}

// TestVIntLengthRoundTripScenario is scenario 2: length 0x2345 written
// unconstrained expects first two bytes 63 45 and reads back to 0x2345.
func TestVIntLengthRoundTripScenario(t *testing.T) {
	out := make([]byte, 9)
	n, err := WriteElementLength(out, 0x2345, 0)
	if err != nil {
		t.Fatalf("WriteElementLength: %v", err)
	}
	if out[0] != 0x63 || out[1] != 0x45 {
		t.Fatalf("got % X, want prefix 63 45", out)
	}

	got, unknown, _, err := ReadElementLength(bytes.NewReader(out[:n]))
	if err != nil {
		t.Fatalf("ReadElementLength: %v", err)
	}
	if unknown {
		t.Fatalf("unexpected unknown length")
	}
	if got != 0x2345 {
		t.Fatalf("got 0x%X, want 0x2345", got)
	}
}

func TestReadElementIDReservedSentinel(t *testing.T) {
	// a single-byte ID where VINT_DATA is all ones (0xFF -> data 0x7F,
	// all 7 bits set).
	_, _, err := ReadElementID(bytes.NewReader([]byte{0xFF}))
	if !errors.Is(err, ErrReservedID) {
		t.Fatalf("got %v, want ErrReservedID", err)
	}
}

func TestReadElementIDNonMinimal(t *testing.T) {
	// 2-byte encoding of a value that fits in 1 byte.
	_, _, err := ReadElementID(bytes.NewReader([]byte{0x40, 0x01}))
	if !errors.Is(err, ErrNonMinimalVInt) {
		t.Fatalf("got %v, want ErrNonMinimalVInt", err)
	}
}

func TestWriteElementIDRejectsZero(t *testing.T) {
	out := make([]byte, 4)
	_, err := WriteElementID(out, 0)
	if !errors.Is(err, ErrZeroID) {
		t.Fatalf("got %v, want ErrZeroID", err)
	}
}

func TestWriteElementIDAvoidsAllOnesData(t *testing.T) {
	// choose a value whose minimal 1-byte encoding's 7 data bits are all
	// set (0x7F); the writer must bump to 2 bytes to avoid colliding with
	// the reserved-ID sentinel.
	out := make([]byte, 4)
	n, err := WriteElementID(out, 0x7F)
	if err != nil {
		t.Fatalf("WriteElementID: %v", err)
	}
	if n != 2 {
		t.Fatalf("got length %d, want 2 (padded to avoid reserved ID)", n)
	}

	got, _, err := ReadElementID(bytes.NewReader(out[:n]))
	if err != nil {
		t.Fatalf("ReadElementID: %v", err)
	}
	if got != 0x7F {
		t.Fatalf("got 0x%X, want 0x7F", got)
	}
}

func TestReadElementLengthUnknownSentinel(t *testing.T) {
	// 1-byte length, all-ones VINT_DATA (0xFF -> data all 1s).
	length, unknown, _, err := ReadElementLength(bytes.NewReader([]byte{0xFF}))
	if err != nil {
		t.Fatalf("ReadElementLength: %v", err)
	}
	if !unknown || length != UnknownLength {
		t.Fatalf("got (%d, %v), want (UnknownLength, true)", length, unknown)
	}
}
