package vint

import (
	"bytes"
	"testing"
	"testing/quick"
)

// TestReadWriteUintRoundTrip is the universal round-trip property from the
// testable-properties section: read(write(v, L), L) == v, at the full 8-byte width.
func TestReadWriteUintRoundTrip(t *testing.T) {
	f := func(v uint64) bool {
		buf := make([]byte, 8)
		if err := WriteUint(buf, v, 8); err != nil {
			return false
		}
		got, err := ReadUint(bytes.NewReader(buf), 8)
		return err == nil && got == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestReadWriteIntRoundTrip(t *testing.T) {
	f := func(v int64) bool {
		buf := make([]byte, 8)
		if err := WriteInt(buf, v, 8); err != nil {
			return false
		}
		got, err := ReadInt(bytes.NewReader(buf), 8)
		return err == nil && got == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestReadWriteFloat32RoundTrip(t *testing.T) {
	f := func(v float32) bool {
		buf := make([]byte, 4)
		if err := WriteFloat(buf, float64(v), 4); err != nil {
			return false
		}
		got, err := ReadFloat(bytes.NewReader(buf), 4)
		return err == nil && float32(got) == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestReadWriteFloat64RoundTrip(t *testing.T) {
	f := func(v float64) bool {
		buf := make([]byte, 8)
		if err := WriteFloat(buf, v, 8); err != nil {
			return false
		}
		got, err := ReadFloat(bytes.NewReader(buf), 8)
		return err == nil && got == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestReadWriteDateRoundTrip(t *testing.T) {
	f := func(v int64) bool {
		buf := make([]byte, 8)
		if err := WriteDate(buf, v, 8); err != nil {
			return false
		}
		got, err := ReadDate(bytes.NewReader(buf), 8)
		return err == nil && got == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestWriteUTF8PadsAndTerminates(t *testing.T) {
	out := make([]byte, 6)
	for i := range out {
		out[i] = 0xFF
	}
	if err := WriteUTF8(out, "hi", 6); err != nil {
		t.Fatalf("WriteUTF8: %v", err)
	}
	want := []byte{'h', 'i', 0, 0, 0, 0}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % X, want % X", out, want)
	}

	got, err := ReadUTF8(bytes.NewReader(out), 6)
	if err != nil {
		t.Fatalf("ReadUTF8: %v", err)
	}
	if got != "hi" {
		t.Fatalf("got %q, want %q", got, "hi")
	}
}

func TestWriteUTF8ExactFitNoTerminator(t *testing.T) {
	out := make([]byte, 2)
	if err := WriteUTF8(out, "hi", 2); err != nil {
		t.Fatalf("WriteUTF8: %v", err)
	}
	if !bytes.Equal(out, []byte("hi")) {
		t.Fatalf("got % X, want 'hi'", out)
	}
}

func TestWriteUTF8Overflow(t *testing.T) {
	out := make([]byte, 1)
	if err := WriteUTF8(out, "hi", 1); err == nil {
		t.Fatalf("expected error writing 2-byte string into 1-byte field")
	}
}

func TestReadASCIIRejectsHighBit(t *testing.T) {
	if _, err := ReadASCII(bytes.NewReader([]byte{0xFF}), 1); err == nil {
		t.Fatalf("expected ErrInvalidASCII")
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03, 0x04}
	out := make([]byte, len(in))
	if err := WriteBinary(out, in); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	got, err := ReadBinary(bytes.NewReader(out), len(out))
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if !bytes.Equal(got, in) {
		t.Fatalf("got % X, want % X", got, in)
	}
}

func TestReadIntSignExtension(t *testing.T) {
	// -1 as a single byte (0xFF) sign-extends to int64(-1).
	got, err := ReadInt(bytes.NewReader([]byte{0xFF}), 1)
	if err != nil {
		t.Fatalf("ReadInt: %v", err)
	}
	if got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}
