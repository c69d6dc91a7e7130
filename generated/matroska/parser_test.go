package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// a minimal EBML header + empty Segment, enough to exercise Next/Skip
// dispatch across the generated reader types without a full muxed file.
func minimalStream() []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x1A, 0x45, 0xDF, 0xA3, 0x85}) // EBML, size 5 (DocType element: id+len+payload)
	buf.Write([]byte{0x42, 0x82, 0x82})             // DocType, size 2
	buf.Write([]byte{'m', 'k'})
	buf.Write([]byte{0x18, 0x53, 0x80, 0x67, 0x80}) // Segment, size 0
	return buf.Bytes()
}

func TestGeneratedTraversal(t *testing.T) {
	r := NewDocumentReader(bytes.NewReader(minimalStream()))

	next, err := Next(r)
	require.NoError(t, err)
	require.Equal(t, uint32(EBMLID), next.ElementID())

	next, err = Next(next)
	require.NoError(t, err)
	require.Equal(t, uint32(DocTypeID), next.ElementID())

	docType, ok := next.(*DocTypeReader)
	require.True(t, ok)
	v, err := docType.Read()
	require.NoError(t, err)
	require.Equal(t, "mk", v)

	next, err = Next(next)
	require.NoError(t, err)
	require.Equal(t, uint32(SegmentID), next.ElementID())
}

func TestGeneratedSkip(t *testing.T) {
	r := NewDocumentReader(bytes.NewReader(minimalStream()))

	next, err := Next(r)
	require.NoError(t, err)
	require.Equal(t, uint32(EBMLID), next.ElementID())

	next, err = Skip(next) // skip the whole EBML master, landing on Segment
	require.NoError(t, err)
	require.Equal(t, uint32(SegmentID), next.ElementID())
}
