package demux

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// syntheticStream builds a minimal but complete Matroska byte stream: an
// EBML header, then a Segment carrying Info (TimestampScale/MuxingApp/
// WritingApp), Tracks (one video TrackEntry), and a single Cluster with a
// Timestamp and one keyframe SimpleBlock. Byte layout is hand-encoded the
// same way generated/matroska's own minimalStream() test helper builds its
// fixtures.
func syntheticStream() []byte {
	var buf bytes.Buffer

	// EBML header: DocType "mk".
	buf.Write([]byte{0x1A, 0x45, 0xDF, 0xA3, 0x85})
	buf.Write([]byte{0x42, 0x82, 0x82, 'm', 'k'})

	// Info: TimestampScale=1, MuxingApp="x", WritingApp="y".
	var info bytes.Buffer
	info.Write([]byte{0x2A, 0xD7, 0xB1, 0x81, 0x01})
	info.Write([]byte{0x4D, 0x80, 0x81, 'x'})
	info.Write([]byte{0x57, 0x41, 0x81, 'y'})

	// TrackEntry: TrackNumber=1, TrackUID=1, TrackType=1, CodecID="V_TEST".
	var entry bytes.Buffer
	entry.Write([]byte{0xD7, 0x81, 0x01})
	entry.Write([]byte{0x73, 0xC5, 0x81, 0x01})
	entry.Write([]byte{0x83, 0x81, 0x01})
	entry.Write([]byte{0x86, 0x86, 'V', '_', 'T', 'E', 'S', 'T'})

	var tracks bytes.Buffer
	tracks.Write([]byte{0xAE, 0x80 | byte(entry.Len())})
	tracks.Write(entry.Bytes())

	// Cluster: Timestamp=0, one keyframe SimpleBlock on track 1, frame "frame".
	block := []byte{0x81, 0x00, 0x00, 0x80, 'f', 'r', 'a', 'm', 'e'}
	var cluster bytes.Buffer
	cluster.Write([]byte{0xE7, 0x81, 0x00})
	cluster.Write([]byte{0xA3, 0x80 | byte(len(block))})
	cluster.Write(block)

	var segment bytes.Buffer
	segment.Write([]byte{0x15, 0x49, 0xA9, 0x66, 0x80 | byte(info.Len())})
	segment.Write(info.Bytes())
	segment.Write([]byte{0x16, 0x54, 0xAE, 0x6B, 0x80 | byte(tracks.Len())})
	segment.Write(tracks.Bytes())
	segment.Write([]byte{0x1F, 0x43, 0xB6, 0x75, 0x80 | byte(cluster.Len())})
	segment.Write(cluster.Bytes())

	buf.Write([]byte{0x18, 0x53, 0x80, 0x67, 0x80 | byte(segment.Len())})
	buf.Write(segment.Bytes())

	return buf.Bytes()
}

func TestDemuxerBootstrap(t *testing.T) {
	d, err := NewDemuxer(bytes.NewReader(syntheticStream()))
	require.NoError(t, err)

	info := d.GetFileInfo()
	require.Equal(t, uint64(1), info.TimestampScale)
	require.Equal(t, "x", info.MuxingApp)
	require.Equal(t, "y", info.WritingApp)

	require.Equal(t, uint(1), d.GetNumTracks())
	track, err := d.GetTrackInfo(0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), track.Number)
	require.Equal(t, "V_TEST", track.CodecID)
	require.Equal(t, "eng", track.Language)
}

func TestDemuxerReadPacket(t *testing.T) {
	d, err := NewDemuxer(bytes.NewReader(syntheticStream()))
	require.NoError(t, err)

	pkt, err := d.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, uint64(1), pkt.Track)
	require.Equal(t, uint64(0), pkt.StartTime)
	require.Equal(t, []byte("frame"), pkt.Data)
	require.Equal(t, uint32(KF), pkt.Flags)

	_, err = d.ReadPacket()
	require.ErrorIs(t, err, io.EOF)
}
