package matroska

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebml-io/ebml/schema"
)

func TestGraphBuilds(t *testing.T) {
	require.NotNil(t, Graph)
	require.Contains(t, Graph.Elements, uint32(0x18538067)) // Segment
	require.Contains(t, Graph.Elements, uint32(0xAE))       // TrackEntry
}

func TestSegmentIsRootChild(t *testing.T) {
	children := Graph.ChildIDs(schema.RootID)
	require.Contains(t, children, uint32(0x1A45DFA3)) // EBML
	require.Contains(t, children, uint32(0x18538067))  // Segment
}

func TestVideoUnderTrackEntry(t *testing.T) {
	require.True(t, Graph.AllowsChild(0xAE, 0xE0)) // TrackEntry -> Video
	require.True(t, Graph.AllowsChild(0xE0, 0xB0))  // Video -> PixelWidth
}

func TestClusterAllowsSimpleBlockAndVoidAnywhere(t *testing.T) {
	require.True(t, Graph.AllowsChild(0x1F43B675, 0xA3)) // Cluster -> SimpleBlock
	require.True(t, Graph.AllowsChild(0x1F43B675, 0xEC)) // Cluster -> Void (global placeholder)
	require.True(t, Graph.AllowsChild(0xAE, 0xEC))       // TrackEntry -> Void
}

func TestAttachedFileUnderAttachments(t *testing.T) {
	require.True(t, Graph.AllowsChild(0x1941A469, 0x61A7)) // Attachments -> AttachedFile
	require.True(t, Graph.AllowsChild(0x61A7, 0x465C))     // AttachedFile -> FileData
}

func TestBlockDurationUnderBlockGroup(t *testing.T) {
	require.True(t, Graph.AllowsChild(0xA0, 0x9B)) // BlockGroup -> BlockDuration
}
