// Package matroska is a concrete EBML schema for the Matroska/WebM
// container format, expressed directly as schema.Element literals rather
// than loaded from an XML document at runtime. Element IDs are grounded on
// the Matroska element-ID table the teacher repo (luispater/matroska-go)
// carries in its ebml.go; this package gives those same IDs a real home
// in the schema/cursor/codegen stack instead of the teacher's hand-rolled
// parser.
//
// It is not exhaustive — Matroska's published element table runs into the
// hundreds of entries — but covers the structural backbone (header,
// segment info, track negotiation, clusters/blocks, cues, and the
// top-level chapters/tags/attachments containers) plus Void as a global
// placeholder, enough to drive the codegen package end to end.
package matroska

import "github.com/ebml-io/ebml/schema"

func ptr(v uint64) *uint64 { return &v }

// Elements is the flat element list for this schema; pass it to
// schema.BuildGraph (or use the pre-built Graph in this package).
var Elements = []schema.Element{
	// EBML header
	{ID: 0x1A45DFA3, Name: "EBML", Path: `\EBML`, Type: schema.Master, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x4286, Name: "EBMLVersion", Path: `\EBML\EBMLVersion`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1), Def: schema.NewUintDefault(1)},
	{ID: 0x42F7, Name: "EBMLReadVersion", Path: `\EBML\EBMLReadVersion`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1), Def: schema.NewUintDefault(1)},
	{ID: 0x42F2, Name: "EBMLMaxIDLength", Path: `\EBML\EBMLMaxIDLength`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1), Def: schema.NewUintDefault(4)},
	{ID: 0x42F3, Name: "EBMLMaxSizeLength", Path: `\EBML\EBMLMaxSizeLength`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1), Def: schema.NewUintDefault(8)},
	{ID: 0x4282, Name: "DocType", Path: `\EBML\DocType`, Type: schema.String, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x4287, Name: "DocTypeVersion", Path: `\EBML\DocTypeVersion`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1), Def: schema.NewUintDefault(1)},
	{ID: 0x4285, Name: "DocTypeReadVersion", Path: `\EBML\DocTypeReadVersion`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1), Def: schema.NewUintDefault(1)},

	// Segment
	{ID: 0x18538067, Name: "Segment", Path: `\Segment`, Type: schema.Master, MinOccurs: 1, MaxOccurs: ptr(1)},

	// SeekHead
	{ID: 0x114D9B74, Name: "SeekHead", Path: `\Segment\SeekHead`, Type: schema.Master},
	{ID: 0x4DBB, Name: "Seek", Path: `\Segment\SeekHead\Seek`, Type: schema.Master},
	{ID: 0x53AB, Name: "SeekID", Path: `\Segment\SeekHead\Seek\SeekID`, Type: schema.Binary, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x53AC, Name: "SeekPosition", Path: `\Segment\SeekHead\Seek\SeekPosition`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1)},

	// Info
	{ID: 0x1549A966, Name: "Info", Path: `\Segment\Info`, Type: schema.Master, MinOccurs: 1},
	{ID: 0x73A4, Name: "SegmentUID", Path: `\Segment\Info\SegmentUID`, Type: schema.Binary, MaxOccurs: ptr(1)},
	{ID: 0x7384, Name: "SegmentFilename", Path: `\Segment\Info\SegmentFilename`, Type: schema.UTF8, MaxOccurs: ptr(1)},
	{ID: 0x3CB923, Name: "PrevUID", Path: `\Segment\Info\PrevUID`, Type: schema.Binary, MaxOccurs: ptr(1)},
	{ID: 0x3C83AB, Name: "PrevFilename", Path: `\Segment\Info\PrevFilename`, Type: schema.UTF8, MaxOccurs: ptr(1)},
	{ID: 0x3EB923, Name: "NextUID", Path: `\Segment\Info\NextUID`, Type: schema.Binary, MaxOccurs: ptr(1)},
	{ID: 0x3E83BB, Name: "NextFilename", Path: `\Segment\Info\NextFilename`, Type: schema.UTF8, MaxOccurs: ptr(1)},
	{ID: 0x2AD7B1, Name: "TimestampScale", Path: `\Segment\Info\TimestampScale`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1), Def: schema.NewUintDefault(1000000)},
	{ID: 0x4489, Name: "Duration", Path: `\Segment\Info\Duration`, Type: schema.Float, MaxOccurs: ptr(1)},
	{ID: 0x4461, Name: "DateUTC", Path: `\Segment\Info\DateUTC`, Type: schema.Date, MaxOccurs: ptr(1)},
	{ID: 0x7BA9, Name: "Title", Path: `\Segment\Info\Title`, Type: schema.UTF8, MaxOccurs: ptr(1)},
	{ID: 0x4D80, Name: "MuxingApp", Path: `\Segment\Info\MuxingApp`, Type: schema.UTF8, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x5741, Name: "WritingApp", Path: `\Segment\Info\WritingApp`, Type: schema.UTF8, MinOccurs: 1, MaxOccurs: ptr(1)},

	// Tracks
	{ID: 0x1654AE6B, Name: "Tracks", Path: `\Segment\Tracks`, Type: schema.Master},
	{ID: 0xAE, Name: "TrackEntry", Path: `\Segment\Tracks\TrackEntry`, Type: schema.Master, MinOccurs: 1},
	{ID: 0xD7, Name: "TrackNumber", Path: `\Segment\Tracks\TrackEntry\TrackNumber`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x73C5, Name: "TrackUID", Path: `\Segment\Tracks\TrackEntry\TrackUID`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x83, Name: "TrackType", Path: `\Segment\Tracks\TrackEntry\TrackType`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x536E, Name: "TrackName", Path: `\Segment\Tracks\TrackEntry\TrackName`, Type: schema.UTF8, MaxOccurs: ptr(1)},
	{ID: 0x22B59C, Name: "Language", Path: `\Segment\Tracks\TrackEntry\Language`, Type: schema.String, MaxOccurs: ptr(1), Def: schema.NewStringDefault("eng")},
	{ID: 0x86, Name: "CodecID", Path: `\Segment\Tracks\TrackEntry\CodecID`, Type: schema.String, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x63A2, Name: "CodecPrivate", Path: `\Segment\Tracks\TrackEntry\CodecPrivate`, Type: schema.Binary, MaxOccurs: ptr(1)},
	{ID: 0x258688, Name: "CodecName", Path: `\Segment\Tracks\TrackEntry\CodecName`, Type: schema.UTF8, MaxOccurs: ptr(1)},

	// Video
	{ID: 0xE0, Name: "Video", Path: `\Segment\Tracks\TrackEntry\Video`, Type: schema.Master, MaxOccurs: ptr(1)},
	{ID: 0x9A, Name: "FlagInterlaced", Path: `\Segment\Tracks\TrackEntry\Video\FlagInterlaced`, Type: schema.UInt, MaxOccurs: ptr(1), Def: schema.NewUintDefault(0)},
	{ID: 0xB0, Name: "PixelWidth", Path: `\Segment\Tracks\TrackEntry\Video\PixelWidth`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0xBA, Name: "PixelHeight", Path: `\Segment\Tracks\TrackEntry\Video\PixelHeight`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x54B0, Name: "DisplayWidth", Path: `\Segment\Tracks\TrackEntry\Video\DisplayWidth`, Type: schema.UInt, MaxOccurs: ptr(1)},
	{ID: 0x54BA, Name: "DisplayHeight", Path: `\Segment\Tracks\TrackEntry\Video\DisplayHeight`, Type: schema.UInt, MaxOccurs: ptr(1)},

	// Audio
	{ID: 0xE1, Name: "Audio", Path: `\Segment\Tracks\TrackEntry\Audio`, Type: schema.Master, MaxOccurs: ptr(1)},
	{ID: 0xB5, Name: "SamplingFrequency", Path: `\Segment\Tracks\TrackEntry\Audio\SamplingFrequency`, Type: schema.Float, MinOccurs: 1, MaxOccurs: ptr(1), Def: schema.NewFloatDefault(8000)},
	{ID: 0x78B5, Name: "OutputSamplingFrequency", Path: `\Segment\Tracks\TrackEntry\Audio\OutputSamplingFrequency`, Type: schema.Float, MaxOccurs: ptr(1)},
	{ID: 0x9F, Name: "Channels", Path: `\Segment\Tracks\TrackEntry\Audio\Channels`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1), Def: schema.NewUintDefault(1)},
	{ID: 0x6264, Name: "BitDepth", Path: `\Segment\Tracks\TrackEntry\Audio\BitDepth`, Type: schema.UInt, MaxOccurs: ptr(1)},

	// Cluster
	{ID: 0x1F43B675, Name: "Cluster", Path: `\Segment\Cluster`, Type: schema.Master, UnknownSizeAllowed: true},
	{ID: 0xE7, Name: "Timestamp", Path: `\Segment\Cluster\Timestamp`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0xA3, Name: "SimpleBlock", Path: `\Segment\Cluster\SimpleBlock`, Type: schema.Binary},
	{ID: 0xA0, Name: "BlockGroup", Path: `\Segment\Cluster\BlockGroup`, Type: schema.Master},
	{ID: 0xA1, Name: "Block", Path: `\Segment\Cluster\BlockGroup\Block`, Type: schema.Binary, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x9B, Name: "BlockDuration", Path: `\Segment\Cluster\BlockGroup\BlockDuration`, Type: schema.UInt, MaxOccurs: ptr(1)},

	// Cues
	{ID: 0x1C53BB6B, Name: "Cues", Path: `\Segment\Cues`, Type: schema.Master},
	{ID: 0xBB, Name: "CuePoint", Path: `\Segment\Cues\CuePoint`, Type: schema.Master, MinOccurs: 1},
	{ID: 0xB3, Name: "CueTime", Path: `\Segment\Cues\CuePoint\CueTime`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1)},

	// Chapters, Tags — top-level containers, contents not yet modeled at
	// the sub-element level.
	{ID: 0x1043A770, Name: "Chapters", Path: `\Segment\Chapters`, Type: schema.Master},
	{ID: 0x1254C367, Name: "Tags", Path: `\Segment\Tags`, Type: schema.Master},

	// Attachments — modeled down to AttachedFile so demux.Attachments can
	// extract real payloads instead of the teacher's "skip for now" stub.
	{ID: 0x1941A469, Name: "Attachments", Path: `\Segment\Attachments`, Type: schema.Master},
	{ID: 0x61A7, Name: "AttachedFile", Path: `\Segment\Attachments\AttachedFile`, Type: schema.Master, MinOccurs: 1},
	{ID: 0x467E, Name: "FileDescription", Path: `\Segment\Attachments\AttachedFile\FileDescription`, Type: schema.UTF8, MaxOccurs: ptr(1)},
	{ID: 0x466E, Name: "FileName", Path: `\Segment\Attachments\AttachedFile\FileName`, Type: schema.UTF8, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x4660, Name: "FileMimeType", Path: `\Segment\Attachments\AttachedFile\FileMimeType`, Type: schema.String, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x465C, Name: "FileData", Path: `\Segment\Attachments\AttachedFile\FileData`, Type: schema.Binary, MinOccurs: 1, MaxOccurs: ptr(1)},
	{ID: 0x46AE, Name: "FileUID", Path: `\Segment\Attachments\AttachedFile\FileUID`, Type: schema.UInt, MinOccurs: 1, MaxOccurs: ptr(1)},

	// Void: a global placeholder admissible at any depth, per the core
	// EBML spec (used for stream padding/overwrite-in-place edits).
	{ID: 0xEC, Name: "Void", Path: `\(-)Void`, Type: schema.Binary},
}

// Graph is the pre-built schema graph for Elements.
var Graph *schema.Graph

func init() {
	g, err := schema.BuildGraph(Elements)
	if err != nil {
		panic("matroska schema graph is invalid: " + err.Error())
	}
	Graph = g
}
