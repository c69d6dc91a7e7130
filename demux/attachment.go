package demux

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	m "github.com/ebml-io/ebml/generated/matroska"
)

// Attachment is an embedded file pulled from the segment's Attachments
// element. The teacher never implemented this (its parseAttachments is a
// stub that skips the element outright); this extends the schema with the
// real AttachedFile sub-elements and reads them in full. CID is derived
// from the attachment's payload bytes, content-addressing it the way a
// caller could cross-reference the same file from an external manifest.
type Attachment struct {
	UID         uint64
	Name        string
	Description string
	MimeType    string
	Data        []byte
	CID         cid.Cid
}

// parseAttachments consumes the segment's AttachedFile children and
// returns the reader positioned on the element following Attachments.
func (d *Demuxer) parseAttachments(r *m.AttachmentsReader) (m.Reader, error) {
	depth := r.Cursor.Depth()
	cur := m.Reader(r)
	for {
		next, err := m.Next(cur)
		if err != nil {
			return nil, unwrapIncomplete(err)
		}
		cur = next
		if r.Cursor.Depth() < depth {
			return cur, nil
		}

		if entry, ok := cur.(*m.AttachedFileReader); ok {
			att, after, err := d.parseAttachedFile(entry)
			if err != nil {
				return nil, err
			}
			d.attachments = append(d.attachments, att)
			cur = after
			continue
		}

		cur, err = m.Skip(cur)
		if err != nil {
			return nil, err
		}
	}
}

func (d *Demuxer) parseAttachedFile(r *m.AttachedFileReader) (Attachment, m.Reader, error) {
	depth := r.Cursor.Depth()
	att := Attachment{}
	cur := m.Reader(r)

	for {
		next, err := m.Next(cur)
		if err != nil {
			return att, nil, unwrapIncomplete(err)
		}
		cur = next
		if r.Cursor.Depth() < depth {
			break
		}

		switch v := cur.(type) {
		case *m.FileUIDReader:
			att.UID, err = v.Read()
		case *m.FileNameReader:
			att.Name, err = v.Read()
		case *m.FileDescriptionReader:
			att.Description, err = v.Read()
		case *m.FileMimeTypeReader:
			att.MimeType, err = v.Read()
		case *m.FileDataReader:
			att.Data, err = v.Read()
		default:
			cur, err = m.Skip(cur)
		}
		if err != nil {
			return att, nil, err
		}
	}

	if att.Data != nil {
		id, err := attachmentCID(att.Data)
		if err != nil {
			return att, cur, fmt.Errorf("demux: hashing attachment %q: %w", att.Name, err)
		}
		att.CID = id
	}

	return att, cur, nil
}

// attachmentCID derives a CIDv1 over an attachment's raw payload using a
// SHA2-256 multihash, the same scheme the IPFS ecosystem uses to address
// arbitrary file content.
func attachmentCID(data []byte) (cid.Cid, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}
