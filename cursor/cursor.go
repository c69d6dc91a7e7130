// Package cursor implements the forward-only EBML traversal engine (spec
// §4.4): a stack of open master-element frames driven by next/skip/read
// operations, validated at each step against a schema.Graph. It never
// looks backward in the stream; input is read through a 4 KiB
// bufio.Reader, so up to that much may be buffered ahead of the cursor.
package cursor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/ebml-io/ebml/schema"
	"github.com/ebml-io/ebml/vint"
)

var (
	// ErrIncomplete signals that the input ended before the cursor could
	// finish its step: either at an element boundary (no more data) or in
	// the middle of an element header or payload. It wraps io.EOF or
	// io.ErrUnexpectedEOF.
	ErrIncomplete = errors.New("cursor: incomplete element at end of stream")

	// ErrParse signals a malformed VINT header.
	ErrParse = errors.New("cursor: malformed element header")

	// ErrInvalidChild signals an element ID that the schema graph does
	// not admit at the cursor's current position.
	ErrInvalidChild = errors.New("cursor: element not admissible here")

	// ErrLengthOverrun signals a child element whose declared length
	// would extend past its parent's declared boundary.
	ErrLengthOverrun = errors.New("cursor: child overruns its parent's declared length")

	// ErrMisuse signals an operation invalid in the cursor's current
	// state (e.g. reading a master's value, or skipping the root).
	ErrMisuse = errors.New("cursor: invalid operation for the current state")

	// ErrWrongType signals a typed read whose accessor doesn't match the
	// current element's declared wire type.
	ErrWrongType = errors.New("cursor: element's type does not match the requested accessor")
)

// frame is one open master element on the traversal stack. frames[0] is
// always the synthetic document-root container.
type frame struct {
	id        uint32
	endOffset uint64 // absolute stream offset where this master's payload ends; meaningless if unknown
	unknown   bool
}

// Cursor is a forward-only, schema-validated EBML stream traversal. See
// New, Next, Skip, and the typed Read* accessors.
type Cursor struct {
	br    *bufio.Reader
	graph *schema.Graph
	pos   uint64 // logical bytes consumed from the stream so far

	frames []frame
	cur    uint32

	leafPending bool
	leafStart   uint64
	leafLen     uint64
}

// New constructs a Cursor over r, positioned before the stream's first
// top-level element. totalLen and unknownLen describe the outer document
// container: for a bare EBML stream with no overall length prefix, pass
// unknownLen = true.
func New(r io.Reader, g *schema.Graph, totalLen uint64, unknownLen bool) *Cursor {
	return &Cursor{
		br:     bufio.NewReaderSize(r, 4096),
		graph:  g,
		frames: []frame{{id: schema.RootID, endOffset: totalLen, unknown: unknownLen}},
		cur:    schema.RootID,
	}
}

// Current returns the ID of the element the cursor is presently on.
// Before the first call to Next, this is schema.RootID.
func (c *Cursor) Current() uint32 { return c.cur }

// Depth returns the number of master elements currently open above the
// cursor's position; the document root itself is depth 0.
func (c *Cursor) Depth() int { return len(c.frames) - 1 }

func (c *Cursor) isMasterID(id uint32) bool {
	if id == schema.RootID {
		return true
	}
	e, ok := c.graph.Elements[id]
	return ok && e.IsMaster()
}

// Next advances the cursor to the next element in document order: into
// the current element's first child if it's a master with room left,
// otherwise to the next sibling, ascending through as many ancestors as
// necessary. An unknown-length master is considered to end as soon as the
// next header isn't one of its admissible children (spec §9); that header
// is then re-examined against the parent the master returns to, which may
// itself cascade upward.
func (c *Cursor) Next() (uint32, error) {
	if err := c.finishLeaf(); err != nil {
		return 0, err
	}

	for {
		top := &c.frames[len(c.frames)-1]

		if !top.unknown && c.pos >= top.endOffset {
			if len(c.frames) == 1 {
				return 0, ErrIncomplete
			}
			c.popFrame()
			continue
		}

		id, length, unknown, headerLen, err := c.peekHeader()
		if err != nil {
			if errors.Is(err, ErrIncomplete) {
				if len(c.frames) == 1 {
					return 0, err
				}
				if top.unknown {
					c.popFrame()
					continue
				}
			}
			return 0, err
		}

		if !c.graph.AllowsChild(top.id, id) {
			if top.unknown {
				if len(c.frames) == 1 {
					return 0, fmt.Errorf("cursor: element 0x%X: %w", id, ErrInvalidChild)
				}
				c.popFrame()
				continue
			}
			return 0, fmt.Errorf("cursor: element 0x%X not admissible under 0x%X: %w", id, top.id, ErrInvalidChild)
		}

		if !unknown && !top.unknown && c.pos+uint64(headerLen)+length > top.endOffset {
			return 0, fmt.Errorf("cursor: element 0x%X: %w", id, ErrLengthOverrun)
		}

		if err := c.discard(uint64(headerLen)); err != nil {
			return 0, err
		}
		c.cur = id

		if c.isMasterID(id) {
			var end uint64
			if !unknown {
				end = c.pos + length
			}
			c.frames = append(c.frames, frame{id: id, endOffset: end, unknown: unknown})
		} else {
			if unknown {
				return 0, fmt.Errorf("cursor: element 0x%X: leaf with unknown length: %w", id, ErrParse)
			}
			c.leafPending = true
			c.leafStart = c.pos
			c.leafLen = length
		}

		return id, nil
	}
}

func (c *Cursor) popFrame() {
	c.frames = c.frames[:len(c.frames)-1]
	c.cur = c.frames[len(c.frames)-1].id
}

// Skip discards the current element — its unread value if a leaf, or its
// entire subtree if a master — and advances exactly as Next would once
// that element was fully consumed.
func (c *Cursor) Skip() error {
	if c.cur == schema.RootID {
		return fmt.Errorf("cursor: %w: cannot skip the document root", ErrMisuse)
	}

	if !c.isMasterID(c.cur) {
		if err := c.finishLeaf(); err != nil {
			return err
		}
		_, err := c.Next()
		return err
	}

	top := c.frames[len(c.frames)-1]
	if top.id != c.cur {
		return fmt.Errorf("cursor: %w", ErrMisuse)
	}

	if !top.unknown {
		if err := c.discard(top.endOffset - c.pos); err != nil {
			return err
		}
		c.popFrame()
		_, err := c.Next()
		return err
	}

	startDepth := len(c.frames)
	for len(c.frames) >= startDepth {
		if _, err := c.Next(); err != nil {
			return err
		}
	}
	return nil
}

// finishLeaf discards whatever of the current leaf's payload the caller
// never read, so the stream is always positioned at a header boundary
// before Next examines it.
func (c *Cursor) finishLeaf() error {
	if !c.leafPending {
		return nil
	}
	end := c.leafStart + c.leafLen
	c.leafPending = false
	if c.pos >= end {
		return nil
	}
	return c.discard(end - c.pos)
}

func (c *Cursor) discard(n uint64) error {
	for n > 0 {
		chunk := n
		if chunk > 1<<20 {
			chunk = 1 << 20
		}
		d, err := c.br.Discard(int(chunk))
		c.pos += uint64(d)
		n -= uint64(d)
		if err != nil {
			return incompleteErr(err)
		}
	}
	return nil
}

// peekHeader looks at, without consuming, the next element's ID and
// length, reporting the total number of header bytes it spans.
func (c *Cursor) peekHeader() (id uint32, length uint64, unknown bool, headerLen int, err error) {
	first, err := c.br.Peek(1)
	if err != nil {
		return 0, 0, false, 0, incompleteErr(err)
	}
	idLen := vintLenFromFirstByte(first[0])
	if idLen == 0 {
		return 0, 0, false, 0, fmt.Errorf("cursor: %w", ErrParse)
	}

	idBytes, err := c.br.Peek(idLen)
	if err != nil {
		return 0, 0, false, 0, incompleteErr(err)
	}
	id, n, err := vint.ReadElementID(bytes.NewReader(idBytes))
	if err != nil {
		return 0, 0, false, 0, fmt.Errorf("cursor: %w: %v", ErrParse, err)
	}

	lenMarker, err := c.br.Peek(n + 1)
	if err != nil {
		return 0, 0, false, 0, incompleteErr(err)
	}
	lenLen := vintLenFromFirstByte(lenMarker[n])
	if lenLen == 0 {
		return 0, 0, false, 0, fmt.Errorf("cursor: %w", ErrParse)
	}

	lenBytes, err := c.br.Peek(n + lenLen)
	if err != nil {
		return 0, 0, false, 0, incompleteErr(err)
	}
	length, unknown, _, err = vint.ReadElementLength(bytes.NewReader(lenBytes[n:]))
	if err != nil {
		return 0, 0, false, 0, fmt.Errorf("cursor: %w: %v", ErrParse, err)
	}

	return id, length, unknown, n + lenLen, nil
}

func vintLenFromFirstByte(b byte) int {
	n := bits.LeadingZeros8(b) + 1
	if n > 8 {
		return 0
	}
	return n
}

func incompleteErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrIncomplete, err)
	}
	return err
}

// posReader adapts the cursor's buffered reader to io.Reader while
// keeping c.pos in sync, for use by the vint value decoders.
type posReader struct{ c *Cursor }

func (p posReader) Read(b []byte) (int, error) {
	n, err := p.c.br.Read(b)
	p.c.pos += uint64(n)
	return n, err
}
