package cursor

import (
	"fmt"

	"github.com/ebml-io/ebml/schema"
	"github.com/ebml-io/ebml/vint"
)

func (c *Cursor) currentElement() (schema.Element, error) {
	e, ok := c.graph.Elements[c.cur]
	if !ok {
		return schema.Element{}, fmt.Errorf("cursor: %w: no schema entry for the current element", ErrMisuse)
	}
	return e, nil
}

// beginRead validates that the cursor is sitting on an unread leaf value
// of the expected type and returns its declared wire length.
func (c *Cursor) beginRead(want schema.Type) (int, error) {
	e, err := c.currentElement()
	if err != nil {
		return 0, err
	}
	if !c.leafPending {
		return 0, fmt.Errorf("cursor: %w: no unread value at the current position", ErrMisuse)
	}
	if e.Type != want {
		return 0, fmt.Errorf("cursor: element is %s, not %s: %w", e.Type, want, ErrWrongType)
	}
	return int(c.leafLen), nil
}

// ReadUint reads the current element's value as an unsigned integer. The
// current element must be an unread leaf of schema.UInt type.
func (c *Cursor) ReadUint() (uint64, error) {
	n, err := c.beginRead(schema.UInt)
	if err != nil {
		return 0, err
	}
	v, err := vint.ReadUint(posReader{c}, n)
	if err != nil {
		return 0, fmt.Errorf("cursor: %w", err)
	}
	c.leafPending = false
	return v, nil
}

// ReadInt reads the current element's value as a signed integer.
func (c *Cursor) ReadInt() (int64, error) {
	n, err := c.beginRead(schema.Int)
	if err != nil {
		return 0, err
	}
	v, err := vint.ReadInt(posReader{c}, n)
	if err != nil {
		return 0, fmt.Errorf("cursor: %w", err)
	}
	c.leafPending = false
	return v, nil
}

// ReadFloat reads the current element's value as an IEEE-754 float.
func (c *Cursor) ReadFloat() (float64, error) {
	n, err := c.beginRead(schema.Float)
	if err != nil {
		return 0, err
	}
	v, err := vint.ReadFloat(posReader{c}, n)
	if err != nil {
		return 0, fmt.Errorf("cursor: %w", err)
	}
	c.leafPending = false
	return v, nil
}

// ReadDate reads the current element's value as nanoseconds since the
// EBML date epoch (2001-01-01T00:00:00 UTC).
func (c *Cursor) ReadDate() (int64, error) {
	n, err := c.beginRead(schema.Date)
	if err != nil {
		return 0, err
	}
	v, err := vint.ReadDate(posReader{c}, n)
	if err != nil {
		return 0, fmt.Errorf("cursor: %w", err)
	}
	c.leafPending = false
	return v, nil
}

// ReadString reads the current element's value as text, accepting either
// an ASCII-typed or a UTF-8-typed element.
func (c *Cursor) ReadString() (string, error) {
	e, err := c.currentElement()
	if err != nil {
		return "", err
	}
	if e.Type != schema.String && e.Type != schema.UTF8 {
		return "", fmt.Errorf("cursor: element is %s, not a string type: %w", e.Type, ErrWrongType)
	}
	if !c.leafPending {
		return "", fmt.Errorf("cursor: %w: no unread value at the current position", ErrMisuse)
	}
	n := int(c.leafLen)

	var v string
	if e.Type == schema.String {
		v, err = vint.ReadASCII(posReader{c}, n)
	} else {
		v, err = vint.ReadUTF8(posReader{c}, n)
	}
	if err != nil {
		return "", fmt.Errorf("cursor: %w", err)
	}
	c.leafPending = false
	return v, nil
}

// ReadBinary reads the current element's value as raw bytes.
func (c *Cursor) ReadBinary() ([]byte, error) {
	n, err := c.beginRead(schema.Binary)
	if err != nil {
		return nil, err
	}
	v, err := vint.ReadBinary(posReader{c}, n)
	if err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	c.leafPending = false
	return v, nil
}

// ReadValue reads the current element's value as whatever Go type matches
// its declared schema type: uint64, int64, float64, string, or []byte.
// Master elements have no value; calling ReadValue on one fails with
// ErrMisuse.
func (c *Cursor) ReadValue() (any, error) {
	e, err := c.currentElement()
	if err != nil {
		return nil, err
	}
	switch e.Type {
	case schema.UInt:
		return c.ReadUint()
	case schema.Int:
		return c.ReadInt()
	case schema.Float:
		return c.ReadFloat()
	case schema.Date:
		return c.ReadDate()
	case schema.String, schema.UTF8:
		return c.ReadString()
	case schema.Binary:
		return c.ReadBinary()
	default:
		return nil, fmt.Errorf("cursor: %w: master elements have no value", ErrMisuse)
	}
}
