package codegen

import (
	"fmt"
	"io"
	"sort"

	"github.com/multiformats/go-varint"
)

// WriteManifest serializes the set of generated file names (as produced by
// Generate) into a compact varint-length-prefixed record stream: each
// record is a varint byte length followed by that many bytes of filename.
// This is unrelated to the EBML element codec's own VINT format (vint
// package) — go-varint implements the unsigned LEB128 encoding multiformats
// uses for CID/CAR framing, which is bit-for-bit different from EBML's
// VINT and must never be substituted for it.
func WriteManifest(w io.Writer, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	buf := make([]byte, varint.MaxLenUvarint63)
	for _, name := range names {
		n := varint.PutUvarint(buf, uint64(len(name)))
		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("codegen: writing manifest record length: %w", err)
		}
		if _, err := io.WriteString(w, name); err != nil {
			return fmt.Errorf("codegen: writing manifest record name: %w", err)
		}
	}
	return nil
}

// ReadManifest decodes a stream written by WriteManifest back into an
// ordered list of file names.
func ReadManifest(r io.Reader) ([]string, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}

	var names []string
	for {
		length, err := varint.ReadUvarint(br)
		if err != nil {
			if err == io.EOF {
				return names, nil
			}
			return nil, fmt.Errorf("codegen: reading manifest record length: %w", err)
		}

		name := make([]byte, length)
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("codegen: reading manifest record name: %w", err)
		}
		names = append(names, string(name))
	}
}

// byteReader adapts an io.Reader lacking ReadByte for varint.ReadUvarint.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}
