// Package schemaxml loads an EBML schema document (the XML format defined
// by IETF RFC 8794) into the element model used by the rest of this
// module. The wire format of the schema itself is an ambient boundary —
// spec §6 marks XML schema parsing out of scope for the core — but the
// code generator needs real input to drive, so this package fills that
// gap using encoding/xml, the only XML facility anywhere in the example
// corpus's dependency surface.
package schemaxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ebml-io/ebml/schema"
)

// Document is the root of an EBMLSchema XML document.
type Document struct {
	XMLName  xml.Name     `xml:"EBMLSchema"`
	DocType  string       `xml:"docType,attr"`
	Version  uint64       `xml:"version,attr"`
	Elements []xmlElement `xml:"element"`
}

type xmlElement struct {
	Name               string `xml:"name,attr"`
	Path               string `xml:"path,attr"`
	ID                 string `xml:"id,attr"`
	Type               string `xml:"type,attr"`
	MinOccurs          string `xml:"minOccurs,attr"`
	MaxOccurs          string `xml:"maxOccurs,attr"`
	Range              string `xml:"range,attr"`
	Length             string `xml:"length,attr"`
	Default            string `xml:"default,attr"`
	Recurring          string `xml:"recurring,attr"`
	Recursive          string `xml:"recursive,attr"`
	UnknownSizeAllowed string `xml:"unknownsizeallowed,attr"`
	MinVer             string `xml:"minver,attr"`
	MaxVer             string `xml:"maxver,attr"`
}

// Load parses an EBMLSchema XML document from r into the element model,
// ready to pass to schema.BuildGraph.
func Load(r io.Reader) ([]schema.Element, error) {
	_, elems, err := LoadWithDocType(r)
	return elems, err
}

// LoadWithDocType is Load plus the schema document's own docType attribute,
// which cmd/ebmlgen echoes into the generated package as provenance.
func LoadWithDocType(r io.Reader) (string, []schema.Element, error) {
	var doc Document
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("schemaxml: decoding schema document: %w", err)
	}

	out := make([]schema.Element, 0, len(doc.Elements))
	for _, xe := range doc.Elements {
		e, err := convert(xe)
		if err != nil {
			return "", nil, fmt.Errorf("schemaxml: element %q: %w", xe.Name, err)
		}
		out = append(out, e)
	}
	return doc.DocType, out, nil
}

func convert(xe xmlElement) (schema.Element, error) {
	id, err := parseID(xe.ID)
	if err != nil {
		return schema.Element{}, fmt.Errorf("id %q: %w", xe.ID, err)
	}

	typ, err := parseType(xe.Type)
	if err != nil {
		return schema.Element{}, err
	}

	e := schema.Element{
		ID:                 id,
		Name:               xe.Name,
		Path:               xe.Path,
		Type:               typ,
		MinOccurs:          parseUintOr(xe.MinOccurs, 0),
		MinVersion:         parseUintOr(xe.MinVer, 1),
		MaxVersion:         parseUintOr(xe.MaxVer, 0),
		Recurring:          parseBoolOr(xe.Recurring, false),
		Recursive:          parseBoolOr(xe.Recursive, false),
		UnknownSizeAllowed: parseBoolOr(xe.UnknownSizeAllowed, false),
	}

	if xe.MaxOccurs != "" {
		v, err := strconv.ParseUint(xe.MaxOccurs, 10, 64)
		if err != nil {
			return schema.Element{}, fmt.Errorf("maxOccurs %q: %w", xe.MaxOccurs, err)
		}
		e.MaxOccurs = &v
	}

	if xe.Length != "" {
		lc, err := parseLength(xe.Length)
		if err != nil {
			return schema.Element{}, fmt.Errorf("length %q: %w", xe.Length, err)
		}
		e.Length = lc
	}

	if xe.Range != "" {
		e.Range = &schema.RangeConstraint{Raw: xe.Range}
	}

	if xe.Default != "" {
		def, err := parseDefault(typ, xe.Default)
		if err != nil {
			return schema.Element{}, fmt.Errorf("default %q: %w", xe.Default, err)
		}
		e.Def = def
	}

	return e, nil
}

// parseID accepts either a "0x..." hex literal or a plain decimal integer,
// matching the two forms real schema documents use.
func parseID(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	base := 10
	trimmed := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		trimmed = s[2:]
	}
	v, err := strconv.ParseUint(trimmed, base, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func parseType(s string) (schema.Type, error) {
	switch s {
	case "master":
		return schema.Master, nil
	case "uinteger":
		return schema.UInt, nil
	case "integer":
		return schema.Int, nil
	case "float":
		return schema.Float, nil
	case "date":
		return schema.Date, nil
	case "string":
		return schema.String, nil
	case "utf-8":
		return schema.UTF8, nil
	case "binary":
		return schema.Binary, nil
	default:
		return 0, fmt.Errorf("schemaxml: unknown element type %q", s)
	}
}

func parseUintOr(s string, def uint64) uint64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}

func parseBoolOr(s string, def bool) bool {
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

// parseLength accepts a bare integer ("4" -> exact) or a "lo-hi" range,
// where either side may be omitted ("-8" -> max 8, "4-" -> min 4).
func parseLength(s string) (*schema.LengthConstraint, error) {
	if !strings.Contains(s, "-") {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		return &schema.LengthConstraint{Exact: &v}, nil
	}

	idx := strings.Index(s, "-")
	loStr, hiStr := s[:idx], s[idx+1:]
	lc := &schema.LengthConstraint{}
	if loStr != "" {
		v, err := strconv.ParseUint(loStr, 10, 64)
		if err != nil {
			return nil, err
		}
		lc.Min = &v
	}
	if hiStr != "" {
		v, err := strconv.ParseUint(hiStr, 10, 64)
		if err != nil {
			return nil, err
		}
		lc.Max = &v
	}
	return lc, nil
}

func parseDefault(typ schema.Type, s string) (schema.Default, error) {
	switch typ {
	case schema.UInt:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return schema.Default{}, err
		}
		return schema.NewUintDefault(v), nil
	case schema.Int, schema.Date:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return schema.Default{}, err
		}
		return schema.NewIntDefault(v), nil
	case schema.Float:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return schema.Default{}, err
		}
		return schema.NewFloatDefault(v), nil
	case schema.String, schema.UTF8:
		return schema.NewStringDefault(s), nil
	case schema.Binary:
		return schema.NewBinaryDefault([]byte(s)), nil
	default:
		return schema.Default{}, fmt.Errorf("schemaxml: master elements cannot declare a default")
	}
}
