package schemaxml

import (
	"strings"
	"testing"

	"github.com/ebml-io/ebml/schema"
)

const filesDemoXML = `<?xml version="1.0" encoding="utf-8"?>
<EBMLSchema xmlns="urn:ietf:rfc:8794" docType="files-in-ebml-demo" version="1">
 <element name="Files" path="\Files" id="0x1946696C" type="master"/>
 <element name="File" path="\Files\File" id="0x6146" type="master" minOccurs="1"/>
 <element name="FileName" path="\Files\File\FileName" id="0x614E" type="utf-8" minOccurs="1"/>
 <element name="MimeType" path="\Files\File\MimeType" id="0x464D" type="string" minOccurs="1"/>
 <element name="ModificationTimestamp" path="\Files\File\ModificationTimestamp" id="0x4654" type="date" minOccurs="1" length="8"/>
 <element name="Data" path="\Files\File\Data" id="0x4664" type="binary" minOccurs="1"/>
 <element name="Void" path="\(-)Void" id="0xEC" type="binary" minOccurs="0"/>
</EBMLSchema>`

func TestLoad(t *testing.T) {
	elems, err := Load(strings.NewReader(filesDemoXML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(elems) != 7 {
		t.Fatalf("got %d elements, want 7", len(elems))
	}

	byName := make(map[string]schema.Element, len(elems))
	for _, e := range elems {
		byName[e.Name] = e
	}

	files, ok := byName["Files"]
	if !ok {
		t.Fatalf("missing Files element")
	}
	if files.ID != 0x1946696C || !files.IsMaster() {
		t.Errorf("Files: got ID 0x%X master=%v", files.ID, files.IsMaster())
	}

	modTime, ok := byName["ModificationTimestamp"]
	if !ok {
		t.Fatalf("missing ModificationTimestamp element")
	}
	if modTime.Type != schema.Date {
		t.Errorf("ModificationTimestamp: got type %v, want Date", modTime.Type)
	}
	if modTime.Length == nil || modTime.Length.Exact == nil || *modTime.Length.Exact != 8 {
		t.Errorf("ModificationTimestamp: got length %+v, want exact 8", modTime.Length)
	}

	void, ok := byName["Void"]
	if !ok {
		t.Fatalf("missing Void element")
	}
	if void.Path != `\(-)Void` {
		t.Errorf("Void: got path %q", void.Path)
	}

	// Every parsed element must build into a valid graph.
	if _, err := schema.BuildGraph(elems); err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
}

func TestParseLengthRange(t *testing.T) {
	lc, err := parseLength("4-8")
	if err != nil {
		t.Fatalf("parseLength: %v", err)
	}
	if lc.Min == nil || *lc.Min != 4 || lc.Max == nil || *lc.Max != 8 {
		t.Fatalf("got %+v, want Min=4 Max=8", lc)
	}

	lc, err = parseLength("-8")
	if err != nil {
		t.Fatalf("parseLength: %v", err)
	}
	if lc.Min != nil || lc.Max == nil || *lc.Max != 8 {
		t.Fatalf("got %+v, want Min=nil Max=8", lc)
	}
}

func TestParseIDHexAndDecimal(t *testing.T) {
	id, err := parseID("0x4286")
	if err != nil || id != 0x4286 {
		t.Fatalf("got (%v, %v), want 0x4286", id, err)
	}
	id, err = parseID("42")
	if err != nil || id != 42 {
		t.Fatalf("got (%v, %v), want 42", id, err)
	}
}
