package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebml-io/ebml/schema"
)

func filesGraph(t *testing.T) *schema.Graph {
	t.Helper()
	elems := []schema.Element{
		{ID: 0x1946696C, Name: "Files", Path: `\Files`, Type: schema.Master},
		{ID: 0x6146, Name: "File", Path: `\Files\File`, Type: schema.Master},
		{ID: 0x614E, Name: "FileName", Path: `\Files\File\FileName`, Type: schema.UTF8},
		{ID: 0x464D, Name: "MimeType", Path: `\Files\File\MimeType`, Type: schema.String},
		{ID: 0x4664, Name: "Data", Path: `\Files\File\Data`, Type: schema.Binary},
	}
	g, err := schema.BuildGraph(elems)
	require.NoError(t, err)
	return g
}

func TestGenerateProducesBothFiles(t *testing.T) {
	g := filesGraph(t)
	files, err := Generate(g, PackageConfig{Name: "filesdemo", SourceDocType: "files-in-ebml-demo"})
	require.NoError(t, err)
	for _, name := range []string{"elements.go", "parser.go"} {
		_, ok := files[name]
		require.Truef(t, ok, "missing generated file %q", name)
	}

	elements := string(files["elements.go"])
	if !strings.Contains(elements, "package filesdemo") {
		t.Errorf("elements.go missing package clause:\n%s", elements)
	}
	if !strings.Contains(elements, "FilesID    uint32 = 0x1946696C") {
		t.Errorf("elements.go missing Files constant:\n%s", elements)
	}

	parser := string(files["parser.go"])
	if !strings.Contains(parser, "type FileNameReader struct") {
		t.Errorf("parser.go missing FileNameReader type:\n%s", parser)
	}
	if !strings.Contains(parser, "func (s *FileNameReader) Read() (string, error)") {
		t.Errorf("parser.go missing FileNameReader.Read:\n%s", parser)
	}
	if !strings.Contains(parser, "func (s *DataReader) Read() ([]byte, error)") {
		t.Errorf("parser.go missing DataReader.Read:\n%s", parser)
	}
}

func TestValueAccessor(t *testing.T) {
	testCases := []struct {
		typ        schema.Type
		wantGoType string
		wantMethod string
	}{
		{schema.UInt, "uint64", "ReadUint"},
		{schema.Int, "int64", "ReadInt"},
		{schema.Float, "float64", "ReadFloat"},
		{schema.Date, "int64", "ReadDate"},
		{schema.String, "string", "ReadString"},
		{schema.UTF8, "string", "ReadString"},
		{schema.Binary, "[]byte", "ReadBinary"},
	}
	for _, tc := range testCases {
		gotType, gotMethod := valueAccessor(tc.typ)
		if gotType != tc.wantGoType || gotMethod != tc.wantMethod {
			t.Errorf("%v: got (%s, %s), want (%s, %s)", tc.typ, gotType, gotMethod, tc.wantGoType, tc.wantMethod)
		}
	}
}
