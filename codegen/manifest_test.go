package codegen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManifestRoundTrip(t *testing.T) {
	files := map[string][]byte{
		"elements.go": []byte("package x"),
		"parser.go":   []byte("package x"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, files))

	names, err := ReadManifest(&buf)
	require.NoError(t, err)
	require.Equal(t, []string{"elements.go", "parser.go"}, names)
}
