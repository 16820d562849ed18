package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	t.Run("plain text is trimmed", func(t *testing.T) {
		got, err := ExtractText("notes.txt", []byte("  hello world\n"))
		require.NoError(t, err)
		assert.Equal(t, "hello world", got)
	})

	t.Run("markdown passes through", func(t *testing.T) {
		got, err := ExtractText("README.md", []byte("# Title\n\nBody."))
		require.NoError(t, err)
		assert.Equal(t, "# Title\n\nBody.", got)
	})

	t.Run("extension match is case-insensitive", func(t *testing.T) {
		got, err := ExtractText("NOTES.TXT", []byte("upper"))
		require.NoError(t, err)
		assert.Equal(t, "upper", got)
	})

	t.Run("invalid utf-8 is replaced, not rejected", func(t *testing.T) {
		got, err := ExtractText("notes.txt", []byte{'h', 'i', 0xff, '!'})
		require.NoError(t, err)
		assert.Equal(t, "hi�!", got)
	})

	t.Run("json is pretty-printed", func(t *testing.T) {
		got, err := ExtractText("schema.json", []byte(`{"b":1,"a":[2]}`))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": [\n    2\n  ],\n  \"b\": 1\n}", got)
	})

	t.Run("invalid json falls back to raw text", func(t *testing.T) {
		got, err := ExtractText("broken.json", []byte("not json {"))
		require.NoError(t, err)
		assert.Equal(t, "not json {", got)
	})

	t.Run("csv rows become header-value lines", func(t *testing.T) {
		got, err := ExtractText("people.csv", []byte("name,role\nada,eng\n,po\n"))
		require.NoError(t, err)
		assert.Equal(t, "name: ada; role: eng\nrole: po", got)
	})

	t.Run("empty csv yields empty text", func(t *testing.T) {
		got, err := ExtractText("empty.csv", []byte(""))
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ExtractText("script.exe", []byte("MZ"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedFile)
		assert.Contains(t, err.Error(), ".exe")
	})

	t.Run("oversized file is rejected before parsing", func(t *testing.T) {
		big := make([]byte, MaxFileSize+1)
		_, err := ExtractText("big.txt", big)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("broken pdf reports an error", func(t *testing.T) {
		_, err := ExtractText("scan.pdf", []byte("not a pdf"))
		assert.Error(t, err)
	})
}
