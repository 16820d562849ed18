package rag

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestChunkText(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, ChunkText("", DefaultChunkSize, DefaultChunkOverlap))
		assert.Nil(t, ChunkText("   \n\n  ", DefaultChunkSize, DefaultChunkOverlap))
	})

	t.Run("short text is one chunk", func(t *testing.T) {
		got := ChunkText("just a note", DefaultChunkSize, DefaultChunkOverlap)
		assert.Equal(t, []string{"just a note"}, got)
	})

	t.Run("paragraphs pack greedily until the size limit", func(t *testing.T) {
		got := ChunkText("alpha\n\nbravo\n\ncharlie", 14, 2)
		assert.Equal(t, []string{"alpha\n\nbravo", "charlie"}, got)
	})

	t.Run("blank paragraphs are dropped", func(t *testing.T) {
		got := ChunkText("  \n\n\n\nfoo\n\n   ", DefaultChunkSize, DefaultChunkOverlap)
		assert.Equal(t, []string{"foo"}, got)
	})

	t.Run("oversize paragraph is sliced with overlap", func(t *testing.T) {
		got := ChunkText("abcdefghij", 6, 2)
		assert.Equal(t, []string{"abcdef", "efghij", "ij"}, got)
	})

	t.Run("oversize slicing keeps runes whole", func(t *testing.T) {
		got := ChunkText(strings.Repeat("日", 10), 6, 2)
		assert.Len(t, got, 3)
		for _, chunk := range got {
			assert.True(t, utf8.ValidString(chunk))
		}
		assert.Equal(t, 6, utf8.RuneCountInString(got[0]))
		assert.Equal(t, 6, utf8.RuneCountInString(got[1]))
		assert.Equal(t, 2, utf8.RuneCountInString(got[2]))
	})

	t.Run("oversize paragraph flushes the open chunk first", func(t *testing.T) {
		long := strings.Repeat("x", 30)
		got := ChunkText("intro\n\n"+long, 12, 2)
		assert.Equal(t, "intro", got[0])
		for _, chunk := range got[1:] {
			assert.LessOrEqual(t, len(chunk), 12)
		}
		// The slices must cover the whole paragraph.
		assert.Equal(t, strings.Count(strings.Join(got[1:], ""), "x"), 30+2*(len(got[1:])-1))
	})

	t.Run("defaults keep chunks under the size limit", func(t *testing.T) {
		paragraphs := make([]string, 8)
		for i := range paragraphs {
			paragraphs[i] = strings.Repeat("the quick brown fox ", 10)
		}
		got := ChunkText(strings.Join(paragraphs, "\n\n"), DefaultChunkSize, DefaultChunkOverlap)
		assert.NotEmpty(t, got)
		for _, chunk := range got {
			assert.LessOrEqual(t, len(chunk), DefaultChunkSize)
		}
	})
}
