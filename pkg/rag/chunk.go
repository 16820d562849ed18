package rag

import "strings"

// Chunking defaults, in characters.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// ChunkText splits text into overlapping chunks. Paragraphs are packed
// greedily up to size (the "\n\n" joiner costs 2); a single paragraph
// longer than size is sliced with a step of size minus overlap so
// consecutive slices share context.
func ChunkText(text string, size, overlap int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var chunks []string
	current := ""

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if len(current)+len(para)+2 <= size {
			if current == "" {
				current = para
			} else {
				current = current + "\n\n" + para
			}
			continue
		}

		if current != "" {
			chunks = append(chunks, current)
		}
		if len(para) > size {
			chunks = append(chunks, sliceOversize(para, size, overlap)...)
			current = ""
		} else {
			current = para
		}
	}

	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// sliceOversize cuts on rune boundaries so multibyte text never splits
// mid-character; a torn rune would be rejected by the text column.
func sliceOversize(para string, size, overlap int) []string {
	runes := []rune(para)
	step := size - overlap
	if step < 1 {
		step = size
	}

	var out []string
	for i := 0; i < len(runes); i += step {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		if c := strings.TrimSpace(string(runes[i:end])); c != "" {
			out = append(out, c)
		}
	}
	return out
}
