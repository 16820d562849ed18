// Package rag turns uploaded documents into retrievable context for
// spec generation: plain-text extraction, overlapping chunking, Gemini
// embeddings, and cosine-similarity retrieval over pgvector.
package rag

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxFileSize caps uploads at 5 MB.
const MaxFileSize = 5 * 1024 * 1024

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// ExtractText extracts plain text from an uploaded file. The format is
// detected from the filename extension; every extractor produces text
// suitable for chunking and embedding.
func ExtractText(filename string, content []byte) (string, error) {
	if len(content) > MaxFileSize {
		return "", fmt.Errorf("%w: file is %d bytes, max allowed is %d (5MB)", ErrFileTooLarge, len(content), MaxFileSize)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".txt", ".md":
		return extractPlain(content), nil
	case ".json":
		return extractJSON(content), nil
	case ".csv":
		return extractCSV(content)
	case ".pdf":
		return extractPDF(content)
	default:
		return "", fmt.Errorf("%w: %q (supported: .csv, .json, .md, .pdf, .txt)", ErrUnsupportedFile, ext)
	}
}

// extractPlain decodes as UTF-8, replacing invalid sequences so the
// result is always storable in a text column.
func extractPlain(content []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(content), "�"))
}

// extractJSON pretty-prints for readable context; invalid JSON falls
// back to the raw text.
func extractJSON(content []byte) string {
	var data any
	if err := json.Unmarshal(content, &data); err != nil {
		return extractPlain(content)
	}
	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return extractPlain(content)
	}
	return string(pretty)
}

// extractCSV serializes rows as "header: value" pairs, one line per
// row, so tabular data reads naturally as prose context.
func extractCSV(content []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}

	headers := rows[0]
	var lines []string
	for _, row := range rows[1:] {
		var pairs []string
		for i, value := range row {
			if i >= len(headers) {
				break
			}
			if strings.TrimSpace(value) == "" {
				continue
			}
			pairs = append(pairs, fmt.Sprintf("%s: %s", headers[i], value))
		}
		if len(pairs) > 0 {
			lines = append(lines, strings.Join(pairs, "; "))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// extractPDF pulls the text layer of each page. Pages that fail to
// parse are skipped so one bad page does not lose the document.
func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}
