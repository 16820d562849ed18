package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/pkg/rag"
)

// uploadDocumentHandler handles POST /api/v1/documents: multipart upload
// of one reference document, extracted and indexed for retrieval.
func (s *Server) uploadDocumentHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > rag.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file is %d bytes, max allowed is %d (5MB)", fileHeader.Size, rag.MaxFileSize),
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}

	// Base keeps client path segments out of stored filenames.
	filename := filepath.Base(fileHeader.Filename)
	result, err := s.ragService.IngestDocument(c.Request.Context(), userID(c), filename, content)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DocumentUploadResponse{
		ID:           result.Document.ID,
		Filename:     result.Document.Filename,
		Message:      "Document uploaded and indexed for RAG",
		Deduplicated: result.Deduplicated,
	})
}

// listDocumentsHandler handles GET /api/v1/documents.
func (s *Server) listDocumentsHandler(c *gin.Context) {
	docs, err := s.documentService.ListForUser(c.Request.Context(), userID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	summaries := make([]DocumentSummary, len(docs))
	for i, d := range docs {
		summaries[i] = DocumentSummary{
			ID:         d.ID,
			Filename:   d.Filename,
			SizeBytes:  d.SizeBytes,
			ChunkCount: d.ChunkCount,
			CreatedAt:  d.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, summaries)
}

// deleteDocumentHandler handles DELETE /api/v1/documents/:id.
func (s *Server) deleteDocumentHandler(c *gin.Context) {
	documentID := c.Param("id")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document id is required"})
		return
	}

	if err := s.documentService.Delete(c.Request.Context(), userID(c), documentID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
