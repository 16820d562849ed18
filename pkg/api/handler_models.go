package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listModelsHandler handles GET /api/v1/models.
func (s *Server) listModelsHandler(c *gin.Context) {
	registry := s.config.Models
	def := registry.Default()

	ids := registry.IDs()
	catalog := make([]ModelInfo, 0, len(ids))
	for _, id := range ids {
		mc, err := registry.Get(id)
		if err != nil {
			continue
		}
		catalog = append(catalog, ModelInfo{
			ID:        id,
			Provider:  mc.Provider,
			Tier:      mc.Tier,
			Fallback:  mc.Fallback,
			IsDefault: id == def,
		})
	}

	c.JSON(http.StatusOK, ModelsResponse{Default: def, Models: catalog})
}
