package restaurant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /api/restaurants/geo
func (h *Handler) ListGeo(c *gin.Context) {
	entries, err := h.service.ListGeo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load restaurants"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
