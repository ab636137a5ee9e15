package analysis

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /api/analysis
func (h *Handler) Analyze(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "필수 항목이 누락되었거나 형식이 올바르지 않습니다"})
		return
	}

	resp, err := h.service.Analyze(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrBadCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "좌표 형식이 올바르지 않습니다 (위도,경도)"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "분석 처리 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
