package partnership

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

// POST /api/partnership
func (h *Handler) Recommend(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "가게명이 비어 있습니다"})
		return
	}

	resp, err := h.service.Recommend(c.Request.Context(), req.StoreName)
	if err != nil {
		switch {
		case errors.Is(err, ErrStoreNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "해당 가게를 찾을 수 없습니다"})
		case errors.Is(err, ErrNoCoordinate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "대상 매장 좌표가 없습니다"})
		case errors.Is(err, ErrNoPartners):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "반경 500m 내 적합한 제휴 후보가 없습니다",
				"code":  "NO_PARTNER_CANDIDATES",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "제휴 추천 처리 중 오류가 발생했습니다"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
