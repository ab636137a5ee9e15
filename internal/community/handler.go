package community

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /api/posts (multipart form, optional image part)
func (h *Handler) CreatePost(c *gin.Context) {
	in := CreatePostInput{
		Title:    c.PostForm("title"),
		Content:  c.PostForm("content"),
		Category: c.PostForm("category"),
	}
	if v := c.PostForm("myStoreCategory"); v != "" {
		in.MyStoreCategory = &v
	}
	if v := c.PostForm("partnerStoreCategory"); v != "" {
		in.PartnerStoreCategory = &v
	}
	if file, err := c.FormFile("image"); err == nil {
		in.Image = file
	}

	post, err := h.service.CreatePost(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "제목과 내용을 입력해주세요"})
		case errors.Is(err, ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "게시글 카테고리가 올바르지 않습니다"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "게시글 등록에 실패했습니다"})
		}
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GET /api/posts
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "게시글 목록을 불러오지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GET /api/posts/:id
func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 게시글 ID입니다"})
		return
	}

	detail, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "게시글을 찾을 수 없습니다"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "게시글을 불러오지 못했습니다"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DELETE /api/posts/:id (admin only, guarded by middleware)
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 게시글 ID입니다"})
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "게시글을 찾을 수 없습니다"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "게시글 삭제에 실패했습니다"})
		return
	}
	c.Status(http.StatusNoContent)
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// POST /api/posts/:id/comments
func (h *Handler) AddComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 게시글 ID입니다"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "댓글 내용을 입력해주세요"})
		return
	}

	cm, err := h.service.AddComment(c.Request.Context(), id, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "게시글을 찾을 수 없습니다"})
		case errors.Is(err, ErrEmptyContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "댓글 내용을 입력해주세요"})
		case errors.Is(err, ErrCommentTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": "댓글은 500자 이내로 작성해주세요"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "댓글 등록에 실패했습니다"})
		}
		return
	}
	c.JSON(http.StatusCreated, cm)
}
