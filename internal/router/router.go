package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/erica-likelion/team3-be/internal/analysis"
	"github.com/erica-likelion/team3-be/internal/community"
	"github.com/erica-likelion/team3-be/internal/middleware"
	"github.com/erica-likelion/team3-be/internal/partnership"
	"github.com/erica-likelion/team3-be/internal/restaurant"
)

type Handlers struct {
	Analysis    *analysis.Handler
	Partnership *partnership.Handler
	Restaurant  *restaurant.Handler
	Community   *community.Handler
}

// New assembles the gin engine with CORS and every API route.
func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.POST("/analysis", h.Analysis.Analyze)
		api.POST("/partnership", h.Partnership.Recommend)
		api.GET("/restaurants/geo", h.Restaurant.ListGeo)

		posts := api.Group("/posts")
		{
			posts.POST("", h.Community.CreatePost)
			posts.GET("", h.Community.ListPosts)
			posts.GET("/:id", h.Community.GetPost)
			posts.POST("/:id/comments", h.Community.AddComment)
			posts.DELETE("/:id", middleware.RequireAdmin(), h.Community.DeletePost)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
