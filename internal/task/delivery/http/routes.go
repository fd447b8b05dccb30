package http

import (
	"github.com/gin-gonic/gin"

	"task-prioritizer/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Writes go through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.GET("", h.List)
		tasks.POST("/export", mw.RateLimit(), h.Export)
	}
}
