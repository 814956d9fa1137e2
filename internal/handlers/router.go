package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/justsurfingit/hireable/internal/logger"
)

// HealthCheck is GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter wires every route under /api/v1.
func NewRouter(jobs *JobHandler, contactHandler *ContactHandler, allowedOrigins []string, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(log))

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.GET("/companies", jobs.ListCompanies)

		// Job browser
		api.GET("/jobs", jobs.ListJobs)
		api.GET("/jobs/filters", jobs.FilterOptions)
		api.GET("/jobs/:id", jobs.GetJob)
		api.POST("/jobs/:id/apply", jobs.Apply)

		// Posting form
		api.GET("/jobs/form", jobs.JobForm)
		api.POST("/jobs/preview", jobs.PreviewJob)
		api.POST("/jobs/extract", jobs.ParseJob)
		api.POST("/jobs", jobs.CreateJob)

		api.POST("/contact", contactHandler.Submit)
	}
	return r
}
