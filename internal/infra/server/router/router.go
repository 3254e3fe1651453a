// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/entrypoint/controller"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	reportController   *controller.ReportController
	recordController   *controller.RecordController
	computeRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
// computeRateLimiter may be nil, in which case the compute endpoints are unthrottled.
func NewRouter(
	healthController *controller.HealthController,
	reportController *controller.ReportController,
	recordController *controller.RecordController,
	computeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		reportController:   reportController,
		recordController:   recordController,
		computeRateLimiter: computeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("/summary", r.reportController.GetSummary)
				reports.GET("/cumulative", r.reportController.GetCumulative)
				reports.GET("/overview", r.reportController.GetOverview)
				reports.GET("/comparison", r.reportController.GetComparison)

				compute := reports.Group("/compute")
				if r.computeRateLimiter != nil {
					compute.Use(r.computeRateLimiter.Middleware())
				}
				compute.POST("", r.reportController.Compute)
				compute.POST("/upload", r.reportController.ComputeUpload)
			}
		}

		if r.recordController != nil {
			records := v1.Group("/records")
			{
				records.GET("", r.recordController.List)
				records.POST("", r.recordController.Create)
				records.DELETE("/:id", r.recordController.Delete)
			}
		}
	}
}
