package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teejay382/jobtolk-search/internal/analytics"
	"github.com/teejay382/jobtolk-search/services"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

// Options tunes the API middleware stack.
type Options struct {
	RateLimitRPS float64
	RateBurst    int
}

// API holds dependencies for API handlers: the search engine and the
// analytics service.
type API struct {
	searcher  services.Searcher
	analytics *analytics.Service
}

// NewAPI creates a new API handler structure.
func NewAPI(searcher services.Searcher, analytics *analytics.Service) *API {
	return &API{
		searcher:  searcher,
		analytics: analytics,
	}
}

// SetupRoutes defines all the API routes for the search service.
func SetupRoutes(router *gin.Engine, searcher services.Searcher, analytics *analytics.Service, opts Options) {
	apiHandler := NewAPI(searcher, analytics)

	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))
	router.Use(RateLimitMiddleware(opts.RateLimitRPS, opts.RateBurst))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		searchRoutes := v1.Group("/search")
		{
			searchRoutes.POST("/jobs", apiHandler.SearchJobsHandler)
			searchRoutes.POST("/freelancers", apiHandler.SearchFreelancersHandler)
		}

		v1.GET("/stats", apiHandler.GetStatsHandler)
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetStatsHandler returns aggregated search analytics.
func (api *API) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.analytics.GetStats())
}
