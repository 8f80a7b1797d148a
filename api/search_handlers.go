package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teejay382/jobtolk-search/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query   string                 `json:"query"`
	Filters *services.CoarseFilter `json:"filters,omitempty"`
}

// SearchJobsHandler handles search requests over job postings.
// Request Body: SearchRequest
func (api *API) SearchJobsHandler(c *gin.Context) {
	api.handleSearch(c, services.KindJobs)
}

// SearchFreelancersHandler handles search requests over freelancer
// profiles.
// Request Body: SearchRequest
func (api *API) SearchFreelancersHandler(c *gin.Context) {
	api.handleSearch(c, services.KindFreelancers)
}

func (api *API) handleSearch(c *gin.Context, kind services.EntityKind) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateSearchRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	query := services.SearchQuery{
		Query: req.Query,
		Kind:  kind,
	}
	if req.Filters != nil {
		query.Filter = *req.Filters
	}

	// A failed coarse fetch surfaces as an empty, degraded result, not
	// an error; a real error here means the request itself was bad.
	result, err := api.searcher.Search(c.Request.Context(), query)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
