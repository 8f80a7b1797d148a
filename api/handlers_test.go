package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teejay382/jobtolk-search/config"
	"github.com/teejay382/jobtolk-search/internal/analytics"
	"github.com/teejay382/jobtolk-search/internal/engine"
	"github.com/teejay382/jobtolk-search/internal/store"
	"github.com/teejay382/jobtolk-search/model"
	"github.com/teejay382/jobtolk-search/services"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *analytics.Service) {
	t.Helper()

	mem := store.NewMemorySource()
	mem.AddJobs(
		model.Job{ID: "job-react", Title: "React Developer", Category: "Web Development",
			Location: "Remote", RequiredSkills: []string{"React", "TypeScript"}},
		model.Job{ID: "job-go", Title: "Go Engineer", Category: "Web Development",
			Location: "Berlin", RequiredSkills: []string{"Go"}},
	)
	mem.AddProfiles(
		model.FreelancerProfile{ID: "fp-ada", Name: "Ada Okafor", Username: "ada_codes",
			Skills: []string{"React"}},
	)

	tracker := analytics.NewService()
	eng, err := engine.New(mem, config.EngineSettings{}, tracker)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, eng, tracker, Options{})
	return router, tracker
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSearchJobsHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("ranked results", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/api/v1/search/jobs", SearchRequest{Query: "react"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var result services.SearchResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		require.Len(t, result.Hits, 1)
		assert.Equal(t, "job-react", result.Hits[0].Job.ID)
		assert.Positive(t, result.Hits[0].Score)
		assert.NotEmpty(t, result.QueryID)
	})

	t.Run("empty query returns coarse set", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/api/v1/search/jobs", SearchRequest{Query: ""})
		require.Equal(t, http.StatusOK, recorder.Code)

		var result services.SearchResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Len(t, result.Hits, 2)
	})

	t.Run("structured filter narrows the coarse set", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/api/v1/search/jobs", SearchRequest{
			Query:   "",
			Filters: &services.CoarseFilter{Location: "berlin"},
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var result services.SearchResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		require.Len(t, result.Hits, 1)
		assert.Equal(t, "job-go", result.Hits[0].Job.ID)
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/search/jobs", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var apiErr APIError
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
		assert.Equal(t, ErrorCodeInvalidJSON, apiErr.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		min, max := 500.0, 100.0
		recorder := doRequest(t, router, http.MethodPost, "/api/v1/search/jobs", SearchRequest{
			Query:   "react",
			Filters: &services.CoarseFilter{BudgetMin: &min, BudgetMax: &max},
		})
		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var apiErr APIError
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
		assert.Equal(t, ErrorCodeValidationFailed, apiErr.Code)
		assert.NotEmpty(t, apiErr.Details)
	})
}

func TestSearchFreelancersHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/search/freelancers", SearchRequest{Query: "ada"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var result services.SearchResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "fp-ada", result.Hits[0].Profile.ID)
	assert.Nil(t, result.Hits[0].Job)
}

func TestHealthCheckHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestRateLimitMiddleware(t *testing.T) {
	mem := store.NewMemorySource()
	tracker := analytics.NewService()
	eng, err := engine.New(mem, config.EngineSettings{}, tracker)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, eng, tracker, Options{RateLimitRPS: 1, RateBurst: 2})

	statuses := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		recorder := doRequest(t, router, http.MethodGet, "/health", nil)
		statuses = append(statuses, recorder.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[3])
}
