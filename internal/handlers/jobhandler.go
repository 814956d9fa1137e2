package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/hireable/internal/dtos"
	"github.com/justsurfingit/hireable/internal/metrics"
	"github.com/justsurfingit/hireable/internal/models"
	"github.com/justsurfingit/hireable/internal/posting"
	"github.com/justsurfingit/hireable/internal/query"
	"github.com/justsurfingit/hireable/internal/services"
)

type JobHandler struct {
	LLMService     *services.LLMService
	JobService     *services.JobService
	PostingService *posting.Service
}

func NewJobHandler(llm *services.LLMService, j *services.JobService, p *posting.Service) *JobHandler {
	return &JobHandler{
		LLMService:     llm,
		JobService:     j,
		PostingService: p,
	}
}

// ListJobs is GET /jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dtos.JobSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	filters, err := query.ParseFilters(req.Type, req.Location, req.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.JobService.Search(req.Query, filters)
	metrics.JobSearches.WithLabelValues(string(filters.Sort)).Inc()
	metrics.JobSearchResults.Observe(float64(res.Count))
	c.JSON(http.StatusOK, res)
}

// FilterOptions is GET /jobs/filters
func (h *JobHandler) FilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, query.FilterOptions())
}

// GetJob is GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.JobService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListCompanies is GET /companies
func (h *JobHandler) ListCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"companies": h.JobService.Catalog.Companies()})
}

// Apply is POST /jobs/:id/apply
func (h *JobHandler) Apply(c *gin.Context) {
	job, err := h.JobService.Apply(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply", "notice": dtos.Failure(posting.MsgFailed)})
		return
	}

	metrics.Applications.Inc()
	c.JSON(http.StatusOK, dtos.ApplyResponse{Job: job, Notice: dtos.Success(services.ApplyMessage(job))})
}

// JobForm is GET /jobs/form
func (h *JobHandler) JobForm(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.JobFormOptions{
		Types:     models.JobTypes,
		Locations: posting.Locations,
		Draft:     dtos.NewDraftState(posting.NewDraft()),
	})
}

// PreviewJob is POST /jobs/preview. It derives errors, progress and preview
// from the draft sent and stores nothing.
func (h *JobHandler) PreviewJob(c *gin.Context) {
	var req dtos.JobDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.NewDraftState(req.Draft()))
}

// CreateJob is POST /jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.PostingService.Submit(c.Request.Context(), req.Draft())
	var verr *posting.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.JobPostings.WithLabelValues(metrics.OutcomeRejected).Inc()
		state := dtos.NewDraftState(req.Draft())
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  verr.Error(),
			"errors": verr.Fields,
			"state":  state,
			"notice": dtos.Failure(posting.MsgFixErrors),
		})
		return
	case err != nil:
		metrics.JobPostings.WithLabelValues(metrics.OutcomeFailed).Inc()
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Failed to create job: " + err.Error(),
			"notice": dtos.Failure(posting.MsgFailed),
		})
		return
	}

	metrics.JobPostings.WithLabelValues(metrics.OutcomeAccepted).Inc()
	c.JSON(http.StatusCreated, dtos.JobPostResponse{
		Job:    job,
		Notice: dtos.Success(posting.SuccessMessage(job)),
		Reset:  posting.NewDraft(),
	})
}

// ParseJob is POST /jobs/extract. It prefills a posting draft from a raw job
// page.
func (h *JobHandler) ParseJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	draft, err := h.LLMService.ExtractJobDetails(c.Request.Context(), req.RawHTML)
	switch {
	case errors.Is(err, services.ErrExtractionDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI Extraction failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dtos.NewDraftState(draft),
	})
}
