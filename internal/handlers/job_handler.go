package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workwise_backend/internal/middleware"
	"workwise_backend/internal/services"
	"workwise_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes registers the public job browsing routes and the
// admin-only business and job management routes.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListActive)
		jobs.GET("/search", h.Search)
		jobs.GET("/:job_id", h.GetJob)
	}

	admin := rg.Group("")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/businesses", h.CreateBusiness)
		admin.GET("/businesses", h.ListBusinesses)
		admin.POST("/jobs", h.CreateJob)
	}
}

func (h *JobHandler) ListActive(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 0)
	offset := ParseQueryInt(c, "offset", 0)

	resp, err := h.jobService.ListActive(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Search(c *gin.Context) {
	var query dto.JobSearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.jobService.Search(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := h.ParseParamUint(c, "job_id")
	if !ok {
		return
	}

	resp, err := h.jobService.GetJob(jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) CreateBusiness(c *gin.Context) {
	var req dto.BusinessCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.CreateBusiness(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *JobHandler) ListBusinesses(c *gin.Context) {
	resp, err := h.jobService.ListBusinesses()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.JobCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.CreateJob(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
