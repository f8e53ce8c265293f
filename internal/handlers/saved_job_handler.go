package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workwise_backend/internal/services"
	"workwise_backend/internal/services/dto"
)

type SavedJobHandler struct {
	*BaseHandler
	savedJobService services.SavedJobService
	appService      services.ApplicationService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService services.SavedJobService, appService services.ApplicationService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
		appService:      appService,
	}
}

// RegisterRoutes registers saved job and application routes under the
// per-user group.
func (h *SavedJobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	saved := rg.Group("/saved-jobs")
	{
		saved.GET("", h.ListSaved)
		saved.POST("", h.SaveJob)
		saved.DELETE("/:saved_job_id", h.DeleteSaved)
	}

	apps := rg.Group("/applications")
	{
		apps.GET("", h.ListApplications)
		apps.POST("", h.CreateApplication)
	}
}

func (h *SavedJobHandler) ListSaved(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.savedJobService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SavedJobHandler) SaveJob(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	var req dto.SavedJobCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.savedJobService.Save(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SavedJobHandler) DeleteSaved(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}
	savedJobID, ok := h.ParseParamUint(c, "saved_job_id")
	if !ok {
		return
	}

	if err := h.savedJobService.Delete(savedJobID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SavedJobHandler) ListApplications(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.appService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SavedJobHandler) CreateApplication(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	var req dto.ApplicationCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.appService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
