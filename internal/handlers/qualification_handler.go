package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workwise_backend/internal/services"
	"workwise_backend/internal/services/dto"
)

type QualificationHandler struct {
	*BaseHandler
	qualService services.QualificationService
}

func NewQualificationHandler(base *BaseHandler, qualService services.QualificationService) *QualificationHandler {
	return &QualificationHandler{
		BaseHandler: base,
		qualService: qualService,
	}
}

// RegisterRoutes registers qualification routes under the per-user group.
func (h *QualificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quals := rg.Group("/qualifications")
	{
		quals.GET("", h.List)
		quals.POST("", h.Create)
		quals.PUT("/:qualification_id", h.Update)
		quals.DELETE("/:qualification_id", h.Delete)
	}
}

func (h *QualificationHandler) List(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.qualService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *QualificationHandler) Create(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	var req dto.QualificationCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.qualService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *QualificationHandler) Update(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}
	qualificationID, ok := h.ParseParamUint(c, "qualification_id")
	if !ok {
		return
	}

	var patch dto.QualificationPatch
	if !h.BindAndValidateJSON(c, &patch) {
		return
	}

	resp, err := h.qualService.Update(qualificationID, userID, &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *QualificationHandler) Delete(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}
	qualificationID, ok := h.ParseParamUint(c, "qualification_id")
	if !ok {
		return
	}

	if err := h.qualService.Delete(qualificationID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
