package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workwise_backend/internal/services"
	"workwise_backend/pkg/apperrors"
)

type CVHandler struct {
	*BaseHandler
	cvService services.CVService
}

func NewCVHandler(base *BaseHandler, cvService services.CVService) *CVHandler {
	return &CVHandler{
		BaseHandler: base,
		cvService:   cvService,
	}
}

// RegisterRoutes registers CV routes under the per-user group.
func (h *CVHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cvs := rg.Group("/cvs")
	{
		cvs.GET("", h.List)
		cvs.POST("", h.Upload)
		cvs.DELETE("/:cv_id", h.Delete)
		cvs.PUT("/:cv_id/primary", h.SetPrimary)
	}
}

func (h *CVHandler) List(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.cvService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Upload accepts multipart form data: the document under "file", an
// optional display name under "cvName" and an optional "isPrimary" flag
// that makes the new CV the sole primary.
func (h *CVHandler) Upload(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing CV file"))
		return
	}

	cvName := c.PostForm("cvName")
	isPrimary, _ := strconv.ParseBool(c.DefaultPostForm("isPrimary", "false"))

	resp, err := h.cvService.Upload(c.Request.Context(), userID, cvName, isPrimary, header)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CVHandler) Delete(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}
	cvID, ok := h.ParseParamUint(c, "cv_id")
	if !ok {
		return
	}

	if err := h.cvService.Delete(c.Request.Context(), cvID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CVHandler) SetPrimary(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}
	cvID, ok := h.ParseParamUint(c, "cv_id")
	if !ok {
		return
	}

	resp, err := h.cvService.SetPrimary(userID, cvID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
