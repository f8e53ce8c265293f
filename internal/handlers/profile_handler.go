package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workwise_backend/internal/services"
	"workwise_backend/internal/services/dto"
	"workwise_backend/pkg/apperrors"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes registers profile routes under the per-user group. The
// group already enforces authentication and self-or-admin access.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", h.UpdateProfile)
	rg.POST("/profile/image", h.UploadProfileImage)
	rg.GET("/stats", h.GetStats)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.profileService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	var patch dto.UserProfilePatch
	if !h.BindAndValidateJSON(c, &patch) {
		return
	}

	resp, err := h.profileService.UpdateProfile(userID, &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UploadProfileImage(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing image file"))
		return
	}

	resp, err := h.profileService.UploadProfileImage(c.Request.Context(), userID, header)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetStats(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.profileService.GetStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
