package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workwise_backend/internal/middleware"
	"workwise_backend/internal/services"
	"workwise_backend/internal/services/dto"
	"workwise_backend/pkg/apperrors"
)

type UnionHandler struct {
	*BaseHandler
	unionService services.UnionService
}

func NewUnionHandler(base *BaseHandler, unionService services.UnionService) *UnionHandler {
	return &UnionHandler{
		BaseHandler:  base,
		unionService: unionService,
	}
}

// RegisterRoutes registers public union browsing and admin-only
// registration routes.
func (h *UnionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	unions := rg.Group("/unions")
	{
		unions.GET("", h.List)
		unions.GET("/members", h.ListMembers)
	}

	admin := rg.Group("/unions")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.POST("/members", h.AddMember)
	}
}

func (h *UnionHandler) List(c *gin.Context) {
	resp, err := h.unionService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMembers returns all memberships, optionally filtered by union_id.
func (h *UnionHandler) ListMembers(c *gin.Context) {
	var unionID *uint
	if raw := c.Query("union_id"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid union_id query parameter"))
			return
		}
		id := uint(value)
		unionID = &id
	}

	resp, err := h.unionService.ListMembers(unionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UnionHandler) Create(c *gin.Context) {
	var req dto.UnionCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.unionService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *UnionHandler) AddMember(c *gin.Context) {
	var req dto.UnionMemberCreateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.unionService.AddMember(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
