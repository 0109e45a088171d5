package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/app/services"
	"github.com/sagarshinde/studyhub/internal/middleware"
)

// ResourceController handles catalog browsing, submission and the
// admin moderation actions.
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// Browse returns approved resources matching the optional filters.
// GET /resources?course=&year=&semester=&subject=&type=&search=&limit=
func (c *ResourceController) Browse(ctx *gin.Context) {
	var filter dto.ResourceFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid filter parameters"),
		})
		return
	}

	resources, err := c.resourceService.Browse(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resources})
}

// GetByID returns a single approved resource.
// GET /resources/:id
func (c *ResourceController) GetByID(ctx *gin.Context) {
	resource, err := c.resourceService.GetPublished(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resource})
}

// Submit accepts a multipart upload and creates a pending resource.
// POST /resources (any authenticated role)
func (c *ResourceController) Submit(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Missing required submission fields"),
		})
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid or missing file"),
		})
		return
	}

	session := middleware.SessionFromContext(ctx)
	if session == nil {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	resource, err := c.resourceService.Submit(ctx.Request.Context(), &req, session.Name, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resource})
}

// Download bumps the download counter and returns the file URL.
// POST /resources/:id/download
func (c *ResourceController) Download(ctx *gin.Context) {
	result, err := c.resourceService.Download(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: result})
}

// ListAll returns every resource including pending ones.
// GET /admin/resources (admin only)
func (c *ResourceController) ListAll(ctx *gin.Context) {
	var filter dto.ResourceFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid filter parameters"),
		})
		return
	}

	resources, err := c.resourceService.ListAll(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resources})
}

// Approve publishes a pending resource.
// POST /admin/resources/:id/approve (admin only)
func (c *ResourceController) Approve(ctx *gin.Context) {
	if err := c.resourceService.Approve(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Resource approved"}})
}

// Remove rejects a pending resource or takes down a published one.
// DELETE /admin/resources/:id (admin only)
func (c *ResourceController) Remove(ctx *gin.Context) {
	if err := c.resourceService.Remove(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Resource removed"}})
}
