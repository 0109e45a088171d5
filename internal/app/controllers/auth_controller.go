package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/app/services"
	"github.com/sagarshinde/studyhub/internal/middleware"
)

// AuthController handles login, logout and session introspection.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login resolves the requested role through the identity provider and
// returns the session with its bearer token.
// POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid login request"),
		})
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: result})
}

// Logout clears the persisted session.
// POST /auth/logout (authenticated)
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Logged out"}})
}

// Me returns the caller's session as carried by the token.
// GET /auth/me (authenticated)
func (c *AuthController) Me(ctx *gin.Context) {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewSessionResponse(session)})
}
