package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/app/services"
	"github.com/sagarshinde/studyhub/internal/middleware"
)

// AssistantController exposes the helper conversation.
type AssistantController struct {
	assistantService services.AssistantService
}

// NewAssistantController creates a new AssistantController
func NewAssistantController(assistantService services.AssistantService) *AssistantController {
	return &AssistantController{assistantService: assistantService}
}

// Transcript returns the conversation so far.
// GET /assistant/messages
func (c *AssistantController) Transcript(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.assistantService.Transcript(ctx.Request.Context())})
}

// Send submits a prompt and returns the reply entry. The reply is always
// present; collaborator failures come back as the fixed apology text.
// POST /assistant/messages
func (c *AssistantController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Message text is required"),
		})
		return
	}

	reply, err := c.assistantService.Send(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: reply})
}

// Reset clears the conversation.
// DELETE /assistant/messages
func (c *AssistantController) Reset(ctx *gin.Context) {
	c.assistantService.Reset(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Conversation cleared"}})
}
