package dto

import (
	"time"

	"github.com/sagarshinde/studyhub/internal/app/models"
)

// SendMessageRequest is a single prompt to the assistant. Language is an
// optional hint ("en", "hi", "mr"); the helper answers in the user's
// language either way.
type SendMessageRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

// ChatMessageResponse is one transcript entry.
type ChatMessageResponse struct {
	ID        string          `json:"id"`
	Role      models.ChatRole `json:"role"`
	Text      string          `json:"text"`
	Timestamp time.Time       `json:"timestamp"`
}

// TranscriptResponse is the full conversation in append order.
type TranscriptResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// NewChatMessageResponse maps a transcript entry.
func NewChatMessageResponse(m *models.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		Role:      m.Role,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}
