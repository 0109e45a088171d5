package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/pkg/assistant"
	"github.com/sagarshinde/studyhub/internal/pkg/logger"
)

// AssistantService manages the conversation with the generative helper.
// The transcript is an append-only in-memory sequence: it is deliberately
// not persisted and disappears on restart. Every send appends exactly one
// user entry and one reply entry; collaborator failures are absorbed into
// a fixed apology rather than surfaced as faults.
type AssistantService interface {
	Transcript(ctx context.Context) *dto.TranscriptResponse
	Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error)
	Reset(ctx context.Context)
}

// assistantServiceImpl implements AssistantService
type assistantServiceImpl struct {
	client assistant.Client

	mu       sync.Mutex
	messages []models.ChatMessage
}

// NewAssistantService creates a new AssistantService
func NewAssistantService(client assistant.Client) AssistantService {
	return &assistantServiceImpl{client: client}
}

// Transcript returns the conversation in append order.
func (s *assistantServiceImpl) Transcript(_ context.Context) *dto.TranscriptResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.ChatMessageResponse, 0, len(s.messages))
	for i := range s.messages {
		out = append(out, dto.NewChatMessageResponse(&s.messages[i]))
	}
	return &dto.TranscriptResponse{Messages: out}
}

// buildPrompt attaches the optional language hint to the user's text.
func buildPrompt(req *dto.SendMessageRequest) string {
	text := strings.TrimSpace(req.Text)
	switch strings.ToLower(req.Language) {
	case "hi":
		return fmt.Sprintf("Please answer in Hindi.\n\n%s", text)
	case "mr":
		return fmt.Sprintf("Please answer in Marathi.\n\n%s", text)
	default:
		return text
	}
}

// Send appends the user's message, asks the collaborator for a reply and
// appends it. The reply is always produced: a missing credential yields
// the fixed unavailable text, any call failure yields the fixed apology.
func (s *assistantServiceImpl) Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	userMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.ChatRoleUser,
		Text:      strings.TrimSpace(req.Text),
		Timestamp: time.Now(),
	}

	var replyText string
	if !s.client.Configured() {
		replyText = assistant.FallbackUnavailable
	} else {
		text, err := s.client.Generate(ctx, buildPrompt(req))
		if err != nil {
			logger.Warn().Err(err).Msg("Assistant call failed, using fallback reply")
			replyText = assistant.FallbackApology
		} else {
			replyText = text
		}
	}

	replyMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.ChatRoleAssistant,
		Text:      replyText,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, userMsg, replyMsg)
	s.mu.Unlock()

	resp := dto.NewChatMessageResponse(&replyMsg)
	return &resp, nil
}

// Reset clears the conversation wholesale.
func (s *assistantServiceImpl) Reset(_ context.Context) {
	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()
}
