package assistant

import "context"

// Client is the text-in/text-out generative collaborator. One request,
// one reply, no streaming.
type Client interface {
	// Generate returns the model's reply to the prompt. Callers must
	// treat any error as recoverable and fall back to a fixed message.
	Generate(ctx context.Context, prompt string) (string, error)

	// Configured reports whether a credential is present. When false,
	// Generate must not be called; the caller degrades to the fixed
	// unavailable message.
	Configured() bool
}

// Fixed user-facing fallbacks. The assistant path must never surface a
// raw fault to the end user.
const (
	FallbackApology     = "Sorry, I encountered an error while processing your request. Please try again later."
	FallbackUnavailable = "The assistant is not available right now. Please contact the administrator."
	FallbackEmptyReply  = "Sorry, I couldn't generate a response."
)

// SystemInstruction is the helper's persona, carried over from the
// original deployment.
const SystemInstruction = "You are a friendly and helpful AI assistant for BSc students (Computer Science and IT). " +
	"Your name is 'BSc Study Hub AI'. You help students with exam preparation, clearing subject doubts, " +
	"syllabus guidance, and app usage. You are capable of responding in English, Hindi, and Marathi based on " +
	"the user's language. Keep answers concise, academic, and encouraging."
