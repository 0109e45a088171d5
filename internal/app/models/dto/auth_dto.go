package dto

import "github.com/sagarshinde/studyhub/internal/app/models"

// LoginRequest selects a role and supplies credentials. The admin role
// requires the configured email and password; student logins are
// caller-asserted, mirroring the stub identity collaborator.
type LoginRequest struct {
	Role     string `json:"role" binding:"required,oneof=ADMIN STUDENT admin student"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is the session as seen by the client.
type SessionResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.RoleType `json:"role"`
}

// LoginResponse carries the session plus its bearer token.
type LoginResponse struct {
	Session   SessionResponse `json:"session"`
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn"`
}

// NewSessionResponse maps a session model.
func NewSessionResponse(s *models.Session) SessionResponse {
	return SessionResponse{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Role:  s.Role,
	}
}
