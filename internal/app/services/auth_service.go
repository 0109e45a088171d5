package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	appAuth "github.com/sagarshinde/studyhub/internal/app/auth"
	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/app/repositories"
	pkgAuth "github.com/sagarshinde/studyhub/internal/pkg/auth"
	"github.com/sagarshinde/studyhub/internal/pkg/logger"
)

// AuthService defines the interface for session operations. It consumes
// the identity provider's resolved role and never sees raw credentials
// beyond passing them through for verification.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	sessionRepo *repositories.SessionRepository
	provider    appAuth.IdentityProvider
	jwtService  *pkgAuth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(sessionRepo *repositories.SessionRepository, provider appAuth.IdentityProvider, jwtService *pkgAuth.JWTService) AuthService {
	return &authServiceImpl{
		sessionRepo: sessionRepo,
		provider:    provider,
		jwtService:  jwtService,
	}
}

// normalizeRole accepts the lowercase role names the original client
// sends alongside the canonical ones.
func normalizeRole(role string) models.RoleType {
	switch role {
	case "admin", string(models.RoleAdmin):
		return models.RoleAdmin
	case "student", string(models.RoleStudent):
		return models.RoleStudent
	default:
		return ""
	}
}

// Login verifies the credentials for the requested role, persists the
// resulting session (replacing any previous one) and issues its token.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	role := normalizeRole(req.Role)

	identity, err := s.provider.Verify(ctx, role, appAuth.Credentials{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:    uuid.New().String(),
		Name:  identity.Name,
		Email: identity.Email,
		Role:  identity.Role,
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("error persisting session: %w", err)
	}

	token, expiresIn, err := s.jwtService.GenerateToken(session)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	logger.Info().Str("sessionId", session.ID).Str("role", string(session.Role)).Msg("Session created")

	return &dto.LoginResponse{
		Session:   dto.NewSessionResponse(session),
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// Logout clears the persisted session. Logging out without a session is
// not an error.
func (s *authServiceImpl) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

// CurrentSession reads the persisted session.
func (s *authServiceImpl) CurrentSession(ctx context.Context) (*models.Session, error) {
	return s.sessionRepo.Current(ctx)
}
