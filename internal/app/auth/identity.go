package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/pkg/apperrors"
)

// Credentials is what the caller submits at login.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// Identity is the resolved caller: display name, email and role. The
// session gate consumes only this, never the raw credentials.
type Identity struct {
	Name  string
	Email string
	Role  models.RoleType
}

// IdentityProvider verifies credentials for a requested role. The static
// implementation below is the known-fake part of the system, isolated
// behind this boundary so a real provider can replace it without touching
// the session gate.
type IdentityProvider interface {
	Verify(ctx context.Context, role models.RoleType, creds Credentials) (*Identity, error)
}

// StaticProviderConfig carries the configured accounts.
type StaticProviderConfig struct {
	AdminName         string
	AdminEmail        string
	AdminPasswordHash string // bcrypt
}

// StaticProvider resolves identities from configuration. Admin logins
// must present the configured email and password; student logins are
// caller-asserted, as in the original mock backend.
type StaticProvider struct {
	config StaticProviderConfig
}

// NewStaticProvider creates the config-backed provider.
func NewStaticProvider(config StaticProviderConfig) *StaticProvider {
	return &StaticProvider{config: config}
}

// Verify resolves the identity for the requested role.
func (p *StaticProvider) Verify(_ context.Context, role models.RoleType, creds Credentials) (*Identity, error) {
	switch role {
	case models.RoleAdmin:
		if !strings.EqualFold(creds.Email, p.config.AdminEmail) {
			return nil, apperrors.ErrInvalidCredentials
		}
		if p.config.AdminPasswordHash == "" {
			// No hash configured: accept any password, stub behaviour
			break
		}
		if err := bcrypt.CompareHashAndPassword([]byte(p.config.AdminPasswordHash), []byte(creds.Password)); err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
	case models.RoleStudent:
		// Role is caller-asserted for students; nothing to check
	default:
		return nil, apperrors.ErrInvalidCredentials
	}

	identity := &Identity{Role: role}
	if role == models.RoleAdmin {
		identity.Name = p.config.AdminName
		identity.Email = p.config.AdminEmail
		return identity, nil
	}

	identity.Name = creds.Name
	if identity.Name == "" {
		identity.Name = "Student User"
	}
	identity.Email = creds.Email
	if identity.Email == "" {
		identity.Email = "student@studyhub.local"
	}
	return identity, nil
}
