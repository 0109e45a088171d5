package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/sagarshinde/studyhub/internal/app/auth"
	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/app/repositories"
	"github.com/sagarshinde/studyhub/internal/pkg/apperrors"
	pkgAuth "github.com/sagarshinde/studyhub/internal/pkg/auth"
	"github.com/sagarshinde/studyhub/internal/pkg/kvstore"
)

// fakeIdentityProvider is a hand-rolled IdentityProvider double.
type fakeIdentityProvider struct {
	identity *appAuth.Identity
	err      error

	gotRole  models.RoleType
	gotCreds appAuth.Credentials
}

func (f *fakeIdentityProvider) Verify(_ context.Context, role models.RoleType, creds appAuth.Credentials) (*appAuth.Identity, error) {
	f.gotRole = role
	f.gotCreds = creds
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func newAuthServiceFixture(provider *fakeIdentityProvider) (AuthService, *repositories.SessionRepository) {
	sessionRepo := repositories.NewSessionRepository(kvstore.NewMemory())
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studyhub.test",
	})
	return NewAuthService(sessionRepo, provider, jwtService), sessionRepo
}

func TestLoginPersistsSessionAndIssuesToken(t *testing.T) {
	provider := &fakeIdentityProvider{identity: &appAuth.Identity{
		Name:  "Sagar Shinde",
		Email: "admin@studyhub.local",
		Role:  models.RoleAdmin,
	}}
	svc, sessionRepo := newAuthServiceFixture(provider)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{
		Role:     "ADMIN",
		Email:    "admin@studyhub.local",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Session.ID)
	assert.Equal(t, models.RoleAdmin, resp.Session.Role)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 3600, resp.ExpiresIn)

	stored, err := sessionRepo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, resp.Session.ID, stored.ID)
}

func TestLoginNormalizesLowercaseRole(t *testing.T) {
	provider := &fakeIdentityProvider{identity: &appAuth.Identity{Role: models.RoleStudent}}
	svc, _ := newAuthServiceFixture(provider)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Role: "student"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, provider.gotRole)
}

func TestLoginRejectedCredentials(t *testing.T) {
	provider := &fakeIdentityProvider{err: apperrors.ErrInvalidCredentials}
	svc, sessionRepo := newAuthServiceFixture(provider)
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginRequest{Role: "ADMIN", Password: "wrong"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// No session appears on a failed login
	_, err = sessionRepo.Current(ctx)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	provider := &fakeIdentityProvider{identity: &appAuth.Identity{Role: models.RoleStudent}}
	svc, sessionRepo := newAuthServiceFixture(provider)
	ctx := context.Background()

	first, err := svc.Login(ctx, &dto.LoginRequest{Role: "STUDENT"})
	require.NoError(t, err)

	second, err := svc.Login(ctx, &dto.LoginRequest{Role: "STUDENT"})
	require.NoError(t, err)
	require.NotEqual(t, first.Session.ID, second.Session.ID)

	stored, err := sessionRepo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Session.ID, stored.ID)
}

func TestLogoutClearsSession(t *testing.T) {
	provider := &fakeIdentityProvider{identity: &appAuth.Identity{Role: models.RoleStudent}}
	svc, _ := newAuthServiceFixture(provider)
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginRequest{Role: "STUDENT"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	// Logging out twice is fine
	assert.NoError(t, svc.Logout(ctx))
}

func TestLoginTokenRoundTrip(t *testing.T) {
	provider := &fakeIdentityProvider{identity: &appAuth.Identity{
		Name:  "Student User",
		Email: "student@studyhub.local",
		Role:  models.RoleStudent,
	}}
	svc, _ := newAuthServiceFixture(provider)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Role: "STUDENT"})
	require.NoError(t, err)

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studyhub.test",
	})
	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)

	session := claims.Session()
	assert.Equal(t, resp.Session.ID, session.ID)
	assert.Equal(t, models.RoleStudent, session.Role)
	assert.Equal(t, "Student User", session.Name)
}
