package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appAuth "github.com/sagarshinde/studyhub/internal/app/auth"
	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/app/repositories"
	"github.com/sagarshinde/studyhub/internal/pkg/auth"
)

// SessionContextKey is the gin context key the middleware stores the
// resolved session under.
const SessionContextKey = "session"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	sessionRepo *repositories.SessionRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, sessionRepo *repositories.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, sessionRepo: sessionRepo}
}

// JWTAuth validates the bearer token, confirms the session it carries is
// still the active one, and stores it in the request context. A token
// issued before logout fails the session check and is denied.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{Error: errorDetail})
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{Error: errorDetail})
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{Error: errorDetail})
			return
		}

		// Logout destroys the persisted session, so a stale token must
		// not pass on its claims alone.
		current, err := m.sessionRepo.Current(c.Request.Context())
		if err != nil || current.ID != claims.SessionID {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Session is no longer active")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{Error: errorDetail})
			return
		}

		c.Set(SessionContextKey, claims.Session())
		c.Next()
	}
}

// RoleRequired denies callers whose session does not pass the
// admissibility predicate for the required role. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if session == nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{Error: errorDetail})
			return
		}

		if !appAuth.Authorize(session, requiredRole) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.APIResponse{Error: errorDetail})
			return
		}

		c.Next()
	}
}

// SessionFromContext returns the session stored by JWTAuth, or nil.
func SessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
