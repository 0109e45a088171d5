package auth

import "github.com/sagarshinde/studyhub/internal/app/models"

// Authorize is the single admissibility predicate for routes and
// moderation actions. No session always denies; a required role denies
// any session holding a different role; otherwise any session is allowed.
func Authorize(session *models.Session, requiredRole models.RoleType) bool {
	if session == nil {
		return false
	}
	if requiredRole != "" && session.Role != requiredRole {
		return false
	}
	return true
}
