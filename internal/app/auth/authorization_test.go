package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarshinde/studyhub/internal/app/models"
)

func TestAuthorize(t *testing.T) {
	admin := &models.Session{ID: "s1", Role: models.RoleAdmin}
	student := &models.Session{ID: "s2", Role: models.RoleStudent}

	tests := []struct {
		name         string
		session      *models.Session
		requiredRole models.RoleType
		want         bool
	}{
		{"nil session always denied", nil, "", false},
		{"nil session denied for admin route", nil, models.RoleAdmin, false},
		{"any session passes when no role required", student, "", true},
		{"admin passes admin requirement", admin, models.RoleAdmin, true},
		{"student denied admin requirement", student, models.RoleAdmin, false},
		{"admin denied student requirement", admin, models.RoleStudent, false},
		{"student passes student requirement", student, models.RoleStudent, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.session, tt.requiredRole))
		})
	}
}
