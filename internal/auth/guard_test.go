package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
	apperrors "github.com/Spencer4792/jwt-pizza-service/pkg/util"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).HTTPStatus
}

func TestRequireAuthenticated(t *testing.T) {
	assert.NoError(t, auth.RequireAuthenticated(&auth.Principal{ID: "u1"}))

	err := auth.RequireAuthenticated(nil)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestRequireRole(t *testing.T) {
	admin := &auth.Principal{ID: "u1", Roles: []domain.Role{domain.RoleAdmin}}
	diner := &auth.Principal{ID: "u2", Roles: []domain.Role{domain.RoleDiner}}

	assert.NoError(t, auth.RequireRole(admin, domain.RoleAdmin))

	err := auth.RequireRole(diner, domain.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	// Anonymous callers fail authentication before the role check.
	err = auth.RequireRole(nil, domain.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestRequireSelfOrRole(t *testing.T) {
	// Exhaustive over the self × role truth table.
	tests := []struct {
		name    string
		id      string
		roles   []domain.Role
		target  string
		allowed bool
	}{
		{"self with role", "u1", []domain.Role{domain.RoleAdmin}, "u1", true},
		{"self without role", "u1", []domain.Role{domain.RoleDiner}, "u1", true},
		{"other with role", "u1", []domain.Role{domain.RoleAdmin}, "u2", true},
		{"other without role", "u1", []domain.Role{domain.RoleDiner}, "u2", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &auth.Principal{ID: tc.id, Roles: tc.roles}
			err := auth.RequireSelfOrRole(p, tc.target, domain.RoleAdmin)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, http.StatusForbidden, statusOf(t, err))
			}
		})
	}

	err := auth.RequireSelfOrRole(nil, "u1", domain.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestPrincipalHasRoleOnNil(t *testing.T) {
	var p *auth.Principal
	assert.False(t, p.HasRole(domain.RoleAdmin))
	assert.True(t, p.IsAnonymous())
}
