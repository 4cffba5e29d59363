package auth

import "github.com/Spencer4792/jwt-pizza-service/internal/domain"

// Principal is the resolved per-request identity view: decoded token claims
// plus the role membership predicate. A nil *Principal means anonymous.
// Principals live for one request and are never persisted.
type Principal struct {
	ID    string
	Name  string
	Email string
	Roles []domain.Role
}

// HasRole is set membership over the decoded role tags. Safe on nil.
func (p *Principal) HasRole(role domain.Role) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAnonymous reports whether no identity was resolved for the request.
func (p *Principal) IsAnonymous() bool {
	return p == nil
}

// PrincipalFromClaims builds the request principal from decoded claims.
func PrincipalFromClaims(claims *Claims) *Principal {
	return &Principal{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Roles: claims.Roles,
	}
}
