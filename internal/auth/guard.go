package auth

import (
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
	apperrors "github.com/Spencer4792/jwt-pizza-service/pkg/util"
)

// Guard decisions are pure: they inspect the principal and return either
// nil or a taxonomy error. Callers translate the error kind into a status.

// RequireAuthenticated fails with Unauthorized if the principal is anonymous.
func RequireAuthenticated(p *Principal) error {
	if p.IsAnonymous() {
		return apperrors.NewUnauthorized("unauthorized")
	}
	return nil
}

// RequireRole fails with Forbidden if the principal lacks the role.
// Anonymous callers fail with Unauthorized first.
func RequireRole(p *Principal, role domain.Role) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if !p.HasRole(role) {
		return apperrors.NewForbidden("insufficient role")
	}
	return nil
}

// RequireSelfOrRole succeeds when the principal is the target identity or
// holds the role. Used for "update my own profile, or an admin may update
// anyone's."
func RequireSelfOrRole(p *Principal, targetID string, role domain.Role) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if p.ID == targetID || p.HasRole(role) {
		return nil
	}
	return apperrors.NewForbidden("unauthorized to act on this user")
}
