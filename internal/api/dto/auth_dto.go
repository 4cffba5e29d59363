package dto

import "github.com/Spencer4792/jwt-pizza-service/internal/domain"

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest payload for email/password changes.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Roles []RoleView `json:"roles"`
}

// RoleView mirrors the stored role membership shape.
type RoleView struct {
	Role domain.Role `json:"role"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewUserResponse converts the domain user.
func NewUserResponse(user *domain.User) UserResponse {
	roles := make([]RoleView, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, RoleView{Role: role})
	}
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Roles: roles,
	}
}
