package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/config"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
	"github.com/Spencer4792/jwt-pizza-service/internal/events"
	"github.com/Spencer4792/jwt-pizza-service/internal/repository"
	apperrors "github.com/Spencer4792/jwt-pizza-service/pkg/util"
)

// CredentialService coordinates registration, login, logout and credential
// updates. It is the sole writer of the session store and of user records.
type CredentialService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	codec      *auth.TokenCodec
	dispatcher events.Dispatcher
	bcryptCost int
}

// CredentialDependencies encapsulates repo requirements for the service.
type CredentialDependencies struct {
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Dispatcher  events.Dispatcher
}

// NewCredentialService builds the service.
func NewCredentialService(cfg config.Config, deps CredentialDependencies) *CredentialService {
	return &CredentialService{
		users:      deps.UserRepo,
		sessions:   deps.SessionRepo,
		codec:      auth.NewTokenCodec(cfg.Auth.JWTSecret),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new user with the default diner role and opens a
// session for it.
func (s *CredentialService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", apperrors.NewValidationError("name, email, and password are required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Roles:        []domain.Role{domain.RoleDiner},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, nil)
	return user, token, nil
}

// Login verifies the credential and opens a new session. An existing active
// session for the same user is untouched; concurrent sessions are supported.
func (s *CredentialService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.NewUnauthorized("unknown user")
		}
		return nil, "", err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", apperrors.NewUnauthorized("unknown user")
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	s.publish(ctx, events.EventUserLoggedIn, user.ID, nil)
	return user, token, nil
}

// Logout deactivates the presented token. Repeating a logout is not an
// error; the call succeeds even if the token was already inactive.
func (s *CredentialService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Deactivate(ctx, token); err != nil {
		return err
	}
	s.publish(ctx, events.EventUserLoggedOut, "", nil)
	return nil
}

// Update mutates a user's email and/or password. Only the user itself or an
// admin may do this. Existing sessions stay active: a password change does
// not force logout.
func (s *CredentialService) Update(ctx context.Context, requester *auth.Principal, targetID, newEmail, newPassword string) (*domain.User, error) {
	if err := auth.RequireSelfOrRole(requester, targetID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if newEmail == "" && newPassword == "" {
		return nil, apperrors.NewValidationError("email or password required", nil)
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	if newEmail != "" {
		user.Email = newEmail
	}
	if newPassword != "" {
		hash, err := auth.HashPassword(newPassword, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TokenCodec exposes the codec for the identity resolver middleware.
func (s *CredentialService) TokenCodec() *auth.TokenCodec {
	return s.codec
}

func (s *CredentialService) openSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.codec.Encode(user)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Activate(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *CredentialService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
