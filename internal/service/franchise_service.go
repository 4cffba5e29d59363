package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
	"github.com/Spencer4792/jwt-pizza-service/internal/repository"
	apperrors "github.com/Spencer4792/jwt-pizza-service/pkg/util"
)

// FranchiseService manages franchises and their stores.
type FranchiseService struct {
	franchises repository.FranchiseRepository
	users      repository.UserRepository
}

// NewFranchiseService builds the service.
func NewFranchiseService(franchises repository.FranchiseRepository, users repository.UserRepository) *FranchiseService {
	return &FranchiseService{franchises: franchises, users: users}
}

// List returns all franchises. Non-admin callers get the public view with
// admin contact details stripped.
func (s *FranchiseService) List(ctx context.Context, principal *auth.Principal) ([]domain.Franchise, error) {
	franchises, err := s.franchises.List(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.HasRole(domain.RoleAdmin) {
		for i := range franchises {
			franchises[i].Admins = nil
		}
	}
	return franchises, nil
}

// ListForUser returns the franchises a user administers. Only the user
// itself or an admin may look.
func (s *FranchiseService) ListForUser(ctx context.Context, principal *auth.Principal, userID string) ([]domain.Franchise, error) {
	if err := auth.RequireSelfOrRole(principal, userID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.franchises.ListByAdmin(ctx, userID)
}

// Create registers a franchise, resolving admin users by email. Creation
// grants each named admin the franchisee role; the role reaches their
// token at the next login.
func (s *FranchiseService) Create(ctx context.Context, name string, adminEmails []string) (*domain.Franchise, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("franchise name is required", nil)
	}

	franchise := &domain.Franchise{Name: name}
	for _, email := range adminEmails {
		user, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("user", map[string]any{"email": email})
			}
			return nil, err
		}
		franchise.Admins = append(franchise.Admins, domain.FranchiseAdmin{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
	}

	if err := s.franchises.Create(ctx, franchise); err != nil {
		return nil, err
	}
	return franchise, nil
}

// Delete removes a franchise and (by cascade) its stores.
func (s *FranchiseService) Delete(ctx context.Context, id string) error {
	if err := s.franchises.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("franchise", nil)
		}
		return err
	}
	return nil
}

// CreateStore adds a store. Allowed for admins and for the franchise's own
// franchisee admins.
func (s *FranchiseService) CreateStore(ctx context.Context, principal *auth.Principal, franchiseID, name string) (*domain.Store, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("store name is required", nil)
	}

	franchise, err := s.requireFranchiseAccess(ctx, principal, franchiseID)
	if err != nil {
		return nil, err
	}

	store := &domain.Store{FranchiseID: franchise.ID, Name: name}
	if err := s.franchises.CreateStore(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// DeleteStore removes a store under the same access rule as CreateStore.
func (s *FranchiseService) DeleteStore(ctx context.Context, principal *auth.Principal, franchiseID, storeID string) error {
	if _, err := s.requireFranchiseAccess(ctx, principal, franchiseID); err != nil {
		return err
	}

	if err := s.franchises.DeleteStore(ctx, franchiseID, storeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("store", nil)
		}
		return err
	}
	return nil
}

func (s *FranchiseService) requireFranchiseAccess(ctx context.Context, principal *auth.Principal, franchiseID string) (*domain.Franchise, error) {
	if err := auth.RequireAuthenticated(principal); err != nil {
		return nil, err
	}

	franchise, err := s.franchises.GetByID(ctx, franchiseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("franchise", nil)
		}
		return nil, err
	}

	if principal.HasRole(domain.RoleAdmin) {
		return franchise, nil
	}
	if principal.HasRole(domain.RoleFranchisee) && franchise.IsAdmin(principal.ID) {
		return franchise, nil
	}
	return nil, apperrors.NewForbidden("unable to manage this franchise")
}
