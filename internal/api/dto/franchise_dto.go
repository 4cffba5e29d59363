package dto

import "github.com/Spencer4792/jwt-pizza-service/internal/domain"

// CreateFranchiseRequest payload for registering a franchise.
type CreateFranchiseRequest struct {
	Name   string   `json:"name"`
	Admins []string `json:"admins"`
}

// CreateStoreRequest payload for adding a store.
type CreateStoreRequest struct {
	Name string `json:"name"`
}

// StoreResponse is one store view.
type StoreResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// FranchiseResponse is the franchise view; Admins is omitted for callers
// without the admin role.
type FranchiseResponse struct {
	ID     string                  `json:"id"`
	Name   string                  `json:"name"`
	Admins []domain.FranchiseAdmin `json:"admins,omitempty"`
	Stores []StoreResponse         `json:"stores"`
}

// NewFranchiseResponse converts a domain franchise.
func NewFranchiseResponse(franchise *domain.Franchise) FranchiseResponse {
	stores := make([]StoreResponse, 0, len(franchise.Stores))
	for _, store := range franchise.Stores {
		stores = append(stores, StoreResponse{
			ID:           store.ID,
			Name:         store.Name,
			TotalRevenue: store.TotalRevenue,
		})
	}
	return FranchiseResponse{
		ID:     franchise.ID,
		Name:   franchise.Name,
		Admins: franchise.Admins,
		Stores: stores,
	}
}

// NewFranchiseListResponse converts a list of franchises.
func NewFranchiseListResponse(franchises []domain.Franchise) []FranchiseResponse {
	out := make([]FranchiseResponse, 0, len(franchises))
	for i := range franchises {
		out = append(out, NewFranchiseResponse(&franchises[i]))
	}
	return out
}
