package domain

import "time"

// FranchiseAdmin is the reduced user view attached to a franchise.
type FranchiseAdmin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Franchise groups stores under a set of franchisee administrators.
type Franchise struct {
	ID        string
	Name      string
	Admins    []FranchiseAdmin
	Stores    []Store
	CreatedAt time.Time
}

// IsAdmin reports whether the given user id administers this franchise.
func (f *Franchise) IsAdmin(userID string) bool {
	for _, a := range f.Admins {
		if a.ID == userID {
			return true
		}
	}
	return false
}

// Store is a single location belonging to a franchise.
type Store struct {
	ID           string
	FranchiseID  string
	Name         string
	TotalRevenue float64
	CreatedAt    time.Time
}
