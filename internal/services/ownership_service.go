package services

import (
	"context"
	"errors"

	"storeadmin/internal/common"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
)

type OwnershipStatus int

const (
	OwnershipAuthorized OwnershipStatus = iota
	OwnershipUnauthenticated
	OwnershipNotOwner
	OwnershipNotFound
)

func (s OwnershipStatus) String() string {
	switch s {
	case OwnershipAuthorized:
		return "authorized"
	case OwnershipUnauthenticated:
		return "unauthenticated"
	case OwnershipNotOwner:
		return "not_owner"
	case OwnershipNotFound:
		return "not_found"
	}
	return "unknown"
}

// OwnershipResult is the outcome of checking a caller against a store. Store is set
// only when the caller is authorized.
type OwnershipResult struct {
	Status OwnershipStatus
	Store  *models.Store
}

func (r OwnershipResult) Authorized() bool {
	return r.Status == OwnershipAuthorized
}

// Err maps a denial onto the error taxonomy; nil when authorized.
func (r OwnershipResult) Err() error {
	switch r.Status {
	case OwnershipAuthorized:
		return nil
	case OwnershipUnauthenticated:
		return common.ErrUnauthenticated
	case OwnershipNotFound:
		return common.ErrNotFound
	default:
		return common.ErrForbidden
	}
}

// OwnershipService answers "does this caller own this store". It is read-only and
// never cached, so every mutation sees the current owner.
type OwnershipService interface {
	Resolve(ctx context.Context, userID, storeID string) (OwnershipResult, error)
}

type ownershipService struct {
	storeRepo repositories.StoreRepository
}

func NewOwnershipService(storeRepo repositories.StoreRepository) OwnershipService {
	return &ownershipService{storeRepo: storeRepo}
}

func (s *ownershipService) Resolve(ctx context.Context, userID, storeID string) (OwnershipResult, error) {
	if userID == "" {
		return OwnershipResult{Status: OwnershipUnauthenticated}, nil
	}
	if storeID == "" {
		return OwnershipResult{Status: OwnershipNotFound}, nil
	}

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if errors.Is(err, common.ErrNotFound) {
		return OwnershipResult{Status: OwnershipNotFound}, nil
	}
	if err != nil {
		return OwnershipResult{}, common.Persistence("resolve store ownership", err)
	}
	if store.UserID != userID {
		return OwnershipResult{Status: OwnershipNotOwner}, nil
	}
	return OwnershipResult{Status: OwnershipAuthorized, Store: store}, nil
}
