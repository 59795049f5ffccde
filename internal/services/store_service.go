package services

import (
	"context"
	"errors"

	"storeadmin/internal/common"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"

	"github.com/google/uuid"
)

// StoreService manages the tenant root. A store row carries the payment key, so every
// read is owner-only.
type StoreService interface {
	Create(ctx context.Context, userID string, input *models.StoreInput) (*models.Store, error)
	Get(ctx context.Context, userID, storeID string) (*models.Store, error)
	List(ctx context.Context, userID string) ([]*models.Store, error)
	Update(ctx context.Context, userID, storeID string, input *models.StoreInput) (*models.Store, error)
	Delete(ctx context.Context, userID, storeID string) (int64, error)
}

type storeService struct {
	catalog
	storeRepo repositories.StoreRepository
}

func NewStoreService(storeRepo repositories.StoreRepository, deps CatalogDeps) StoreService {
	return &storeService{catalog: newCatalog(deps), storeRepo: storeRepo}
}

// storeAuditValues leaves the payment key out of the audit trail.
func storeAuditValues(store *models.Store) map[string]string {
	return map[string]string{
		"name":             store.Name,
		"frontEndStoreUrl": store.FrontEndStoreURL,
	}
}

func (s *storeService) Create(ctx context.Context, userID string, input *models.StoreInput) (*models.Store, error) {
	if userID == "" {
		return nil, common.ErrUnauthenticated
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}

	store := &models.Store{
		ID:               uuid.NewString(),
		UserID:           userID,
		Name:             input.Name,
		FrontEndStoreURL: input.FrontEndStoreURL,
		StripeKey:        input.StripeKey,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, common.Persistence("create store", err)
	}

	s.committed(ctx, store.ID, models.EntityStore, store.ID, models.ActionCreate, userID, storeAuditValues(store))
	return store, nil
}

func (s *storeService) Get(ctx context.Context, userID, storeID string) (*models.Store, error) {
	result, err := s.authorize(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	return result.Store, nil
}

func (s *storeService) List(ctx context.Context, userID string) ([]*models.Store, error) {
	if userID == "" {
		return nil, common.ErrUnauthenticated
	}
	stores, err := s.storeRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, common.Persistence("list stores", err)
	}
	return stores, nil
}

func (s *storeService) Update(ctx context.Context, userID, storeID string, input *models.StoreInput) (*models.Store, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}

	store := &models.Store{
		ID:               storeID,
		UserID:           userID,
		Name:             input.Name,
		FrontEndStoreURL: input.FrontEndStoreURL,
		StripeKey:        input.StripeKey,
	}
	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, common.Persistence("update store", err)
	}

	s.committed(ctx, storeID, models.EntityStore, storeID, models.ActionUpdate, userID, storeAuditValues(store))
	return store, nil
}

// Delete removes the store and, through the schema, its whole catalog. A store that is
// already gone reports a zero count rather than an error.
func (s *storeService) Delete(ctx context.Context, userID, storeID string) (int64, error) {
	_, err := s.authorize(ctx, userID, storeID)
	if errors.Is(err, common.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	count, err := s.storeRepo.DeleteByOwner(ctx, storeID, userID)
	if err != nil {
		return 0, common.Persistence("delete store", err)
	}
	if count > 0 {
		s.committed(ctx, storeID, models.EntityStore, storeID, models.ActionDelete, userID, nil)
	}
	return count, nil
}
