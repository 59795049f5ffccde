package services

import (
	"context"
	"errors"

	"storeadmin/internal/caching"
	"storeadmin/internal/common"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"

	"github.com/google/uuid"
)

type SizeService interface {
	Create(ctx context.Context, userID, storeID string, input *models.SizeInput) (*models.Size, error)
	Update(ctx context.Context, userID, storeID, sizeID string, input *models.SizeInput) (*models.Size, error)
	Delete(ctx context.Context, userID, storeID, sizeID string) (int64, error)

	GetPublic(ctx context.Context, sizeID string) (*models.Size, error)
	GetPublicInStore(ctx context.Context, storeID, sizeID string) (*models.Size, error)
	ListPublic(ctx context.Context, storeID string) ([]*models.Size, error)
}

type sizeService struct {
	catalog
	sizeRepo    repositories.SizeRepository
	productRepo repositories.ProductRepository
}

func NewSizeService(sizeRepo repositories.SizeRepository, productRepo repositories.ProductRepository, deps CatalogDeps) SizeService {
	return &sizeService{
		catalog:     newCatalog(deps),
		sizeRepo:    sizeRepo,
		productRepo: productRepo,
	}
}

func (s *sizeService) Create(ctx context.Context, userID, storeID string, input *models.SizeInput) (*models.Size, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}

	size := &models.Size{
		ID:      uuid.NewString(),
		StoreID: storeID,
		Name:    input.Name,
		Value:   input.Value,
	}
	if err := s.sizeRepo.Create(ctx, size); err != nil {
		return nil, common.Persistence("create size", err)
	}

	s.committed(ctx, storeID, models.EntitySize, size.ID, models.ActionCreate, userID, size)
	return size, nil
}

func (s *sizeService) Update(ctx context.Context, userID, storeID, sizeID string, input *models.SizeInput) (*models.Size, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}

	size := &models.Size{
		ID:      sizeID,
		StoreID: storeID,
		Name:    input.Name,
		Value:   input.Value,
	}
	if err := s.sizeRepo.Update(ctx, size); err != nil {
		return nil, common.Persistence("update size", err)
	}

	s.committed(ctx, storeID, models.EntitySize, sizeID, models.ActionUpdate, userID, size)
	return size, nil
}

func (s *sizeService) Delete(ctx context.Context, userID, storeID, sizeID string) (int64, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}

	inUse, err := s.productRepo.CountByReference(ctx, storeID, repositories.ProductRefSize, sizeID)
	if err != nil {
		return 0, common.Persistence("count size references", err)
	}
	if inUse > 0 {
		return 0, common.ErrConflict
	}

	count, err := s.sizeRepo.Delete(ctx, storeID, sizeID)
	if err != nil {
		return 0, common.Persistence("delete size", err)
	}
	if count > 0 {
		s.committed(ctx, storeID, models.EntitySize, sizeID, models.ActionDelete, userID, nil)
	}
	return count, nil
}

func (s *sizeService) GetPublic(ctx context.Context, sizeID string) (*models.Size, error) {
	key := caching.ProjectionKey("sizes", "item", sizeID)
	var cached models.Size
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, "")

	size, err := s.sizeRepo.GetByID(ctx, sizeID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get size", err)
	}
	s.toCache(ctx, stamp, size.StoreID, key, size)
	return size, nil
}

func (s *sizeService) GetPublicInStore(ctx context.Context, storeID, sizeID string) (*models.Size, error) {
	key := caching.ProjectionKey("sizes", "store-item", storeID, sizeID)
	var cached models.Size
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	size, err := s.sizeRepo.GetByStoreAndID(ctx, storeID, sizeID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get size", err)
	}
	s.toCache(ctx, stamp, storeID, key, size)
	return size, nil
}

func (s *sizeService) ListPublic(ctx context.Context, storeID string) ([]*models.Size, error) {
	key := caching.ProjectionKey("sizes", "list", storeID)
	var cached []*models.Size
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	sizes, err := s.sizeRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, common.Persistence("list sizes", err)
	}
	s.toCache(ctx, stamp, storeID, key, sizes)
	return sizes, nil
}
