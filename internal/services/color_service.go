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

type ColorService interface {
	Create(ctx context.Context, userID, storeID string, input *models.ColorInput) (*models.Color, error)
	Update(ctx context.Context, userID, storeID, colorID string, input *models.ColorInput) (*models.Color, error)
	Delete(ctx context.Context, userID, storeID, colorID string) (int64, error)

	GetPublic(ctx context.Context, colorID string) (*models.Color, error)
	GetPublicInStore(ctx context.Context, storeID, colorID string) (*models.Color, error)
	ListPublic(ctx context.Context, storeID string) ([]*models.Color, error)
}

type colorService struct {
	catalog
	colorRepo   repositories.ColorRepository
	productRepo repositories.ProductRepository
}

func NewColorService(colorRepo repositories.ColorRepository, productRepo repositories.ProductRepository, deps CatalogDeps) ColorService {
	return &colorService{
		catalog:     newCatalog(deps),
		colorRepo:   colorRepo,
		productRepo: productRepo,
	}
}

func (s *colorService) Create(ctx context.Context, userID, storeID string, input *models.ColorInput) (*models.Color, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}

	color := &models.Color{
		ID:      uuid.NewString(),
		StoreID: storeID,
		Name:    input.Name,
		Value:   input.Value,
	}
	if err := s.colorRepo.Create(ctx, color); err != nil {
		return nil, common.Persistence("create color", err)
	}

	s.committed(ctx, storeID, models.EntityColor, color.ID, models.ActionCreate, userID, color)
	return color, nil
}

func (s *colorService) Update(ctx context.Context, userID, storeID, colorID string, input *models.ColorInput) (*models.Color, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}

	color := &models.Color{
		ID:      colorID,
		StoreID: storeID,
		Name:    input.Name,
		Value:   input.Value,
	}
	if err := s.colorRepo.Update(ctx, color); err != nil {
		return nil, common.Persistence("update color", err)
	}

	s.committed(ctx, storeID, models.EntityColor, colorID, models.ActionUpdate, userID, color)
	return color, nil
}

func (s *colorService) Delete(ctx context.Context, userID, storeID, colorID string) (int64, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}

	inUse, err := s.productRepo.CountByReference(ctx, storeID, repositories.ProductRefColor, colorID)
	if err != nil {
		return 0, common.Persistence("count color references", err)
	}
	if inUse > 0 {
		return 0, common.ErrConflict
	}

	count, err := s.colorRepo.Delete(ctx, storeID, colorID)
	if err != nil {
		return 0, common.Persistence("delete color", err)
	}
	if count > 0 {
		s.committed(ctx, storeID, models.EntityColor, colorID, models.ActionDelete, userID, nil)
	}
	return count, nil
}

func (s *colorService) GetPublic(ctx context.Context, colorID string) (*models.Color, error) {
	key := caching.ProjectionKey("colors", "item", colorID)
	var cached models.Color
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, "")

	color, err := s.colorRepo.GetByID(ctx, colorID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get color", err)
	}
	s.toCache(ctx, stamp, color.StoreID, key, color)
	return color, nil
}

func (s *colorService) GetPublicInStore(ctx context.Context, storeID, colorID string) (*models.Color, error) {
	key := caching.ProjectionKey("colors", "store-item", storeID, colorID)
	var cached models.Color
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	color, err := s.colorRepo.GetByStoreAndID(ctx, storeID, colorID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get color", err)
	}
	s.toCache(ctx, stamp, storeID, key, color)
	return color, nil
}

func (s *colorService) ListPublic(ctx context.Context, storeID string) ([]*models.Color, error) {
	key := caching.ProjectionKey("colors", "list", storeID)
	var cached []*models.Color
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	colors, err := s.colorRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, common.Persistence("list colors", err)
	}
	s.toCache(ctx, stamp, storeID, key, colors)
	return colors, nil
}
