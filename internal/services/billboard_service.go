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

type BillboardService interface {
	Create(ctx context.Context, userID, storeID string, input *models.BillboardInput) (*models.Billboard, error)
	Update(ctx context.Context, userID, storeID, billboardID string, input *models.BillboardInput) (*models.Billboard, error)
	Delete(ctx context.Context, userID, storeID, billboardID string) (int64, error)

	// Public reads return nil, nil when nothing matches.
	GetPublic(ctx context.Context, billboardID string) (*models.Billboard, error)
	GetPublicInStore(ctx context.Context, storeID, billboardID string) (*models.Billboard, error)
	ListPublic(ctx context.Context, storeID string) ([]*models.Billboard, error)
}

type billboardService struct {
	catalog
	billboardRepo repositories.BillboardRepository
	categoryRepo  repositories.CategoryRepository
}

func NewBillboardService(billboardRepo repositories.BillboardRepository, categoryRepo repositories.CategoryRepository, deps CatalogDeps) BillboardService {
	return &billboardService{
		catalog:       newCatalog(deps),
		billboardRepo: billboardRepo,
		categoryRepo:  categoryRepo,
	}
}

func (s *billboardService) Create(ctx context.Context, userID, storeID string, input *models.BillboardInput) (*models.Billboard, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}

	billboard := &models.Billboard{
		ID:       uuid.NewString(),
		StoreID:  storeID,
		Label:    input.Label,
		ImageURL: input.ImageURL,
	}
	if err := s.billboardRepo.Create(ctx, billboard); err != nil {
		return nil, common.Persistence("create billboard", err)
	}

	s.committed(ctx, storeID, models.EntityBillboard, billboard.ID, models.ActionCreate, userID, billboard)
	return billboard, nil
}

func (s *billboardService) Update(ctx context.Context, userID, storeID, billboardID string, input *models.BillboardInput) (*models.Billboard, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}

	billboard := &models.Billboard{
		ID:       billboardID,
		StoreID:  storeID,
		Label:    input.Label,
		ImageURL: input.ImageURL,
	}
	if err := s.billboardRepo.Update(ctx, billboard); err != nil {
		return nil, common.Persistence("update billboard", err)
	}

	s.committed(ctx, storeID, models.EntityBillboard, billboardID, models.ActionUpdate, userID, billboard)
	return billboard, nil
}

// Delete refuses while any category still points at the billboard.
func (s *billboardService) Delete(ctx context.Context, userID, storeID, billboardID string) (int64, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}

	inUse, err := s.categoryRepo.CountByBillboard(ctx, storeID, billboardID)
	if err != nil {
		return 0, common.Persistence("count billboard references", err)
	}
	if inUse > 0 {
		return 0, common.ErrConflict
	}

	count, err := s.billboardRepo.Delete(ctx, storeID, billboardID)
	if err != nil {
		return 0, common.Persistence("delete billboard", err)
	}
	if count > 0 {
		s.committed(ctx, storeID, models.EntityBillboard, billboardID, models.ActionDelete, userID, nil)
	}
	return count, nil
}

func (s *billboardService) GetPublic(ctx context.Context, billboardID string) (*models.Billboard, error) {
	key := caching.ProjectionKey("billboards", "item", billboardID)
	var cached models.Billboard
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, "")

	billboard, err := s.billboardRepo.GetByID(ctx, billboardID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get billboard", err)
	}
	s.toCache(ctx, stamp, billboard.StoreID, key, billboard)
	return billboard, nil
}

func (s *billboardService) GetPublicInStore(ctx context.Context, storeID, billboardID string) (*models.Billboard, error) {
	key := caching.ProjectionKey("billboards", "store-item", storeID, billboardID)
	var cached models.Billboard
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	billboard, err := s.billboardRepo.GetByStoreAndID(ctx, storeID, billboardID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get billboard", err)
	}
	s.toCache(ctx, stamp, storeID, key, billboard)
	return billboard, nil
}

func (s *billboardService) ListPublic(ctx context.Context, storeID string) ([]*models.Billboard, error) {
	key := caching.ProjectionKey("billboards", "list", storeID)
	var cached []*models.Billboard
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	billboards, err := s.billboardRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, common.Persistence("list billboards", err)
	}
	s.toCache(ctx, stamp, storeID, key, billboards)
	return billboards, nil
}
