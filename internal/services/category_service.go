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

type CategoryService interface {
	Create(ctx context.Context, userID, storeID string, input *models.CategoryInput) (*models.Category, error)
	Update(ctx context.Context, userID, storeID, categoryID string, input *models.CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, userID, storeID, categoryID string) (int64, error)

	GetPublic(ctx context.Context, categoryID string) (*models.Category, error)
	GetPublicInStore(ctx context.Context, storeID, categoryID string) (*models.Category, error)
	ListPublic(ctx context.Context, storeID string) ([]*models.Category, error)
}

type categoryService struct {
	catalog
	categoryRepo  repositories.CategoryRepository
	billboardRepo repositories.BillboardRepository
	productRepo   repositories.ProductRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, billboardRepo repositories.BillboardRepository, productRepo repositories.ProductRepository, deps CatalogDeps) CategoryService {
	return &categoryService{
		catalog:       newCatalog(deps),
		categoryRepo:  categoryRepo,
		billboardRepo: billboardRepo,
		productRepo:   productRepo,
	}
}

// resolveBillboard makes sure the referenced billboard lives in the same store.
func (s *categoryService) resolveBillboard(ctx context.Context, storeID, billboardID string) (*models.Billboard, error) {
	billboard, err := s.billboardRepo.GetByStoreAndID(ctx, storeID, billboardID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.NewValidationError("billboardId", "must reference a billboard in this store")
	}
	if err != nil {
		return nil, common.Persistence("resolve billboard", err)
	}
	return billboard, nil
}

func (s *categoryService) Create(ctx context.Context, userID, storeID string, input *models.CategoryInput) (*models.Category, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}
	billboard, err := s.resolveBillboard(ctx, storeID, input.BillboardID)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:          uuid.NewString(),
		StoreID:     storeID,
		BillboardID: billboard.ID,
		Name:        input.Name,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, common.Persistence("create category", err)
	}

	s.committed(ctx, storeID, models.EntityCategory, category.ID, models.ActionCreate, userID, category)
	category.Billboard = billboard
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, userID, storeID, categoryID string, input *models.CategoryInput) (*models.Category, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}
	billboard, err := s.resolveBillboard(ctx, storeID, input.BillboardID)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:          categoryID,
		StoreID:     storeID,
		BillboardID: billboard.ID,
		Name:        input.Name,
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, common.Persistence("update category", err)
	}

	s.committed(ctx, storeID, models.EntityCategory, categoryID, models.ActionUpdate, userID, category)
	category.Billboard = billboard
	return category, nil
}

// Delete refuses while any product is filed under the category.
func (s *categoryService) Delete(ctx context.Context, userID, storeID, categoryID string) (int64, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}

	inUse, err := s.productRepo.CountByReference(ctx, storeID, repositories.ProductRefCategory, categoryID)
	if err != nil {
		return 0, common.Persistence("count category references", err)
	}
	if inUse > 0 {
		return 0, common.ErrConflict
	}

	count, err := s.categoryRepo.Delete(ctx, storeID, categoryID)
	if err != nil {
		return 0, common.Persistence("delete category", err)
	}
	if count > 0 {
		s.committed(ctx, storeID, models.EntityCategory, categoryID, models.ActionDelete, userID, nil)
	}
	return count, nil
}

func (s *categoryService) GetPublic(ctx context.Context, categoryID string) (*models.Category, error) {
	key := caching.ProjectionKey("categories", "item", categoryID)
	var cached models.Category
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, "")

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get category", err)
	}
	s.toCache(ctx, stamp, category.StoreID, key, category)
	return category, nil
}

func (s *categoryService) GetPublicInStore(ctx context.Context, storeID, categoryID string) (*models.Category, error) {
	key := caching.ProjectionKey("categories", "store-item", storeID, categoryID)
	var cached models.Category
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	category, err := s.categoryRepo.GetByStoreAndID(ctx, storeID, categoryID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get category", err)
	}
	s.toCache(ctx, stamp, storeID, key, category)
	return category, nil
}

func (s *categoryService) ListPublic(ctx context.Context, storeID string) ([]*models.Category, error) {
	key := caching.ProjectionKey("categories", "list", storeID)
	var cached []*models.Category
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	categories, err := s.categoryRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, common.Persistence("list categories", err)
	}
	s.toCache(ctx, stamp, storeID, key, categories)
	return categories, nil
}
