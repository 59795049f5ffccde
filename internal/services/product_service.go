package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"storeadmin/internal/caching"
	"storeadmin/internal/common"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"

	"github.com/google/uuid"
)

type ProductService interface {
	Create(ctx context.Context, userID, storeID string, input *models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, userID, storeID, productID string, input *models.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, userID, storeID, productID string) (int64, error)

	GetPublic(ctx context.Context, productID string) (*models.Product, error)
	GetPublicInStore(ctx context.Context, storeID, productID string) (*models.Product, error)
	// ListPublic never includes archived products.
	ListPublic(ctx context.Context, storeID string, filter models.ProductFilter) ([]*models.Product, error)
}

type productService struct {
	catalog
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	colorRepo    repositories.ColorRepository
	sizeRepo     repositories.SizeRepository
}

func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, colorRepo repositories.ColorRepository, sizeRepo repositories.SizeRepository, deps CatalogDeps) ProductService {
	return &productService{
		catalog:      newCatalog(deps),
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		colorRepo:    colorRepo,
		sizeRepo:     sizeRepo,
	}
}

// checkReferences confirms category, color and size all belong to the store. Every
// dangling reference is reported in one ValidationError.
func (s *productService) checkReferences(ctx context.Context, storeID string, input *models.ProductInput) error {
	verr := &common.ValidationError{Fields: map[string]string{}}

	check := func(field, kind string, err error) error {
		if errors.Is(err, common.ErrNotFound) {
			verr.Fields[field] = "must reference a " + kind + " in this store"
			return nil
		}
		if err != nil {
			return common.Persistence("resolve "+kind, err)
		}
		return nil
	}

	_, err := s.categoryRepo.GetByStoreAndID(ctx, storeID, input.CategoryID)
	if err := check("categoryId", "category", err); err != nil {
		return err
	}
	_, err = s.colorRepo.GetByStoreAndID(ctx, storeID, input.ColorID)
	if err := check("colorId", "color", err); err != nil {
		return err
	}
	_, err = s.sizeRepo.GetByStoreAndID(ctx, storeID, input.SizeID)
	if err := check("sizeId", "size", err); err != nil {
		return err
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func productFromInput(id, storeID string, input *models.ProductInput) *models.Product {
	product := &models.Product{
		ID:         id,
		StoreID:    storeID,
		CategoryID: input.CategoryID,
		ColorID:    input.ColorID,
		SizeID:     input.SizeID,
		Name:       input.Name,
		Price:      *input.Price,
		IsFeatured: input.IsFeatured,
		IsArchived: input.IsArchived,
		Images:     make([]*models.ProductImage, 0, len(input.Images)),
	}
	for _, image := range input.Images {
		product.Images = append(product.Images, &models.ProductImage{
			ID:        uuid.NewString(),
			ProductID: id,
			URL:       image.URL,
		})
	}
	return product
}

func (s *productService) Create(ctx context.Context, userID, storeID string, input *models.ProductInput) (*models.Product, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, storeID, input); err != nil {
		return nil, err
	}

	product := productFromInput(uuid.NewString(), storeID, input)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, common.Persistence("create product", err)
	}

	s.committed(ctx, storeID, models.EntityProduct, product.ID, models.ActionCreate, userID, product)
	return product, nil
}

// Update replaces the product's fields and its entire image set in one transaction.
func (s *productService) Update(ctx context.Context, userID, storeID, productID string, input *models.ProductInput) (*models.Product, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.Validator.Validate(input); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, storeID, input); err != nil {
		return nil, err
	}

	product := productFromInput(productID, storeID, input)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, common.Persistence("update product", err)
	}

	s.committed(ctx, storeID, models.EntityProduct, productID, models.ActionUpdate, userID, product)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, userID, storeID, productID string) (int64, error) {
	if _, err := s.authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}

	count, err := s.productRepo.Delete(ctx, storeID, productID)
	if err != nil {
		return 0, common.Persistence("delete product", err)
	}
	if count > 0 {
		s.committed(ctx, storeID, models.EntityProduct, productID, models.ActionDelete, userID, nil)
	}
	return count, nil
}

func (s *productService) GetPublic(ctx context.Context, productID string) (*models.Product, error) {
	key := caching.ProjectionKey("products", "item", productID)
	var cached models.Product
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, "")

	product, err := s.productRepo.GetByID(ctx, productID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get product", err)
	}
	s.toCache(ctx, stamp, product.StoreID, key, product)
	return product, nil
}

func (s *productService) GetPublicInStore(ctx context.Context, storeID, productID string) (*models.Product, error) {
	key := caching.ProjectionKey("products", "store-item", storeID, productID)
	var cached models.Product
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	product, err := s.productRepo.GetByStoreAndID(ctx, storeID, productID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.Persistence("get product", err)
	}
	s.toCache(ctx, stamp, storeID, key, product)
	return product, nil
}

func (s *productService) ListPublic(ctx context.Context, storeID string, filter models.ProductFilter) ([]*models.Product, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, common.NewValidationError("limit", "limit and offset cannot be negative")
	}
	filter.IncludeArchived = false

	key := caching.ProjectionKey("products", "list", storeID, productFilterKey(filter))
	var cached []*models.Product
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}
	stamp := s.stamp(ctx, storeID)

	products, err := s.productRepo.List(ctx, storeID, filter)
	if err != nil {
		return nil, common.Persistence("list products", err)
	}
	s.toCache(ctx, stamp, storeID, key, products)
	return products, nil
}

func productFilterKey(filter models.ProductFilter) string {
	featured := "any"
	if filter.IsFeatured != nil {
		featured = strconv.FormatBool(*filter.IsFeatured)
	}
	return fmt.Sprintf("c=%s,co=%s,s=%s,f=%s,l=%d,o=%d",
		filter.CategoryID, filter.ColorID, filter.SizeID, featured, filter.Limit, filter.Offset)
}
