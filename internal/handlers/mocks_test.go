package handlers

import (
	"context"
	"time"

	"storeadmin/internal/models"
	"storeadmin/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockBillboardService struct {
	mock.Mock
}

func (m *MockBillboardService) Create(ctx context.Context, userID, storeID string, input *models.BillboardInput) (*models.Billboard, error) {
	args := m.Called(ctx, userID, storeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Billboard), args.Error(1)
}

func (m *MockBillboardService) Update(ctx context.Context, userID, storeID, id string, input *models.BillboardInput) (*models.Billboard, error) {
	args := m.Called(ctx, userID, storeID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Billboard), args.Error(1)
}

func (m *MockBillboardService) Delete(ctx context.Context, userID, storeID, id string) (int64, error) {
	args := m.Called(ctx, userID, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillboardService) GetPublic(ctx context.Context, id string) (*models.Billboard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Billboard), args.Error(1)
}

func (m *MockBillboardService) GetPublicInStore(ctx context.Context, storeID, id string) (*models.Billboard, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Billboard), args.Error(1)
}

func (m *MockBillboardService) ListPublic(ctx context.Context, storeID string) ([]*models.Billboard, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Billboard), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, userID, storeID string, input *models.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, userID, storeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, userID, storeID, id string, input *models.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, userID, storeID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, userID, storeID, id string) (int64, error) {
	args := m.Called(ctx, userID, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryService) GetPublic(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) GetPublicInStore(ctx context.Context, storeID, id string) (*models.Category, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) ListPublic(ctx context.Context, storeID string) ([]*models.Category, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

type MockColorService struct {
	mock.Mock
}

func (m *MockColorService) Create(ctx context.Context, userID, storeID string, input *models.ColorInput) (*models.Color, error) {
	args := m.Called(ctx, userID, storeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Color), args.Error(1)
}

func (m *MockColorService) Update(ctx context.Context, userID, storeID, id string, input *models.ColorInput) (*models.Color, error) {
	args := m.Called(ctx, userID, storeID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Color), args.Error(1)
}

func (m *MockColorService) Delete(ctx context.Context, userID, storeID, id string) (int64, error) {
	args := m.Called(ctx, userID, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockColorService) GetPublic(ctx context.Context, id string) (*models.Color, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Color), args.Error(1)
}

func (m *MockColorService) GetPublicInStore(ctx context.Context, storeID, id string) (*models.Color, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Color), args.Error(1)
}

func (m *MockColorService) ListPublic(ctx context.Context, storeID string) ([]*models.Color, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Color), args.Error(1)
}

type MockSizeService struct {
	mock.Mock
}

func (m *MockSizeService) Create(ctx context.Context, userID, storeID string, input *models.SizeInput) (*models.Size, error) {
	args := m.Called(ctx, userID, storeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Size), args.Error(1)
}

func (m *MockSizeService) Update(ctx context.Context, userID, storeID, id string, input *models.SizeInput) (*models.Size, error) {
	args := m.Called(ctx, userID, storeID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Size), args.Error(1)
}

func (m *MockSizeService) Delete(ctx context.Context, userID, storeID, id string) (int64, error) {
	args := m.Called(ctx, userID, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSizeService) GetPublic(ctx context.Context, id string) (*models.Size, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Size), args.Error(1)
}

func (m *MockSizeService) GetPublicInStore(ctx context.Context, storeID, id string) (*models.Size, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Size), args.Error(1)
}

func (m *MockSizeService) ListPublic(ctx context.Context, storeID string) ([]*models.Size, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Size), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, userID, storeID string, input *models.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, userID, storeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, userID, storeID, id string, input *models.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, userID, storeID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, userID, storeID, id string) (int64, error) {
	args := m.Called(ctx, userID, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductService) GetPublic(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) GetPublicInStore(ctx context.Context, storeID, id string) (*models.Product, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) ListPublic(ctx context.Context, storeID string, filter models.ProductFilter) ([]*models.Product, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) Create(ctx context.Context, userID string, input *models.StoreInput) (*models.Store, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreService) Get(ctx context.Context, userID, storeID string) (*models.Store, error) {
	args := m.Called(ctx, userID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreService) List(ctx context.Context, userID string) ([]*models.Store, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Store), args.Error(1)
}

func (m *MockStoreService) Update(ctx context.Context, userID, storeID string, input *models.StoreInput) (*models.Store, error) {
	args := m.Called(ctx, userID, storeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreService) Delete(ctx context.Context, userID, storeID string) (int64, error) {
	args := m.Called(ctx, userID, storeID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuditLogsService struct {
	mock.Mock
}

func (m *MockAuditLogsService) Record(ctx context.Context, entry services.AuditEntry) {
	m.Called(ctx, entry)
}

func (m *MockAuditLogsService) List(ctx context.Context, userID, storeID string, filter models.AuditLogFilter) ([]*models.AuditLog, error) {
	args := m.Called(ctx, userID, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditLog), args.Error(1)
}

func (m *MockAuditLogsService) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	args := m.Called(ctx, retention)
	return args.Get(0).(int64), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, userID, storeID string) (*models.CatalogExport, error) {
	args := m.Called(ctx, userID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogExport), args.Error(1)
}
