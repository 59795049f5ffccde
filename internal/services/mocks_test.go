package services

import (
	"context"
	"sync"
	"time"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"

	"github.com/stretchr/testify/mock"
)

type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(ctx context.Context, store *models.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Store, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Store), args.Error(1)
}

func (m *MockStoreRepository) Update(ctx context.Context, store *models.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) DeleteByOwner(ctx context.Context, id, userID string) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBillboardRepository struct {
	mock.Mock
}

func (m *MockBillboardRepository) Create(ctx context.Context, billboard *models.Billboard) error {
	args := m.Called(ctx, billboard)
	return args.Error(0)
}

func (m *MockBillboardRepository) GetByID(ctx context.Context, id string) (*models.Billboard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Billboard), args.Error(1)
}

func (m *MockBillboardRepository) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Billboard, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Billboard), args.Error(1)
}

func (m *MockBillboardRepository) ListByStore(ctx context.Context, storeID string) ([]*models.Billboard, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Billboard), args.Error(1)
}

func (m *MockBillboardRepository) Update(ctx context.Context, billboard *models.Billboard) error {
	args := m.Called(ctx, billboard)
	return args.Error(0)
}

func (m *MockBillboardRepository) Delete(ctx context.Context, storeID, id string) (int64, error) {
	args := m.Called(ctx, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Category, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByStore(ctx context.Context, storeID string) ([]*models.Category, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, storeID, id string) (int64, error) {
	args := m.Called(ctx, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) CountByBillboard(ctx context.Context, storeID, billboardID string) (int, error) {
	args := m.Called(ctx, storeID, billboardID)
	return args.Int(0), args.Error(1)
}

type MockColorRepository struct {
	mock.Mock
}

func (m *MockColorRepository) Create(ctx context.Context, color *models.Color) error {
	args := m.Called(ctx, color)
	return args.Error(0)
}

func (m *MockColorRepository) GetByID(ctx context.Context, id string) (*models.Color, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Color), args.Error(1)
}

func (m *MockColorRepository) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Color, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Color), args.Error(1)
}

func (m *MockColorRepository) ListByStore(ctx context.Context, storeID string) ([]*models.Color, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Color), args.Error(1)
}

func (m *MockColorRepository) Update(ctx context.Context, color *models.Color) error {
	args := m.Called(ctx, color)
	return args.Error(0)
}

func (m *MockColorRepository) Delete(ctx context.Context, storeID, id string) (int64, error) {
	args := m.Called(ctx, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockSizeRepository struct {
	mock.Mock
}

func (m *MockSizeRepository) Create(ctx context.Context, size *models.Size) error {
	args := m.Called(ctx, size)
	return args.Error(0)
}

func (m *MockSizeRepository) GetByID(ctx context.Context, id string) (*models.Size, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Size), args.Error(1)
}

func (m *MockSizeRepository) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Size, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Size), args.Error(1)
}

func (m *MockSizeRepository) ListByStore(ctx context.Context, storeID string) ([]*models.Size, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Size), args.Error(1)
}

func (m *MockSizeRepository) Update(ctx context.Context, size *models.Size) error {
	args := m.Called(ctx, size)
	return args.Error(0)
}

func (m *MockSizeRepository) Delete(ctx context.Context, storeID, id string) (int64, error) {
	args := m.Called(ctx, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Product, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, storeID string, filter models.ProductFilter) ([]*models.Product, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, storeID, id string) (int64, error) {
	args := m.Called(ctx, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByReference(ctx context.Context, storeID string, ref repositories.ProductReference, refID string) (int, error) {
	args := m.Called(ctx, storeID, ref, refID)
	return args.Int(0), args.Error(1)
}

type MockAuditLogsRepository struct {
	mock.Mock
}

func (m *MockAuditLogsRepository) Create(ctx context.Context, auditLog *models.AuditLog) error {
	args := m.Called(ctx, auditLog)
	return args.Error(0)
}

func (m *MockAuditLogsRepository) ListByStore(ctx context.Context, storeID string, filter models.AuditLogFilter) ([]*models.AuditLog, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditLog), args.Error(1)
}

func (m *MockAuditLogsRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockMinioService struct {
	mock.Mock
}

func (m *MockMinioService) PutJSON(ctx context.Context, bucketName, objectName string, data []byte) error {
	args := m.Called(ctx, bucketName, objectName, data)
	return args.Error(0)
}

func (m *MockMinioService) GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockMinioService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func (m *MockMinioService) Ping(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

// recordingAudit captures audit entries in memory.
type recordingAudit struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func (r *recordingAudit) Record(_ context.Context, entry AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) List(context.Context, string, string, models.AuditLogFilter) ([]*models.AuditLog, error) {
	return nil, nil
}

func (r *recordingAudit) PurgeExpired(context.Context, time.Duration) (int64, error) {
	return 0, nil
}

func (r *recordingAudit) recorded() []AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]AuditEntry(nil), r.entries...)
}
