package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storeadmin/internal/common"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrExportUnavailable is returned when no object store is configured.
var ErrExportUnavailable = errors.New("catalog export is not configured")

type ExportService interface {
	// Export snapshots the store's whole catalog, archived products included, and
	// uploads it as JSON. The returned URL is presigned and expires.
	Export(ctx context.Context, userID, storeID string) (*models.CatalogExport, error)
}

type ExportOptions struct {
	Bucket    string
	URLExpiry time.Duration
}

type exportService struct {
	ownership     OwnershipService
	billboardRepo repositories.BillboardRepository
	categoryRepo  repositories.CategoryRepository
	colorRepo     repositories.ColorRepository
	sizeRepo      repositories.SizeRepository
	productRepo   repositories.ProductRepository
	minio         MinioService
	audit         AuditLogsService
	opts          ExportOptions
	logger        *zap.Logger
	now           func() time.Time
}

func NewExportService(
	ownership OwnershipService,
	billboardRepo repositories.BillboardRepository,
	categoryRepo repositories.CategoryRepository,
	colorRepo repositories.ColorRepository,
	sizeRepo repositories.SizeRepository,
	productRepo repositories.ProductRepository,
	minio MinioService,
	audit AuditLogsService,
	opts ExportOptions,
	logger *zap.Logger,
) ExportService {
	if opts.URLExpiry <= 0 {
		opts.URLExpiry = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &exportService{
		ownership:     ownership,
		billboardRepo: billboardRepo,
		categoryRepo:  categoryRepo,
		colorRepo:     colorRepo,
		sizeRepo:      sizeRepo,
		productRepo:   productRepo,
		minio:         minio,
		audit:         audit,
		opts:          opts,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *exportService) Export(ctx context.Context, userID, storeID string) (*models.CatalogExport, error) {
	result, err := s.ownership.Resolve(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		return nil, err
	}
	if s.minio == nil {
		return nil, ErrExportUnavailable
	}

	snapshot, err := s.snapshot(ctx, result.Store)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode catalog snapshot: %w", err)
	}

	// Exports started in the same second must not overwrite each other.
	key := fmt.Sprintf("%s/%s-%s.json", storeID, snapshot.GeneratedAt.Format("20060102T150405Z"), uuid.NewString())
	if err := s.minio.PutJSON(ctx, s.opts.Bucket, key, data); err != nil {
		return nil, common.Persistence("upload catalog export", err)
	}
	url, err := s.minio.GetPresignedURL(ctx, s.opts.Bucket, key, s.opts.URLExpiry)
	if err != nil {
		return nil, common.Persistence("presign catalog export", err)
	}

	export := &models.CatalogExport{
		Key:       key,
		URL:       url,
		ExpiresAt: snapshot.GeneratedAt.Add(s.opts.URLExpiry),
		Counts: map[string]int{
			"billboards": len(snapshot.Billboards),
			"categories": len(snapshot.Categories),
			"colors":     len(snapshot.Colors),
			"sizes":      len(snapshot.Sizes),
			"products":   len(snapshot.Products),
		},
	}

	s.logger.Info("catalog exported",
		zap.String("store_id", storeID),
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	if s.audit != nil {
		s.audit.Record(ctx, AuditEntry{
			StoreID:  storeID,
			Entity:   models.EntityExport,
			RecordID: key,
			Action:   models.ActionExport,
			ActorID:  userID,
			Values:   export.Counts,
		})
	}
	return export, nil
}

func (s *exportService) snapshot(ctx context.Context, store *models.Store) (*models.CatalogSnapshot, error) {
	snapshot := &models.CatalogSnapshot{
		StoreID:     store.ID,
		StoreName:   store.Name,
		GeneratedAt: s.now().UTC(),
	}

	var err error
	if snapshot.Billboards, err = s.billboardRepo.ListByStore(ctx, store.ID); err != nil {
		return nil, common.Persistence("export billboards", err)
	}
	if snapshot.Categories, err = s.categoryRepo.ListByStore(ctx, store.ID); err != nil {
		return nil, common.Persistence("export categories", err)
	}
	if snapshot.Colors, err = s.colorRepo.ListByStore(ctx, store.ID); err != nil {
		return nil, common.Persistence("export colors", err)
	}
	if snapshot.Sizes, err = s.sizeRepo.ListByStore(ctx, store.ID); err != nil {
		return nil, common.Persistence("export sizes", err)
	}
	if snapshot.Products, err = s.productRepo.List(ctx, store.ID, models.ProductFilter{IncludeArchived: true}); err != nil {
		return nil, common.Persistence("export products", err)
	}
	return snapshot, nil
}
