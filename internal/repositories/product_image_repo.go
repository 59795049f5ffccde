package repositories

import (
	"context"

	"storeadmin/internal/models"

	"github.com/google/uuid"
)

// ProductImageRepository is built over a pool or a pgx.Tx, so product writes can
// swap the image set inside the same transaction as the product row.
type ProductImageRepository interface {
	CreateMany(ctx context.Context, productID string, images []*models.ProductImage) error
	GetByProductID(ctx context.Context, productID string) ([]*models.ProductImage, error)
	GetByProductIDs(ctx context.Context, productIDs []string) (map[string][]*models.ProductImage, error)
	DeleteAllByProductID(ctx context.Context, productID string) (int64, error)
}

type productImageRepo struct {
	db Database
}

func NewProductImageRepo(db Database) ProductImageRepository {
	return &productImageRepo{db: db}
}

// CreateMany stores the images in slice order. Rows written in one transaction share
// NOW(), so the order lives in position.
func (r *productImageRepo) CreateMany(ctx context.Context, productID string, images []*models.ProductImage) error {
	query := `
		INSERT INTO product_images (id, product_id, url, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	for position, image := range images {
		if image.ID == "" {
			image.ID = uuid.NewString()
		}
		image.ProductID = productID
		err := r.db.QueryRow(ctx, query, image.ID, image.ProductID, image.URL, position).
			Scan(&image.CreatedAt, &image.UpdatedAt)
		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

func (r *productImageRepo) GetByProductID(ctx context.Context, productID string) ([]*models.ProductImage, error) {
	byProduct, err := r.GetByProductIDs(ctx, []string{productID})
	if err != nil {
		return nil, err
	}
	images := byProduct[productID]
	if images == nil {
		images = []*models.ProductImage{}
	}
	return images, nil
}

func (r *productImageRepo) GetByProductIDs(ctx context.Context, productIDs []string) (map[string][]*models.ProductImage, error) {
	byProduct := make(map[string][]*models.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return byProduct, nil
	}

	query := `
		SELECT id, product_id, url, created_at, updated_at
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY position ASC, created_at ASC
	`
	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		image := &models.ProductImage{}
		if err := rows.Scan(&image.ID, &image.ProductID, &image.URL, &image.CreatedAt, &image.UpdatedAt); err != nil {
			return nil, err
		}
		byProduct[image.ProductID] = append(byProduct[image.ProductID], image)
	}
	return byProduct, rows.Err()
}

func (r *productImageRepo) DeleteAllByProductID(ctx context.Context, productID string) (int64, error) {
	query := `DELETE FROM product_images WHERE product_id = $1`
	tag, err := r.db.Exec(ctx, query, productID)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}
