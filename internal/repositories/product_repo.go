package repositories

import (
	"context"
	"errors"
	"fmt"

	"storeadmin/internal/common"
	"storeadmin/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ProductReference names a product column that points at another catalog resource.
type ProductReference string

const (
	ProductRefCategory ProductReference = "category_id"
	ProductRefColor    ProductReference = "color_id"
	ProductRefSize     ProductReference = "size_id"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Product, error)
	List(ctx context.Context, storeID string, filter models.ProductFilter) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
	CountByReference(ctx context.Context, storeID string, ref ProductReference, refID string) (int, error)
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

const productWithRelationsSelect = `
	SELECT p.id, p.store_id, p.category_id, p.color_id, p.size_id, p.name, p.price,
		p.is_featured, p.is_archived, p.created_at, p.updated_at,
		c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
		co.id, co.store_id, co.name, co.value, co.created_at, co.updated_at,
		s.id, s.store_id, s.name, s.value, s.created_at, s.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN colors co ON co.id = p.color_id
	JOIN sizes s ON s.id = p.size_id
`

func scanProductWithRelations(row pgx.Row) (*models.Product, error) {
	p := &models.Product{}
	category := &models.Category{}
	color := &models.Color{}
	size := &models.Size{}
	err := row.Scan(
		&p.ID, &p.StoreID, &p.CategoryID, &p.ColorID, &p.SizeID, &p.Name, &p.Price,
		&p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		&category.ID, &category.StoreID, &category.BillboardID, &category.Name, &category.CreatedAt, &category.UpdatedAt,
		&color.ID, &color.StoreID, &color.Name, &color.Value, &color.CreatedAt, &color.UpdatedAt,
		&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt, &size.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	p.Category = category
	p.Color = color
	p.Size = size
	return p, nil
}

// Create inserts the product and its images in one transaction.
func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO products (id, store_id, category_id, color_id, size_id, name, price, is_featured, is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			RETURNING created_at, updated_at
		`
		err := tx.QueryRow(ctx, query, product.ID, product.StoreID, product.CategoryID, product.ColorID, product.SizeID,
			product.Name, product.Price, product.IsFeatured, product.IsArchived).
			Scan(&product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return productWriteError(err)
		}
		return NewProductImageRepo(tx).CreateMany(ctx, product.ID, product.Images)
	})
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := productWithRelationsSelect + ` WHERE p.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *productRepo) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Product, error) {
	query := productWithRelationsSelect + ` WHERE p.store_id = $1 AND p.id = $2`
	return r.getOne(ctx, query, storeID, id)
}

func (r *productRepo) getOne(ctx context.Context, query string, args ...interface{}) (*models.Product, error) {
	product, err := scanProductWithRelations(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	images, err := NewProductImageRepo(r.db).GetByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	product.Images = images
	return product, nil
}

func (r *productRepo) List(ctx context.Context, storeID string, filter models.ProductFilter) ([]*models.Product, error) {
	query := productWithRelationsSelect + ` WHERE p.store_id = $1`
	args := []interface{}{storeID}
	conditionCount := 1

	if !filter.IncludeArchived {
		query += ` AND p.is_archived = false`
	}
	if filter.CategoryID != "" {
		conditionCount++
		query += fmt.Sprintf(` AND p.category_id = $%d`, conditionCount)
		args = append(args, filter.CategoryID)
	}
	if filter.ColorID != "" {
		conditionCount++
		query += fmt.Sprintf(` AND p.color_id = $%d`, conditionCount)
		args = append(args, filter.ColorID)
	}
	if filter.SizeID != "" {
		conditionCount++
		query += fmt.Sprintf(` AND p.size_id = $%d`, conditionCount)
		args = append(args, filter.SizeID)
	}
	if filter.IsFeatured != nil {
		conditionCount++
		query += fmt.Sprintf(` AND p.is_featured = $%d`, conditionCount)
		args = append(args, *filter.IsFeatured)
	}

	query += ` ORDER BY p.created_at DESC`

	if filter.Limit > 0 {
		conditionCount++
		query += fmt.Sprintf(` LIMIT $%d`, conditionCount)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		conditionCount++
		query += fmt.Sprintf(` OFFSET $%d`, conditionCount)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	products := []*models.Product{}
	ids := []string{}
	for rows.Next() {
		product, err := scanProductWithRelations(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		products = append(products, product)
		ids = append(ids, product.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	images, err := NewProductImageRepo(r.db).GetByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		product.Images = images[product.ID]
		if product.Images == nil {
			product.Images = []*models.ProductImage{}
		}
	}
	return products, nil
}

// Update rewrites the product row and replaces its whole image set atomically.
// A product missing from the store surfaces as common.ErrNotFound and nothing changes.
func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE products
			SET name = $1, price = $2, category_id = $3, color_id = $4, size_id = $5,
				is_featured = $6, is_archived = $7, updated_at = NOW()
			WHERE store_id = $8 AND id = $9
			RETURNING created_at, updated_at
		`
		err := tx.QueryRow(ctx, query, product.Name, product.Price, product.CategoryID, product.ColorID, product.SizeID,
			product.IsFeatured, product.IsArchived, product.StoreID, product.ID).
			Scan(&product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return productWriteError(err)
		}

		images := NewProductImageRepo(tx)
		if _, err := images.DeleteAllByProductID(ctx, product.ID); err != nil {
			return err
		}
		return images.CreateMany(ctx, product.ID, product.Images)
	})
}

// Delete removes the product; its images go with it through ON DELETE CASCADE.
func (r *productRepo) Delete(ctx context.Context, storeID, id string) (int64, error) {
	query := `DELETE FROM products WHERE store_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, storeID, id)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *productRepo) CountByReference(ctx context.Context, storeID string, ref ProductReference, refID string) (int, error) {
	switch ref {
	case ProductRefCategory, ProductRefColor, ProductRefSize:
	default:
		return 0, fmt.Errorf("unknown product reference %q", ref)
	}
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM products WHERE store_id = $1 AND %s = $2`, ref)
	err := r.db.QueryRow(ctx, query, storeID, refID).Scan(&count)
	return count, err
}

// productWriteError reports a price the column refuses as a field error. price is the
// only checked numeric column on products.
func productWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == checkViolation || pgErr.Code == numericOutOfRange) {
		return common.NewValidationError("price", "must be a positive amount with at most 10 digits before the decimal point")
	}
	return translateError(err)
}
