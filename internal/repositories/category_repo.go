package repositories

import (
	"context"

	"storeadmin/internal/models"

	"github.com/jackc/pgx/v5"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Category, error)
	ListByStore(ctx context.Context, storeID string) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
	CountByBillboard(ctx context.Context, storeID, billboardID string) (int, error)
}

type categoryRepo struct {
	db Database
}

func NewCategoryRepo(db Database) CategoryRepository {
	return &categoryRepo{db: db}
}

// Every category read joins its billboard so public consumers get the hero banner inline.
const categoryWithBillboardSelect = `
	SELECT c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
		b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at
	FROM categories c
	JOIN billboards b ON b.id = c.billboard_id
`

func scanCategoryWithBillboard(row pgx.Row) (*models.Category, error) {
	category := &models.Category{}
	billboard := &models.Billboard{}
	err := row.Scan(&category.ID, &category.StoreID, &category.BillboardID, &category.Name, &category.CreatedAt, &category.UpdatedAt,
		&billboard.ID, &billboard.StoreID, &billboard.Label, &billboard.ImageURL, &billboard.CreatedAt, &billboard.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	category.Billboard = billboard
	return category, nil
}

func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, store_id, billboard_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, category.ID, category.StoreID, category.BillboardID, category.Name).
		Scan(&category.CreatedAt, &category.UpdatedAt)
	return translateError(err)
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := categoryWithBillboardSelect + ` WHERE c.id = $1`
	return scanCategoryWithBillboard(r.db.QueryRow(ctx, query, id))
}

func (r *categoryRepo) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Category, error) {
	query := categoryWithBillboardSelect + ` WHERE c.store_id = $1 AND c.id = $2`
	return scanCategoryWithBillboard(r.db.QueryRow(ctx, query, storeID, id))
}

func (r *categoryRepo) ListByStore(ctx context.Context, storeID string) ([]*models.Category, error) {
	query := categoryWithBillboardSelect + ` WHERE c.store_id = $1 ORDER BY c.created_at DESC`
	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		category, err := scanCategoryWithBillboard(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = $1, billboard_id = $2, updated_at = NOW()
		WHERE store_id = $3 AND id = $4
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, category.Name, category.BillboardID, category.StoreID, category.ID).
		Scan(&category.CreatedAt, &category.UpdatedAt)
	return translateError(err)
}

func (r *categoryRepo) Delete(ctx context.Context, storeID, id string) (int64, error) {
	query := `DELETE FROM categories WHERE store_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, storeID, id)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *categoryRepo) CountByBillboard(ctx context.Context, storeID, billboardID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM categories WHERE store_id = $1 AND billboard_id = $2`
	err := r.db.QueryRow(ctx, query, storeID, billboardID).Scan(&count)
	return count, err
}
