package repositories

import (
	"context"

	"storeadmin/internal/models"

	"github.com/jackc/pgx/v5"
)

type SizeRepository interface {
	Create(ctx context.Context, size *models.Size) error
	GetByID(ctx context.Context, id string) (*models.Size, error)
	GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Size, error)
	ListByStore(ctx context.Context, storeID string) ([]*models.Size, error)
	Update(ctx context.Context, size *models.Size) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
}

type sizeRepo struct {
	db Database
}

func NewSizeRepo(db Database) SizeRepository {
	return &sizeRepo{db: db}
}

const sizeColumns = `id, store_id, name, value, created_at, updated_at`

func scanSize(row pgx.Row) (*models.Size, error) {
	size := &models.Size{}
	err := row.Scan(&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt, &size.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return size, nil
}

func (r *sizeRepo) Create(ctx context.Context, size *models.Size) error {
	query := `
		INSERT INTO sizes (id, store_id, name, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, size.ID, size.StoreID, size.Name, size.Value).
		Scan(&size.CreatedAt, &size.UpdatedAt)
	return translateError(err)
}

func (r *sizeRepo) GetByID(ctx context.Context, id string) (*models.Size, error) {
	query := `SELECT ` + sizeColumns + ` FROM sizes WHERE id = $1`
	return scanSize(r.db.QueryRow(ctx, query, id))
}

func (r *sizeRepo) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Size, error) {
	query := `SELECT ` + sizeColumns + ` FROM sizes WHERE store_id = $1 AND id = $2`
	return scanSize(r.db.QueryRow(ctx, query, storeID, id))
}

func (r *sizeRepo) ListByStore(ctx context.Context, storeID string) ([]*models.Size, error) {
	query := `SELECT ` + sizeColumns + ` FROM sizes WHERE store_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes := []*models.Size{}
	for rows.Next() {
		size, err := scanSize(rows)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, rows.Err()
}

func (r *sizeRepo) Update(ctx context.Context, size *models.Size) error {
	query := `
		UPDATE sizes
		SET name = $1, value = $2, updated_at = NOW()
		WHERE store_id = $3 AND id = $4
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, size.Name, size.Value, size.StoreID, size.ID).
		Scan(&size.CreatedAt, &size.UpdatedAt)
	return translateError(err)
}

func (r *sizeRepo) Delete(ctx context.Context, storeID, id string) (int64, error) {
	query := `DELETE FROM sizes WHERE store_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, storeID, id)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}
