package repositories

import (
	"context"

	"storeadmin/internal/models"

	"github.com/jackc/pgx/v5"
)

type BillboardRepository interface {
	Create(ctx context.Context, billboard *models.Billboard) error
	GetByID(ctx context.Context, id string) (*models.Billboard, error)
	GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Billboard, error)
	ListByStore(ctx context.Context, storeID string) ([]*models.Billboard, error)
	Update(ctx context.Context, billboard *models.Billboard) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
}

type billboardRepo struct {
	db Database
}

func NewBillboardRepo(db Database) BillboardRepository {
	return &billboardRepo{db: db}
}

const billboardColumns = `id, store_id, label, image_url, created_at, updated_at`

func scanBillboard(row pgx.Row) (*models.Billboard, error) {
	billboard := &models.Billboard{}
	err := row.Scan(&billboard.ID, &billboard.StoreID, &billboard.Label, &billboard.ImageURL, &billboard.CreatedAt, &billboard.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return billboard, nil
}

func (r *billboardRepo) Create(ctx context.Context, billboard *models.Billboard) error {
	query := `
		INSERT INTO billboards (id, store_id, label, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, billboard.ID, billboard.StoreID, billboard.Label, billboard.ImageURL).
		Scan(&billboard.CreatedAt, &billboard.UpdatedAt)
	return translateError(err)
}

func (r *billboardRepo) GetByID(ctx context.Context, id string) (*models.Billboard, error) {
	query := `SELECT ` + billboardColumns + ` FROM billboards WHERE id = $1`
	return scanBillboard(r.db.QueryRow(ctx, query, id))
}

func (r *billboardRepo) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Billboard, error) {
	query := `SELECT ` + billboardColumns + ` FROM billboards WHERE store_id = $1 AND id = $2`
	return scanBillboard(r.db.QueryRow(ctx, query, storeID, id))
}

func (r *billboardRepo) ListByStore(ctx context.Context, storeID string) ([]*models.Billboard, error) {
	query := `SELECT ` + billboardColumns + ` FROM billboards WHERE store_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	billboards := []*models.Billboard{}
	for rows.Next() {
		billboard, err := scanBillboard(rows)
		if err != nil {
			return nil, err
		}
		billboards = append(billboards, billboard)
	}
	return billboards, rows.Err()
}

func (r *billboardRepo) Update(ctx context.Context, billboard *models.Billboard) error {
	query := `
		UPDATE billboards
		SET label = $1, image_url = $2, updated_at = NOW()
		WHERE store_id = $3 AND id = $4
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, billboard.Label, billboard.ImageURL, billboard.StoreID, billboard.ID).
		Scan(&billboard.CreatedAt, &billboard.UpdatedAt)
	return translateError(err)
}

func (r *billboardRepo) Delete(ctx context.Context, storeID, id string) (int64, error) {
	query := `DELETE FROM billboards WHERE store_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, storeID, id)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}
