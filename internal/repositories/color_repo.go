package repositories

import (
	"context"

	"storeadmin/internal/models"

	"github.com/jackc/pgx/v5"
)

type ColorRepository interface {
	Create(ctx context.Context, color *models.Color) error
	GetByID(ctx context.Context, id string) (*models.Color, error)
	GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Color, error)
	ListByStore(ctx context.Context, storeID string) ([]*models.Color, error)
	Update(ctx context.Context, color *models.Color) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
}

type colorRepo struct {
	db Database
}

func NewColorRepo(db Database) ColorRepository {
	return &colorRepo{db: db}
}

const colorColumns = `id, store_id, name, value, created_at, updated_at`

func scanColor(row pgx.Row) (*models.Color, error) {
	color := &models.Color{}
	err := row.Scan(&color.ID, &color.StoreID, &color.Name, &color.Value, &color.CreatedAt, &color.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return color, nil
}

func (r *colorRepo) Create(ctx context.Context, color *models.Color) error {
	query := `
		INSERT INTO colors (id, store_id, name, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, color.ID, color.StoreID, color.Name, color.Value).
		Scan(&color.CreatedAt, &color.UpdatedAt)
	return translateError(err)
}

func (r *colorRepo) GetByID(ctx context.Context, id string) (*models.Color, error) {
	query := `SELECT ` + colorColumns + ` FROM colors WHERE id = $1`
	return scanColor(r.db.QueryRow(ctx, query, id))
}

func (r *colorRepo) GetByStoreAndID(ctx context.Context, storeID, id string) (*models.Color, error) {
	query := `SELECT ` + colorColumns + ` FROM colors WHERE store_id = $1 AND id = $2`
	return scanColor(r.db.QueryRow(ctx, query, storeID, id))
}

func (r *colorRepo) ListByStore(ctx context.Context, storeID string) ([]*models.Color, error) {
	query := `SELECT ` + colorColumns + ` FROM colors WHERE store_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colors := []*models.Color{}
	for rows.Next() {
		color, err := scanColor(rows)
		if err != nil {
			return nil, err
		}
		colors = append(colors, color)
	}
	return colors, rows.Err()
}

func (r *colorRepo) Update(ctx context.Context, color *models.Color) error {
	query := `
		UPDATE colors
		SET name = $1, value = $2, updated_at = NOW()
		WHERE store_id = $3 AND id = $4
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, color.Name, color.Value, color.StoreID, color.ID).
		Scan(&color.CreatedAt, &color.UpdatedAt)
	return translateError(err)
}

func (r *colorRepo) Delete(ctx context.Context, storeID, id string) (int64, error) {
	query := `DELETE FROM colors WHERE store_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, storeID, id)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}
