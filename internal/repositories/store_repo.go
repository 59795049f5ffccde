package repositories

import (
	"context"

	"storeadmin/internal/models"

	"github.com/jackc/pgx/v5"
)

type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id string) (*models.Store, error)
	ListByOwner(ctx context.Context, userID string) ([]*models.Store, error)
	Update(ctx context.Context, store *models.Store) error
	DeleteByOwner(ctx context.Context, id, userID string) (int64, error)
}

type storeRepo struct {
	db Database
}

func NewStoreRepo(db Database) StoreRepository {
	return &storeRepo{db: db}
}

const storeColumns = `id, user_id, name, front_end_store_url, stripe_key, created_at, updated_at`

func scanStore(row pgx.Row) (*models.Store, error) {
	store := &models.Store{}
	err := row.Scan(&store.ID, &store.UserID, &store.Name, &store.FrontEndStoreURL, &store.StripeKey, &store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return store, nil
}

func (r *storeRepo) Create(ctx context.Context, store *models.Store) error {
	query := `
		INSERT INTO stores (id, user_id, name, front_end_store_url, stripe_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, store.ID, store.UserID, store.Name, store.FrontEndStoreURL, store.StripeKey).
		Scan(&store.CreatedAt, &store.UpdatedAt)
	return translateError(err)
}

func (r *storeRepo) GetByID(ctx context.Context, id string) (*models.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	return scanStore(r.db.QueryRow(ctx, query, id))
}

func (r *storeRepo) ListByOwner(ctx context.Context, userID string) ([]*models.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := []*models.Store{}
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}
	return stores, rows.Err()
}

// Update rewrites the mutable fields of a store owned by store.UserID.
func (r *storeRepo) Update(ctx context.Context, store *models.Store) error {
	query := `
		UPDATE stores
		SET name = $1, front_end_store_url = $2, stripe_key = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, store.Name, store.FrontEndStoreURL, store.StripeKey, store.ID, store.UserID).
		Scan(&store.CreatedAt, &store.UpdatedAt)
	return translateError(err)
}

// DeleteByOwner keeps the owner in the predicate so a foreign caller can never remove the row.
func (r *storeRepo) DeleteByOwner(ctx context.Context, id, userID string) (int64, error) {
	query := `DELETE FROM stores WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}
