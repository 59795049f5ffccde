// Package testhelpers seeds a real Postgres database for repository integration tests.
package testhelpers

import (
	"context"
	"os"
	"testing"

	"storeadmin/internal/models"
	"storeadmin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func()
}

// SetupTestDB connects to TEST_DATABASE_URL and applies the schema.
// The test is skipped when no database is configured or in short mode.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, database.PoolConfig{DSN: connString, MaxConns: 4}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.Migrate(ctx, pool, zap.NewNop()); err != nil {
		pool.Close()
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDB{
		Pool:    pool,
		Cleanup: pool.Close,
	}
}

// SetupTestStore creates a store owned by userID. Its rows cascade away when the store is deleted.
func SetupTestStore(t *testing.T, db *TestDB, userID string) *models.Store {
	t.Helper()

	store := &models.Store{
		ID:               uuid.NewString(),
		UserID:           userID,
		Name:             "Test Store",
		FrontEndStoreURL: "https://shop.example.com",
		StripeKey:        "sk_test_0123456789",
	}
	query := `
		INSERT INTO stores (id, user_id, name, front_end_store_url, stripe_key)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := db.Pool.Exec(context.Background(), query, store.ID, store.UserID, store.Name, store.FrontEndStoreURL, store.StripeKey)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		_, _ = db.Pool.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, store.ID)
	})
	return store
}

// CatalogFixture is one billboard, category, color and size inside a store.
type CatalogFixture struct {
	Store       *models.Store
	BillboardID string
	CategoryID  string
	ColorID     string
	SizeID      string
}

// SetupTestCatalog seeds the references a product needs.
func SetupTestCatalog(t *testing.T, db *TestDB, store *models.Store) *CatalogFixture {
	t.Helper()

	ctx := context.Background()
	f := &CatalogFixture{
		Store:       store,
		BillboardID: uuid.NewString(),
		CategoryID:  uuid.NewString(),
		ColorID:     uuid.NewString(),
		SizeID:      uuid.NewString(),
	}

	statements := []struct {
		query string
		args  []interface{}
	}{
		{`INSERT INTO billboards (id, store_id, label, image_url) VALUES ($1, $2, $3, $4)`,
			[]interface{}{f.BillboardID, store.ID, "Summer", "https://img.example.com/summer.png"}},
		{`INSERT INTO categories (id, store_id, billboard_id, name) VALUES ($1, $2, $3, $4)`,
			[]interface{}{f.CategoryID, store.ID, f.BillboardID, "Shirts"}},
		{`INSERT INTO colors (id, store_id, name, value) VALUES ($1, $2, $3, $4)`,
			[]interface{}{f.ColorID, store.ID, "Black", "#000000"}},
		{`INSERT INTO sizes (id, store_id, name, value) VALUES ($1, $2, $3, $4)`,
			[]interface{}{f.SizeID, store.ID, "Medium", "M"}},
	}
	for _, stmt := range statements {
		if _, err := db.Pool.Exec(ctx, stmt.query, stmt.args...); err != nil {
			t.Fatalf("Failed to seed catalog: %v", err)
		}
	}
	return f
}

// NewTestProduct builds an unsaved product referencing the fixture.
func (f *CatalogFixture) NewTestProduct(name string, urls ...string) *models.Product {
	images := make([]*models.ProductImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, &models.ProductImage{URL: url})
	}
	return &models.Product{
		ID:         uuid.NewString(),
		StoreID:    f.Store.ID,
		CategoryID: f.CategoryID,
		ColorID:    f.ColorID,
		SizeID:     f.SizeID,
		Name:       name,
		Price:      19.99,
		Images:     images,
	}
}
