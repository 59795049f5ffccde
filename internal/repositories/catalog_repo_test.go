package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"storeadmin/internal/common"
	"storeadmin/internal/models"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CatalogRepoTestSuite covers the billboard, category, color and size repositories,
// which share the same store-scoped shape.
type CatalogRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	now     time.Time
	context context.Context
}

func (suite *CatalogRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(suite.T(), err)
	suite.mock = mock
	suite.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.context = context.Background()
}

func (suite *CatalogRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestCatalogRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepoTestSuite))
}

func (suite *CatalogRepoTestSuite) TestBillboardCreate() {
	repo := NewBillboardRepo(suite.mock)
	billboard := &models.Billboard{ID: "bb-1", StoreID: "store-1", Label: "Summer", ImageURL: "https://img.example.com/a.png"}

	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO billboards`)).
		WithArgs("bb-1", "store-1", "Summer", "https://img.example.com/a.png").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(suite.now, suite.now))

	require.NoError(suite.T(), repo.Create(suite.context, billboard))
	assert.Equal(suite.T(), suite.now, billboard.UpdatedAt)
}

func (suite *CatalogRepoTestSuite) TestBillboardGetByStoreAndID_OtherStoreIsNotFound() {
	repo := NewBillboardRepo(suite.mock)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`FROM billboards WHERE store_id = $1 AND id = $2`)).
		WithArgs("store-2", "bb-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "store_id", "label", "image_url", "created_at", "updated_at"}))

	billboard, err := repo.GetByStoreAndID(suite.context, "store-2", "bb-1")
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.Nil(suite.T(), billboard)
}

func (suite *CatalogRepoTestSuite) TestBillboardDelete_ScopedToStore() {
	repo := NewBillboardRepo(suite.mock)

	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM billboards WHERE store_id = $1 AND id = $2`)).
		WithArgs("store-2", "bb-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	count, err := repo.Delete(suite.context, "store-2", "bb-1")
	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), count)
}

func (suite *CatalogRepoTestSuite) TestBillboardDelete_ForeignKeyViolationIsConflict() {
	repo := NewBillboardRepo(suite.mock)

	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM billboards`)).
		WithArgs("store-1", "bb-1").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Delete(suite.context, "store-1", "bb-1")
	assert.ErrorIs(suite.T(), err, common.ErrConflict)
}

func (suite *CatalogRepoTestSuite) TestCategoryGetByID_JoinsBillboard() {
	repo := NewCategoryRepo(suite.mock)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`JOIN billboards b ON b.id = c.billboard_id WHERE c.id = $1`)).
		WithArgs("cat-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "store_id", "billboard_id", "name", "created_at", "updated_at",
			"b_id", "b_store_id", "label", "image_url", "b_created_at", "b_updated_at",
		}).AddRow("cat-1", "store-1", "bb-1", "Shirts", suite.now, suite.now,
			"bb-1", "store-1", "Summer", "https://img.example.com/a.png", suite.now, suite.now))

	category, err := repo.GetByID(suite.context, "cat-1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), category.Billboard)
	assert.Equal(suite.T(), "Summer", category.Billboard.Label)
}

func (suite *CatalogRepoTestSuite) TestCategoryCountByBillboard() {
	repo := NewCategoryRepo(suite.mock)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM categories WHERE store_id = $1 AND billboard_id = $2`)).
		WithArgs("store-1", "bb-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByBillboard(suite.context, "store-1", "bb-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, count)
}

func (suite *CatalogRepoTestSuite) TestColorUpdate_MissingInStoreIsNotFound() {
	repo := NewColorRepo(suite.mock)
	color := &models.Color{ID: "col-1", StoreID: "store-2", Name: "Red", Value: "#f00"}

	suite.mock.ExpectQuery(regexp.QuoteMeta(`UPDATE colors`)).
		WithArgs("Red", "#f00", "store-2", "col-1").
		WillReturnError(pgx.ErrNoRows)

	assert.ErrorIs(suite.T(), repo.Update(suite.context, color), common.ErrNotFound)
}

func (suite *CatalogRepoTestSuite) TestSizeListByStore() {
	repo := NewSizeRepo(suite.mock)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`FROM sizes WHERE store_id = $1`)).
		WithArgs("store-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "store_id", "name", "value", "created_at", "updated_at"}).
			AddRow("sz-1", "store-1", "Small", "S", suite.now, suite.now).
			AddRow("sz-2", "store-1", "Large", "L", suite.now, suite.now))

	sizes, err := repo.ListByStore(suite.context, "store-1")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), sizes, 2)
	assert.Equal(suite.T(), "S", sizes[0].Value)
}
