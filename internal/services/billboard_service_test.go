package services

import (
	"context"
	"errors"
	"testing"

	"storeadmin/internal/common"
	"storeadmin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BillboardServiceTestSuite struct {
	suite.Suite
	fixture    *catalogFixture
	billboards *MockBillboardRepository
	categories *MockCategoryRepository
	service    BillboardService
	ctx        context.Context
}

func (suite *BillboardServiceTestSuite) SetupTest() {
	suite.fixture = newCatalogFixture()
	suite.billboards = &MockBillboardRepository{}
	suite.categories = &MockCategoryRepository{}
	suite.service = NewBillboardService(suite.billboards, suite.categories, suite.fixture.deps)
	suite.ctx = context.Background()
}

func (suite *BillboardServiceTestSuite) TearDownTest() {
	suite.billboards.AssertExpectations(suite.T())
	suite.categories.AssertExpectations(suite.T())
}

func TestBillboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillboardServiceTestSuite))
}

func validBillboardInput() *models.BillboardInput {
	return &models.BillboardInput{Label: "Summer", ImageURL: "https://cdn.example.com/summer.png"}
}

func (suite *BillboardServiceTestSuite) TestCreate_IdentityCheckedBeforeOwnership() {
	_, err := suite.service.Create(suite.ctx, "", testStoreID, nil)
	assert.ErrorIs(suite.T(), err, common.ErrUnauthenticated)

	_, err = suite.service.Create(suite.ctx, testStrangerID, testStoreID, nil)
	assert.ErrorIs(suite.T(), err, common.ErrForbidden)
	suite.billboards.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *BillboardServiceTestSuite) TestCreate_UndecodableBodyIsMalformedForOwner() {
	_, err := suite.service.Create(suite.ctx, testOwnerID, testStoreID, nil)
	var verr *common.ValidationError
	require.ErrorAs(suite.T(), err, &verr)
	assert.False(suite.T(), verr.Missing)
	assert.Equal(suite.T(), "must be a valid JSON object", verr.Fields["body"])
}

func (suite *BillboardServiceTestSuite) TestCreate_UnknownStore() {
	_, err := suite.service.Create(suite.ctx, testOwnerID, testOtherStore, validBillboardInput())
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *BillboardServiceTestSuite) TestCreate_MissingLabel() {
	_, err := suite.service.Create(suite.ctx, testOwnerID, testStoreID, &models.BillboardInput{ImageURL: "https://cdn.example.com/a.png"})
	var verr *common.ValidationError
	require.ErrorAs(suite.T(), err, &verr)
	assert.True(suite.T(), verr.Missing)
	assert.Equal(suite.T(), "is required", verr.Fields["label"])
}

func (suite *BillboardServiceTestSuite) TestCreate_InvalidatesStoreProjections() {
	marker := suite.fixture.primeCache(testStoreID)
	otherMarker := suite.fixture.primeCache(testOtherStore)
	suite.billboards.On("Create", suite.ctx, mock.AnythingOfType("*models.Billboard")).Return(nil).Once()

	billboard, err := suite.service.Create(suite.ctx, testOwnerID, testStoreID, validBillboardInput())
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), testStoreID, billboard.StoreID)
	assert.NotEmpty(suite.T(), billboard.ID)

	assert.False(suite.T(), suite.fixture.cached(marker))
	assert.True(suite.T(), suite.fixture.cached(otherMarker))

	entries := suite.fixture.audit.recorded()
	require.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), models.EntityBillboard, entries[0].Entity)
	assert.Equal(suite.T(), testOwnerID, entries[0].ActorID)
}

func (suite *BillboardServiceTestSuite) TestUpdate_MissingBillboard() {
	suite.billboards.On("Update", suite.ctx, mock.AnythingOfType("*models.Billboard")).Return(common.ErrNotFound).Once()

	_, err := suite.service.Update(suite.ctx, testOwnerID, testStoreID, "bb-missing", validBillboardInput())
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.Empty(suite.T(), suite.fixture.audit.recorded())
}

func (suite *BillboardServiceTestSuite) TestDelete_RestrictedWhileReferenced() {
	suite.categories.On("CountByBillboard", suite.ctx, testStoreID, "bb-1").Return(2, nil).Once()

	count, err := suite.service.Delete(suite.ctx, testOwnerID, testStoreID, "bb-1")
	assert.ErrorIs(suite.T(), err, common.ErrConflict)
	assert.Zero(suite.T(), count)
	suite.billboards.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillboardServiceTestSuite) TestDelete_IsIdempotent() {
	suite.categories.On("CountByBillboard", suite.ctx, testStoreID, "bb-1").Return(0, nil).Twice()
	suite.billboards.On("Delete", suite.ctx, testStoreID, "bb-1").Return(int64(1), nil).Once()
	suite.billboards.On("Delete", suite.ctx, testStoreID, "bb-1").Return(int64(0), nil).Once()

	first, err := suite.service.Delete(suite.ctx, testOwnerID, testStoreID, "bb-1")
	require.NoError(suite.T(), err)
	second, err := suite.service.Delete(suite.ctx, testOwnerID, testStoreID, "bb-1")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), int64(1), first)
	assert.Zero(suite.T(), second)
	assert.Len(suite.T(), suite.fixture.audit.recorded(), 1)
}

func (suite *BillboardServiceTestSuite) TestDelete_StorageFailure() {
	suite.categories.On("CountByBillboard", suite.ctx, testStoreID, "bb-1").Return(0, errors.New("connection reset")).Once()

	_, err := suite.service.Delete(suite.ctx, testOwnerID, testStoreID, "bb-1")
	var perr *common.PersistenceError
	assert.ErrorAs(suite.T(), err, &perr)
}

func (suite *BillboardServiceTestSuite) TestGetPublic_AbsentIsNil() {
	suite.billboards.On("GetByID", suite.ctx, "bb-missing").Return(nil, common.ErrNotFound).Once()

	billboard, err := suite.service.GetPublic(suite.ctx, "bb-missing")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), billboard)
}

func (suite *BillboardServiceTestSuite) TestGetPublicInStore_OtherStoreIsNil() {
	suite.billboards.On("GetByStoreAndID", suite.ctx, testOtherStore, "bb-1").Return(nil, common.ErrNotFound).Once()

	billboard, err := suite.service.GetPublicInStore(suite.ctx, testOtherStore, "bb-1")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), billboard)
}

func (suite *BillboardServiceTestSuite) TestListPublic_ServedFromCacheUntilMutation() {
	listed := []*models.Billboard{{ID: "bb-1", StoreID: testStoreID, Label: "Summer"}}
	suite.billboards.On("ListByStore", suite.ctx, testStoreID).Return(listed, nil).Twice()
	suite.billboards.On("Create", suite.ctx, mock.AnythingOfType("*models.Billboard")).Return(nil).Once()

	for i := 0; i < 2; i++ {
		got, err := suite.service.ListPublic(suite.ctx, testStoreID)
		require.NoError(suite.T(), err)
		require.Len(suite.T(), got, 1)
		assert.Equal(suite.T(), "Summer", got[0].Label)
	}

	_, err := suite.service.Create(suite.ctx, testOwnerID, testStoreID, validBillboardInput())
	require.NoError(suite.T(), err)

	_, err = suite.service.ListPublic(suite.ctx, testStoreID)
	require.NoError(suite.T(), err)
	suite.billboards.AssertNumberOfCalls(suite.T(), "ListByStore", 2)
}
