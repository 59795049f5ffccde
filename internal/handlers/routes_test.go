package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storeadmin/internal/caching"
	"storeadmin/internal/common"
	"storeadmin/internal/middleware"
	"storeadmin/internal/models"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ownerToken = "tok-owner"

type RoutesTestSuite struct {
	suite.Suite
	e          *echo.Echo
	stores     *MockStoreService
	billboards *MockBillboardService
	categories *MockCategoryService
	colors     *MockColorService
	sizes      *MockSizeService
	products   *MockProductService
	audit      *MockAuditLogsService
	exports    *MockExportService
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func (suite *RoutesTestSuite) SetupTest() {
	suite.stores = &MockStoreService{}
	suite.billboards = &MockBillboardService{}
	suite.categories = &MockCategoryService{}
	suite.colors = &MockColorService{}
	suite.sizes = &MockSizeService{}
	suite.products = &MockProductService{}
	suite.audit = &MockAuditLogsService{}
	suite.exports = &MockExportService{}

	suite.e = echo.New()
	Register(suite.e, Handlers{
		Identity:   middleware.StaticIdentity{ownerToken: "user_owner"},
		Stores:     NewStoreHandlers(suite.stores, nil),
		Billboards: NewBillboardHandlers(suite.billboards, nil),
		Categories: NewCategoryHandlers(suite.categories, nil),
		Colors:     NewColorHandlers(suite.colors, nil),
		Sizes:      NewSizeHandlers(suite.sizes, nil),
		Products:   NewProductHandlers(suite.products, nil),
		AuditLogs:  NewAuditLogsHandlers(suite.audit, nil),
		Exports:    NewExportHandlers(suite.exports, nil),
		Health:     NewHealthHandlers(fakePinger{}, caching.NewNoopCacheService(), nil, "test"),
	})
}

func (suite *RoutesTestSuite) TearDownTest() {
	for _, m := range []interface{ AssertExpectations(mock.TestingT) bool }{
		suite.stores, suite.billboards, suite.categories, suite.colors, suite.sizes, suite.products, suite.audit, suite.exports,
	} {
		m.AssertExpectations(suite.T())
	}
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func (suite *RoutesTestSuite) do(method, target, body, token string) *httptest.ResponseRecorder {
	return serve(suite.e, method, target, body, token)
}

func serve(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) common.ErrorResponse {
	t.Helper()
	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (suite *RoutesTestSuite) TestCreateStore_AnonymousGets401() {
	suite.stores.On("Create", mock.Anything, "", mock.AnythingOfType("*models.StoreInput")).
		Return(nil, common.ErrUnauthenticated).Once()

	rec := suite.do(http.MethodPost, "/stores", `{"name":"Shoes"}`, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	assert.Equal(suite.T(), "UNAUTHENTICATED", decodeError(suite.T(), rec).Error.Code)
}

func (suite *RoutesTestSuite) TestCreateStore_MissingFieldIs404() {
	suite.stores.On("Create", mock.Anything, "user_owner", mock.AnythingOfType("*models.StoreInput")).
		Return(nil, &common.ValidationError{Fields: map[string]string{"stripeKey": "is required"}, Missing: true}).Once()

	rec := suite.do(http.MethodPost, "/stores", `{"name":"Shoes","frontEndStoreUrl":"https://shoes.example.com"}`, ownerToken)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Equal(suite.T(), "is required", decodeError(suite.T(), rec).Error.Details["stripeKey"])
}

func (suite *RoutesTestSuite) TestCreateStore_MalformedFieldIs400() {
	suite.stores.On("Create", mock.Anything, "user_owner", mock.AnythingOfType("*models.StoreInput")).
		Return(nil, common.NewValidationError("frontEndStoreUrl", "must be a valid URL")).Once()

	rec := suite.do(http.MethodPost, "/stores", `{"name":"Shoes","frontEndStoreUrl":"shoes","stripeKey":"sk_test_1234567890"}`, ownerToken)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *RoutesTestSuite) TestCreateStore_UnparsableBodyReachesServiceAsNil() {
	suite.stores.On("Create", mock.Anything, "user_owner", (*models.StoreInput)(nil)).
		Return(nil, common.NewValidationError("body", "must be a valid JSON object")).Once()

	rec := suite.do(http.MethodPost, "/stores", `{"name":`, ownerToken)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Contains(suite.T(), decodeError(suite.T(), rec).Error.Details, "body")
}

func (suite *RoutesTestSuite) TestCreateStore_BodyIDIgnored() {
	suite.stores.On("Create", mock.Anything, "user_owner", &models.StoreInput{
		Name: "Shoes", FrontEndStoreURL: "https://shoes.example.com", StripeKey: "sk_test_1234567890",
	}).Return(&models.Store{ID: "store-1", UserID: "user_owner", Name: "Shoes"}, nil).Once()

	rec := suite.do(http.MethodPost, "/stores",
		`{"id":"chosen-by-client","name":"Shoes","frontEndStoreUrl":"https://shoes.example.com","stripeKey":"sk_test_1234567890"}`, ownerToken)
	require.Equal(suite.T(), http.StatusOK, rec.Code)

	var store models.Store
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &store))
	assert.Equal(suite.T(), "store-1", store.ID)
}

func (suite *RoutesTestSuite) TestDeleteStore_NonOwner403() {
	suite.stores.On("Delete", mock.Anything, "", "store-1").Return(int64(0), common.ErrUnauthenticated).Once()
	suite.stores.On("Delete", mock.Anything, "user_owner", "store-2").Return(int64(0), common.ErrForbidden).Once()

	assert.Equal(suite.T(), http.StatusUnauthorized, suite.do(http.MethodDelete, "/stores/store-1", "", "").Code)
	assert.Equal(suite.T(), http.StatusForbidden, suite.do(http.MethodDelete, "/stores/store-2", "", ownerToken).Code)
}

func (suite *RoutesTestSuite) TestListStores_EmptyIsArray() {
	suite.stores.On("List", mock.Anything, "user_owner").Return(nil, nil).Once()

	rec := suite.do(http.MethodGet, "/stores", "", ownerToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `[]`, rec.Body.String())
}

func (suite *RoutesTestSuite) TestDeleteBillboard_Counts() {
	suite.billboards.On("Delete", mock.Anything, "user_owner", "store-1", "bb-1").Return(int64(1), nil).Once()
	suite.billboards.On("Delete", mock.Anything, "user_owner", "store-1", "bb-1").Return(int64(0), nil).Once()

	rec := suite.do(http.MethodDelete, "/store-1/billboards/bb-1", "", ownerToken)
	assert.JSONEq(suite.T(), `{"count":1}`, rec.Body.String())
	rec = suite.do(http.MethodDelete, "/store-1/billboards/bb-1", "", ownerToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"count":0}`, rec.Body.String())
}

func (suite *RoutesTestSuite) TestDeleteCategory_Restricted409() {
	suite.categories.On("Delete", mock.Anything, "user_owner", "store-1", "cat-1").Return(int64(0), common.ErrConflict).Once()

	rec := suite.do(http.MethodDelete, "/store-1/categories/cat-1", "", ownerToken)
	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
}

func (suite *RoutesTestSuite) TestUpdateColor_PathIDsWin() {
	suite.colors.On("Update", mock.Anything, "user_owner", "store-1", "col-1", &models.ColorInput{Name: "White", Value: "#fff"}).
		Return(&models.Color{ID: "col-1", StoreID: "store-1", Name: "White", Value: "#fff"}, nil).Once()

	rec := suite.do(http.MethodPatch, "/store-1/colors/col-1", `{"id":"col-9","storeId":"store-9","name":"White","value":"#fff"}`, ownerToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *RoutesTestSuite) TestGetBillboard_AbsentIsNull() {
	suite.billboards.On("GetPublic", mock.Anything, "bb-missing").Return(nil, nil).Once()

	rec := suite.do(http.MethodGet, "/billboards/bb-missing", "", "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "null", strings.TrimSpace(rec.Body.String()))
}

func (suite *RoutesTestSuite) TestGetBillboard_SameWithOrWithoutCredentials() {
	billboard := &models.Billboard{ID: "bb-1", StoreID: "store-1", Label: "Summer", ImageURL: "https://cdn.example.com/s.png"}
	suite.billboards.On("GetPublic", mock.Anything, "bb-1").Return(billboard, nil).Twice()

	anonymous := suite.do(http.MethodGet, "/billboards/bb-1", "", "")
	authenticated := suite.do(http.MethodGet, "/billboards/bb-1", "", ownerToken)
	assert.Equal(suite.T(), http.StatusOK, anonymous.Code)
	assert.Equal(suite.T(), anonymous.Body.String(), authenticated.Body.String())
}

func (suite *RoutesTestSuite) TestGetSizeInStore() {
	suite.sizes.On("GetPublicInStore", mock.Anything, "store-2", "size-1").Return(nil, nil).Once()

	rec := suite.do(http.MethodGet, "/store-2/sizes/size-1", "", "")
	assert.Equal(suite.T(), "null", strings.TrimSpace(rec.Body.String()))
}

func (suite *RoutesTestSuite) TestListProducts_ParsesFilters() {
	suite.products.On("ListPublic", mock.Anything, "store-1", mock.MatchedBy(func(f models.ProductFilter) bool {
		return f.CategoryID == "cat-1" && f.ColorID == "" && f.IsFeatured != nil && *f.IsFeatured && f.Limit == 10
	})).Return([]*models.Product{{ID: "prod-1"}}, nil).Once()

	rec := suite.do(http.MethodGet, "/store-1/products?categoryId=cat-1&isFeatured=true&limit=10", "", "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(suite.T(), products, 1)
}

func (suite *RoutesTestSuite) TestListProducts_BadFilter() {
	assert.Equal(suite.T(), http.StatusBadRequest, suite.do(http.MethodGet, "/store-1/products?isFeatured=maybe", "", "").Code)
	assert.Equal(suite.T(), http.StatusBadRequest, suite.do(http.MethodGet, "/store-1/products?limit=ten", "", "").Code)
}

func (suite *RoutesTestSuite) TestCreateProduct_PersistenceErrorIs500() {
	suite.products.On("Create", mock.Anything, "user_owner", "store-1", mock.AnythingOfType("*models.ProductInput")).
		Return(nil, &common.PersistenceError{Op: "create product", Err: errors.New("tx aborted")}).Once()

	rec := suite.do(http.MethodPost, "/store-1/products", `{"name":"Sneaker"}`, ownerToken)
	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	assert.NotContains(suite.T(), rec.Body.String(), "tx aborted")
}

func (suite *RoutesTestSuite) TestListAuditLogs() {
	suite.audit.On("List", mock.Anything, "user_owner", "store-1", models.AuditLogFilter{Entity: "product", Limit: 20}).
		Return([]*models.AuditLog{{ID: "log-1", Entity: "product"}}, nil).Once()

	rec := suite.do(http.MethodGet, "/stores/store-1/audit-logs?entity=product&limit=20", "", ownerToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *RoutesTestSuite) TestCreateExport_Unavailable() {
	suite.exports.On("Export", mock.Anything, "user_owner", "store-1").Return(nil, services.ErrExportUnavailable).Once()

	rec := suite.do(http.MethodPost, "/stores/store-1/exports", "", ownerToken)
	assert.Equal(suite.T(), http.StatusServiceUnavailable, rec.Code)
}

func (suite *RoutesTestSuite) TestCheckoutPreflight() {
	rec := suite.do(http.MethodOptions, "/store-1/checkout", "", "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(suite.T(), "GET, POST, OPTIONS, PUT, PATCH, DELETE", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	assert.Equal(suite.T(), "Content-Type, Authorization", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	assert.JSONEq(suite.T(), `{}`, rec.Body.String())
}

func (suite *RoutesTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "", "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/health/ready", "", "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var health HealthStatus
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(suite.T(), "ready", health.Status)
	assert.Equal(suite.T(), "disabled", health.Services["storage"])
}

func TestReadinessCheck_DatabaseDown(t *testing.T) {
	e := echo.New()
	h := NewHealthHandlers(fakePinger{err: errors.New("refused")}, caching.NewNoopCacheService(), nil, "test")

	rec := httptest.NewRecorder()
	require.NoError(t, h.ReadinessCheck(e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
