package get

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"furniture-golang/internal/service/manufacturing"
	"furniture-golang/internal/storage"
)

type MockProductProvider struct {
	mock.Mock
}

func (m *MockProductProvider) GetAllProducts(ctx context.Context) ([]storage.ProductView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]storage.ProductView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductProvider) GetProductByID(ctx context.Context, id int64) (*storage.ProductView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.ProductView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductProvider) GetWorkshopsForProduct(ctx context.Context, productID int64) ([]storage.WorkshopLeg, error) {
	args := m.Called(ctx, productID)
	if v := args.Get(0); v != nil {
		return v.([]storage.WorkshopLeg), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTimeCalculator struct {
	mock.Mock
}

func (m *MockTimeCalculator) CalculateManufacturingTime(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func TestGetProducts_TimeAugmented(t *testing.T) {
	provider := new(MockProductProvider)
	calc := new(MockTimeCalculator)

	provider.On("GetAllProducts", mock.Anything).Return([]storage.ProductView{
		{ProductID: 1, ProductName: "Кресло детское", ProductType: "Кресла", MaterialType: "Дуб"},
		{ProductID: 2, ProductName: "Полка настенная", ProductType: "Полки", MaterialType: "Сосна"},
	}, nil)
	calc.On("CalculateManufacturingTime", mock.Anything, int64(1)).Return(int64(7), nil)
	// Продукт без маршрутов в списке получает -1, а не ошибку
	calc.On("CalculateManufacturingTime", mock.Anything, int64(2)).
		Return(int64(0), fmt.Errorf("service: %w", manufacturing.ErrNoWorkshops))

	handler := GetProducts(slog.Default(), provider, calc)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []storage.ProductView
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Len(t, resp, 2)
	assert.Equal(t, int64(7), resp[0].ManufacturingTimeHours)
	assert.Equal(t, int64(-1), resp[1].ManufacturingTimeHours)

	provider.AssertExpectations(t)
	calc.AssertExpectations(t)
}

func TestGetProducts_Empty(t *testing.T) {
	provider := new(MockProductProvider)
	calc := new(MockTimeCalculator)

	provider.On("GetAllProducts", mock.Anything).Return(nil, nil)

	handler := GetProducts(slog.Default(), provider, calc)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// Пустой каталог — это [], а не null
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestGetProductByID_NotFound(t *testing.T) {
	provider := new(MockProductProvider)
	calc := new(MockTimeCalculator)

	provider.On("GetProductByID", mock.Anything, int64(99)).Return(nil, storage.ErrNotFound)

	router := chi.NewRouter()
	router.Get("/api/products/{id}", GetProductByID(slog.Default(), provider, calc))

	req := httptest.NewRequest(http.MethodGet, "/api/products/99", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	calc.AssertNotCalled(t, "CalculateManufacturingTime")
}

func TestGetProductByID_BadID(t *testing.T) {
	provider := new(MockProductProvider)
	calc := new(MockTimeCalculator)

	router := chi.NewRouter()
	router.Get("/api/products/{id}", GetProductByID(slog.Default(), provider, calc))

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	provider.AssertNotCalled(t, "GetProductByID")
}

func TestGetProductWorkshops_TotalRounded(t *testing.T) {
	provider := new(MockProductProvider)

	provider.On("GetProductByID", mock.Anything, int64(1)).Return(&storage.ProductView{
		ProductID:   1,
		ProductName: "Кресло детское",
	}, nil)
	provider.On("GetWorkshopsForProduct", mock.Anything, int64(1)).Return([]storage.WorkshopLeg{
		{ProductWorkshopID: 10, WorkshopID: 1, WorkshopName: "Раскрой", ManufacturingTimeHours: 3.5},
		{ProductWorkshopID: 11, WorkshopID: 2, WorkshopName: "Сборка", ManufacturingTimeHours: 2.0},
		{ProductWorkshopID: 12, WorkshopID: 3, WorkshopName: "Покраска", ManufacturingTimeHours: 1.75},
	}, nil)

	router := chi.NewRouter()
	router.Get("/api/products/{id}/workshops", GetProductWorkshops(slog.Default(), provider))

	req := httptest.NewRequest(http.MethodGet, "/api/products/1/workshops", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ProductWorkshopsResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Equal(t, int64(1), resp.ProductID)
	assert.Len(t, resp.Workshops, 3)
	// 3.5 + 2.0 + 1.75 = 7.25 -> 7
	assert.Equal(t, int64(7), resp.TotalManufacturingTimeHours)
}

func TestGetProductWorkshops_NoLegs(t *testing.T) {
	provider := new(MockProductProvider)

	provider.On("GetProductByID", mock.Anything, int64(2)).Return(&storage.ProductView{
		ProductID:   2,
		ProductName: "Полка настенная",
	}, nil)
	provider.On("GetWorkshopsForProduct", mock.Anything, int64(2)).Return(nil, nil)

	router := chi.NewRouter()
	router.Get("/api/products/{id}/workshops", GetProductWorkshops(slog.Default(), provider))

	req := httptest.NewRequest(http.MethodGet, "/api/products/2/workshops", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	// Продукт есть, маршрутов нет — это не 404, а пустой список
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ProductWorkshopsResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Empty(t, resp.Workshops)
	assert.Equal(t, int64(0), resp.TotalManufacturingTimeHours)
}
