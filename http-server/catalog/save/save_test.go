package save

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"furniture-golang/internal/storage"
)

type MockCatalogSaver struct {
	mock.Mock
}

func (m *MockCatalogSaver) CreateProductType(ctx context.Context, pt storage.ProductType) (int64, error) {
	args := m.Called(ctx, pt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogSaver) GetProductTypeByID(ctx context.Context, id int64) (*storage.ProductType, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.ProductType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogSaver) CreateMaterialType(ctx context.Context, mt storage.MaterialType) (int64, error) {
	args := m.Called(ctx, mt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogSaver) GetMaterialTypeByID(ctx context.Context, id int64) (*storage.MaterialType, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.MaterialType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogSaver) CreateWorkshop(ctx context.Context, w storage.Workshop) (int64, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogSaver) GetWorkshopByID(ctx context.Context, id int64) (*storage.Workshop, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.Workshop), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSaveProductType_Success(t *testing.T) {
	saver := new(MockCatalogSaver)

	saver.On("CreateProductType", mock.Anything, storage.ProductType{
		ProductTypeName: "Кресла",
		Coefficient:     1.2,
	}).Return(int64(5), nil)
	saver.On("GetProductTypeByID", mock.Anything, int64(5)).Return(&storage.ProductType{
		ProductTypeID:   5,
		ProductTypeName: "Кресла",
		Coefficient:     1.2,
	}, nil)

	handler := SaveProductType(slog.Default(), saver)

	body := `{"product_type_name":"Кресла","coefficient":1.2}`
	req := httptest.NewRequest(http.MethodPost, "/api/product-types", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp storage.ProductType
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.ProductTypeID)
	assert.Equal(t, 1.2, resp.Coefficient)

	saver.AssertExpectations(t)
}

func TestSaveProductType_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"без имени", `{"coefficient":1.2}`},
		{"пустое имя", `{"product_type_name":"","coefficient":1.2}`},
		{"без коэффициента", `{"product_type_name":"Кресла"}`},
		{"нулевой коэффициент", `{"product_type_name":"Кресла","coefficient":0}`},
		{"отрицательный коэффициент", `{"product_type_name":"Кресла","coefficient":-1.5}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			saver := new(MockCatalogSaver)

			handler := SaveProductType(slog.Default(), saver)

			req := httptest.NewRequest(http.MethodPost, "/api/product-types", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			saver.AssertNotCalled(t, "CreateProductType")
		})
	}
}

func TestSaveProductType_DuplicateName(t *testing.T) {
	saver := new(MockCatalogSaver)

	saver.On("CreateProductType", mock.Anything, mock.Anything).
		Return(int64(0), fmt.Errorf("storage.mysql.CreateProductType: %w", storage.ErrConflict))

	handler := SaveProductType(slog.Default(), saver)

	body := `{"product_type_name":"Кресла","coefficient":1.2}`
	req := httptest.NewRequest(http.MethodPost, "/api/product-types", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	saver.AssertNotCalled(t, "GetProductTypeByID")
}

func TestSaveMaterialType_NegativeLossAccepted(t *testing.T) {
	saver := new(MockCatalogSaver)

	saver.On("CreateMaterialType", mock.Anything, storage.MaterialType{
		MaterialTypeName: "Переработанный пластик",
		LossPercentage:   -2.0,
	}).Return(int64(3), nil)
	saver.On("GetMaterialTypeByID", mock.Anything, int64(3)).Return(&storage.MaterialType{
		MaterialTypeID:   3,
		MaterialTypeName: "Переработанный пластик",
		LossPercentage:   -2.0,
	}, nil)

	handler := SaveMaterialType(slog.Default(), saver)

	body := `{"material_type_name":"Переработанный пластик","loss_percentage":-2.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/material-types", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	saver.AssertExpectations(t)
}

func TestSaveWorkshop_MissingType(t *testing.T) {
	saver := new(MockCatalogSaver)

	handler := SaveWorkshop(slog.Default(), saver)

	body := `{"workshop_name":"Сборка","staff_count":12}`
	req := httptest.NewRequest(http.MethodPost, "/api/workshops", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	saver.AssertNotCalled(t, "CreateWorkshop")
}
