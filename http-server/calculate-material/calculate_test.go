package calculate_material

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"furniture-golang/internal/service/manufacturing"
	"furniture-golang/internal/storage"
)

type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) CalculateRawMaterial(ctx context.Context, req manufacturing.RawMaterialRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestCalculateRawMaterial_Success(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("CalculateRawMaterial", mock.Anything, manufacturing.RawMaterialRequest{
		ProductTypeID:  1,
		MaterialTypeID: 2,
		Quantity:       10,
		Parameter1:     2.5,
		Parameter2:     3.0,
	}).Return(int64(104), nil)

	handler := CalculateRawMaterial(slog.Default(), mockCalc)

	body := `{"product_type_id":1,"material_type_id":2,"quantity":10,"parameter1":2.5,"parameter2":3.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/material/calculate-raw-material", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(104), resp.RawMaterialQuantity)
	assert.Empty(t, resp.Error)

	mockCalc.AssertExpectations(t)
}

func TestCalculateRawMaterial_ValidationError(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("CalculateRawMaterial", mock.Anything, mock.Anything).
		Return(int64(0), fmt.Errorf("service: %w", manufacturing.ErrInvalidInput))

	handler := CalculateRawMaterial(slog.Default(), mockCalc)

	body := `{"product_type_id":1,"material_type_id":2,"quantity":0,"parameter1":2.5,"parameter2":3.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/material/calculate-raw-material", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, int64(-1), resp.RawMaterialQuantity)
	assert.NotEmpty(t, resp.Error)
}

func TestCalculateRawMaterial_UnknownTypeSameChannel(t *testing.T) {
	// Несуществующий тип продукции наружу уходит как 400 с -1,
	// тем же каналом, что и кривой ввод
	mockCalc := new(MockCalculator)
	mockCalc.On("CalculateRawMaterial", mock.Anything, mock.Anything).
		Return(int64(0), fmt.Errorf("product type: %w", storage.ErrNotFound))

	handler := CalculateRawMaterial(slog.Default(), mockCalc)

	body := `{"product_type_id":777,"material_type_id":2,"quantity":10,"parameter1":2.5,"parameter2":3.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/material/calculate-raw-material", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(-1), resp.RawMaterialQuantity)
}

func TestCalculateRawMaterial_NonNumericParameter(t *testing.T) {
	mockCalc := new(MockCalculator)

	handler := CalculateRawMaterial(slog.Default(), mockCalc)

	body := `{"product_type_id":1,"material_type_id":2,"quantity":10,"parameter1":"abc","parameter2":3.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/material/calculate-raw-material", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	// Нечисловой параметр — это 400 с -1, а не 500
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, int64(-1), resp.RawMaterialQuantity)

	mockCalc.AssertNotCalled(t, "CalculateRawMaterial")
}

func TestCalculateRawMaterial_StorageFault(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("CalculateRawMaterial", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("база недоступна"))

	handler := CalculateRawMaterial(slog.Default(), mockCalc)

	body := `{"product_type_id":1,"material_type_id":2,"quantity":10,"parameter1":2.5,"parameter2":3.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/material/calculate-raw-material", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, int64(-1), resp.RawMaterialQuantity)
}
