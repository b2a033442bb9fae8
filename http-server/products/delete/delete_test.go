package delete

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"furniture-golang/internal/storage"
)

type MockProductDeleter struct {
	mock.Mock
}

func (m *MockProductDeleter) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestDeleteProduct_Success(t *testing.T) {
	deleter := new(MockProductDeleter)
	deleter.On("DeleteProduct", mock.Anything, int64(1)).Return(nil)

	router := chi.NewRouter()
	router.Delete("/api/products/{id}", DeleteProduct(slog.Default(), deleter))

	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	deleter.AssertExpectations(t)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	deleter := new(MockProductDeleter)
	deleter.On("DeleteProduct", mock.Anything, int64(99)).
		Return(fmt.Errorf("storage.mysql.DeleteProduct: %w", storage.ErrNotFound))

	router := chi.NewRouter()
	router.Delete("/api/products/{id}", DeleteProduct(slog.Default(), deleter))

	req := httptest.NewRequest(http.MethodDelete, "/api/products/99", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteProduct_RestrictedByRoutes(t *testing.T) {
	// Под политикой restrict хранилище возвращает ErrInUse — наружу 400
	deleter := new(MockProductDeleter)
	deleter.On("DeleteProduct", mock.Anything, int64(1)).
		Return(fmt.Errorf("storage.mysql.DeleteProduct: %w", storage.ErrInUse))

	router := chi.NewRouter()
	router.Delete("/api/products/{id}", DeleteProduct(slog.Default(), deleter))

	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteProduct_StorageFault(t *testing.T) {
	deleter := new(MockProductDeleter)
	deleter.On("DeleteProduct", mock.Anything, int64(1)).Return(errors.New("база недоступна"))

	router := chi.NewRouter()
	router.Delete("/api/products/{id}", DeleteProduct(slog.Default(), deleter))

	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
