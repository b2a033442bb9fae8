package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"furniture-golang/http-server/response"
	"furniture-golang/internal/storage"
)

type ProductUpdater interface {
	UpdateProduct(ctx context.Context, id int64, upd storage.UpdateProduct) error
	GetProductByID(ctx context.Context, id int64) (*storage.ProductView, error)
}

// UpdateProduct меняет только присланные поля, остальные не трогает.
func UpdateProduct(log *slog.Logger, updater ProductUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.update.UpdateProduct"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id продукта")
			return
		}

		var upd storage.UpdateProduct
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		if upd.MinimumPartnerPrice != nil && *upd.MinimumPartnerPrice < 0 {
			response.Error(w, r, http.StatusBadRequest, "Цена не может быть отрицательной")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateProduct(ctx, id, upd)
		if errors.Is(err, storage.ErrConflict) {
			response.Error(w, r, http.StatusBadRequest, "Продукт с таким именем или артикулом уже существует")
			return
		}
		if errors.Is(err, storage.ErrBadReference) {
			response.Error(w, r, http.StatusBadRequest, "Указанный тип продукции или материала не существует")
			return
		}
		if err != nil {
			log.Error("Ошибка обновления продукта", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		product, err := updater.GetProductByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Продукт не найден")
			return
		}
		if err != nil {
			log.Error("Ошибка чтения обновленного продукта", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.JSON(w, r, product)
	}
}
