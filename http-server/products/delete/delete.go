package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"furniture-golang/http-server/response"
	"furniture-golang/internal/storage"
)

type ProductDeleter interface {
	DeleteProduct(ctx context.Context, id int64) error
}

func DeleteProduct(log *slog.Logger, deleter ProductDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.delete.DeleteProduct"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id продукта")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = deleter.DeleteProduct(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Продукт не найден")
			return
		}
		if errors.Is(err, storage.ErrInUse) {
			response.Error(w, r, http.StatusBadRequest, "Продукт используется в производственных маршрутах")
			return
		}
		if err != nil {
			log.Error("Ошибка удаления продукта", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		log.Info("Продукт удален", slog.Int64("id", id))

		response.OK(w, r, "Продукт удален")
	}
}
