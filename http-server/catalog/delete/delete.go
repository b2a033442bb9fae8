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

type CatalogDeleter interface {
	DeleteProductType(ctx context.Context, id int64) error
	DeleteMaterialType(ctx context.Context, id int64) error
	DeleteWorkshop(ctx context.Context, id int64) error
}

func DeleteProductType(log *slog.Logger, deleter CatalogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.delete.DeleteProductType"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id типа продукции")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = deleter.DeleteProductType(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Тип продукции не найден")
			return
		}
		if errors.Is(err, storage.ErrBadReference) {
			response.Error(w, r, http.StatusBadRequest, "На тип продукции ссылаются продукты")
			return
		}
		if err != nil {
			log.Error("Ошибка удаления типа продукции", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		response.OK(w, r, "Тип продукции удален")
	}
}

func DeleteMaterialType(log *slog.Logger, deleter CatalogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.delete.DeleteMaterialType"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id типа материала")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = deleter.DeleteMaterialType(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Тип материала не найден")
			return
		}
		if errors.Is(err, storage.ErrBadReference) {
			response.Error(w, r, http.StatusBadRequest, "На тип материала ссылаются продукты")
			return
		}
		if err != nil {
			log.Error("Ошибка удаления типа материала", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		response.OK(w, r, "Тип материала удален")
	}
}

func DeleteWorkshop(log *slog.Logger, deleter CatalogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.delete.DeleteWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id цеха")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = deleter.DeleteWorkshop(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Цех не найден")
			return
		}
		if errors.Is(err, storage.ErrBadReference) {
			response.Error(w, r, http.StatusBadRequest, "Цех используется в производственных маршрутах")
			return
		}
		if err != nil {
			log.Error("Ошибка удаления цеха", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		response.OK(w, r, "Цех удален")
	}
}
