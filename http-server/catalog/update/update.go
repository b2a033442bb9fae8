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

type CatalogUpdater interface {
	UpdateProductType(ctx context.Context, id int64, upd storage.UpdateProductType) error
	GetProductTypeByID(ctx context.Context, id int64) (*storage.ProductType, error)
	UpdateMaterialType(ctx context.Context, id int64, upd storage.UpdateMaterialType) error
	GetMaterialTypeByID(ctx context.Context, id int64) (*storage.MaterialType, error)
	UpdateWorkshop(ctx context.Context, id int64, upd storage.UpdateWorkshop) error
	GetWorkshopByID(ctx context.Context, id int64) (*storage.Workshop, error)
}

func UpdateProductType(log *slog.Logger, updater CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.update.UpdateProductType"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id типа продукции")
			return
		}

		var upd storage.UpdateProductType
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		if upd.Coefficient != nil && *upd.Coefficient <= 0 {
			response.Error(w, r, http.StatusBadRequest, "Коэффициент должен быть больше нуля")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateProductType(ctx, id, upd)
		if errors.Is(err, storage.ErrConflict) {
			response.Error(w, r, http.StatusBadRequest, "Тип продукции с таким именем уже существует")
			return
		}
		if err != nil {
			log.Error("Ошибка обновления типа продукции", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		pt, err := updater.GetProductTypeByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Тип продукции не найден")
			return
		}
		if err != nil {
			log.Error("Ошибка чтения типа продукции", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.JSON(w, r, pt)
	}
}

func UpdateMaterialType(log *slog.Logger, updater CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.update.UpdateMaterialType"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id типа материала")
			return
		}

		var upd storage.UpdateMaterialType
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateMaterialType(ctx, id, upd)
		if errors.Is(err, storage.ErrConflict) {
			response.Error(w, r, http.StatusBadRequest, "Тип материала с таким именем уже существует")
			return
		}
		if err != nil {
			log.Error("Ошибка обновления типа материала", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		mt, err := updater.GetMaterialTypeByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Тип материала не найден")
			return
		}
		if err != nil {
			log.Error("Ошибка чтения типа материала", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.JSON(w, r, mt)
	}
}

func UpdateWorkshop(log *slog.Logger, updater CatalogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.update.UpdateWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id цеха")
			return
		}

		var upd storage.UpdateWorkshop
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateWorkshop(ctx, id, upd)
		if errors.Is(err, storage.ErrConflict) {
			response.Error(w, r, http.StatusBadRequest, "Цех с таким именем уже существует")
			return
		}
		if err != nil {
			log.Error("Ошибка обновления цеха", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		workshop, err := updater.GetWorkshopByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Цех не найден")
			return
		}
		if err != nil {
			log.Error("Ошибка чтения цеха", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.JSON(w, r, workshop)
	}
}
