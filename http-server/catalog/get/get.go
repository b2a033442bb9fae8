package get

import (
	"context"
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

type CatalogProvider interface {
	GetAllProductTypes(ctx context.Context) ([]storage.ProductType, error)
	GetProductTypeByID(ctx context.Context, id int64) (*storage.ProductType, error)
	GetAllMaterialTypes(ctx context.Context) ([]storage.MaterialType, error)
	GetMaterialTypeByID(ctx context.Context, id int64) (*storage.MaterialType, error)
	GetAllWorkshops(ctx context.Context) ([]storage.Workshop, error)
	GetWorkshopByID(ctx context.Context, id int64) (*storage.Workshop, error)
}

func GetProductTypes(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.get.GetProductTypes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		types, err := provider.GetAllProductTypes(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении типов продукции")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		if types == nil {
			types = []storage.ProductType{}
		}

		render.JSON(w, r, types)
	}
}

func GetProductTypeByID(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.get.GetProductTypeByID"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id типа продукции")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		pt, err := provider.GetProductTypeByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Тип продукции не найден")
			return
		}
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении типа продукции")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.JSON(w, r, pt)
	}
}

func GetMaterialTypes(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.get.GetMaterialTypes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		types, err := provider.GetAllMaterialTypes(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении типов материалов")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		if types == nil {
			types = []storage.MaterialType{}
		}

		render.JSON(w, r, types)
	}
}

func GetMaterialTypeByID(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.get.GetMaterialTypeByID"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id типа материала")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		mt, err := provider.GetMaterialTypeByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Тип материала не найден")
			return
		}
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении типа материала")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.JSON(w, r, mt)
	}
}

func GetWorkshops(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.get.GetWorkshops"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		workshops, err := provider.GetAllWorkshops(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении цехов")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		if workshops == nil {
			workshops = []storage.Workshop{}
		}

		render.JSON(w, r, workshops)
	}
}

func GetWorkshopByID(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.get.GetWorkshopByID"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id цеха")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		workshop, err := provider.GetWorkshopByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Цех не найден")
			return
		}
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении цеха")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.JSON(w, r, workshop)
	}
}
