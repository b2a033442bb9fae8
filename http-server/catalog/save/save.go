package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"furniture-golang/http-server/response"
	"furniture-golang/internal/storage"
)

type CatalogSaver interface {
	CreateProductType(ctx context.Context, pt storage.ProductType) (int64, error)
	GetProductTypeByID(ctx context.Context, id int64) (*storage.ProductType, error)
	CreateMaterialType(ctx context.Context, mt storage.MaterialType) (int64, error)
	GetMaterialTypeByID(ctx context.Context, id int64) (*storage.MaterialType, error)
	CreateWorkshop(ctx context.Context, w storage.Workshop) (int64, error)
	GetWorkshopByID(ctx context.Context, id int64) (*storage.Workshop, error)
}

type ProductTypeRequest struct {
	ProductTypeName *string  `json:"product_type_name"`
	Coefficient     *float64 `json:"coefficient"`
}

func SaveProductType(log *slog.Logger, saver CatalogSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.save.SaveProductType"

		var req ProductTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		if req.ProductTypeName == nil || *req.ProductTypeName == "" || req.Coefficient == nil {
			response.Error(w, r, http.StatusBadRequest, "Отсутствуют обязательные поля")
			return
		}

		if *req.Coefficient <= 0 {
			response.Error(w, r, http.StatusBadRequest, "Коэффициент должен быть больше нуля")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.CreateProductType(ctx, storage.ProductType{
			ProductTypeName: *req.ProductTypeName,
			Coefficient:     *req.Coefficient,
		})
		if errors.Is(err, storage.ErrConflict) {
			response.Error(w, r, http.StatusBadRequest, "Тип продукции с таким именем уже существует")
			return
		}
		if err != nil {
			log.Error("Ошибка сохранения типа продукции", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		pt, err := saver.GetProductTypeByID(ctx, id)
		if err != nil {
			log.Error("Ошибка чтения созданного типа продукции", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, pt)
	}
}

type MaterialTypeRequest struct {
	MaterialTypeName *string  `json:"material_type_name"`
	LossPercentage   *float64 `json:"loss_percentage"`
}

func SaveMaterialType(log *slog.Logger, saver CatalogSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.save.SaveMaterialType"

		var req MaterialTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		// Отрицательный процент потерь база примет, жесткой границы нет
		if req.MaterialTypeName == nil || *req.MaterialTypeName == "" || req.LossPercentage == nil {
			response.Error(w, r, http.StatusBadRequest, "Отсутствуют обязательные поля")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.CreateMaterialType(ctx, storage.MaterialType{
			MaterialTypeName: *req.MaterialTypeName,
			LossPercentage:   *req.LossPercentage,
		})
		if errors.Is(err, storage.ErrConflict) {
			response.Error(w, r, http.StatusBadRequest, "Тип материала с таким именем уже существует")
			return
		}
		if err != nil {
			log.Error("Ошибка сохранения типа материала", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		mt, err := saver.GetMaterialTypeByID(ctx, id)
		if err != nil {
			log.Error("Ошибка чтения созданного типа материала", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, mt)
	}
}

type WorkshopRequest struct {
	WorkshopName *string `json:"workshop_name"`
	WorkshopType *string `json:"workshop_type"`
	StaffCount   *int64  `json:"staff_count"`
}

func SaveWorkshop(log *slog.Logger, saver CatalogSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.save.SaveWorkshop"

		var req WorkshopRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		if req.WorkshopName == nil || *req.WorkshopName == "" ||
			req.WorkshopType == nil || *req.WorkshopType == "" || req.StaffCount == nil {
			response.Error(w, r, http.StatusBadRequest, "Отсутствуют обязательные поля")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.CreateWorkshop(ctx, storage.Workshop{
			WorkshopName: *req.WorkshopName,
			WorkshopType: *req.WorkshopType,
			StaffCount:   *req.StaffCount,
		})
		if errors.Is(err, storage.ErrConflict) {
			response.Error(w, r, http.StatusBadRequest, "Цех с таким именем уже существует")
			return
		}
		if err != nil {
			log.Error("Ошибка сохранения цеха", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		workshop, err := saver.GetWorkshopByID(ctx, id)
		if err != nil {
			log.Error("Ошибка чтения созданного цеха", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, workshop)
	}
}
