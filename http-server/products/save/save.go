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

type ProductSaver interface {
	CreateProduct(ctx context.Context, p storage.Product) (int64, error)
	GetProductByID(ctx context.Context, id int64) (*storage.ProductView, error)
}

// Поля указателями: отличаем отсутствующее поле от нулевого значения.
type Request struct {
	ProductTypeID       *int64   `json:"product_type_id"`
	ProductName         *string  `json:"product_name"`
	ArticleNumber       *int64   `json:"article_number"`
	MinimumPartnerPrice *float64 `json:"minimum_partner_price"`
	MaterialTypeID      *int64   `json:"material_type_id"`
}

func SaveProduct(log *slog.Logger, saver ProductSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.save.SaveProduct"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		if req.ProductTypeID == nil || req.ProductName == nil || req.ArticleNumber == nil ||
			req.MinimumPartnerPrice == nil || req.MaterialTypeID == nil {
			response.Error(w, r, http.StatusBadRequest, "Отсутствуют обязательные поля")
			return
		}

		if *req.MinimumPartnerPrice < 0 {
			response.Error(w, r, http.StatusBadRequest, "Цена не может быть отрицательной")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.CreateProduct(ctx, storage.Product{
			ProductTypeID:       *req.ProductTypeID,
			ProductName:         *req.ProductName,
			ArticleNumber:       *req.ArticleNumber,
			MinimumPartnerPrice: *req.MinimumPartnerPrice,
			MaterialTypeID:      *req.MaterialTypeID,
		})
		if errors.Is(err, storage.ErrConflict) {
			response.Error(w, r, http.StatusBadRequest, "Продукт с таким именем или артикулом уже существует")
			return
		}
		if errors.Is(err, storage.ErrBadReference) {
			response.Error(w, r, http.StatusBadRequest, "Указанный тип продукции или материала не существует")
			return
		}
		if err != nil {
			log.Error("Ошибка сохранения продукта", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		product, err := saver.GetProductByID(ctx, id)
		if err != nil {
			log.Error("Ошибка чтения созданного продукта", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		log.Info("Продукт создан", slog.Int64("id", id), slog.String("name", product.ProductName))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, product)
	}
}
