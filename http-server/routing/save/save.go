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

type RouteSaver interface {
	CreateProductWorkshop(ctx context.Context, pw storage.ProductWorkshop) (int64, error)
	GetProductWorkshopByID(ctx context.Context, id int64) (*storage.ProductWorkshop, error)
}

type Request struct {
	ProductID              *int64   `json:"product_id"`
	WorkshopID             *int64   `json:"workshop_id"`
	ManufacturingTimeHours *float64 `json:"manufacturing_time_hours"`
}

func SaveProductWorkshop(log *slog.Logger, saver RouteSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.routing.save.SaveProductWorkshop"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		if req.ProductID == nil || req.WorkshopID == nil || req.ManufacturingTimeHours == nil {
			response.Error(w, r, http.StatusBadRequest, "Отсутствуют обязательные поля")
			return
		}

		if *req.ManufacturingTimeHours <= 0 {
			response.Error(w, r, http.StatusBadRequest, "Время изготовления должно быть больше нуля")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.CreateProductWorkshop(ctx, storage.ProductWorkshop{
			ProductID:              *req.ProductID,
			WorkshopID:             *req.WorkshopID,
			ManufacturingTimeHours: *req.ManufacturingTimeHours,
		})
		if errors.Is(err, storage.ErrBadReference) {
			response.Error(w, r, http.StatusBadRequest, "Указанный продукт или цех не существует")
			return
		}
		if err != nil {
			log.Error("Ошибка сохранения маршрута", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		pw, err := saver.GetProductWorkshopByID(ctx, id)
		if err != nil {
			log.Error("Ошибка чтения созданного маршрута", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, pw)
	}
}
