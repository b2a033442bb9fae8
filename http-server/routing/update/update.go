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

type RouteUpdater interface {
	UpdateProductWorkshop(ctx context.Context, id int64, upd storage.UpdateProductWorkshop) error
	GetProductWorkshopByID(ctx context.Context, id int64) (*storage.ProductWorkshop, error)
}

func UpdateProductWorkshop(log *slog.Logger, updater RouteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.routing.update.UpdateProductWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id маршрута")
			return
		}

		var upd storage.UpdateProductWorkshop
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный JSON")
			return
		}

		if upd.ManufacturingTimeHours != nil && *upd.ManufacturingTimeHours <= 0 {
			response.Error(w, r, http.StatusBadRequest, "Время изготовления должно быть больше нуля")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateProductWorkshop(ctx, id, upd)
		if errors.Is(err, storage.ErrBadReference) {
			response.Error(w, r, http.StatusBadRequest, "Указанный продукт или цех не существует")
			return
		}
		if err != nil {
			log.Error("Ошибка обновления маршрута", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		pw, err := updater.GetProductWorkshopByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Маршрут не найден")
			return
		}
		if err != nil {
			log.Error("Ошибка чтения маршрута", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		render.JSON(w, r, pw)
	}
}
