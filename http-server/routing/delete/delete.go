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

type RouteDeleter interface {
	DeleteProductWorkshop(ctx context.Context, id int64) error
}

func DeleteProductWorkshop(log *slog.Logger, deleter RouteDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.routing.delete.DeleteProductWorkshop"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id маршрута")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = deleter.DeleteProductWorkshop(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Маршрут не найден")
			return
		}
		if err != nil {
			log.Error("Ошибка удаления маршрута", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		response.OK(w, r, "Маршрут удален")
	}
}
