package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"furniture-golang/http-server/response"
	"furniture-golang/internal/storage"
)

type RouteProvider interface {
	GetAllProductWorkshops(ctx context.Context) ([]storage.ProductWorkshopView, error)
	GetWorkshopsForProduct(ctx context.Context, productID int64) ([]storage.WorkshopLeg, error)
}

// GetProductWorkshops отдает все производственные маршруты с именами
// продукта и цеха.
func GetProductWorkshops(log *slog.Logger, provider RouteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.routing.get.GetProductWorkshops"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		routes, err := provider.GetAllProductWorkshops(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении маршрутов")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		if routes == nil {
			routes = []storage.ProductWorkshopView{}
		}

		render.JSON(w, r, routes)
	}
}

// GetWorkshopsForProduct отдает цеха маршрута одного продукта.
// Продукт без маршрутов — пустой список, не 404.
func GetWorkshopsForProduct(log *slog.Logger, provider RouteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.routing.get.GetWorkshopsForProduct"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id продукта")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		legs, err := provider.GetWorkshopsForProduct(ctx, id)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении цехов продукта")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		if legs == nil {
			legs = []storage.WorkshopLeg{}
		}

		render.JSON(w, r, legs)
	}
}
