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
	"furniture-golang/internal/metrics"
	"furniture-golang/internal/service/manufacturing"
	"furniture-golang/internal/storage"
)

type ProductProvider interface {
	GetAllProducts(ctx context.Context) ([]storage.ProductView, error)
	GetProductByID(ctx context.Context, id int64) (*storage.ProductView, error)
	GetWorkshopsForProduct(ctx context.Context, productID int64) ([]storage.WorkshopLeg, error)
}

type TimeCalculator interface {
	CalculateManufacturingTime(ctx context.Context, productID int64) (int64, error)
}

// GetProducts отдает все продукты, каждый с подсчитанным временем
// изготовления. Продукт без маршрутов получает -1, как и раньше.
func GetProducts(log *slog.Logger, provider ProductProvider, calc TimeCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.get.GetProducts"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		products, err := provider.GetAllProducts(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении продуктов")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		for i := range products {
			hours, err := calc.CalculateManufacturingTime(ctx, products[i].ProductID)
			if errors.Is(err, manufacturing.ErrNoWorkshops) {
				hours = -1
			} else if err != nil {
				log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка расчета времени изготовления")
				response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
				return
			}
			products[i].ManufacturingTimeHours = hours
		}

		if products == nil {
			products = []storage.ProductView{}
		}

		render.JSON(w, r, products)
	}
}

func GetProductByID(log *slog.Logger, provider ProductProvider, calc TimeCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.get.GetProductByID"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id продукта")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		product, err := provider.GetProductByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Продукт не найден")
			return
		}
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении продукта")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		hours, err := calc.CalculateManufacturingTime(ctx, id)
		if errors.Is(err, manufacturing.ErrNoWorkshops) {
			hours = -1
			metrics.CalculationsTotal.WithLabelValues(metrics.KindManufacturingTime, metrics.OutcomeInvalid).Inc()
		} else if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка расчета времени изготовления")
			metrics.CalculationsTotal.WithLabelValues(metrics.KindManufacturingTime, metrics.OutcomeError).Inc()
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		} else {
			metrics.CalculationsTotal.WithLabelValues(metrics.KindManufacturingTime, metrics.OutcomeOK).Inc()
		}
		product.ManufacturingTimeHours = hours

		render.JSON(w, r, product)
	}
}

type ProductWorkshopsResponse struct {
	ProductID                   int64                 `json:"product_id"`
	ProductName                 string                `json:"product_name"`
	Workshops                   []storage.WorkshopLeg `json:"workshops"`
	TotalManufacturingTimeHours int64                 `json:"total_manufacturing_time_hours"`
}

// GetProductWorkshops отдает маршрут продукта по цехам и суммарное время.
func GetProductWorkshops(log *slog.Logger, provider ProductProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.products.get.GetProductWorkshops"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некорректный id продукта")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		product, err := provider.GetProductByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, "Продукт не найден")
			return
		}
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении продукта")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		legs, err := provider.GetWorkshopsForProduct(ctx, id)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Ошибка при получении цехов продукта")
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		var total float64
		for _, leg := range legs {
			total += leg.ManufacturingTimeHours
		}

		if legs == nil {
			legs = []storage.WorkshopLeg{}
		}

		render.JSON(w, r, ProductWorkshopsResponse{
			ProductID:                   product.ProductID,
			ProductName:                 product.ProductName,
			Workshops:                   legs,
			TotalManufacturingTimeHours: manufacturing.RoundHours(total),
		})
	}
}
