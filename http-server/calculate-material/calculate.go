package calculate_material

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"furniture-golang/internal/metrics"
	"furniture-golang/internal/service/manufacturing"
	"furniture-golang/internal/storage"
)

type RawMaterialCalculator interface {
	CalculateRawMaterial(ctx context.Context, req manufacturing.RawMaterialRequest) (int64, error)
}

type Request struct {
	ProductTypeID  int64   `json:"product_type_id"`
	MaterialTypeID int64   `json:"material_type_id"`
	Quantity       int64   `json:"quantity"`
	Parameter1     float64 `json:"parameter1"`
	Parameter2     float64 `json:"parameter2"`
}

// Response несет рядом с ошибкой сторожевое значение -1 — старые клиенты
// смотрят только на число.
type Response struct {
	Success             bool   `json:"success"`
	Error               string `json:"error,omitempty"`
	RawMaterialQuantity int64  `json:"raw_material_quantity"`
}

func CalculateRawMaterial(log *slog.Logger, calc RawMaterialCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculate-material.CalculateRawMaterial"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// Нечисловой parameter1 — это тоже кривой ввод, а не 500
			log.Warn("Некорректный JSON в запросе расчета сырья",
				slog.String("op", op), slog.String("error", err.Error()))
			metrics.CalculationsTotal.WithLabelValues(metrics.KindRawMaterial, metrics.OutcomeInvalid).Inc()
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{
				Success:             false,
				Error:               "Некорректный JSON: " + err.Error(),
				RawMaterialQuantity: -1,
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := calc.CalculateRawMaterial(ctx, manufacturing.RawMaterialRequest{
			ProductTypeID:  req.ProductTypeID,
			MaterialTypeID: req.MaterialTypeID,
			Quantity:       req.Quantity,
			Parameter1:     req.Parameter1,
			Parameter2:     req.Parameter2,
		})
		// Несуществующий тип наружу отдаем тем же каналом, что и кривой
		// ввод: контракт -1 для старых клиентов.
		if errors.Is(err, manufacturing.ErrInvalidInput) || errors.Is(err, storage.ErrNotFound) {
			log.Warn("Отклонен расчет сырья", slog.String("op", op), slog.String("error", err.Error()))
			metrics.CalculationsTotal.WithLabelValues(metrics.KindRawMaterial, metrics.OutcomeInvalid).Inc()
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{
				Success:             false,
				Error:               "Некорректные параметры. Проверь: product_type_id, material_type_id, quantity, parameter1, parameter2 (все больше нуля)",
				RawMaterialQuantity: -1,
			})
			return
		}
		if err != nil {
			log.Error("Ошибка расчета сырья", slog.String("op", op), slog.String("error", err.Error()))
			metrics.CalculationsTotal.WithLabelValues(metrics.KindRawMaterial, metrics.OutcomeError).Inc()
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{
				Success:             false,
				Error:               err.Error(),
				RawMaterialQuantity: -1,
			})
			return
		}

		metrics.CalculationsTotal.WithLabelValues(metrics.KindRawMaterial, metrics.OutcomeOK).Inc()
		render.JSON(w, r, Response{
			Success:             true,
			RawMaterialQuantity: result,
		})
	}
}
