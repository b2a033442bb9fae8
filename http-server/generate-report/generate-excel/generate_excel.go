package generate_excel

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"furniture-golang/http-server/response"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context) ([]byte, error)
}

func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.generate-report.GenerateReportExcel"

		// На Excel можно побольше времени
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		data, err := gen.GenerateExcel(ctx)
		if err != nil {
			log.Error("Ошибка генерации отчета", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="products_report.xlsx"`)
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(data); err != nil {
			log.Error("Ошибка отправки отчета", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}
