package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"furniture-golang/internal/service/manufacturing"
	"furniture-golang/internal/storage"
)

type ReportStorage interface {
	GetAllProducts(ctx context.Context) ([]storage.ProductView, error)
}

type TimeCalculator interface {
	CalculateManufacturingTime(ctx context.Context, productID int64) (int64, error)
}

type ReportService struct {
	storage ReportStorage
	calc    TimeCalculator
}

func NewReportService(storage ReportStorage, calc TimeCalculator) *ReportService {
	return &ReportService{storage: storage, calc: calc}
}

// GenerateExcel собирает каталог продукции в xlsx: продукт, артикул, тип,
// материал, минимальная цена и суммарное время изготовления по цехам.
func (g *ReportService) GenerateExcel(ctx context.Context) ([]byte, error) {
	const op = "service.report.GenerateExcel"

	products, err := g.storage.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения продуктов: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Каталог продукции"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"ID", "Артикул", "Наименование", "Тип продукции", "Материал", "Мин. цена", "Время изготовления, ч"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for i, p := range products {
		row := i + 2

		hours, err := g.calc.CalculateManufacturingTime(ctx, p.ProductID)
		if errors.Is(err, manufacturing.ErrNoWorkshops) {
			hours = -1
		} else if err != nil {
			return nil, fmt.Errorf("%s: время изготовления продукта id=%d: %w", op, p.ProductID, err)
		}

		values := []interface{}{
			p.ProductID,
			p.ArticleNumber,
			p.ProductName,
			p.ProductType,
			p.MaterialType,
			p.MinimumPartnerPrice,
			hours,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "C", "E", 28)
	f.SetColWidth(sheet, "F", "G", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%s: ошибка записи файла: %w", op, err)
	}

	return buf.Bytes(), nil
}
