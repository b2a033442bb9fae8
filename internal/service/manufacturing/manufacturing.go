package manufacturing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"furniture-golang/internal/storage"
)

var (
	// ErrInvalidInput — параметры расчета не прошли валидацию.
	ErrInvalidInput = errors.New("некорректные параметры расчета")

	// ErrNoWorkshops — у продукта нет ни одного производственного маршрута.
	ErrNoWorkshops = errors.New("для продукта не заданы цеха")
)

type ManufacturingStorage interface {
	GetWorkshopsForProduct(ctx context.Context, productID int64) ([]storage.WorkshopLeg, error)
	GetProductTypeByID(ctx context.Context, id int64) (*storage.ProductType, error)
	GetMaterialTypeByID(ctx context.Context, id int64) (*storage.MaterialType, error)
}

type Service struct {
	storage ManufacturingStorage
}

func NewService(storage ManufacturingStorage) *Service {
	return &Service{storage: storage}
}

// CalculateManufacturingTime считает полное время изготовления продукта:
// сумма часов по всем цехам его маршрута, округленная до целого.
// Продукт без маршрутов — ErrNoWorkshops, а не ноль: часы в маршрутах
// положительные, так что честная нулевая сумма невозможна.
func (s *Service) CalculateManufacturingTime(ctx context.Context, productID int64) (int64, error) {
	const op = "service.manufacturing.CalculateManufacturingTime"

	legs, err := s.storage.GetWorkshopsForProduct(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка получения цехов продукта id=%d: %w", op, productID, err)
	}

	if len(legs) == 0 {
		return 0, fmt.Errorf("%s: продукт id=%d: %w", op, productID, ErrNoWorkshops)
	}

	var total float64
	for _, leg := range legs {
		total += leg.ManufacturingTimeHours
	}

	return RoundHours(total), nil
}

type RawMaterialRequest struct {
	ProductTypeID  int64
	MaterialTypeID int64
	Quantity       int64
	Parameter1     float64
	Parameter2     float64
}

// CalculateRawMaterial считает необходимое количество сырья:
//
//	база      = parameter1 * parameter2 * коэффициент типа продукции
//	итог      = база * quantity * (1 + процент_потерь/100)
//	результат = округление до целого
//
// Валидация идет до любых обращений к базе. Несуществующий тип продукции
// или материала наружу отдается тем же каналом, что и кривой ввод, но
// через errors.Is различим как storage.ErrNotFound.
func (s *Service) CalculateRawMaterial(ctx context.Context, req RawMaterialRequest) (int64, error) {
	const op = "service.manufacturing.CalculateRawMaterial"

	if err := validateRawMaterialRequest(req); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var (
		productType  *storage.ProductType
		materialType *storage.MaterialType
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		productType, err = s.storage.GetProductTypeByID(gCtx, req.ProductTypeID)
		if err != nil {
			return fmt.Errorf("product type: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		materialType, err = s.storage.GetMaterialTypeByID(gCtx, req.MaterialTypeID)
		if err != nil {
			return fmt.Errorf("material type: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	perUnit := req.Parameter1 * req.Parameter2 * productType.Coefficient
	total := perUnit * float64(req.Quantity)

	// Надбавка потерь считается отдельным слагаемым, а не множителем
	// (1 + loss/100): 1.15 в double это 1.1499999..., и 90*1.15 дает
	// 103.49999999999999 вместо 103.5. С отдельным слагаемым
	// 90 + 90*15/100 = 103.5 точно.
	totalWithLoss := total + total*materialType.LossPercentage/100

	return RoundHours(totalWithLoss), nil
}

func validateRawMaterialRequest(req RawMaterialRequest) error {
	if req.ProductTypeID <= 0 {
		return fmt.Errorf("%w: product_type_id должен быть больше нуля", ErrInvalidInput)
	}
	if req.MaterialTypeID <= 0 {
		return fmt.Errorf("%w: material_type_id должен быть больше нуля", ErrInvalidInput)
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity должен быть больше нуля", ErrInvalidInput)
	}
	if !isPositiveNumber(req.Parameter1) {
		return fmt.Errorf("%w: parameter1 должен быть положительным числом", ErrInvalidInput)
	}
	if !isPositiveNumber(req.Parameter2) {
		return fmt.Errorf("%w: parameter2 должен быть положительным числом", ErrInvalidInput)
	}
	return nil
}

func isPositiveNumber(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RoundHours округляет до ближайшего целого; ровно .5 уходит к четному
// (банковское округление, как у исходной платформы: 103.5 -> 104, 102.5 -> 102).
func RoundHours(v float64) int64 {
	return int64(math.RoundToEven(v))
}
