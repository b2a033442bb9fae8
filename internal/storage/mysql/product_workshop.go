package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"furniture-golang/internal/storage"
)

func (s *Storage) GetAllProductWorkshops(ctx context.Context) ([]storage.ProductWorkshopView, error) {
	const op = "storage.mysql.GetAllProductWorkshops"

	stmt := `SELECT pw.product_workshop_id, pw.product_id, pw.workshop_id,
			pw.manufacturing_time_hours, p.product_name, w.workshop_name
		FROM product_workshops pw
			JOIN products p ON pw.product_id = p.product_id
			JOIN workshops w ON pw.workshop_id = w.workshop_id
		ORDER BY pw.product_id, pw.workshop_id`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения всех маршрутов: %w", op, err)
	}
	defer rows.Close()

	var routes []storage.ProductWorkshopView

	for rows.Next() {
		var pw storage.ProductWorkshopView

		err := rows.Scan(&pw.ProductWorkshopID, &pw.ProductID, &pw.WorkshopID,
			&pw.ManufacturingTimeHours, &pw.ProductName, &pw.WorkshopName)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		routes = append(routes, pw)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return routes, nil
}

func (s *Storage) GetProductWorkshopByID(ctx context.Context, id int64) (*storage.ProductWorkshop, error) {
	const op = "storage.mysql.GetProductWorkshopByID"

	stmt := `SELECT product_workshop_id, product_id, workshop_id, manufacturing_time_hours
		FROM product_workshops WHERE product_workshop_id = ?`

	var pw storage.ProductWorkshop

	err := s.db.QueryRowContext(ctx, stmt, id).Scan(
		&pw.ProductWorkshopID, &pw.ProductID, &pw.WorkshopID, &pw.ManufacturingTimeHours)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: маршрут id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &pw, nil
}

// GetWorkshopsForProduct возвращает цеха маршрута продукта вместе с
// временем нахождения в каждом. Пустой результат — не ошибка.
func (s *Storage) GetWorkshopsForProduct(ctx context.Context, productID int64) ([]storage.WorkshopLeg, error) {
	const op = "storage.mysql.GetWorkshopsForProduct"

	stmt := `SELECT pw.product_workshop_id, w.workshop_id, w.workshop_name,
			w.workshop_type, w.staff_count, pw.manufacturing_time_hours
		FROM product_workshops pw
			JOIN workshops w ON pw.workshop_id = w.workshop_id
		WHERE pw.product_id = ?
		ORDER BY pw.product_workshop_id`

	rows, err := s.db.QueryContext(ctx, stmt, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения цехов продукта id=%d: %w", op, productID, err)
	}
	defer rows.Close()

	var legs []storage.WorkshopLeg

	for rows.Next() {
		var leg storage.WorkshopLeg

		err := rows.Scan(&leg.ProductWorkshopID, &leg.WorkshopID, &leg.WorkshopName,
			&leg.WorkshopType, &leg.StaffCount, &leg.ManufacturingTimeHours)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		legs = append(legs, leg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return legs, nil
}

func (s *Storage) CreateProductWorkshop(ctx context.Context, pw storage.ProductWorkshop) (int64, error) {
	const op = "storage.mysql.CreateProductWorkshop"

	stmt := `INSERT INTO product_workshops (product_id, workshop_id, manufacturing_time_hours)
		VALUES (?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, pw.ProductID, pw.WorkshopID, pw.ManufacturingTimeHours)
	if err != nil {
		return 0, wrapMySQLError(op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateProductWorkshop(ctx context.Context, id int64, upd storage.UpdateProductWorkshop) error {
	const op = "storage.mysql.UpdateProductWorkshop"

	var sets []string
	var args []interface{}

	if upd.ProductID != nil {
		sets = append(sets, "product_id = ?")
		args = append(args, *upd.ProductID)
	}
	if upd.WorkshopID != nil {
		sets = append(sets, "workshop_id = ?")
		args = append(args, *upd.WorkshopID)
	}
	if upd.ManufacturingTimeHours != nil {
		sets = append(sets, "manufacturing_time_hours = ?")
		args = append(args, *upd.ManufacturingTimeHours)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	stmt := `UPDATE product_workshops SET ` + strings.Join(sets, ", ") + ` WHERE product_workshop_id = ?`

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return wrapMySQLError(op, err)
	}

	return nil
}

func (s *Storage) DeleteProductWorkshop(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteProductWorkshop"

	res, err := s.db.ExecContext(ctx, `DELETE FROM product_workshops WHERE product_workshop_id = ?`, id)
	if err != nil {
		return wrapMySQLError(op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: маршрут id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
