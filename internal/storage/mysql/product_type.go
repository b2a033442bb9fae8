package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"furniture-golang/internal/storage"
)

func (s *Storage) GetAllProductTypes(ctx context.Context) ([]storage.ProductType, error) {
	const op = "storage.mysql.GetAllProductTypes"

	stmt := `SELECT product_type_id, product_type_name, product_type_coefficient
		FROM product_types ORDER BY product_type_id`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения всех типов продукции: %w", op, err)
	}
	defer rows.Close()

	var types []storage.ProductType

	for rows.Next() {
		var pt storage.ProductType

		err := rows.Scan(&pt.ProductTypeID, &pt.ProductTypeName, &pt.Coefficient)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		types = append(types, pt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return types, nil
}

func (s *Storage) GetProductTypeByID(ctx context.Context, id int64) (*storage.ProductType, error) {
	const op = "storage.mysql.GetProductTypeByID"

	stmt := `SELECT product_type_id, product_type_name, product_type_coefficient
		FROM product_types WHERE product_type_id = ?`

	var pt storage.ProductType

	err := s.db.QueryRowContext(ctx, stmt, id).Scan(&pt.ProductTypeID, &pt.ProductTypeName, &pt.Coefficient)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: тип продукции id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &pt, nil
}

func (s *Storage) CreateProductType(ctx context.Context, pt storage.ProductType) (int64, error) {
	const op = "storage.mysql.CreateProductType"

	stmt := `INSERT INTO product_types (product_type_name, product_type_coefficient) VALUES (?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, pt.ProductTypeName, pt.Coefficient)
	if err != nil {
		return 0, wrapMySQLError(op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateProductType(ctx context.Context, id int64, upd storage.UpdateProductType) error {
	const op = "storage.mysql.UpdateProductType"

	var sets []string
	var args []interface{}

	if upd.ProductTypeName != nil {
		sets = append(sets, "product_type_name = ?")
		args = append(args, *upd.ProductTypeName)
	}
	if upd.Coefficient != nil {
		sets = append(sets, "product_type_coefficient = ?")
		args = append(args, *upd.Coefficient)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	stmt := `UPDATE product_types SET ` + strings.Join(sets, ", ") + ` WHERE product_type_id = ?`

	// RowsAffected тут не проверяем: MySQL возвращает 0 и при записи
	// тех же значений. Существование проверяет последующий GetProductTypeByID.
	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return wrapMySQLError(op, err)
	}

	return nil
}

func (s *Storage) DeleteProductType(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteProductType"

	res, err := s.db.ExecContext(ctx, `DELETE FROM product_types WHERE product_type_id = ?`, id)
	if err != nil {
		return wrapMySQLError(op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: тип продукции id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
