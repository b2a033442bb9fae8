package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"furniture-golang/internal/storage"
)

func (s *Storage) GetAllProducts(ctx context.Context) ([]storage.ProductView, error) {
	const op = "storage.mysql.GetAllProducts"

	stmt := `SELECT p.product_id, p.article_number, p.product_name,
			p.product_type_id, pt.product_type_name,
			p.material_type_id, mt.material_type_name,
			p.minimum_partner_price
		FROM products p
			JOIN product_types pt ON p.product_type_id = pt.product_type_id
			JOIN material_types mt ON p.material_type_id = mt.material_type_id
		ORDER BY p.product_id`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения всех продуктов: %w", op, err)
	}
	defer rows.Close()

	var products []storage.ProductView

	for rows.Next() {
		var p storage.ProductView

		err := rows.Scan(
			&p.ProductID, &p.ArticleNumber, &p.ProductName,
			&p.ProductTypeID, &p.ProductType,
			&p.MaterialTypeID, &p.MaterialType,
			&p.MinimumPartnerPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return products, nil
}

func (s *Storage) GetProductByID(ctx context.Context, id int64) (*storage.ProductView, error) {
	const op = "storage.mysql.GetProductByID"

	stmt := `SELECT p.product_id, p.article_number, p.product_name,
			p.product_type_id, pt.product_type_name,
			p.material_type_id, mt.material_type_name,
			p.minimum_partner_price
		FROM products p
			JOIN product_types pt ON p.product_type_id = pt.product_type_id
			JOIN material_types mt ON p.material_type_id = mt.material_type_id
		WHERE p.product_id = ?`

	var p storage.ProductView

	err := s.db.QueryRowContext(ctx, stmt, id).Scan(
		&p.ProductID, &p.ArticleNumber, &p.ProductName,
		&p.ProductTypeID, &p.ProductType,
		&p.MaterialTypeID, &p.MaterialType,
		&p.MinimumPartnerPrice,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: продукт id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

func (s *Storage) CreateProduct(ctx context.Context, p storage.Product) (int64, error) {
	const op = "storage.mysql.CreateProduct"

	stmt := `INSERT INTO products
		(product_type_id, product_name, article_number, minimum_partner_price, material_type_id)
		VALUES (?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt,
		p.ProductTypeID, p.ProductName, p.ArticleNumber, p.MinimumPartnerPrice, p.MaterialTypeID)
	if err != nil {
		return 0, wrapMySQLError(op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateProduct(ctx context.Context, id int64, upd storage.UpdateProduct) error {
	const op = "storage.mysql.UpdateProduct"

	var sets []string
	var args []interface{}

	if upd.ProductTypeID != nil {
		sets = append(sets, "product_type_id = ?")
		args = append(args, *upd.ProductTypeID)
	}
	if upd.ProductName != nil {
		sets = append(sets, "product_name = ?")
		args = append(args, *upd.ProductName)
	}
	if upd.ArticleNumber != nil {
		sets = append(sets, "article_number = ?")
		args = append(args, *upd.ArticleNumber)
	}
	if upd.MinimumPartnerPrice != nil {
		sets = append(sets, "minimum_partner_price = ?")
		args = append(args, *upd.MinimumPartnerPrice)
	}
	if upd.MaterialTypeID != nil {
		sets = append(sets, "material_type_id = ?")
		args = append(args, *upd.MaterialTypeID)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	stmt := `UPDATE products SET ` + strings.Join(sets, ", ") + ` WHERE product_id = ?`

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return wrapMySQLError(op, err)
	}

	return nil
}

// DeleteProduct удаляет продукт. Судьбу его производственных маршрутов
// решает политика из конфига: ignore оставляет их как есть, cascade
// удаляет вместе с продуктом, restrict запрещает удаление.
func (s *Storage) DeleteProduct(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteProduct"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	switch s.deletePolicy {
	case "restrict":
		var legs int64
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM product_workshops WHERE product_id = ?`, id).Scan(&legs)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if legs > 0 {
			return fmt.Errorf("%s: продукт id=%d: %w", op, id, storage.ErrInUse)
		}
	case "cascade":
		_, err := tx.ExecContext(ctx,
			`DELETE FROM product_workshops WHERE product_id = ?`, id)
		if err != nil {
			return fmt.Errorf("%s: ошибка удаления маршрутов продукта id=%d: %w", op, id, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE product_id = ?`, id)
	if err != nil {
		return wrapMySQLError(op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: продукт id=%d: %w", op, id, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
