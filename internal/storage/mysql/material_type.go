package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"furniture-golang/internal/storage"
)

func (s *Storage) GetAllMaterialTypes(ctx context.Context) ([]storage.MaterialType, error) {
	const op = "storage.mysql.GetAllMaterialTypes"

	stmt := `SELECT material_type_id, material_type_name, raw_material_loss_percent
		FROM material_types ORDER BY material_type_id`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения всех типов материалов: %w", op, err)
	}
	defer rows.Close()

	var types []storage.MaterialType

	for rows.Next() {
		var mt storage.MaterialType

		err := rows.Scan(&mt.MaterialTypeID, &mt.MaterialTypeName, &mt.LossPercentage)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		types = append(types, mt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return types, nil
}

func (s *Storage) GetMaterialTypeByID(ctx context.Context, id int64) (*storage.MaterialType, error) {
	const op = "storage.mysql.GetMaterialTypeByID"

	stmt := `SELECT material_type_id, material_type_name, raw_material_loss_percent
		FROM material_types WHERE material_type_id = ?`

	var mt storage.MaterialType

	err := s.db.QueryRowContext(ctx, stmt, id).Scan(&mt.MaterialTypeID, &mt.MaterialTypeName, &mt.LossPercentage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: тип материала id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &mt, nil
}

func (s *Storage) CreateMaterialType(ctx context.Context, mt storage.MaterialType) (int64, error) {
	const op = "storage.mysql.CreateMaterialType"

	stmt := `INSERT INTO material_types (material_type_name, raw_material_loss_percent) VALUES (?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, mt.MaterialTypeName, mt.LossPercentage)
	if err != nil {
		return 0, wrapMySQLError(op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateMaterialType(ctx context.Context, id int64, upd storage.UpdateMaterialType) error {
	const op = "storage.mysql.UpdateMaterialType"

	var sets []string
	var args []interface{}

	if upd.MaterialTypeName != nil {
		sets = append(sets, "material_type_name = ?")
		args = append(args, *upd.MaterialTypeName)
	}
	if upd.LossPercentage != nil {
		sets = append(sets, "raw_material_loss_percent = ?")
		args = append(args, *upd.LossPercentage)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	stmt := `UPDATE material_types SET ` + strings.Join(sets, ", ") + ` WHERE material_type_id = ?`

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return wrapMySQLError(op, err)
	}

	return nil
}

func (s *Storage) DeleteMaterialType(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteMaterialType"

	res, err := s.db.ExecContext(ctx, `DELETE FROM material_types WHERE material_type_id = ?`, id)
	if err != nil {
		return wrapMySQLError(op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: тип материала id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
