package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"furniture-golang/internal/storage"
)

func (s *Storage) GetAllWorkshops(ctx context.Context) ([]storage.Workshop, error) {
	const op = "storage.mysql.GetAllWorkshops"

	stmt := `SELECT workshop_id, workshop_name, workshop_type, staff_count
		FROM workshops ORDER BY workshop_id`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения всех цехов: %w", op, err)
	}
	defer rows.Close()

	var workshops []storage.Workshop

	for rows.Next() {
		var w storage.Workshop

		err := rows.Scan(&w.WorkshopID, &w.WorkshopName, &w.WorkshopType, &w.StaffCount)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		workshops = append(workshops, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return workshops, nil
}

func (s *Storage) GetWorkshopByID(ctx context.Context, id int64) (*storage.Workshop, error) {
	const op = "storage.mysql.GetWorkshopByID"

	stmt := `SELECT workshop_id, workshop_name, workshop_type, staff_count
		FROM workshops WHERE workshop_id = ?`

	var w storage.Workshop

	err := s.db.QueryRowContext(ctx, stmt, id).Scan(&w.WorkshopID, &w.WorkshopName, &w.WorkshopType, &w.StaffCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: цех id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &w, nil
}

func (s *Storage) CreateWorkshop(ctx context.Context, w storage.Workshop) (int64, error) {
	const op = "storage.mysql.CreateWorkshop"

	stmt := `INSERT INTO workshops (workshop_name, workshop_type, staff_count) VALUES (?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, w.WorkshopName, w.WorkshopType, w.StaffCount)
	if err != nil {
		return 0, wrapMySQLError(op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateWorkshop(ctx context.Context, id int64, upd storage.UpdateWorkshop) error {
	const op = "storage.mysql.UpdateWorkshop"

	var sets []string
	var args []interface{}

	if upd.WorkshopName != nil {
		sets = append(sets, "workshop_name = ?")
		args = append(args, *upd.WorkshopName)
	}
	if upd.WorkshopType != nil {
		sets = append(sets, "workshop_type = ?")
		args = append(args, *upd.WorkshopType)
	}
	if upd.StaffCount != nil {
		sets = append(sets, "staff_count = ?")
		args = append(args, *upd.StaffCount)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	stmt := `UPDATE workshops SET ` + strings.Join(sets, ", ") + ` WHERE workshop_id = ?`

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return wrapMySQLError(op, err)
	}

	return nil
}

func (s *Storage) DeleteWorkshop(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteWorkshop"

	res, err := s.db.ExecContext(ctx, `DELETE FROM workshops WHERE workshop_id = ?`, id)
	if err != nil {
		return wrapMySQLError(op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: цех id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
