package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"furniture-golang/internal/config"
	"furniture-golang/internal/storage"
)

type Storage struct {
	db           *sql.DB
	deletePolicy string
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.mysql.New"

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=%v",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.ParseTime,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return &Storage{db: db, deletePolicy: cfg.DeletePolicy}, nil
}

// Bootstrap создает таблицы, если их еще нет. Схема фиксированная,
// никакого определения колонок на лету.
func (s *Storage) Bootstrap(ctx context.Context) error {
	const op = "storage.mysql.Bootstrap"

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS product_types (
			product_type_id INT AUTO_INCREMENT PRIMARY KEY,
			product_type_name VARCHAR(255) NOT NULL UNIQUE,
			product_type_coefficient DECIMAL(10,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS material_types (
			material_type_id INT AUTO_INCREMENT PRIMARY KEY,
			material_type_name VARCHAR(255) NOT NULL UNIQUE,
			raw_material_loss_percent DECIMAL(5,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id INT AUTO_INCREMENT PRIMARY KEY,
			product_type_id INT NOT NULL,
			product_name VARCHAR(500) NOT NULL UNIQUE,
			article_number BIGINT NOT NULL UNIQUE,
			minimum_partner_price DECIMAL(12,2) NOT NULL,
			material_type_id INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			FOREIGN KEY (product_type_id) REFERENCES product_types (product_type_id),
			FOREIGN KEY (material_type_id) REFERENCES material_types (material_type_id)
		)`,
		`CREATE TABLE IF NOT EXISTS workshops (
			workshop_id INT AUTO_INCREMENT PRIMARY KEY,
			workshop_name VARCHAR(255) NOT NULL UNIQUE,
			workshop_type VARCHAR(100) NOT NULL,
			staff_count INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		// product_id без внешнего ключа: при политике ignore маршруты
		// переживают удаление продукта.
		`CREATE TABLE IF NOT EXISTS product_workshops (
			product_workshop_id INT AUTO_INCREMENT PRIMARY KEY,
			product_id INT NOT NULL,
			workshop_id INT NOT NULL,
			manufacturing_time_hours DECIMAL(8,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			FOREIGN KEY (workshop_id) REFERENCES workshops (workshop_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// wrapMySQLError переводит коды ошибок MySQL в ошибки хранилища,
// чтобы обработчики различали конфликт и битую ссылку через errors.Is.
func wrapMySQLError(op string, err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return fmt.Errorf("%s: %w: %s", op, storage.ErrConflict, mysqlErr.Message)
		case mysqlErrRowIsReferenced, mysqlErrNoReferencedRow:
			return fmt.Errorf("%s: %w: %s", op, storage.ErrBadReference, mysqlErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
