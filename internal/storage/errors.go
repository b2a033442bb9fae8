package storage

import "errors"

var (
	// ErrNotFound — запись с таким id отсутствует.
	ErrNotFound = errors.New("запись не найдена")

	// ErrConflict — нарушение уникальности (имя, артикул).
	ErrConflict = errors.New("такая запись уже существует")

	// ErrBadReference — ссылка на несуществующий тип/продукт/цех.
	ErrBadReference = errors.New("связанная запись не существует")

	// ErrInUse — удаление запрещено политикой restrict: на продукт
	// ссылаются производственные маршруты.
	ErrInUse = errors.New("запись используется в производственных маршрутах")
)
