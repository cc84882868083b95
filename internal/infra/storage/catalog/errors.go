package catalog

import "errors"

var (
	// ErrAreaSlotNotFound возвращается, когда площадка не найдена
	ErrAreaSlotNotFound = errors.New("catalog.repository: area slot not found")

	// ErrPackNotFound возвращается, когда юбилейный пакет не найден
	ErrPackNotFound = errors.New("catalog.repository: anniversary pack not found")

	// ErrFixture возвращается при ошибке чтения или разбора файла справочника
	ErrFixture = errors.New("catalog.repository: invalid fixture")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
