package cases

import "errors"

var (
	// ErrCaseNotFound возвращается, когда кейс не найден
	ErrCaseNotFound = errors.New("cases.repository: case not found")

	// ErrCaseAlreadyExists возвращается при повторном создании кейса с тем же ID
	ErrCaseAlreadyExists = errors.New("cases.repository: case already exists")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("cases.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cases.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cases.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cases.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке (де)сериализации JSONB колонок
	ErrMarshal = errors.New("cases.repository: failed to marshal case data")
)
