package add_material

import "errors"

var (
	// ErrCaseNotFound возвращается, когда кейс не найден
	ErrCaseNotFound = errors.New("add_material: case not found")

	// ErrSlotNotFound возвращается, когда указанный слот отсутствует в кейсе
	ErrSlotNotFound = errors.New("add_material: proposal slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_material: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_material: internal error")
)
