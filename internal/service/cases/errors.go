package cases

import "errors"

var (
	// ErrCaseNotFound возвращается, когда кейс не найден
	ErrCaseNotFound = errors.New("case not found")

	// ErrSlotNotFound возвращается, когда слот не найден в кейсе
	ErrSlotNotFound = errors.New("proposal slot not found")

	// ErrMaterialNotFound возвращается, когда материал не найден в кейсе
	ErrMaterialNotFound = errors.New("material not found")

	// ErrPackNotFound возвращается, когда юбилейный пакет не найден
	ErrPackNotFound = errors.New("anniversary pack not found")

	// ErrPackUnavailable возвращается для чужого, истёкшего или израсходованного пакета
	ErrPackUnavailable = errors.New("anniversary pack is not available for the case")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
