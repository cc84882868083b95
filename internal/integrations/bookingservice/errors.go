package bookingservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")

	// ErrInvalidRange возвращается, когда конец периода раньше начала
	ErrInvalidRange = errors.New("bookingservice client: invalid date range")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что внешняя система недоступна и следует использовать справочник
	ErrServiceDegraded = errors.New("bookingservice unavailable: graceful degradation applied")
)
