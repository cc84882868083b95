package add_proposal_slot

import "errors"

var (
	// ErrCaseNotFound возвращается, когда кейс не найден
	ErrCaseNotFound = errors.New("add_proposal_slot: case not found")

	// ErrSlotNotFound возвращается, когда обновляемый слот не найден в кейсе
	ErrSlotNotFound = errors.New("add_proposal_slot: proposal slot not found")

	// ErrAreaSlotNotFound возвращается, когда площадка отсутствует в справочнике
	ErrAreaSlotNotFound = errors.New("add_proposal_slot: area slot not found")

	// ErrMalformedSlot возвращается, когда конец слота не позже начала
	ErrMalformedSlot = errors.New("add_proposal_slot: malformed slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_proposal_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_proposal_slot: internal error")
)
