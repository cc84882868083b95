package domain

import "errors"

var (
	// ErrInvalidTransition возвращается, когда предусловие перехода не выполнено
	ErrInvalidTransition = errors.New("domain: invalid case transition")

	// ErrCommentRequired возвращается при отклонении без комментария
	ErrCommentRequired = errors.New("domain: rejection comment is required")

	// ErrMalformedSlot возвращается для слота с концом раньше начала
	ErrMalformedSlot = errors.New("domain: malformed proposal slot")

	// ErrSlotNotFound возвращается, когда слот не найден в кейсе
	ErrSlotNotFound = errors.New("domain: proposal slot not found")

	// ErrMaterialNotFound возвращается, когда материал не найден в кейсе
	ErrMaterialNotFound = errors.New("domain: material not found")

	// ErrInvariantViolated возвращается, когда состояние кейса противоречиво
	ErrInvariantViolated = errors.New("domain: case invariant violated")

	// ErrUnknownAction возвращается для неизвестного действия workflow
	ErrUnknownAction = errors.New("domain: unknown workflow action")
)
