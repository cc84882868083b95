package workflow

import "errors"

var (
	// ErrCaseNotFound возвращается, когда кейс не найден
	ErrCaseNotFound = errors.New("workflow: case not found")

	// ErrInvalidTransition возвращается, когда действие недопустимо в текущем состоянии
	ErrInvalidTransition = errors.New("workflow: invalid transition")

	// ErrCommentRequired возвращается при отклонении без комментария
	ErrCommentRequired = errors.New("workflow: rejection comment is required")

	// ErrUnknownAction возвращается для неизвестного действия
	ErrUnknownAction = errors.New("workflow: unknown action")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("workflow: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("workflow: internal error")
)
