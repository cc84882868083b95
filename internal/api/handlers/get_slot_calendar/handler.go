package get_slot_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	getSlotCalendar "github.com/m04kA/SMC-BannerCaseService/internal/usecase/get_slot_calendar"
)

const (
	msgInvalidInput = "表示条件が正しくありません（month: YYYY-MM, day: YYYY-MM-DD）"
	msgCaseNotFound = "案件が見つかりません"
)

type Handler struct {
	useCase GetSlotCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slot-calendar?month=2026-02&caseId=...&prefecture=東京都
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ToUseCaseRequest(r.URL.Query())

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSlotCalendar.ErrInvalidInput):
			h.logger.Warn("GET /slot-calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getSlotCalendar.ErrCaseNotFound):
			h.logger.Warn("GET /slot-calendar - Case not found: case_id=%v", req.CaseID)
			handlers.RespondNotFound(w, msgCaseNotFound)

		default:
			h.logger.Error("GET /slot-calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slot-calendar - Calendar built: view=%s, rows=%d, source=%s",
		result.View, len(result.Rows), result.BookingsSource)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
