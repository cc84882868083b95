package add_proposal_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	addSlot "github.com/m04kA/SMC-BannerCaseService/internal/usecase/add_proposal_slot"
)

const (
	msgInvalidRequestBody = "リクエストの形式が正しくありません"
	msgInvalidDateTime    = "日付は YYYY-MM-DD、時刻は HH:MM 形式で入力してください"
	msgMalformedSlot      = "終了日時は開始日時より後に設定してください"
	msgInvalidInput       = "入力内容に誤りがあります"
	msgCaseNotFound       = "案件が見つかりません"
	msgSlotNotFound       = "枠が見つかりません"
	msgAreaSlotNotFound   = "エリア枠が見つかりません"
)

type Handler struct {
	useCase AddProposalSlotUseCase
	logger  Logger
}

func NewHandler(useCase AddProposalSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cases/{caseId}/slots
// Handle PUT /api/v1/cases/{caseId}/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caseID := vars["caseId"]

	var slotID *string
	if id, ok := vars["slotId"]; ok {
		slotID = &id
	}

	var req SlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s /cases/{id}/slots - Invalid request body: %v", r.Method, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(caseID, slotID)
	if err != nil {
		h.logger.Warn("%s /cases/{id}/slots - Failed to parse request: %v", r.Method, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, addSlot.ErrCaseNotFound):
			h.logger.Warn("%s /cases/{id}/slots - Case not found: case_id=%s", r.Method, caseID)
			handlers.RespondNotFound(w, msgCaseNotFound)

		case errors.Is(err, addSlot.ErrSlotNotFound):
			h.logger.Warn("%s /cases/{id}/slots - Slot not found: case_id=%s, slot_id=%v", r.Method, caseID, slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, addSlot.ErrAreaSlotNotFound):
			h.logger.Warn("%s /cases/{id}/slots - Area slot not found: case_id=%s, area_slot_id=%v", r.Method, caseID, req.AreaSlotID)
			handlers.RespondNotFound(w, msgAreaSlotNotFound)

		case errors.Is(err, addSlot.ErrMalformedSlot):
			h.logger.Warn("%s /cases/{id}/slots - Malformed slot: case_id=%s, error=%v", r.Method, caseID, err)
			handlers.RespondBadRequest(w, msgMalformedSlot)

		case errors.Is(err, addSlot.ErrInvalidInput):
			h.logger.Warn("%s /cases/{id}/slots - Invalid input: case_id=%s, error=%v", r.Method, caseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s /cases/{id}/slots - Failed to save slot: case_id=%s, error=%v", r.Method, caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if slotID != nil {
		status = http.StatusOK
	}

	h.logger.Info("%s /cases/{id}/slots - Slot saved successfully: case_id=%s, slot_id=%s", r.Method, caseID, result.Slot.ID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
