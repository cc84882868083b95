package remove_proposal_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases"
)

const (
	msgCaseNotFound = "案件が見つかりません"
	msgSlotNotFound = "枠が見つかりません"
)

type Handler struct {
	service CaseService
	logger  Logger
}

func NewHandler(service CaseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/cases/{caseId}/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caseID, slotID := vars["caseId"], vars["slotId"]

	c, err := h.service.RemoveProposalSlot(r.Context(), caseID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, cases.ErrCaseNotFound):
			h.logger.Warn("DELETE /cases/{id}/slots/{slotId} - Case not found: case_id=%s", caseID)
			handlers.RespondNotFound(w, msgCaseNotFound)

		case errors.Is(err, cases.ErrSlotNotFound):
			h.logger.Warn("DELETE /cases/{id}/slots/{slotId} - Slot not found: case_id=%s, slot_id=%s", caseID, slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("DELETE /cases/{id}/slots/{slotId} - Failed to remove slot: case_id=%s, error=%v", caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cases/{id}/slots/{slotId} - Slot removed: case_id=%s, slot_id=%s", caseID, slotID)
	handlers.RespondJSON(w, http.StatusOK, c)
}
