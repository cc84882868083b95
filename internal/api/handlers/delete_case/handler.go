package delete_case

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases"
)

const msgNotFound = "案件が見つかりません"

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

// Handle DELETE /api/v1/cases/{caseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	if err := h.service.Delete(r.Context(), caseID); err != nil {
		switch {
		case errors.Is(err, cases.ErrCaseNotFound):
			h.logger.Warn("DELETE /cases/{id} - Case not found: case_id=%s", caseID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /cases/{id} - Failed to delete case: case_id=%s, error=%v", caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cases/{id} - Case deleted successfully: case_id=%s", caseID)
	handlers.RespondNoContent(w)
}
