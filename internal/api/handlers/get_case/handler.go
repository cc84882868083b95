package get_case

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

// Handle GET /api/v1/cases/{caseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	c, err := h.service.GetByID(r.Context(), caseID)
	if err != nil {
		switch {
		case errors.Is(err, cases.ErrCaseNotFound):
			h.logger.Warn("GET /cases/{id} - Case not found: case_id=%s", caseID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /cases/{id} - Failed to get case: case_id=%s, error=%v", caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cases/{id} - Case retrieved successfully: case_id=%s", caseID)
	handlers.RespondJSON(w, http.StatusOK, c)
}
