package remove_material

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases"
)

const (
	msgCaseNotFound     = "案件が見つかりません"
	msgMaterialNotFound = "素材が見つかりません"
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

// Handle DELETE /api/v1/cases/{caseId}/materials/{materialId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caseID, materialID := vars["caseId"], vars["materialId"]

	c, err := h.service.RemoveMaterial(r.Context(), caseID, materialID)
	if err != nil {
		switch {
		case errors.Is(err, cases.ErrCaseNotFound):
			h.logger.Warn("DELETE /cases/{id}/materials/{materialId} - Case not found: case_id=%s", caseID)
			handlers.RespondNotFound(w, msgCaseNotFound)

		case errors.Is(err, cases.ErrMaterialNotFound):
			h.logger.Warn("DELETE /cases/{id}/materials/{materialId} - Material not found: case_id=%s, material_id=%s", caseID, materialID)
			handlers.RespondNotFound(w, msgMaterialNotFound)

		default:
			h.logger.Error("DELETE /cases/{id}/materials/{materialId} - Failed to remove material: case_id=%s, error=%v", caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cases/{id}/materials/{materialId} - Material removed: case_id=%s, material_id=%s", caseID, materialID)
	handlers.RespondJSON(w, http.StatusOK, c)
}
