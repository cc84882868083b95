package use_anniversary_pack

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

const (
	msgInvalidRequestBody = "リクエストの形式が正しくありません"
	msgCaseNotFound       = "案件が見つかりません"
	msgPackNotFound       = "利用できる周年パックがありません"
	msgPackUnavailable    = "この周年パックは利用できません"
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

// Handle PUT /api/v1/cases/{caseId}/anniversary-pack
// Пустое тело - пакет с ближайшим сроком окончания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	var req models.UseAnniversaryPackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /cases/{id}/anniversary-pack - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	c, err := h.service.UseAnniversaryPack(r.Context(), caseID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cases.ErrCaseNotFound):
			h.logger.Warn("PUT /cases/{id}/anniversary-pack - Case not found: case_id=%s", caseID)
			handlers.RespondNotFound(w, msgCaseNotFound)

		case errors.Is(err, cases.ErrPackNotFound):
			h.logger.Warn("PUT /cases/{id}/anniversary-pack - Pack not found: case_id=%s, pack_id=%v", caseID, req.PackID)
			handlers.RespondNotFound(w, msgPackNotFound)

		case errors.Is(err, cases.ErrPackUnavailable):
			h.logger.Warn("PUT /cases/{id}/anniversary-pack - Pack unavailable: case_id=%s, error=%v", caseID, err)
			handlers.RespondConflict(w, msgPackUnavailable)

		default:
			h.logger.Error("PUT /cases/{id}/anniversary-pack - Failed to link pack: case_id=%s, error=%v", caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cases/{id}/anniversary-pack - Pack linked: case_id=%s, pack=%s", caseID, c.AnniversaryPackCode)
	handlers.RespondJSON(w, http.StatusOK, c)
}
