package update_case

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
	msgInvalidInput       = "入力内容に誤りがあります"
	msgNotFound           = "案件が見つかりません"
	msgPackNotFound       = "周年パックが見つかりません"
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

// Handle PATCH /api/v1/cases/{caseId}
// Переданные поля заменяются, остальные не меняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	var req models.UpdateCaseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cases/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	c, err := h.service.Update(r.Context(), caseID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cases.ErrCaseNotFound):
			h.logger.Warn("PATCH /cases/{id} - Case not found: case_id=%s", caseID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cases.ErrPackNotFound):
			h.logger.Warn("PATCH /cases/{id} - Pack not found: case_id=%s", caseID)
			handlers.RespondNotFound(w, msgPackNotFound)

		case errors.Is(err, cases.ErrPackUnavailable):
			h.logger.Warn("PATCH /cases/{id} - Pack unavailable: case_id=%s, error=%v", caseID, err)
			handlers.RespondConflict(w, msgPackUnavailable)

		case errors.Is(err, cases.ErrInvalidInput):
			h.logger.Warn("PATCH /cases/{id} - Invalid input: case_id=%s, error=%v", caseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /cases/{id} - Failed to update case: case_id=%s, error=%v", caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /cases/{id} - Case updated successfully: case_id=%s", caseID)
	handlers.RespondJSON(w, http.StatusOK, c)
}
