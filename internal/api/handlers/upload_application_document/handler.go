package upload_application_document

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
	msgURLRequired        = "申込書のURLを指定してください"
	msgCaseNotFound       = "案件が見つかりません"
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

// Handle PUT /api/v1/cases/{caseId}/application-document
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	var req models.UploadDocumentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cases/{id}/application-document - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	c, err := h.service.UploadApplicationDocument(r.Context(), caseID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cases.ErrCaseNotFound):
			h.logger.Warn("PUT /cases/{id}/application-document - Case not found: case_id=%s", caseID)
			handlers.RespondNotFound(w, msgCaseNotFound)

		case errors.Is(err, cases.ErrInvalidInput):
			h.logger.Warn("PUT /cases/{id}/application-document - Invalid input: case_id=%s", caseID)
			handlers.RespondBadRequest(w, msgURLRequired)

		default:
			h.logger.Error("PUT /cases/{id}/application-document - Failed to store document: case_id=%s, error=%v", caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cases/{id}/application-document - Document stored: case_id=%s", caseID)
	handlers.RespondJSON(w, http.StatusOK, c)
}
