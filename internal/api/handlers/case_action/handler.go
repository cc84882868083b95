package case_action

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/workflow"
)

const (
	msgInvalidRequestBody = "リクエストの形式が正しくありません"
	msgCaseNotFound       = "案件が見つかりません"
	msgUnknownAction      = "不明な操作です"
	msgInvalidTransition  = "現在のステータスではこの操作はできません"
	msgCommentRequired    = "差し戻し理由を入力してください"
	msgInvalidInput       = "入力内容に誤りがあります"
)

type Handler struct {
	service WorkflowService
	logger  Logger
}

func NewHandler(service WorkflowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cases/{caseId}/actions/{action}
// Тело опционально: {"comment": "..."} для reject, {"reason": "..."} для request-stop
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caseID, action := vars["caseId"], vars["action"]

	var req models.TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /cases/{id}/actions/%s - Invalid request body: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Action = action

	c, err := h.service.Execute(r.Context(), caseID, &req)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrCaseNotFound):
			h.logger.Warn("POST /cases/{id}/actions/%s - Case not found: case_id=%s", action, caseID)
			handlers.RespondNotFound(w, msgCaseNotFound)

		case errors.Is(err, workflow.ErrUnknownAction):
			h.logger.Warn("POST /cases/{id}/actions/%s - Unknown action: case_id=%s", action, caseID)
			handlers.RespondNotFound(w, msgUnknownAction)

		case errors.Is(err, workflow.ErrInvalidTransition):
			h.logger.Warn("POST /cases/{id}/actions/%s - Invalid transition: case_id=%s, error=%v", action, caseID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, workflow.ErrCommentRequired):
			h.logger.Warn("POST /cases/{id}/actions/%s - Comment required: case_id=%s", action, caseID)
			handlers.RespondBadRequest(w, msgCommentRequired)

		case errors.Is(err, workflow.ErrInvalidInput):
			h.logger.Warn("POST /cases/{id}/actions/%s - Invalid input: case_id=%s, error=%v", action, caseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cases/{id}/actions/%s - Failed: case_id=%s, error=%v", action, caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cases/{id}/actions/%s - Case updated: case_id=%s, status=%s", action, caseID, c.Status)
	handlers.RespondJSON(w, http.StatusOK, c)
}
