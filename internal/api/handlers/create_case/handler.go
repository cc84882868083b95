package create_case

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	createCase "github.com/m04kA/SMC-BannerCaseService/internal/usecase/create_case"
)

const (
	msgInvalidRequestBody = "リクエストの形式が正しくありません"
	msgInvalidInput       = "法人名と店舗名を入力してください"
)

type Handler struct {
	useCase CreateCaseUseCase
	logger  Logger
}

func NewHandler(useCase CreateCaseUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cases
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createCase.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cases - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createCase.ErrInvalidInput):
			h.logger.Warn("POST /cases - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cases - Failed to create case: corporate_name=%q, error=%v", req.CorporateName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cases - Case created successfully: case_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
