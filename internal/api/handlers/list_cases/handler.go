package list_cases

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

const (
	msgInvalidStatus     = "ステータスが正しくありません"
	msgInvalidQueueParam = "needsAdminReview は true または false で指定してください"
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

// Handle GET /api/v1/cases?status=掲載中&corporateName=...&needsAdminReview=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListCasesRequest{
		CorporateName: query.Get("corporateName"),
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if v := query.Get("needsAdminReview"); v != "" {
		needs, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /cases - Invalid needsAdminReview=%q", v)
			handlers.RespondBadRequest(w, msgInvalidQueueParam)
			return
		}
		req.NeedsAdminReview = needs
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, cases.ErrInvalidInput):
			h.logger.Warn("GET /cases - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /cases - Failed to list cases: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cases - Cases retrieved successfully: total=%d", list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
