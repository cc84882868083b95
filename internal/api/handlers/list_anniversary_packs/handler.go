package list_anniversary_packs

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/catalog"
)

const msgCorporateNameRequired = "法人名を指定してください"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/anniversary-packs?corporateName=株式会社サンプル
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	corporateName := r.URL.Query().Get("corporateName")

	list, err := h.service.ListAnniversaryPacks(r.Context(), corporateName)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /anniversary-packs - Missing corporateName")
			handlers.RespondBadRequest(w, msgCorporateNameRequired)

		default:
			h.logger.Error("GET /anniversary-packs - Failed to list packs: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /anniversary-packs - Packs retrieved: corporate_name=%q, count=%d", corporateName, len(list.Packs))
	handlers.RespondJSON(w, http.StatusOK, list)
}
