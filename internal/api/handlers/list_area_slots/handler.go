package list_area_slots

import (
	"net/http"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
)

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

// Handle GET /api/v1/area-slots?prefecture=東京都
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	prefecture := r.URL.Query().Get("prefecture")

	list, err := h.service.ListAreaSlots(r.Context(), prefecture)
	if err != nil {
		h.logger.Error("GET /area-slots - Failed to list area slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /area-slots - Area slots retrieved: prefecture=%q, count=%d", prefecture, len(list.AreaSlots))
	handlers.RespondJSON(w, http.StatusOK, list)
}
