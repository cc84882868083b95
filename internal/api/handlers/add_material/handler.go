package add_material

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerCaseService/internal/api/handlers"
	addMaterial "github.com/m04kA/SMC-BannerCaseService/internal/usecase/add_material"
)

const (
	msgInvalidRequestBody = "リクエストの形式が正しくありません"
	msgInvalidInput       = "入力内容に誤りがあります"
	msgCaseNotFound       = "案件が見つかりません"
	msgSlotNotFound       = "枠が見つかりません"
)

type Handler struct {
	useCase AddMaterialUseCase
	logger  Logger
}

func NewHandler(useCase AddMaterialUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cases/{caseId}/materials
// Материал с ошибками проверки тоже сохраняется (201), ошибки в material.validationErrors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	var req MaterialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cases/{id}/materials - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(caseID))
	if err != nil {
		switch {
		case errors.Is(err, addMaterial.ErrCaseNotFound):
			h.logger.Warn("POST /cases/{id}/materials - Case not found: case_id=%s", caseID)
			handlers.RespondNotFound(w, msgCaseNotFound)

		case errors.Is(err, addMaterial.ErrSlotNotFound):
			h.logger.Warn("POST /cases/{id}/materials - Slot not found: case_id=%s, slot_id=%v", caseID, req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, addMaterial.ErrInvalidInput):
			h.logger.Warn("POST /cases/{id}/materials - Invalid input: case_id=%s, error=%v", caseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cases/{id}/materials - Failed to add material: case_id=%s, error=%v", caseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cases/{id}/materials - Material stored: case_id=%s, material_id=%s, valid=%t",
		caseID, result.Material.ID, result.Material.IsValid)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
