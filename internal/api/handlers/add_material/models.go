package add_material

import (
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
	addMaterial "github.com/m04kA/SMC-BannerCaseService/internal/usecase/add_material"
)

// MaterialRequest HTTP request model
// Файл уже загружен в хранилище, передаются только его метаданные
type MaterialRequest struct {
	SlotID *string `json:"slotId,omitempty"`
	Name   string  `json:"name"`
	URL    string  `json:"url"`
	Size   int64   `json:"size"`   // байты
	Format string  `json:"format"` // "image/png"
	Width  *int    `json:"width,omitempty"`
	Height *int    `json:"height,omitempty"`
}

// MaterialResponse HTTP response model
type MaterialResponse struct {
	Material models.MaterialResponse `json:"material"`
	Case     *models.CaseResponse    `json:"case"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MaterialRequest) ToUseCaseRequest(caseID string) *addMaterial.Request {
	return &addMaterial.Request{
		CaseID: caseID,
		SlotID: r.SlotID,
		Name:   r.Name,
		URL:    r.URL,
		Size:   r.Size,
		Format: r.Format,
		Width:  r.Width,
		Height: r.Height,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addMaterial.Response) *MaterialResponse {
	return &MaterialResponse{
		Material: resp.Material,
		Case:     resp.Case,
	}
}
