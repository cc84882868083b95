package add_material

import "github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"

// Request модель запроса на добавление материала
type Request struct {
	CaseID string  // ID кейса
	SlotID *string // Слот, к которому относится материал (опционально)
	Name   string  // Имя файла
	URL    string  // Ссылка на файл
	Size   int64   // Размер в байтах
	Format string  // MIME тип, например "image/png"
	Width  *int    // Ширина в пикселях (опционально)
	Height *int    // Высота в пикселях (опционально)
}

// Response модель ответа
// Материал сохраняется даже с ошибками проверки, они возвращаются в Material.ValidationErrors
type Response struct {
	Material models.MaterialResponse
	Case     *models.CaseResponse
}
