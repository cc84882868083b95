package add_proposal_slot

import (
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
	"github.com/m04kA/SMC-BannerCaseService/pkg/types"
)

// Request модель запроса на добавление или изменение слота
type Request struct {
	CaseID     string           // ID кейса
	SlotID     *string          // ID слота для изменения; nil - новый слот
	AreaSlotID *string          // ID площадки из справочника (опционально)
	StartDate  time.Time        // Первый день размещения
	EndDate    time.Time        // Последний день размещения
	StartTime  types.TimeString // Время начала, "10:00"
	EndTime    types.TimeString // Время окончания, "18:00"
	BannerType string           // Тип баннера; пусто - "未定"
}

// Response модель ответа
type Response struct {
	Slot models.SlotResponse  // Сохранённый слот
	Case *models.CaseResponse // Кейс после изменения
}
