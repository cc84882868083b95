package list_area_slots

import (
	"context"

	"github.com/m04kA/SMC-BannerCaseService/internal/service/catalog/models"
)

type CatalogService interface {
	ListAreaSlots(ctx context.Context, prefecture string) (*models.AreaSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
