package list_anniversary_packs

import (
	"context"

	"github.com/m04kA/SMC-BannerCaseService/internal/service/catalog/models"
)

type CatalogService interface {
	ListAnniversaryPacks(ctx context.Context, corporateName string) (*models.PackListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
