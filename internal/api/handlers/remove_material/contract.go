package remove_material

import (
	"context"

	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

type CaseService interface {
	RemoveMaterial(ctx context.Context, caseID, materialID string) (*models.CaseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
