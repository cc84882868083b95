package get_case

import (
	"context"

	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

type CaseService interface {
	GetByID(ctx context.Context, id string) (*models.CaseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
