package list_cases

import (
	"context"

	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

type CaseService interface {
	List(ctx context.Context, req *models.ListCasesRequest) (*models.CaseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
