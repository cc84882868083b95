package create_case

import (
	"context"

	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
	createCase "github.com/m04kA/SMC-BannerCaseService/internal/usecase/create_case"
)

type CreateCaseUseCase interface {
	Execute(ctx context.Context, req *createCase.Request) (*models.CaseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
