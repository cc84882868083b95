package case_action

import (
	"context"

	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

type WorkflowService interface {
	Execute(ctx context.Context, caseID string, req *models.TransitionRequest) (*models.CaseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
