package add_material

import (
	"context"

	addMaterial "github.com/m04kA/SMC-BannerCaseService/internal/usecase/add_material"
)

type AddMaterialUseCase interface {
	Execute(ctx context.Context, req *addMaterial.Request) (*addMaterial.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
