package cases

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// CaseRepository интерфейс репозитория кейсов
type CaseRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context, filter domain.CaseFilter) ([]*domain.Case, error)
	Update(ctx context.Context, id string, fn func(c *domain.Case) error) (*domain.Case, error)
	Delete(ctx context.Context, id string) error
}

// PackCatalog справочник юбилейных пакетов
type PackCatalog interface {
	ListAnniversaryPacks(ctx context.Context, corporateName string) ([]domain.AnniversaryPack, error)
	GetAnniversaryPack(ctx context.Context, id string) (domain.AnniversaryPack, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
