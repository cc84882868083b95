package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// Catalog справочник площадок и юбилейных пакетов
type Catalog interface {
	ListAreaSlots(ctx context.Context, filter domain.CatalogFilter) ([]domain.AreaSlot, error)
	ListAnniversaryPacks(ctx context.Context, corporateName string) ([]domain.AnniversaryPack, error)
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
