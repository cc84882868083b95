package workflow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// CaseRepository интерфейс репозитория кейсов
type CaseRepository interface {
	Update(ctx context.Context, id string, fn func(c *domain.Case) error) (*domain.Case, error)
}

// MetricsRecorder учёт переходов workflow
type MetricsRecorder interface {
	RecordTransition(action, result string)
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
