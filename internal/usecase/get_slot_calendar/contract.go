package get_slot_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// Catalog справочник площадок и бронирований
type Catalog interface {
	ListAreaSlots(ctx context.Context, filter domain.CatalogFilter) ([]domain.AreaSlot, error)
	ListBookings(ctx context.Context, from, to time.Time, filter domain.CatalogFilter) ([]domain.SlotBooking, error)
}

// BookingServiceClient интерфейс клиента внешней системы бронирования
type BookingServiceClient interface {
	GetBookingsWithGracefulDegradation(ctx context.Context, from, to time.Time) ([]domain.SlotBooking, error)
}

// CaseRepository интерфейс репозитория кейсов
type CaseRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Case, error)
}

// MetricsRecorder учёт сбоев внешней системы
type MetricsRecorder interface {
	RecordBookingFetchFailure()
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
