package bookingservice

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// Booking модель бронирования из внешней системы
type Booking struct {
	ID            string `json:"id"`
	AreaSlotID    string `json:"areaSlotId"`
	BannerType    string `json:"bannerType"`
	HallName      string `json:"hallName"`
	StartDate     string `json:"startDate"` // YYYY-MM-DD
	EndDate       string `json:"endDate"`   // YYYY-MM-DD
	StartHour     int    `json:"startHour"`
	EndHour       int    `json:"endHour"`
	BookingStatus string `json:"bookingStatus"`
}

// BookingsResponse ответ на запрос бронирований
type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

// ErrorResponse модель ошибки от внешней системы
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует бронирование в доменную модель
func (b Booking) ToDomain() (domain.SlotBooking, error) {
	start, err := time.Parse(domain.DateFormat, b.StartDate)
	if err != nil {
		return domain.SlotBooking{}, fmt.Errorf("booking %s startDate: %v", b.ID, err)
	}
	end, err := time.Parse(domain.DateFormat, b.EndDate)
	if err != nil {
		return domain.SlotBooking{}, fmt.Errorf("booking %s endDate: %v", b.ID, err)
	}

	status := domain.BookingStatus(b.BookingStatus)
	if !status.IsValid() {
		return domain.SlotBooking{}, fmt.Errorf("booking %s: unknown status %q", b.ID, b.BookingStatus)
	}

	return domain.SlotBooking{
		ID:            b.ID,
		AreaSlotID:    b.AreaSlotID,
		BannerType:    domain.BannerType(b.BannerType),
		HallName:      b.HallName,
		StartDate:     start,
		EndDate:       end,
		StartHour:     b.StartHour,
		EndHour:       b.EndHour,
		BookingStatus: status,
	}, nil
}
