package get_slot_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/pkg/types"
)

const minutesPerDay = 24 * 60

// window видимый диапазон календаря, границы включительно
type window struct {
	view  View
	start time.Time
	end   time.Time
	days  int
}

func monthWindow(month time.Time) window {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return window{view: ViewMonth, start: start, end: end, days: end.Day()}
}

func dayWindow(day time.Time) window {
	d := domain.DateOnly(day)
	return window{view: ViewDay, start: d, end: d, days: 1}
}

// resolveWindow определяет окно по запросу
func resolveWindow(req *Request, now time.Time) (window, error) {
	if req.Day != "" {
		day, err := time.Parse(domain.DateFormat, req.Day)
		if err != nil {
			return window{}, fmt.Errorf("%w: day must be YYYY-MM-DD: %v", ErrInvalidInput, err)
		}
		return dayWindow(day), nil
	}

	if req.Month != "" {
		month, err := time.Parse(domain.MonthFormat, req.Month)
		if err != nil {
			return window{}, fmt.Errorf("%w: month must be YYYY-MM: %v", ErrInvalidInput, err)
		}
		return monthWindow(month), nil
	}

	return monthWindow(now), nil
}

// overlaps returns true if [start, end] shares at least one day with the window
func (w window) overlaps(start, end time.Time) bool {
	return domain.RangesOverlap(start, end, w.start, w.end)
}

// dayIndex номер дня внутри окна, с 1
func (w window) dayIndex(t time.Time) int {
	return int(domain.DateOnly(t).Sub(w.start).Hours()/24) + 1
}

// place вычисляет положение полосы
// startMinute/endMinute - ежедневное время начала и окончания
// В дневном виде полоса на каждом покрытом дне занимает одни и те же часы
func (w window) place(bar *Bar, startMinute, endMinute int) {
	effectiveStart := domain.DateOnly(bar.StartDate)
	if effectiveStart.Before(w.start) {
		effectiveStart = w.start
	}
	effectiveEnd := domain.DateOnly(bar.EndDate)
	if effectiveEnd.After(w.end) {
		effectiveEnd = w.end
	}

	bar.StartDay = w.dayIndex(effectiveStart)
	bar.EndDay = w.dayIndex(effectiveEnd)

	if w.view == ViewDay {
		span := endMinute - startMinute
		if span < 0 {
			span = 0
		}
		bar.Offset = float64(startMinute) / minutesPerDay
		bar.Span = float64(span) / minutesPerDay
		return
	}

	bar.Offset = float64(bar.StartDay-1) / float64(w.days)
	bar.Span = float64(bar.EndDay-bar.StartDay+1) / float64(w.days)
}

func bookingBar(w window, b domain.SlotBooking) Bar {
	bar := Bar{
		ID:            b.ID,
		Kind:          KindBooking,
		Label:         b.HallName,
		BannerType:    string(b.BannerType),
		BookingStatus: string(b.BookingStatus),
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		StartTime:     hourString(b.StartHour),
		EndTime:       hourString(b.EndHour),
		ConflictsWith: []string{},
	}
	w.place(&bar, b.StartHour*60, b.EndHour*60)
	return bar
}

func slotBar(w window, kind BarKind, s domain.ProposalSlot) Bar {
	label := string(s.BannerType)
	if s.AreaName != nil {
		label = *s.AreaName + " " + label
	}
	bar := Bar{
		ID:            s.ID,
		Kind:          kind,
		Label:         label,
		BannerType:    string(s.BannerType),
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		ConflictsWith: []string{},
	}
	w.place(&bar, minuteOf(s.StartTime, 0), minuteOf(s.EndTime, minutesPerDay))
	return bar
}

// conflicts возвращает ID бронирований той же площадки, пересекающихся со слотом по дням
func conflicts(s domain.ProposalSlot, bookings []domain.SlotBooking) []string {
	out := make([]string, 0)
	if s.AreaSlotID == nil {
		return out
	}
	for _, b := range bookings {
		if b.AreaSlotID == *s.AreaSlotID && s.Overlaps(b.StartDate, b.EndDate) {
			out = append(out, b.ID)
		}
	}
	return out
}

func minuteOf(t types.TimeString, fallback int) int {
	if m := t.Minutes(); m >= 0 {
		return m
	}
	return fallback
}

// hourString 24 - конец суток
func hourString(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
