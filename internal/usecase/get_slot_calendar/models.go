package get_slot_calendar

import "time"

// View масштаб календаря
type View string

const (
	ViewMonth View = "month"
	ViewDay   View = "day"
)

// BarKind тип полосы в календаре
type BarKind string

const (
	KindBooking  BarKind = "booking"
	KindProposal BarKind = "proposal"
	KindAI       BarKind = "ai"
)

// Источник бронирований
const (
	SourceBookingService = "bookingservice"
	SourceCatalog        = "catalog"
)

// Request модель запроса календаря площадок
type Request struct {
	CaseID        *string // Кейс, слоты которого нужно показать (опционально)
	Month         string  // "2026-02"; по умолчанию текущий месяц
	Day           string  // "2026-02-05"; если задан, календарь за один день
	Prefecture    string  // Фильтр по префектуре
	BannerType    string  // Фильтр по типу баннера (бронирования и слоты кейса)
	BookingStatus string  // Фильтр по статусу бронирования
}

// Response модель ответа
type Response struct {
	View           View
	WindowStart    time.Time
	WindowEnd      time.Time
	WindowDays     int
	BookingsSource string
	Rows           []Row
	Unplaced       []Bar // слоты без площадки
}

// Row строка календаря для одной площадки
type Row struct {
	AreaSlotID         string
	Area               string
	AreaGroup          string
	Prefecture         string
	Bookings           []Bar
	ProposalSlots      []Bar
	AIRecommendedSlots []Bar
}

// Bar полоса в календаре
// Offset и Span - доли ширины окна: дни для месяца, минуты для дня
type Bar struct {
	ID            string
	Kind          BarKind
	Label         string
	BannerType    string
	BookingStatus string
	StartDate     time.Time
	EndDate       time.Time
	StartTime     string
	EndTime       string
	StartDay      int // первый видимый день окна, с 1
	EndDay        int // последний видимый день окна
	Offset        float64
	Span          float64
	ConflictsWith []string // ID пересекающихся бронирований той же площадки
}
