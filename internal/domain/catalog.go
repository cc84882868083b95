package domain

import "time"

// BookingStatus статус внешнего бронирования площадки
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "確定"
	BookingTentative BookingStatus = "仮押さえ"
)

// IsValid returns true if the booking status is known
func (s BookingStatus) IsValid() bool {
	return s == BookingConfirmed || s == BookingTentative
}

// AreaSlot площадка размещения из справочника
type AreaSlot struct {
	ID         string
	Area       string // "渋谷エリアA枠"
	AreaGroup  string // "渋谷"
	Prefecture string // "東京都"
}

// SlotBooking существующее бронирование площадки во внешней системе
// Используется только для отображения конфликтов
type SlotBooking struct {
	ID            string
	AreaSlotID    string
	BannerType    BannerType
	HallName      string
	StartDate     time.Time
	EndDate       time.Time
	StartHour     int
	EndHour       int
	BookingStatus BookingStatus
}

// Overlaps returns true if the booking shares at least one day with [from, to]
func (b SlotBooking) Overlaps(from, to time.Time) bool {
	return RangesOverlap(b.StartDate, b.EndDate, from, to)
}

// AnniversaryPack предоплаченный юбилейный пакет клиента
type AnniversaryPack struct {
	ID              string
	CorporateName   string
	Title           string
	ExpiryDate      time.Time
	RemainingAmount int64
}

// IsExpired returns true if the pack expired before the given day
func (p AnniversaryPack) IsExpired(now time.Time) bool {
	return DateOnly(p.ExpiryDate).Before(DateOnly(now))
}

// NearestExpiringPack возвращает действующий пакет с ближайшим сроком окончания
func NearestExpiringPack(packs []AnniversaryPack, now time.Time) (AnniversaryPack, bool) {
	var (
		best  AnniversaryPack
		found bool
	)
	for _, p := range packs {
		if p.IsExpired(now) || p.RemainingAmount <= 0 {
			continue
		}
		if !found || p.ExpiryDate.Before(best.ExpiryDate) {
			best = p
			found = true
		}
	}
	return best, found
}

// CatalogFilter фильтр площадок и бронирований
// Пустое поле - без фильтрации
type CatalogFilter struct {
	Prefecture    string
	BannerType    BannerType
	BookingStatus BookingStatus
}

// MatchesArea returns true if the area passes the prefecture filter
func (f CatalogFilter) MatchesArea(a AreaSlot) bool {
	return f.Prefecture == "" || a.Prefecture == f.Prefecture
}

// MatchesBooking returns true if the booking passes banner type and status filters
func (f CatalogFilter) MatchesBooking(b SlotBooking) bool {
	if f.BannerType != "" && b.BannerType != f.BannerType {
		return false
	}
	if f.BookingStatus != "" && b.BookingStatus != f.BookingStatus {
		return false
	}
	return true
}

// CaseFilter фильтр списка кейсов
type CaseFilter struct {
	Status           *CaseStatus
	CorporateName    string
	NeedsAdminReview bool // только кейсы в очереди проверки
}

// Matches returns true if the case passes the filter
func (f CaseFilter) Matches(c *Case) bool {
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.CorporateName != "" && c.CorporateName != f.CorporateName {
		return false
	}
	if f.NeedsAdminReview && !c.NeedsAdminReview() {
		return false
	}
	return true
}
