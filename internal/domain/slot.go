package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/pkg/types"
)

// BannerType тип размещения баннера
type BannerType string

const (
	BannerFPMyPage    BannerType = "【FP課】マイページバナー"
	BannerNotice      BannerType = "お知らせバナー"
	BannerSub         BannerType = "サブバナー"
	BannerSplash      BannerType = "スプラッシュバナー"
	BannerMyPage      BannerType = "マイページバナー"
	BannerMain        BannerType = "メインバナー"
	BannerRotation    BannerType = "ローテーションバナー"
	BannerVideo       BannerType = "動画バナー"
	BannerVisitReport BannerType = "取材来店バナー"
	BannerPrefecture  BannerType = "都道府県バナー"
	BannerUndecided   BannerType = "未定"
)

// BannerTypes все типы баннеров, включая "未定"
var BannerTypes = []BannerType{
	BannerFPMyPage,
	BannerNotice,
	BannerSub,
	BannerSplash,
	BannerMyPage,
	BannerMain,
	BannerRotation,
	BannerVideo,
	BannerVisitReport,
	BannerPrefecture,
	BannerUndecided,
}

// IsValid returns true if the banner type is catalogued
func (b BannerType) IsValid() bool {
	for _, known := range BannerTypes {
		if b == known {
			return true
		}
	}
	return false
}

// ProposalSlot предлагаемый слот размещения
// StartDate/EndDate - календарные дни (время отброшено, UTC)
type ProposalSlot struct {
	ID         string
	AreaSlotID *string
	AreaName   *string
	StartDate  time.Time
	EndDate    time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	BannerType BannerType
}

// Validate проверяет слот
// Конец не раньше начала; в пределах одного дня EndTime строго позже StartTime
func (s ProposalSlot) Validate() error {
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrMalformedSlot)
	}
	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrMalformedSlot, err)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrMalformedSlot, err)
	}
	if !s.BannerType.IsValid() {
		return fmt.Errorf("%w: unknown banner type %q", ErrMalformedSlot, s.BannerType)
	}

	start := DateOnly(s.StartDate)
	end := DateOnly(s.EndDate)

	if end.Before(start) {
		return fmt.Errorf("%w: endDate %s before startDate %s",
			ErrMalformedSlot, end.Format(DateFormat), start.Format(DateFormat))
	}

	if end.Equal(start) && !s.EndTime.IsAfter(s.StartTime) {
		return fmt.Errorf("%w: endTime %s must be after startTime %s on the same day",
			ErrMalformedSlot, s.EndTime, s.StartTime)
	}

	return nil
}

// Normalize приводит даты к началу дня UTC
func (s ProposalSlot) Normalize() ProposalSlot {
	s.StartDate = DateOnly(s.StartDate)
	s.EndDate = DateOnly(s.EndDate)
	return s
}

// Overlaps returns true if the slot shares at least one day with [from, to]
func (s ProposalSlot) Overlaps(from, to time.Time) bool {
	return RangesOverlap(s.StartDate, s.EndDate, from, to)
}

// AddProposalSlot добавляет слот после проверки
func (c *Case) AddProposalSlot(slot ProposalSlot, now time.Time) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	c.ProposalSlots = append(c.ProposalSlots, slot.Normalize())
	c.Touch(now)
	return nil
}

// UpdateProposalSlot заменяет слот с тем же ID
func (c *Case) UpdateProposalSlot(slot ProposalSlot, now time.Time) error {
	idx := c.findSlot(slot.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, slot.ID)
	}
	if err := slot.Validate(); err != nil {
		return err
	}
	c.ProposalSlots[idx] = slot.Normalize()
	c.Touch(now)
	return nil
}

// RemoveProposalSlot удаляет слот; материалы этого слота становятся неназначенными
func (c *Case) RemoveProposalSlot(slotID string, now time.Time) error {
	idx := c.findSlot(slotID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, slotID)
	}

	c.ProposalSlots = append(c.ProposalSlots[:idx], c.ProposalSlots[idx+1:]...)

	for i := range c.Materials {
		if c.Materials[i].SlotID != nil && *c.Materials[i].SlotID == slotID {
			c.Materials[i].SlotID = nil
		}
	}

	c.Touch(now)
	return nil
}

// HasProposalSlot returns true if the case contains the slot
func (c *Case) HasProposalSlot(slotID string) bool {
	return c.findSlot(slotID) >= 0
}

func (c *Case) findSlot(slotID string) int {
	for i, s := range c.ProposalSlots {
		if s.ID == slotID {
			return i
		}
	}
	return -1
}

// DateOnly отбрасывает время, оставляя календарный день в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RangesOverlap проверка пересечения двух диапазонов дней (границы включительно)
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !DateOnly(aStart).After(DateOnly(bEnd)) && !DateOnly(aEnd).Before(DateOnly(bStart))
}

func cloneSlots(slots []ProposalSlot) []ProposalSlot {
	if slots == nil {
		return []ProposalSlot{}
	}
	out := make([]ProposalSlot, len(slots))
	for i, s := range slots {
		s.AreaSlotID = clonePtr(s.AreaSlotID)
		s.AreaName = clonePtr(s.AreaName)
		out[i] = s
	}
	return out
}
