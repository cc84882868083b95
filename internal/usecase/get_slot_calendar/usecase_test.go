package get_slot_calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	"github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BannerCaseService/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-BannerCaseService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type metricsSpy struct{ failures int }

func (m *metricsSpy) RecordBookingFetchFailure() { m.failures++ }

type fakeBookingClient struct {
	bookings []domain.SlotBooking
	err      error
}

func (f *fakeBookingClient) GetBookingsWithGracefulDegradation(context.Context, time.Time, time.Time) ([]domain.SlotBooking, error) {
	return f.bookings, f.err
}

var now = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
}

func newCase(t *testing.T, repo *cases.MemoryRepository) {
	t.Helper()

	c := domain.NewCase("case-1", "株式会社サンプル", "渋谷店", now)
	c.ProposalSlots = []domain.ProposalSlot{
		{
			ID:         "slot-1",
			AreaSlotID: ptr.Ptr("area-1"),
			AreaName:   ptr.Ptr("渋谷エリアA枠"),
			StartDate:  day(3),
			EndDate:    day(5),
			StartTime:  "10:00",
			EndTime:    "18:00",
			BannerType: domain.BannerMain,
		},
		{
			ID:         "slot-2",
			AreaSlotID: ptr.Ptr("area-3"),
			StartDate:  time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
			EndDate:    day(2),
			StartTime:  "09:00",
			EndTime:    "21:00",
			BannerType: domain.BannerSub,
		},
		{
			ID:         "slot-3",
			AreaSlotID: ptr.Ptr("area-4"),
			StartDate:  day(20),
			EndDate:    day(21),
			StartTime:  "10:00",
			EndTime:    "18:00",
			BannerType: domain.BannerUndecided,
		},
	}
	c.AIRecommendedSlots = []domain.ProposalSlot{
		{
			ID:         "ai-1",
			StartDate:  day(8),
			EndDate:    day(15),
			StartTime:  "10:00",
			EndTime:    "18:00",
			BannerType: domain.BannerUndecided,
		},
	}
	require.NoError(t, repo.Create(context.Background(), c))
}

func setup(t *testing.T, client BookingServiceClient) (*UseCase, *metricsSpy) {
	t.Helper()

	repo := cases.NewMemoryRepository()
	newCase(t, repo)

	cat, err := catalog.LoadFixture("")
	require.NoError(t, err)

	spy := &metricsSpy{}
	uc := NewUseCase(cat, client, repo, spy, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc, spy
}

func rowByID(t *testing.T, resp *Response, id string) Row {
	t.Helper()
	for _, r := range resp.Rows {
		if r.AreaSlotID == id {
			return r
		}
	}
	t.Fatalf("row %s not found", id)
	return Row{}
}

func barIDs(bars []Bar) []string {
	ids := make([]string, 0, len(bars))
	for _, b := range bars {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestUseCase_MonthViewWithoutCase(t *testing.T) {
	uc, _ := setup(t, nil)

	resp, err := uc.Execute(context.Background(), &Request{Month: "2026-02", Prefecture: "東京都"})
	require.NoError(t, err)

	assert.Equal(t, ViewMonth, resp.View)
	assert.Equal(t, day(1), resp.WindowStart)
	assert.Equal(t, day(28), resp.WindowEnd)
	assert.Equal(t, 28, resp.WindowDays)
	assert.Equal(t, SourceCatalog, resp.BookingsSource)
	assert.Len(t, resp.Rows, 8)
	assert.Empty(t, resp.Unplaced)

	area1 := rowByID(t, resp, "area-1")
	assert.Equal(t, []string{"bk-1", "bk-2"}, barIDs(area1.Bookings))
	assert.Empty(t, area1.ProposalSlots)

	bk1 := area1.Bookings[0]
	assert.Equal(t, KindBooking, bk1.Kind)
	assert.Equal(t, "マルハン渋谷店", bk1.Label)
	assert.Equal(t, 1, bk1.StartDay)
	assert.Equal(t, 7, bk1.EndDay)
	assert.InDelta(t, 0.0, bk1.Offset, 1e-9)
	assert.InDelta(t, 7.0/28, bk1.Span, 1e-9)
	assert.Equal(t, "00:00", bk1.StartTime)
	assert.Equal(t, "24:00", bk1.EndTime)

	bk2 := area1.Bookings[1]
	assert.InDelta(t, 9.0/28, bk2.Offset, 1e-9)
	assert.InDelta(t, 13.0/28, bk2.Span, 1e-9)

	// bk-6 в марте
	assert.Empty(t, rowByID(t, resp, "area-6").Bookings)
}

func TestUseCase_CaseSlotsConflictsAndClamp(t *testing.T) {
	uc, _ := setup(t, nil)

	resp, err := uc.Execute(context.Background(), &Request{CaseID: ptr.Ptr("case-1"), Month: "2026-02"})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 12)

	area1 := rowByID(t, resp, "area-1")
	require.Len(t, area1.ProposalSlots, 1)
	s1 := area1.ProposalSlots[0]
	assert.Equal(t, KindProposal, s1.Kind)
	assert.Equal(t, "渋谷エリアA枠 メインバナー", s1.Label)
	assert.Equal(t, []string{"bk-1"}, s1.ConflictsWith)
	assert.InDelta(t, 2.0/28, s1.Offset, 1e-9)
	assert.InDelta(t, 3.0/28, s1.Span, 1e-9)

	// слот начинается в январе и обрезается по началу окна
	area3 := rowByID(t, resp, "area-3")
	require.Len(t, area3.ProposalSlots, 1)
	s2 := area3.ProposalSlots[0]
	assert.Equal(t, 1, s2.StartDay)
	assert.Equal(t, 2, s2.EndDay)
	assert.InDelta(t, 0.0, s2.Offset, 1e-9)
	assert.InDelta(t, 2.0/28, s2.Span, 1e-9)
	assert.Equal(t, []string{"bk-4"}, s2.ConflictsWith)

	s3 := rowByID(t, resp, "area-4").ProposalSlots
	require.Len(t, s3, 1)
	assert.Empty(t, s3[0].ConflictsWith)

	require.Len(t, resp.Unplaced, 1)
	assert.Equal(t, "ai-1", resp.Unplaced[0].ID)
	assert.Equal(t, KindAI, resp.Unplaced[0].Kind)
	assert.InDelta(t, 7.0/28, resp.Unplaced[0].Offset, 1e-9)
	assert.InDelta(t, 8.0/28, resp.Unplaced[0].Span, 1e-9)
}

func TestUseCase_DayView(t *testing.T) {
	uc, _ := setup(t, nil)

	resp, err := uc.Execute(context.Background(), &Request{CaseID: ptr.Ptr("case-1"), Day: "2026-02-05", Month: "2026-03"})
	require.NoError(t, err)

	assert.Equal(t, ViewDay, resp.View)
	assert.Equal(t, 1, resp.WindowDays)

	area1 := rowByID(t, resp, "area-1")
	require.Len(t, area1.Bookings, 1)
	assert.InDelta(t, 0.0, area1.Bookings[0].Offset, 1e-9)
	assert.InDelta(t, 1.0, area1.Bookings[0].Span, 1e-9)

	// последний день слота: те же 10:00-18:00, что и в первый
	require.Len(t, area1.ProposalSlots, 1)
	assert.InDelta(t, 10.0/24, area1.ProposalSlots[0].Offset, 1e-9)
	assert.InDelta(t, 8.0/24, area1.ProposalSlots[0].Span, 1e-9)

	assert.Empty(t, rowByID(t, resp, "area-3").ProposalSlots)
	assert.Empty(t, resp.Unplaced)
}

func TestUseCase_DayViewSingleDaySlot(t *testing.T) {
	w := dayWindow(day(10))
	bar := slotBar(w, KindProposal, domain.ProposalSlot{
		ID:         "s",
		StartDate:  day(10),
		EndDate:    day(10),
		StartTime:  "06:00",
		EndTime:    "12:00",
		BannerType: domain.BannerMain,
	})

	assert.InDelta(t, 0.25, bar.Offset, 1e-9)
	assert.InDelta(t, 0.25, bar.Span, 1e-9)
	assert.Equal(t, "メインバナー", bar.Label)
}

func TestUseCase_DayViewMultiDayItems(t *testing.T) {
	w := dayWindow(day(4))

	slot := slotBar(w, KindProposal, domain.ProposalSlot{
		ID:         "s",
		StartDate:  day(3),
		EndDate:    day(5),
		StartTime:  "10:00",
		EndTime:    "18:00",
		BannerType: domain.BannerMain,
	})
	assert.InDelta(t, 10.0/24, slot.Offset, 1e-9)
	assert.InDelta(t, 8.0/24, slot.Span, 1e-9)
	assert.Equal(t, 1, slot.StartDay)
	assert.Equal(t, 1, slot.EndDay)

	booking := bookingBar(w, domain.SlotBooking{
		ID:            "bk",
		AreaSlotID:    "area-1",
		BannerType:    domain.BannerMain,
		StartDate:     day(1),
		EndDate:       day(10),
		StartHour:     9,
		EndHour:       12,
		BookingStatus: domain.BookingConfirmed,
	})
	assert.InDelta(t, 9.0/24, booking.Offset, 1e-9)
	assert.InDelta(t, 3.0/24, booking.Span, 1e-9)
}

func TestUseCase_Filters(t *testing.T) {
	uc, _ := setup(t, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		CaseID:        ptr.Ptr("case-1"),
		Month:         "2026-02",
		Prefecture:    "東京都",
		BookingStatus: string(domain.BookingTentative),
	})
	require.NoError(t, err)

	var all []string
	for _, r := range resp.Rows {
		all = append(all, barIDs(r.Bookings)...)
	}
	assert.Equal(t, []string{"bk-4"}, all)

	// конфликты считаются по всем бронированиям, а не только по видимым
	area1 := rowByID(t, resp, "area-1")
	require.Len(t, area1.ProposalSlots, 1)
	assert.Equal(t, []string{"bk-1"}, area1.ProposalSlots[0].ConflictsWith)

	resp, err = uc.Execute(context.Background(), &Request{
		CaseID:     ptr.Ptr("case-1"),
		Month:      "2026-02",
		BannerType: string(domain.BannerMain),
	})
	require.NoError(t, err)

	var slots []string
	all = nil
	for _, r := range resp.Rows {
		all = append(all, barIDs(r.Bookings)...)
		slots = append(slots, barIDs(r.ProposalSlots)...)
	}
	assert.Equal(t, []string{"bk-1"}, all)
	assert.Equal(t, []string{"slot-1"}, slots)
	// AI-рекомендации фильтром типа баннера не скрываются
	assert.Len(t, resp.Unplaced, 1)
}

func TestUseCase_DefaultWindowIsCurrentMonth(t *testing.T) {
	uc, _ := setup(t, nil)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), resp.WindowStart)
	assert.Equal(t, 31, resp.WindowDays)
	for _, r := range resp.Rows {
		assert.Empty(t, r.Bookings, r.AreaSlotID)
	}
}

func TestUseCase_BookingServiceSource(t *testing.T) {
	client := &fakeBookingClient{bookings: []domain.SlotBooking{
		{
			ID:            "ext-1",
			AreaSlotID:    "area-2",
			BannerType:    domain.BannerNotice,
			HallName:      "外部店",
			StartDate:     day(4),
			EndDate:       day(4),
			StartHour:     12,
			EndHour:       18,
			BookingStatus: domain.BookingConfirmed,
		},
	}}
	uc, spy := setup(t, client)

	resp, err := uc.Execute(context.Background(), &Request{Month: "2026-02", Prefecture: "東京都"})
	require.NoError(t, err)

	assert.Equal(t, SourceBookingService, resp.BookingsSource)
	assert.Equal(t, 0, spy.failures)
	assert.Equal(t, []string{"ext-1"}, barIDs(rowByID(t, resp, "area-2").Bookings))
	assert.Empty(t, rowByID(t, resp, "area-1").Bookings)
}

func TestUseCase_BookingServiceDegraded(t *testing.T) {
	client := &fakeBookingClient{err: fmt.Errorf("%w: connection refused", bookingservice.ErrServiceDegraded)}
	uc, spy := setup(t, client)

	resp, err := uc.Execute(context.Background(), &Request{Month: "2026-02", Prefecture: "東京都"})
	require.NoError(t, err)

	assert.Equal(t, SourceCatalog, resp.BookingsSource)
	assert.Equal(t, 1, spy.failures)
	assert.Equal(t, []string{"bk-1", "bk-2"}, barIDs(rowByID(t, resp, "area-1").Bookings))
}

func TestUseCase_BookingServiceInvalidRange(t *testing.T) {
	client := &fakeBookingClient{err: bookingservice.ErrInvalidRange}
	uc, spy := setup(t, client)

	_, err := uc.Execute(context.Background(), &Request{Month: "2026-02"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
	assert.Equal(t, 0, spy.failures)
}

func TestUseCase_Errors(t *testing.T) {
	uc, _ := setup(t, nil)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"bad month", &Request{Month: "2026/02"}, ErrInvalidInput},
		{"bad day", &Request{Day: "2026-02-30"}, ErrInvalidInput},
		{"unknown banner type", &Request{BannerType: "巨大バナー"}, ErrInvalidInput},
		{"unknown booking status", &Request{BookingStatus: "cancelled"}, ErrInvalidInput},
		{"empty case id", &Request{CaseID: ptr.Ptr("")}, ErrInvalidInput},
		{"unknown case", &Request{CaseID: ptr.Ptr("missing")}, ErrCaseNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
