package get_slot_calendar

import (
	"net/url"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	getSlotCalendar "github.com/m04kA/SMC-BannerCaseService/internal/usecase/get_slot_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	View           string        `json:"view"`
	WindowStart    string        `json:"windowStart"` // "2026-02-01"
	WindowEnd      string        `json:"windowEnd"`
	WindowDays     int           `json:"windowDays"`
	BookingsSource string        `json:"bookingsSource"`
	Rows           []RowResponse `json:"rows"`
	Unplaced       []BarResponse `json:"unplaced"`
}

// RowResponse строка календаря
type RowResponse struct {
	AreaSlotID         string        `json:"areaSlotId"`
	Area               string        `json:"area"`
	AreaGroup          string        `json:"areaGroup"`
	Prefecture         string        `json:"prefecture"`
	Bookings           []BarResponse `json:"bookings"`
	ProposalSlots      []BarResponse `json:"proposalSlots"`
	AIRecommendedSlots []BarResponse `json:"aiRecommendedSlots"`
}

// BarResponse полоса календаря
type BarResponse struct {
	ID            string   `json:"id"`
	Kind          string   `json:"kind"`
	Label         string   `json:"label"`
	BannerType    string   `json:"bannerType"`
	BookingStatus string   `json:"bookingStatus,omitempty"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	StartDay      int      `json:"startDay"`
	EndDay        int      `json:"endDay"`
	Offset        float64  `json:"offset"` // доля ширины окна
	Span          float64  `json:"span"`
	ConflictsWith []string `json:"conflictsWith"`
}

// ToUseCaseRequest собирает запрос из query параметров
func ToUseCaseRequest(query url.Values) *getSlotCalendar.Request {
	req := &getSlotCalendar.Request{
		Month:         query.Get("month"),
		Day:           query.Get("day"),
		Prefecture:    query.Get("prefecture"),
		BannerType:    query.Get("bannerType"),
		BookingStatus: query.Get("bookingStatus"),
	}
	if caseID := query.Get("caseId"); caseID != "" {
		req.CaseID = &caseID
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		View:           string(resp.View),
		WindowStart:    resp.WindowStart.Format(domain.DateFormat),
		WindowEnd:      resp.WindowEnd.Format(domain.DateFormat),
		WindowDays:     resp.WindowDays,
		BookingsSource: resp.BookingsSource,
		Rows:           make([]RowResponse, 0, len(resp.Rows)),
		Unplaced:       fromBars(resp.Unplaced),
	}

	for _, r := range resp.Rows {
		out.Rows = append(out.Rows, RowResponse{
			AreaSlotID:         r.AreaSlotID,
			Area:               r.Area,
			AreaGroup:          r.AreaGroup,
			Prefecture:         r.Prefecture,
			Bookings:           fromBars(r.Bookings),
			ProposalSlots:      fromBars(r.ProposalSlots),
			AIRecommendedSlots: fromBars(r.AIRecommendedSlots),
		})
	}

	return out
}

func fromBars(bars []getSlotCalendar.Bar) []BarResponse {
	out := make([]BarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, BarResponse{
			ID:            b.ID,
			Kind:          string(b.Kind),
			Label:         b.Label,
			BannerType:    b.BannerType,
			BookingStatus: b.BookingStatus,
			StartDate:     b.StartDate.Format(domain.DateFormat),
			EndDate:       b.EndDate.Format(domain.DateFormat),
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			StartDay:      b.StartDay,
			EndDay:        b.EndDay,
			Offset:        b.Offset,
			Span:          b.Span,
			ConflictsWith: b.ConflictsWith,
		})
	}
	return out
}
