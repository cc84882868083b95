package get_slot_calendar

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	caseRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	"github.com/m04kA/SMC-BannerCaseService/internal/integrations/bookingservice"
)

// UseCase use case для построения календаря площадок
type UseCase struct {
	catalog       Catalog
	bookingClient BookingServiceClient
	caseRepo      CaseRepository
	metrics       MetricsRecorder
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// bookingClient может быть nil: тогда бронирования берутся из справочника
func NewUseCase(
	catalog Catalog,
	bookingClient BookingServiceClient,
	caseRepo CaseRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:       catalog,
		bookingClient: bookingClient,
		caseRepo:      caseRepo,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute строит календарь: бронирования, слоты кейса и AI-рекомендации по площадкам
// Конфликты слотов с бронированиями только помечаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotCalendar: case=%v, month=%q, day=%q, prefecture=%q, banner=%q, status=%q",
		req.CaseID, req.Month, req.Day, req.Prefecture, req.BannerType, req.BookingStatus)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotCalendar: validation failed: %v", err)
		return nil, err
	}

	w, err := resolveWindow(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("GetSlotCalendar: validation failed: %v", err)
		return nil, err
	}

	filter := req.filter()

	// 2. Площадки
	areas, err := uc.catalog.ListAreaSlots(ctx, filter)
	if err != nil {
		uc.logger.Error("GetSlotCalendar: failed to list area slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list area slots: %v", ErrInternal, err)
	}

	// 3. Бронирования окна без фильтров: конфликты считаются по всем
	bookings, source, err := uc.fetchBookings(ctx, w)
	if err != nil {
		return nil, err
	}

	// 4. Кейс
	var c *domain.Case
	if req.CaseID != nil {
		c, err = uc.caseRepo.GetByID(ctx, *req.CaseID)
		if err != nil {
			if errors.Is(err, caseRepo.ErrCaseNotFound) {
				uc.logger.Warn("GetSlotCalendar: case id=%s not found", *req.CaseID)
				return nil, ErrCaseNotFound
			}
			uc.logger.Error("GetSlotCalendar: failed to get case id=%s: %v", *req.CaseID, err)
			return nil, fmt.Errorf("%w: failed to get case: %v", ErrInternal, err)
		}
	}

	resp := buildCalendar(w, filter, areas, bookings, c)
	resp.BookingsSource = source

	uc.logger.Info("GetSlotCalendar: built %s calendar %s..%s with %d rows from %s",
		w.view, w.start.Format(domain.DateFormat), w.end.Format(domain.DateFormat), len(resp.Rows), source)

	return resp, nil
}

// fetchBookings берёт бронирования из внешней системы, при её недоступности - из справочника
func (uc *UseCase) fetchBookings(ctx context.Context, w window) ([]domain.SlotBooking, string, error) {
	if uc.bookingClient != nil {
		bookings, err := uc.bookingClient.GetBookingsWithGracefulDegradation(ctx, w.start, w.end)
		if err == nil {
			return bookings, SourceBookingService, nil
		}
		if !errors.Is(err, bookingservice.ErrServiceDegraded) {
			uc.logger.Error("GetSlotCalendar: failed to fetch bookings: %v", err)
			return nil, "", fmt.Errorf("%w: failed to fetch bookings: %v", ErrInternal, err)
		}
		uc.metrics.RecordBookingFetchFailure()
		uc.logger.Warn("GetSlotCalendar: falling back to catalog bookings: %v", err)
	}

	bookings, err := uc.catalog.ListBookings(ctx, w.start, w.end, domain.CatalogFilter{})
	if err != nil {
		uc.logger.Error("GetSlotCalendar: failed to list catalog bookings: %v", err)
		return nil, "", fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	return bookings, SourceCatalog, nil
}

func buildCalendar(
	w window,
	filter domain.CatalogFilter,
	areas []domain.AreaSlot,
	bookings []domain.SlotBooking,
	c *domain.Case,
) *Response {
	resp := &Response{
		View:        w.view,
		WindowStart: w.start,
		WindowEnd:   w.end,
		WindowDays:  w.days,
		Rows:        make([]Row, 0, len(areas)),
		Unplaced:    make([]Bar, 0),
	}

	rowIndex := make(map[string]int, len(areas))
	for i, a := range areas {
		rowIndex[a.ID] = i
		resp.Rows = append(resp.Rows, Row{
			AreaSlotID:         a.ID,
			Area:               a.Area,
			AreaGroup:          a.AreaGroup,
			Prefecture:         a.Prefecture,
			Bookings:           make([]Bar, 0),
			ProposalSlots:      make([]Bar, 0),
			AIRecommendedSlots: make([]Bar, 0),
		})
	}

	for _, b := range bookings {
		if !w.overlaps(b.StartDate, b.EndDate) || !filter.MatchesBooking(b) {
			continue
		}
		if i, ok := rowIndex[b.AreaSlotID]; ok {
			resp.Rows[i].Bookings = append(resp.Rows[i].Bookings, bookingBar(w, b))
		}
	}

	if c != nil {
		for _, s := range c.ProposalSlots {
			if !w.overlaps(s.StartDate, s.EndDate) {
				continue
			}
			if filter.BannerType != "" && s.BannerType != filter.BannerType {
				continue
			}
			bar := slotBar(w, KindProposal, s)
			bar.ConflictsWith = conflicts(s, bookings)
			resp.place(rowIndex, s.AreaSlotID, bar, func(r *Row) *[]Bar { return &r.ProposalSlots })
		}

		for _, s := range c.AIRecommendedSlots {
			if !w.overlaps(s.StartDate, s.EndDate) {
				continue
			}
			bar := slotBar(w, KindAI, s)
			resp.place(rowIndex, s.AreaSlotID, bar, func(r *Row) *[]Bar { return &r.AIRecommendedSlots })
		}
	}

	for i := range resp.Rows {
		sortBars(resp.Rows[i].Bookings)
		sortBars(resp.Rows[i].ProposalSlots)
		sortBars(resp.Rows[i].AIRecommendedSlots)
	}
	sortBars(resp.Unplaced)

	return resp
}

// place кладёт полосу в строку площадки
// Слоты без площадки попадают в Unplaced; слоты площадок вне фильтра не показываются
func (r *Response) place(rowIndex map[string]int, areaSlotID *string, bar Bar, list func(*Row) *[]Bar) {
	if areaSlotID == nil {
		r.Unplaced = append(r.Unplaced, bar)
		return
	}
	if i, ok := rowIndex[*areaSlotID]; ok {
		bars := list(&r.Rows[i])
		*bars = append(*bars, bar)
	}
}

func sortBars(bars []Bar) {
	sort.SliceStable(bars, func(i, j int) bool {
		if !bars[i].StartDate.Equal(bars[j].StartDate) {
			return bars[i].StartDate.Before(bars[j].StartDate)
		}
		return bars[i].ID < bars[j].ID
	})
}
