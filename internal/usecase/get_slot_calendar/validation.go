package get_slot_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// validateRequest валидирует фильтры запроса
func validateRequest(req *Request) error {
	if req.CaseID != nil && *req.CaseID == "" {
		return fmt.Errorf("%w: caseId must not be empty", ErrInvalidInput)
	}

	if req.BannerType != "" && !domain.BannerType(req.BannerType).IsValid() {
		return fmt.Errorf("%w: unknown bannerType %q", ErrInvalidInput, req.BannerType)
	}

	if req.BookingStatus != "" && !domain.BookingStatus(req.BookingStatus).IsValid() {
		return fmt.Errorf("%w: unknown bookingStatus %q", ErrInvalidInput, req.BookingStatus)
	}

	return nil
}

func (r *Request) filter() domain.CatalogFilter {
	return domain.CatalogFilter{
		Prefecture:    r.Prefecture,
		BannerType:    domain.BannerType(r.BannerType),
		BookingStatus: domain.BookingStatus(r.BookingStatus),
	}
}
