package add_proposal_slot

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Проверка порядка дат и времени выполняется доменной моделью
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CaseID) == "" {
		return fmt.Errorf("%w: caseId is required", ErrInvalidInput)
	}

	if req.SlotID != nil && strings.TrimSpace(*req.SlotID) == "" {
		return fmt.Errorf("%w: slotId must not be empty", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.BannerType != "" && !domain.BannerType(req.BannerType).IsValid() {
		return fmt.Errorf("%w: unknown bannerType %q", ErrInvalidInput, req.BannerType)
	}

	return nil
}
