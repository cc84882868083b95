package create_case

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) error {
	req.CorporateName = strings.TrimSpace(req.CorporateName)
	req.StoreName = strings.TrimSpace(req.StoreName)

	if req.CorporateName == "" {
		return fmt.Errorf("%w: corporateName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CorporateName) > domain.MaxCorporateNameLength {
		return fmt.Errorf("%w: corporateName must be at most %d characters", ErrInvalidInput, domain.MaxCorporateNameLength)
	}

	if req.StoreName == "" {
		return fmt.Errorf("%w: storeName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.StoreName) > domain.MaxStoreNameLength {
		return fmt.Errorf("%w: storeName must be at most %d characters", ErrInvalidInput, domain.MaxStoreNameLength)
	}

	return nil
}
