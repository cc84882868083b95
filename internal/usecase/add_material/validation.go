package add_material

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Размер и формат здесь не ограничиваются: это делает проверка материала
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CaseID) == "" {
		return fmt.Errorf("%w: caseId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxMaterialNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxMaterialNameLength)
	}

	if req.Size < 0 {
		return fmt.Errorf("%w: size must not be negative", ErrInvalidInput)
	}

	if req.Width != nil && *req.Width <= 0 {
		return fmt.Errorf("%w: width must be positive", ErrInvalidInput)
	}
	if req.Height != nil && *req.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidInput)
	}

	return nil
}
