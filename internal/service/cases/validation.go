package cases

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

// validateUpdate проверяет длины и значения полей патча
func validateUpdate(req *models.UpdateCaseRequest) error {
	if req.CorporateName != nil {
		if err := validateName("corporateName", *req.CorporateName, domain.MaxCorporateNameLength); err != nil {
			return err
		}
	}
	if req.StoreName != nil {
		if err := validateName("storeName", *req.StoreName, domain.MaxStoreNameLength); err != nil {
			return err
		}
	}
	if req.ImplementationPolicy != nil && utf8.RuneCountInString(*req.ImplementationPolicy) > domain.MaxFreeTextLength {
		return fmt.Errorf("%w: implementationPolicy exceeds %d characters", ErrInvalidInput, domain.MaxFreeTextLength)
	}
	if req.PublishingContent != nil && utf8.RuneCountInString(*req.PublishingContent) > domain.MaxFreeTextLength {
		return fmt.Errorf("%w: publishingContent exceeds %d characters", ErrInvalidInput, domain.MaxFreeTextLength)
	}
	if req.BillingAmount != nil && *req.BillingAmount < 0 {
		return fmt.Errorf("%w: billingAmount must not be negative", ErrInvalidInput)
	}
	if req.IsAnniversaryPack != nil && !*req.IsAnniversaryPack &&
		req.AnniversaryPackCode != nil && strings.TrimSpace(*req.AnniversaryPackCode) != "" {
		return fmt.Errorf("%w: anniversaryPackCode requires isAnniversaryPack", ErrInvalidInput)
	}
	if req.ApplicationDocumentURL != nil && strings.TrimSpace(*req.ApplicationDocumentURL) == "" {
		return fmt.Errorf("%w: applicationDocumentUrl must not be empty", ErrInvalidInput)
	}
	return nil
}

func validateName(field, value string, max int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, field, max)
	}
	return nil
}
