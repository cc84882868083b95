package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/catalog/models"
)

// Service сервис чтения справочников
type Service struct {
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(catalog Catalog, logger Logger) *Service {
	return &Service{
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListAreaSlots возвращает площадки, опционально по префектуре
func (s *Service) ListAreaSlots(ctx context.Context, prefecture string) (*models.AreaSlotListResponse, error) {
	s.logger.Info("ListAreaSlots: prefecture=%q", prefecture)

	areas, err := s.catalog.ListAreaSlots(ctx, domain.CatalogFilter{Prefecture: prefecture})
	if err != nil {
		s.logger.Error("ListAreaSlots: catalog error: %v", err)
		return nil, fmt.Errorf("%w: ListAreaSlots - catalog error: %v", ErrInternal, err)
	}

	return models.FromDomainAreaSlots(areas), nil
}

// ListAnniversaryPacks возвращает пакеты клиента с признаком доступности
// Рекомендуемый пакет - действующий с ближайшим сроком окончания
func (s *Service) ListAnniversaryPacks(ctx context.Context, corporateName string) (*models.PackListResponse, error) {
	s.logger.Info("ListAnniversaryPacks: corporateName=%q", corporateName)

	corporateName = strings.TrimSpace(corporateName)
	if corporateName == "" {
		return nil, fmt.Errorf("%w: corporateName is required", ErrInvalidInput)
	}

	packs, err := s.catalog.ListAnniversaryPacks(ctx, corporateName)
	if err != nil {
		s.logger.Error("ListAnniversaryPacks: catalog error: %v", err)
		return nil, fmt.Errorf("%w: ListAnniversaryPacks - catalog error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	recommended, hasRecommended := domain.NearestExpiringPack(packs, now)

	resp := &models.PackListResponse{Packs: make([]models.PackResponse, 0, len(packs))}
	for _, p := range packs {
		available := !p.IsExpired(now) && p.RemainingAmount > 0
		resp.Packs = append(resp.Packs, models.FromDomainPack(p, available, hasRecommended && p.ID == recommended.ID))
	}

	s.logger.Info("ListAnniversaryPacks: found %d packs for %q", len(packs), corporateName)
	return resp, nil
}
