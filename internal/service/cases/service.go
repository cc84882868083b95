package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	caseRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	catalogRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
	"github.com/m04kA/SMC-BannerCaseService/pkg/ptr"
)

// Service сервис для работы с кейсами размещения
type Service struct {
	caseRepo     CaseRepository
	packs        PackCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса кейсов
func NewService(caseRepo CaseRepository, packs PackCatalog, logger Logger) *Service {
	return &Service{
		caseRepo:     caseRepo,
		packs:        packs,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает кейс по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.CaseResponse, error) {
	s.logger.Info("GetByID: fetching case id=%s", id)

	c, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, caseRepo.ErrCaseNotFound) {
			s.logger.Warn("GetByID: case id=%s not found", id)
			return nil, ErrCaseNotFound
		}
		s.logger.Error("GetByID: repository error for case id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCase(c), nil
}

// List получает список кейсов с фильтрацией по статусу и клиенту
func (s *Service) List(ctx context.Context, req *models.ListCasesRequest) (*models.CaseListResponse, error) {
	s.logger.Info("List: fetching cases status=%v, corporateName=%q, needsAdminReview=%t",
		req.Status, req.CorporateName, req.NeedsAdminReview)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.caseRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d cases", len(list))
	return models.FromDomainCaseList(list), nil
}

// Update частично обновляет поля кейса, не связанные со статусом
// Неизвестный ID - ошибка ErrCaseNotFound
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateCaseRequest) (*models.CaseResponse, error) {
	s.logger.Info("Update: updating case id=%s", id)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for case id=%s: %v", id, err)
		return nil, err
	}

	// Код пакета допустим только для кейса с юбилейным пакетом
	// Справочник запрашиваем после применения патча, когда флаг уже известен
	code := strings.TrimSpace(ptr.Value(req.AnniversaryPackCode))
	patch := req.ToDomainPatch()
	updated, err := s.caseRepo.Update(ctx, id, func(c *domain.Case) error {
		now := s.timeProvider.Now()
		if err := c.ApplyPatch(patch, now); err != nil {
			return err
		}
		if code == "" {
			return nil
		}
		if !c.IsAnniversaryPack {
			return fmt.Errorf("%w: anniversaryPackCode requires isAnniversaryPack", ErrInvalidInput)
		}
		pack, err := s.getPack(ctx, "Update", code)
		if err != nil {
			return err
		}
		return checkPack(pack, c.CorporateName, now)
	})
	if err != nil {
		return nil, s.mapUpdateError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated case id=%s", id)
	return models.FromDomainCase(updated), nil
}

// Delete удаляет кейс
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting case id=%s", id)

	if err := s.caseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, caseRepo.ErrCaseNotFound) {
			s.logger.Warn("Delete: case id=%s not found", id)
			return ErrCaseNotFound
		}
		s.logger.Error("Delete: repository error for case id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted case id=%s", id)
	return nil
}

// RemoveProposalSlot удаляет слот; материалы слота остаются без привязки
func (s *Service) RemoveProposalSlot(ctx context.Context, caseID, slotID string) (*models.CaseResponse, error) {
	s.logger.Info("RemoveProposalSlot: removing slot=%s from case id=%s", slotID, caseID)

	// Материалы слота остаются в кейсе без привязки
	var detached int
	updated, err := s.caseRepo.Update(ctx, caseID, func(c *domain.Case) error {
		detached = len(c.MaterialsForSlot(slotID))
		return c.RemoveProposalSlot(slotID, s.timeProvider.Now())
	})
	if err != nil {
		return nil, s.mapUpdateError("RemoveProposalSlot", caseID, err)
	}

	s.logger.Info("RemoveProposalSlot: successfully removed slot=%s from case id=%s, detached %d materials", slotID, caseID, detached)
	return models.FromDomainCase(updated), nil
}

// RemoveMaterial удаляет материал
func (s *Service) RemoveMaterial(ctx context.Context, caseID, materialID string) (*models.CaseResponse, error) {
	s.logger.Info("RemoveMaterial: removing material=%s from case id=%s", materialID, caseID)

	updated, err := s.caseRepo.Update(ctx, caseID, func(c *domain.Case) error {
		return c.RemoveMaterial(materialID, s.timeProvider.Now())
	})
	if err != nil {
		return nil, s.mapUpdateError("RemoveMaterial", caseID, err)
	}

	s.logger.Info("RemoveMaterial: successfully removed material=%s from case id=%s", materialID, caseID)
	return models.FromDomainCase(updated), nil
}

// UploadApplicationDocument сохраняет ссылку на заявку
// Ссылка не проверяется, статус кейса не меняется
func (s *Service) UploadApplicationDocument(ctx context.Context, caseID string, req *models.UploadDocumentRequest) (*models.CaseResponse, error) {
	s.logger.Info("UploadApplicationDocument: case id=%s", caseID)

	url := strings.TrimSpace(req.URL)
	if url == "" {
		s.logger.Warn("UploadApplicationDocument: empty url for case id=%s", caseID)
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	updated, err := s.caseRepo.Update(ctx, caseID, func(c *domain.Case) error {
		c.SetApplicationDocument(url, s.timeProvider.Now())
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError("UploadApplicationDocument", caseID, err)
	}

	s.logger.Info("UploadApplicationDocument: successfully stored document for case id=%s", caseID)
	return models.FromDomainCase(updated), nil
}

// UseAnniversaryPack привязывает юбилейный пакет клиента к кейсу
// Без PackID выбирается действующий пакет с ближайшим сроком окончания
func (s *Service) UseAnniversaryPack(ctx context.Context, caseID string, req *models.UseAnniversaryPackRequest) (*models.CaseResponse, error) {
	s.logger.Info("UseAnniversaryPack: case id=%s, pack=%v", caseID, req.PackID)

	// 1. Получаем кейс для определения клиента
	current, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, caseRepo.ErrCaseNotFound) {
			s.logger.Warn("UseAnniversaryPack: case id=%s not found", caseID)
			return nil, ErrCaseNotFound
		}
		s.logger.Error("UseAnniversaryPack: repository error for case id=%s: %v", caseID, err)
		return nil, fmt.Errorf("%w: UseAnniversaryPack - repository error: %v", ErrInternal, err)
	}

	// 2. Выбираем пакет
	now := s.timeProvider.Now()
	var pack domain.AnniversaryPack
	if req.PackID != nil {
		pack, err = s.getPack(ctx, "UseAnniversaryPack", *req.PackID)
		if err != nil {
			return nil, err
		}
	} else {
		packs, err := s.packs.ListAnniversaryPacks(ctx, current.CorporateName)
		if err != nil {
			s.logger.Error("UseAnniversaryPack: failed to list packs for %q: %v", current.CorporateName, err)
			return nil, fmt.Errorf("%w: UseAnniversaryPack - catalog error: %v", ErrInternal, err)
		}
		var ok bool
		pack, ok = domain.NearestExpiringPack(packs, now)
		if !ok {
			s.logger.Warn("UseAnniversaryPack: no available packs for %q", current.CorporateName)
			return nil, ErrPackNotFound
		}
	}

	// 3. Привязываем пакет; клиент кейса перепроверяется под блокировкой
	updated, err := s.caseRepo.Update(ctx, caseID, func(c *domain.Case) error {
		now := s.timeProvider.Now()
		if err := checkPack(pack, c.CorporateName, now); err != nil {
			return err
		}
		c.UseAnniversaryPack(pack.ID, now)
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError("UseAnniversaryPack", caseID, err)
	}

	s.logger.Info("UseAnniversaryPack: linked pack=%s to case id=%s", pack.ID, caseID)
	return models.FromDomainCase(updated), nil
}

// Вспомогательные методы

func (s *Service) getPack(ctx context.Context, op, id string) (domain.AnniversaryPack, error) {
	pack, err := s.packs.GetAnniversaryPack(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackNotFound) {
			s.logger.Warn("%s: anniversary pack=%s not found", op, id)
			return domain.AnniversaryPack{}, ErrPackNotFound
		}
		s.logger.Error("%s: failed to get anniversary pack=%s: %v", op, id, err)
		return domain.AnniversaryPack{}, fmt.Errorf("%w: %s - catalog error: %v", ErrInternal, op, err)
	}
	return pack, nil
}

// checkPack проверяет, что пакет принадлежит клиенту и ещё действует
func checkPack(pack domain.AnniversaryPack, corporateName string, now time.Time) error {
	if pack.CorporateName != corporateName {
		return fmt.Errorf("%w: pack %s belongs to %q", ErrPackUnavailable, pack.ID, pack.CorporateName)
	}
	if pack.IsExpired(now) {
		return fmt.Errorf("%w: pack %s expired on %s", ErrPackUnavailable, pack.ID, pack.ExpiryDate.Format(domain.DateFormat))
	}
	if pack.RemainingAmount <= 0 {
		return fmt.Errorf("%w: pack %s is used up", ErrPackUnavailable, pack.ID)
	}
	return nil
}

// mapUpdateError конвертирует ошибки репозитория и домена в ошибки сервиса
func (s *Service) mapUpdateError(op, caseID string, err error) error {
	switch {
	case errors.Is(err, caseRepo.ErrCaseNotFound):
		s.logger.Warn("%s: case id=%s not found", op, caseID)
		return ErrCaseNotFound
	case errors.Is(err, domain.ErrSlotNotFound):
		s.logger.Warn("%s: %v", op, err)
		return ErrSlotNotFound
	case errors.Is(err, domain.ErrMaterialNotFound):
		s.logger.Warn("%s: %v", op, err)
		return ErrMaterialNotFound
	case errors.Is(err, ErrPackUnavailable), errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: %v", op, err)
		return err
	case errors.Is(err, ErrPackNotFound), errors.Is(err, ErrInternal):
		return err
	case errors.Is(err, domain.ErrInvariantViolated):
		s.logger.Warn("%s: rejected update of case id=%s: %v", op, caseID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		s.logger.Error("%s: repository error for case id=%s: %v", op, caseID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
