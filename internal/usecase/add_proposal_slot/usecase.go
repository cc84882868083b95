package add_proposal_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/catalog"
	caseRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

// UseCase use case для добавления и изменения слота размещения
type UseCase struct {
	caseRepo     CaseRepository
	areaCatalog  AreaCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(caseRepo CaseRepository, areaCatalog AreaCatalog, logger Logger) *UseCase {
	return &UseCase{
		caseRepo:     caseRepo,
		areaCatalog:  areaCatalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute добавляет слот в кейс или заменяет существующий (если указан SlotID)
// Пересечения с бронированиями не проверяются: конфликты только отображаются в календаре
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddProposalSlot: case=%s, area=%v, period=%s %s - %s %s, banner=%q",
		req.CaseID, req.AreaSlotID,
		req.StartDate.Format(domain.DateFormat), req.StartTime,
		req.EndDate.Format(domain.DateFormat), req.EndTime, req.BannerType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddProposalSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем слот
	slot := domain.ProposalSlot{
		ID:         uuid.NewString(),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BannerType: domain.BannerType(req.BannerType),
	}
	if req.SlotID != nil {
		slot.ID = *req.SlotID
	}
	if slot.BannerType == "" {
		slot.BannerType = domain.BannerUndecided
	}

	// 3. Подставляем название площадки из справочника
	if req.AreaSlotID != nil {
		area, err := uc.areaCatalog.GetAreaSlot(ctx, *req.AreaSlotID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrAreaSlotNotFound) {
				uc.logger.Warn("AddProposalSlot: area slot id=%s not found", *req.AreaSlotID)
				return nil, ErrAreaSlotNotFound
			}
			uc.logger.Error("AddProposalSlot: failed to get area slot id=%s: %v", *req.AreaSlotID, err)
			return nil, fmt.Errorf("%w: failed to get area slot: %v", ErrInternal, err)
		}
		areaID, areaName := area.ID, area.Area
		slot.AreaSlotID = &areaID
		slot.AreaName = &areaName
	}

	// 4. Проверяем слот до блокировки кейса
	if err := slot.Validate(); err != nil {
		uc.logger.Warn("AddProposalSlot: malformed slot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedSlot, err)
	}

	// 5. Сохраняем
	updated, err := uc.caseRepo.Update(ctx, req.CaseID, func(c *domain.Case) error {
		now := uc.timeProvider.Now()
		if req.SlotID != nil {
			return c.UpdateProposalSlot(slot, now)
		}
		return c.AddProposalSlot(slot, now)
	})
	if err != nil {
		switch {
		case errors.Is(err, caseRepo.ErrCaseNotFound):
			uc.logger.Warn("AddProposalSlot: case id=%s not found", req.CaseID)
			return nil, ErrCaseNotFound
		case errors.Is(err, domain.ErrSlotNotFound):
			uc.logger.Warn("AddProposalSlot: slot id=%s not found in case id=%s", slot.ID, req.CaseID)
			return nil, ErrSlotNotFound
		case errors.Is(err, domain.ErrMalformedSlot):
			uc.logger.Warn("AddProposalSlot: malformed slot: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrMalformedSlot, err)
		default:
			uc.logger.Error("AddProposalSlot: failed to update case id=%s: %v", req.CaseID, err)
			return nil, fmt.Errorf("%w: failed to update case: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("AddProposalSlot: saved slot id=%s in case id=%s", slot.ID, req.CaseID)

	return &Response{
		Slot: models.FromDomainSlot(slot.Normalize()),
		Case: models.FromDomainCase(updated),
	}, nil
}
