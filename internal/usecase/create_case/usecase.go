package create_case

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

const (
	aiSlotStartTime = "10:00"
	aiSlotEndTime   = "18:00"
)

// UseCase use case для создания кейса
type UseCase struct {
	caseRepo     CaseRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(caseRepo CaseRepository, logger Logger) *UseCase {
	return &UseCase{
		caseRepo:     caseRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает кейс в статусе 提案中 с одним AI-рекомендованным слотом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.CaseResponse, error) {
	uc.logger.Info("CreateCase: corporate=%q, store=%q", req.CorporateName, req.StoreName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCase: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем кейс
	now := uc.timeProvider.Now()
	c := domain.NewCase(uuid.NewString(), req.CorporateName, req.StoreName, now)
	c.AIRecommendedSlots = []domain.ProposalSlot{recommendedSlot(now)}

	if err := c.Validate(); err != nil {
		uc.logger.Error("CreateCase: new case violates invariants: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Сохраняем
	if err := uc.caseRepo.Create(ctx, c); err != nil {
		uc.logger.Error("CreateCase: failed to create case: %v", err)
		return nil, fmt.Errorf("%w: failed to create case: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateCase: successfully created case id=%s", c.ID)
	return models.FromDomainCase(c), nil
}

// recommendedSlot период через 7-14 дней от текущей даты с типом баннера "未定"
func recommendedSlot(now time.Time) domain.ProposalSlot {
	today := domain.DateOnly(now)
	return domain.ProposalSlot{
		ID:         "ai-" + uuid.NewString(),
		StartDate:  today.AddDate(0, 0, domain.AIRecommendationMinDays),
		EndDate:    today.AddDate(0, 0, domain.AIRecommendationMaxDays),
		StartTime:  aiSlotStartTime,
		EndTime:    aiSlotEndTime,
		BannerType: domain.BannerUndecided,
	}
}
