package add_material

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	caseRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

// UseCase use case для добавления материала в кейс
type UseCase struct {
	caseRepo     CaseRepository
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(caseRepo CaseRepository, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		caseRepo:     caseRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute сохраняет материал вместе с результатом проверки размера и формата
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddMaterial: case=%s, slot=%v, name=%q, size=%d, format=%s",
		req.CaseID, req.SlotID, req.Name, req.Size, req.Format)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddMaterial: validation failed: %v", err)
		return nil, err
	}

	material := domain.MaterialFile{
		ID:     uuid.NewString(),
		SlotID: req.SlotID,
		Name:   req.Name,
		URL:    req.URL,
		Size:   req.Size,
		Format: req.Format,
		Width:  req.Width,
		Height: req.Height,
	}

	// 2. Сохраняем; ошибки проверки пишутся в сам материал
	var stored domain.MaterialFile
	updated, err := uc.caseRepo.Update(ctx, req.CaseID, func(c *domain.Case) error {
		if err := c.AddMaterial(material, uc.timeProvider.Now()); err != nil {
			return err
		}
		stored = c.Materials[len(c.Materials)-1]
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, caseRepo.ErrCaseNotFound):
			uc.logger.Warn("AddMaterial: case id=%s not found", req.CaseID)
			return nil, ErrCaseNotFound
		case errors.Is(err, domain.ErrSlotNotFound):
			uc.logger.Warn("AddMaterial: slot %v not found in case id=%s", req.SlotID, req.CaseID)
			return nil, ErrSlotNotFound
		default:
			uc.logger.Error("AddMaterial: failed to update case id=%s: %v", req.CaseID, err)
			return nil, fmt.Errorf("%w: failed to update case: %v", ErrInternal, err)
		}
	}

	uc.metrics.RecordMaterialValidation(stored.IsValid())

	if stored.IsValid() {
		uc.logger.Info("AddMaterial: saved material id=%s in case id=%s", stored.ID, req.CaseID)
	} else {
		uc.logger.Warn("AddMaterial: saved material id=%s in case id=%s with %d validation errors",
			stored.ID, req.CaseID, len(stored.ValidationErrors))
	}

	return &Response{
		Material: models.FromDomainMaterial(stored),
		Case:     models.FromDomainCase(updated),
	}, nil
}
