package workflow

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	caseRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

// Результаты перехода для метрик
const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultNotFound = "not_found"
	resultError    = "error"
)

// Service выполняет действия workflow над кейсами
type Service struct {
	caseRepo     CaseRepository
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса workflow
func NewService(caseRepo CaseRepository, metrics MetricsRecorder, logger Logger) *Service {
	return &Service{
		caseRepo:     caseRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет действие над кейсом под блокировкой кейса
// При ошибке кейс не меняется
func (s *Service) Execute(ctx context.Context, caseID string, req *models.TransitionRequest) (*models.CaseResponse, error) {
	s.logger.Info("Execute: action=%s for case id=%s", req.Action, caseID)

	// 1. Разбор действия
	action, err := domain.ParseAction(req.Action)
	if err != nil {
		s.logger.Warn("Execute: unknown action=%q for case id=%s", req.Action, caseID)
		return nil, ErrUnknownAction
	}

	// 2. Валидация параметров
	if utf8.RuneCountInString(req.Comment) > domain.MaxReviewCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxReviewCommentLength)
	}
	if utf8.RuneCountInString(req.Reason) > domain.MaxStopReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxStopReasonLength)
	}

	params := domain.TransitionParams{Comment: req.Comment, Reason: req.Reason}

	// 3. Переход
	var from domain.CaseStatus
	updated, err := s.caseRepo.Update(ctx, caseID, func(c *domain.Case) error {
		from = c.Status
		return c.Apply(action, params, s.timeProvider.Now())
	})
	if err != nil {
		return nil, s.mapError(action, caseID, err)
	}

	s.metrics.RecordTransition(string(action), resultOK)
	s.logger.Info("Execute: case id=%s %s -> %s (review %s) by %s",
		caseID, from, updated.Status, updated.AdminReviewStatus, action)

	return models.FromDomainCase(updated), nil
}

// ProceedToPublishing 提案中 -> 配信準備中
func (s *Service) ProceedToPublishing(ctx context.Context, caseID string) (*models.CaseResponse, error) {
	return s.Execute(ctx, caseID, &models.TransitionRequest{Action: string(domain.ActionProceed)})
}

// SkipProposal 提案中 -> 見送り
func (s *Service) SkipProposal(ctx context.Context, caseID string) (*models.CaseResponse, error) {
	return s.Execute(ctx, caseID, &models.TransitionRequest{Action: string(domain.ActionSkip)})
}

// RequestAdminReview отправляет кейс на проверку
func (s *Service) RequestAdminReview(ctx context.Context, caseID string) (*models.CaseResponse, error) {
	return s.Execute(ctx, caseID, &models.TransitionRequest{Action: string(domain.ActionRequestReview)})
}

// ApproveCase одобряет кейс
func (s *Service) ApproveCase(ctx context.Context, caseID string) (*models.CaseResponse, error) {
	return s.Execute(ctx, caseID, &models.TransitionRequest{Action: string(domain.ActionApprove)})
}

// RejectCase возвращает кейс на доработку
func (s *Service) RejectCase(ctx context.Context, caseID, comment string) (*models.CaseResponse, error) {
	return s.Execute(ctx, caseID, &models.TransitionRequest{Action: string(domain.ActionReject), Comment: comment})
}

// StartPublishing запускает публикацию одобренного кейса
func (s *Service) StartPublishing(ctx context.Context, caseID string) (*models.CaseResponse, error) {
	return s.Execute(ctx, caseID, &models.TransitionRequest{Action: string(domain.ActionStartPublishing)})
}

// RequestStopPublishing запрашивает остановку публикации
func (s *Service) RequestStopPublishing(ctx context.Context, caseID, reason string) (*models.CaseResponse, error) {
	return s.Execute(ctx, caseID, &models.TransitionRequest{Action: string(domain.ActionRequestStop), Reason: reason})
}

// ConfirmStopPublishing останавливает публикацию
func (s *Service) ConfirmStopPublishing(ctx context.Context, caseID string) (*models.CaseResponse, error) {
	return s.Execute(ctx, caseID, &models.TransitionRequest{Action: string(domain.ActionConfirmStop)})
}

func (s *Service) mapError(action domain.Action, caseID string, err error) error {
	switch {
	case errors.Is(err, caseRepo.ErrCaseNotFound):
		s.metrics.RecordTransition(string(action), resultNotFound)
		s.logger.Warn("Execute: case id=%s not found", caseID)
		return ErrCaseNotFound
	case errors.Is(err, domain.ErrCommentRequired):
		s.metrics.RecordTransition(string(action), resultRejected)
		s.logger.Warn("Execute: %s on case id=%s without comment", action, caseID)
		return ErrCommentRequired
	case errors.Is(err, domain.ErrInvalidTransition):
		s.metrics.RecordTransition(string(action), resultRejected)
		s.logger.Warn("Execute: case id=%s: %v", caseID, err)
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	default:
		s.metrics.RecordTransition(string(action), resultError)
		s.logger.Error("Execute: failed to apply %s to case id=%s: %v", action, caseID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, action, err)
	}
}
