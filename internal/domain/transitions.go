package domain

import (
	"fmt"
	"strings"
	"time"
)

// Action действие workflow над кейсом
type Action string

const (
	ActionProceed         Action = "proceed"
	ActionSkip            Action = "skip"
	ActionRequestReview   Action = "request-review"
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionStartPublishing Action = "start-publishing"
	ActionRequestStop     Action = "request-stop"
	ActionConfirmStop     Action = "confirm-stop"
	ActionReopen          Action = "reopen"
)

// Actions все действия в порядке workflow
var Actions = []Action{
	ActionProceed,
	ActionSkip,
	ActionRequestReview,
	ActionApprove,
	ActionReject,
	ActionStartPublishing,
	ActionRequestStop,
	ActionConfirmStop,
	ActionReopen,
}

// ParseAction конвертирует строку в Action
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// TransitionParams дополнительные данные перехода
type TransitionParams struct {
	Comment string // для ActionReject
	Reason  string // для ActionRequestStop
}

// guard проверяет предусловие действия, не изменяя кейс
func (c *Case) guard(a Action) error {
	switch a {
	case ActionProceed, ActionSkip:
		if c.Status != StatusProposing {
			return c.invalid(a)
		}

	case ActionRequestReview:
		switch {
		case c.Status == StatusPreparing, c.Status == StatusSentBack:
		case c.Status == StatusLive && c.AdminReviewStatus == ReviewNone:
			// кейс открыт на редактирование после публикации
		default:
			return c.invalid(a)
		}

	case ActionApprove, ActionReject:
		if c.AdminReviewStatus != ReviewPending {
			return c.invalid(a)
		}

	case ActionStartPublishing:
		if c.AdminReviewStatus != ReviewApproved || c.Status != StatusUnderReview {
			return c.invalid(a)
		}

	case ActionRequestStop:
		if c.Status != StatusLive {
			return c.invalid(a)
		}

	case ActionConfirmStop:
		if c.Status != StatusLive && c.Status != StatusStopRequested {
			return c.invalid(a)
		}

	case ActionReopen:
		if c.Status != StatusLive || c.AdminReviewStatus != ReviewApproved {
			return c.invalid(a)
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}

	return nil
}

func (c *Case) invalid(a Action) error {
	return fmt.Errorf("%w: %s not allowed in status %s (review %s)",
		ErrInvalidTransition, a, c.Status, c.AdminReviewStatus)
}

// CanApply returns true if the action precondition holds
func (c *Case) CanApply(a Action) bool {
	return c.guard(a) == nil
}

// AvailableActions возвращает действия, допустимые в текущем состоянии
func (c *Case) AvailableActions() []Action {
	out := make([]Action, 0, len(Actions))
	for _, a := range Actions {
		if c.CanApply(a) {
			out = append(out, a)
		}
	}
	return out
}

// Apply выполняет действие по имени
func (c *Case) Apply(a Action, p TransitionParams, now time.Time) error {
	switch a {
	case ActionProceed:
		return c.ProceedToPublishing(now)
	case ActionSkip:
		return c.SkipProposal(now)
	case ActionRequestReview:
		return c.RequestAdminReview(now)
	case ActionApprove:
		return c.Approve(now)
	case ActionReject:
		return c.Reject(p.Comment, now)
	case ActionStartPublishing:
		return c.StartPublishing(now)
	case ActionRequestStop:
		return c.RequestStopPublishing(p.Reason, now)
	case ActionConfirmStop:
		return c.ConfirmStopPublishing(now)
	case ActionReopen:
		return c.ReopenForEdit(now)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
}

// ProceedToPublishing 提案中 -> 配信準備中
// Слоты и политика могут быть пустыми
func (c *Case) ProceedToPublishing(now time.Time) error {
	if err := c.guard(ActionProceed); err != nil {
		return err
	}
	c.Status = StatusPreparing
	c.Touch(now)
	return nil
}

// SkipProposal 提案中 -> 見送り (терминальный)
func (c *Case) SkipProposal(now time.Time) error {
	if err := c.guard(ActionSkip); err != nil {
		return err
	}
	c.Status = StatusSkipped
	c.Touch(now)
	return nil
}

// RequestAdminReview отправляет кейс на проверку
// Комментарий прошлого отклонения сохраняется до следующего одобрения
func (c *Case) RequestAdminReview(now time.Time) error {
	if err := c.guard(ActionRequestReview); err != nil {
		return err
	}
	c.Status = StatusUnderReview
	c.AdminReviewStatus = ReviewPending
	c.Touch(now)
	return nil
}

// Approve одобряет кейс; статус не меняется, публикацию запускает StartPublishing
func (c *Case) Approve(now time.Time) error {
	if err := c.guard(ActionApprove); err != nil {
		return err
	}
	c.AdminReviewStatus = ReviewApproved
	c.AdminReviewComment = ""
	c.Touch(now)
	return nil
}

// Reject возвращает кейс на доработку с обязательным комментарием
func (c *Case) Reject(comment string, now time.Time) error {
	if err := c.guard(ActionReject); err != nil {
		return err
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrCommentRequired
	}
	c.Status = StatusSentBack
	c.AdminReviewStatus = ReviewRejected
	c.AdminReviewComment = comment
	c.Touch(now)
	return nil
}

// StartPublishing 事務確認中 (approved) -> 掲載中
func (c *Case) StartPublishing(now time.Time) error {
	if err := c.guard(ActionStartPublishing); err != nil {
		return err
	}
	c.Status = StatusLive
	c.Touch(now)
	return nil
}

// RequestStopPublishing 掲載中 -> 掲載停止依頼中
// Причина хранится как есть и может быть пустой
func (c *Case) RequestStopPublishing(reason string, now time.Time) error {
	if err := c.guard(ActionRequestStop); err != nil {
		return err
	}
	c.Status = StatusStopRequested
	c.StopPublishingRequest = &reason
	c.Touch(now)
	return nil
}

// ConfirmStopPublishing 掲載中 | 掲載停止依頼中 -> 掲載停止
func (c *Case) ConfirmStopPublishing(now time.Time) error {
	if err := c.guard(ActionConfirmStop); err != nil {
		return err
	}
	c.Status = StatusStopped
	c.StopPublishingRequest = nil
	c.Touch(now)
	return nil
}

// ReopenForEdit сбрасывает одобрение опубликованного кейса для правки контента
// После этого кейс снова можно отправить на проверку
func (c *Case) ReopenForEdit(now time.Time) error {
	if err := c.guard(ActionReopen); err != nil {
		return err
	}
	c.AdminReviewStatus = ReviewNone
	c.Touch(now)
	return nil
}
