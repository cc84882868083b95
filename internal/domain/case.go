package domain

import (
	"fmt"
	"strings"
	"time"
)

// CaseStatus статус кейса размещения баннера
type CaseStatus string

const (
	StatusProposing     CaseStatus = "提案中"
	StatusPreparing     CaseStatus = "配信準備中"
	StatusUnderReview   CaseStatus = "事務確認中"
	StatusSentBack      CaseStatus = "差し戻し"
	StatusLive          CaseStatus = "掲載中"
	StatusStopRequested CaseStatus = "掲載停止依頼中"
	StatusStopped       CaseStatus = "掲載停止"
	StatusSkipped       CaseStatus = "見送り"
	StatusDeclined      CaseStatus = "却下" // выставляется только внешней системой
)

// AllStatuses все статусы кейса
var AllStatuses = []CaseStatus{
	StatusProposing,
	StatusPreparing,
	StatusUnderReview,
	StatusSentBack,
	StatusLive,
	StatusStopRequested,
	StatusStopped,
	StatusSkipped,
	StatusDeclined,
}

// IsValid returns true if the status belongs to the closed set
func (s CaseStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no workflow transition leaves the status
func (s CaseStatus) IsTerminal() bool {
	return s == StatusSkipped || s == StatusStopped || s == StatusDeclined
}

// Step возвращает шаг workflow: 1 - предложение, 2 - публикация
func (s CaseStatus) Step() int {
	switch s {
	case StatusProposing, StatusSkipped:
		return 1
	default:
		return 2
	}
}

// AdminReviewStatus статус проверки отделом администрирования
type AdminReviewStatus string

const (
	ReviewNone     AdminReviewStatus = "none"
	ReviewPending  AdminReviewStatus = "pending"
	ReviewApproved AdminReviewStatus = "approved"
	ReviewRejected AdminReviewStatus = "rejected"
)

// IsValid returns true if the review status is known
func (s AdminReviewStatus) IsValid() bool {
	switch s {
	case ReviewNone, ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

// Case кейс размещения рекламного баннера
//
// Поля статуса и проверки меняются только методами переходов (transitions.go).
// Остальные поля редактируются через ApplyPatch и методы слотов/материалов.
// Каждая мутация обновляет UpdatedAt через Touch.
type Case struct {
	ID            string
	CorporateName string
	StoreName     string
	Status        CaseStatus

	ProposalSlots      []ProposalSlot
	Materials          []MaterialFile
	AIRecommendedSlots []ProposalSlot // только для отображения

	BillingAmount       *int64
	IsAnniversaryPack   bool
	AnniversaryPackCode string

	ImplementationPolicy   string
	PublishingContent      string
	ApplicationDocumentURL *string

	AdminReviewStatus     AdminReviewStatus
	AdminReviewComment    string  // есть только в rejected и в следующем за ним pending
	StopPublishingRequest *string // есть только в StatusStopRequested

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCase создает кейс в статусе StatusProposing
func NewCase(id, corporateName, storeName string, now time.Time) *Case {
	return &Case{
		ID:                 id,
		CorporateName:      corporateName,
		StoreName:          storeName,
		Status:             StatusProposing,
		ProposalSlots:      []ProposalSlot{},
		Materials:          []MaterialFile{},
		AIRecommendedSlots: []ProposalSlot{},
		AdminReviewStatus:  ReviewNone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Touch обновляет UpdatedAt так, чтобы он строго возрастал
// Шаг в микросекунду совпадает с точностью TIMESTAMPTZ в PostgreSQL
func (c *Case) Touch(now time.Time) {
	now = now.Truncate(time.Microsecond)
	if !now.After(c.UpdatedAt) {
		now = c.UpdatedAt.Add(time.Microsecond)
	}
	c.UpdatedAt = now
}

// NeedsAdminReview returns true if the case waits for the review department
func (c *Case) NeedsAdminReview() bool {
	for _, s := range AdminQueueStatuses {
		if c.Status == s {
			return true
		}
	}
	return false
}

// Validate проверяет инварианты кейса
func (c *Case) Validate() error {
	if !c.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvariantViolated, c.Status)
	}
	if !c.AdminReviewStatus.IsValid() {
		return fmt.Errorf("%w: unknown review status %q", ErrInvariantViolated, c.AdminReviewStatus)
	}

	if c.AdminReviewStatus == ReviewPending && !c.NeedsAdminReview() {
		return fmt.Errorf("%w: pending review in status %s", ErrInvariantViolated, c.Status)
	}

	if c.AdminReviewComment != "" &&
		c.AdminReviewStatus != ReviewRejected && c.AdminReviewStatus != ReviewPending {
		return fmt.Errorf("%w: review comment with review status %s", ErrInvariantViolated, c.AdminReviewStatus)
	}

	if c.StopPublishingRequest != nil && c.Status != StatusStopRequested {
		return fmt.Errorf("%w: stop request in status %s", ErrInvariantViolated, c.Status)
	}

	if c.IsAnniversaryPack && (c.BillingAmount == nil || *c.BillingAmount != 0) {
		return fmt.Errorf("%w: anniversary pack case must have zero billing", ErrInvariantViolated)
	}

	if c.BillingAmount != nil && *c.BillingAmount < 0 {
		return fmt.Errorf("%w: negative billing amount", ErrInvariantViolated)
	}

	slotIDs := make(map[string]struct{}, len(c.ProposalSlots))
	for _, slot := range c.ProposalSlots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: slot %s: %v", ErrInvariantViolated, slot.ID, err)
		}
		slotIDs[slot.ID] = struct{}{}
	}

	for _, m := range c.Materials {
		if m.SlotID == nil {
			continue
		}
		if _, ok := slotIDs[*m.SlotID]; !ok {
			return fmt.Errorf("%w: material %s references unknown slot %s", ErrInvariantViolated, m.ID, *m.SlotID)
		}
	}

	if c.UpdatedAt.Before(c.CreatedAt) {
		return fmt.Errorf("%w: updatedAt before createdAt", ErrInvariantViolated)
	}

	return nil
}

// Clone возвращает глубокую копию кейса
func (c *Case) Clone() *Case {
	if c == nil {
		return nil
	}

	cp := *c
	cp.ProposalSlots = cloneSlots(c.ProposalSlots)
	cp.AIRecommendedSlots = cloneSlots(c.AIRecommendedSlots)

	cp.Materials = make([]MaterialFile, len(c.Materials))
	for i, m := range c.Materials {
		cp.Materials[i] = m.clone()
	}

	cp.BillingAmount = clonePtr(c.BillingAmount)
	cp.ApplicationDocumentURL = clonePtr(c.ApplicationDocumentURL)
	cp.StopPublishingRequest = clonePtr(c.StopPublishingRequest)

	return &cp
}

// CasePatch частичное обновление полей кейса, не связанных со статусом
// nil - поле не меняется
type CasePatch struct {
	CorporateName          *string
	StoreName              *string
	ImplementationPolicy   *string
	PublishingContent      *string
	BillingAmount          *int64
	IsAnniversaryPack      *bool
	AnniversaryPackCode    *string
	ApplicationDocumentURL *string
}

// IsEmpty returns true if the patch changes nothing
func (p CasePatch) IsEmpty() bool {
	return p.CorporateName == nil &&
		p.StoreName == nil &&
		p.ImplementationPolicy == nil &&
		p.PublishingContent == nil &&
		p.BillingAmount == nil &&
		p.IsAnniversaryPack == nil &&
		p.AnniversaryPackCode == nil &&
		p.ApplicationDocumentURL == nil
}

// ApplyPatch применяет патч
// При IsAnniversaryPack сумма счёта принудительно 0, патч суммы игнорируется
func (c *Case) ApplyPatch(p CasePatch, now time.Time) error {
	if p.CorporateName != nil {
		name := strings.TrimSpace(*p.CorporateName)
		if name == "" {
			return fmt.Errorf("%w: corporate name must not be empty", ErrInvariantViolated)
		}
		c.CorporateName = name
	}
	if p.StoreName != nil {
		name := strings.TrimSpace(*p.StoreName)
		if name == "" {
			return fmt.Errorf("%w: store name must not be empty", ErrInvariantViolated)
		}
		c.StoreName = name
	}
	if p.ImplementationPolicy != nil {
		c.ImplementationPolicy = *p.ImplementationPolicy
	}
	if p.PublishingContent != nil {
		c.PublishingContent = *p.PublishingContent
	}
	if p.ApplicationDocumentURL != nil {
		c.ApplicationDocumentURL = clonePtr(p.ApplicationDocumentURL)
	}

	if p.IsAnniversaryPack != nil {
		c.IsAnniversaryPack = *p.IsAnniversaryPack
		if !c.IsAnniversaryPack {
			c.AnniversaryPackCode = ""
		}
	}
	if p.AnniversaryPackCode != nil && c.IsAnniversaryPack {
		c.AnniversaryPackCode = *p.AnniversaryPackCode
	}

	if c.IsAnniversaryPack {
		zero := int64(0)
		c.BillingAmount = &zero
	} else if p.BillingAmount != nil {
		if *p.BillingAmount < 0 {
			return fmt.Errorf("%w: negative billing amount", ErrInvariantViolated)
		}
		c.BillingAmount = clonePtr(p.BillingAmount)
	}

	c.Touch(now)
	return nil
}

// UseAnniversaryPack привязывает юбилейный пакет
func (c *Case) UseAnniversaryPack(code string, now time.Time) {
	zero := int64(0)
	c.IsAnniversaryPack = true
	c.AnniversaryPackCode = code
	c.BillingAmount = &zero
	c.Touch(now)
}

// SetApplicationDocument сохраняет ссылку на заявку
func (c *Case) SetApplicationDocument(url string, now time.Time) {
	c.ApplicationDocumentURL = &url
	c.Touch(now)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
