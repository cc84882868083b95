package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid case status")
)

// Request модели

// ListCasesRequest запрос на получение списка кейсов
type ListCasesRequest struct {
	Status           *string `json:"status,omitempty"`
	CorporateName    string  `json:"corporateName,omitempty"`
	NeedsAdminReview bool    `json:"needsAdminReview,omitempty"` // очередь отдела проверки
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListCasesRequest) ToDomainFilter() (domain.CaseFilter, error) {
	filter := domain.CaseFilter{
		CorporateName:    r.CorporateName,
		NeedsAdminReview: r.NeedsAdminReview,
	}

	if r.Status != nil {
		status, err := ToDomainCaseStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateCaseRequest частичное обновление кейса
// Поля статуса и проверки через этот запрос не меняются
type UpdateCaseRequest struct {
	CorporateName          *string `json:"corporateName,omitempty"`
	StoreName              *string `json:"storeName,omitempty"`
	ImplementationPolicy   *string `json:"implementationPolicy,omitempty"`
	PublishingContent      *string `json:"publishingContent,omitempty"`
	BillingAmount          *int64  `json:"billingAmount,omitempty"`
	IsAnniversaryPack      *bool   `json:"isAnniversaryPack,omitempty"`
	AnniversaryPackCode    *string `json:"anniversaryPackCode,omitempty"`
	ApplicationDocumentURL *string `json:"applicationDocumentUrl,omitempty"`
}

// ToDomainPatch конвертирует request в domain патч
func (r *UpdateCaseRequest) ToDomainPatch() domain.CasePatch {
	return domain.CasePatch{
		CorporateName:          r.CorporateName,
		StoreName:              r.StoreName,
		ImplementationPolicy:   r.ImplementationPolicy,
		PublishingContent:      r.PublishingContent,
		BillingAmount:          r.BillingAmount,
		IsAnniversaryPack:      r.IsAnniversaryPack,
		AnniversaryPackCode:    r.AnniversaryPackCode,
		ApplicationDocumentURL: r.ApplicationDocumentURL,
	}
}

// UploadDocumentRequest запрос на загрузку заявки
type UploadDocumentRequest struct {
	URL string `json:"url"`
}

// UseAnniversaryPackRequest запрос на привязку юбилейного пакета
// Без PackID выбирается действующий пакет с ближайшим сроком
type UseAnniversaryPackRequest struct {
	PackID *string `json:"packId,omitempty"`
}

// TransitionRequest запрос на выполнение действия workflow
type TransitionRequest struct {
	Action  string `json:"-"`
	Comment string `json:"comment,omitempty"` // для reject
	Reason  string `json:"reason,omitempty"`  // для request-stop
}

// Response модели

// SlotResponse слот размещения
type SlotResponse struct {
	ID         string  `json:"id"`
	AreaSlotID *string `json:"areaSlotId,omitempty"`
	AreaName   *string `json:"areaName,omitempty"`
	StartDate  string  `json:"startDate"` // "2026-02-01"
	EndDate    string  `json:"endDate"`
	StartTime  string  `json:"startTime"` // "10:00"
	EndTime    string  `json:"endTime"`
	BannerType string  `json:"bannerType"`
}

// MaterialResponse материал кейса
type MaterialResponse struct {
	ID               string    `json:"id"`
	SlotID           *string   `json:"slotId,omitempty"`
	Name             string    `json:"name"`
	URL              string    `json:"url"`
	Size             int64     `json:"size"`
	Format           string    `json:"format"`
	Width            *int      `json:"width,omitempty"`
	Height           *int      `json:"height,omitempty"`
	UploadedAt       time.Time `json:"uploadedAt"`
	IsValid          bool      `json:"isValid"`
	ValidationErrors []string  `json:"validationErrors"`
}

// CaseResponse ответ с данными кейса
type CaseResponse struct {
	ID            string `json:"id"`
	CorporateName string `json:"corporateName"`
	StoreName     string `json:"storeName"`
	Status        string `json:"status"`
	Step          int    `json:"step"`

	ProposalSlots      []SlotResponse     `json:"proposalSlots"`
	Materials          []MaterialResponse `json:"materials"`
	AIRecommendedSlots []SlotResponse     `json:"aiRecommendedSlots"`

	BillingAmount       *int64 `json:"billingAmount,omitempty"`
	IsAnniversaryPack   bool   `json:"isAnniversaryPack"`
	AnniversaryPackCode string `json:"anniversaryPackCode,omitempty"`

	ImplementationPolicy   string  `json:"implementationPolicy"`
	PublishingContent      string  `json:"publishingContent"`
	ApplicationDocumentURL *string `json:"applicationDocumentUrl,omitempty"`

	// Поля, существующие только в определённых состояниях
	AdminReviewStatus     string  `json:"adminReviewStatus"`
	AdminReviewComment    *string `json:"adminReviewComment,omitempty"`
	StopPublishingRequest *string `json:"stopPublishingRequest,omitempty"`

	AvailableActions []string `json:"availableActions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CaseListResponse ответ со списком кейсов
type CaseListResponse struct {
	Cases []CaseResponse `json:"cases"`
	Total int            `json:"total"`
}

// Методы конвертации

// FromDomainSlot конвертирует слот в DTO
func FromDomainSlot(s domain.ProposalSlot) SlotResponse {
	return SlotResponse{
		ID:         s.ID,
		AreaSlotID: s.AreaSlotID,
		AreaName:   s.AreaName,
		StartDate:  s.StartDate.Format(domain.DateFormat),
		EndDate:    s.EndDate.Format(domain.DateFormat),
		StartTime:  s.StartTime.String(),
		EndTime:    s.EndTime.String(),
		BannerType: string(s.BannerType),
	}
}

// FromDomainMaterial конвертирует материал в DTO
func FromDomainMaterial(m domain.MaterialFile) MaterialResponse {
	errs := m.ValidationErrors
	if errs == nil {
		errs = []string{}
	}
	return MaterialResponse{
		ID:               m.ID,
		SlotID:           m.SlotID,
		Name:             m.Name,
		URL:              m.URL,
		Size:             m.Size,
		Format:           m.Format,
		Width:            m.Width,
		Height:           m.Height,
		UploadedAt:       m.UploadedAt,
		IsValid:          m.IsValid(),
		ValidationErrors: errs,
	}
}

// FromDomainCase конвертирует domain модель в DTO
func FromDomainCase(c *domain.Case) *CaseResponse {
	if c == nil {
		return nil
	}

	resp := &CaseResponse{
		ID:                     c.ID,
		CorporateName:          c.CorporateName,
		StoreName:              c.StoreName,
		Status:                 string(c.Status),
		Step:                   c.Status.Step(),
		ProposalSlots:          fromDomainSlots(c.ProposalSlots),
		Materials:              make([]MaterialResponse, 0, len(c.Materials)),
		AIRecommendedSlots:     fromDomainSlots(c.AIRecommendedSlots),
		BillingAmount:          c.BillingAmount,
		IsAnniversaryPack:      c.IsAnniversaryPack,
		AnniversaryPackCode:    c.AnniversaryPackCode,
		ImplementationPolicy:   c.ImplementationPolicy,
		PublishingContent:      c.PublishingContent,
		ApplicationDocumentURL: c.ApplicationDocumentURL,
		AdminReviewStatus:      string(c.AdminReviewStatus),
		StopPublishingRequest:  c.StopPublishingRequest,
		AvailableActions:       make([]string, 0),
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}

	for _, m := range c.Materials {
		resp.Materials = append(resp.Materials, FromDomainMaterial(m))
	}

	if c.AdminReviewComment != "" {
		comment := c.AdminReviewComment
		resp.AdminReviewComment = &comment
	}

	for _, a := range c.AvailableActions() {
		resp.AvailableActions = append(resp.AvailableActions, string(a))
	}

	return resp
}

// FromDomainCaseList конвертирует список domain моделей в DTO
func FromDomainCaseList(cases []*domain.Case) *CaseListResponse {
	resp := &CaseListResponse{
		Cases: make([]CaseResponse, 0, len(cases)),
	}

	for _, c := range cases {
		if caseResp := FromDomainCase(c); caseResp != nil {
			resp.Cases = append(resp.Cases, *caseResp)
		}
	}
	resp.Total = len(resp.Cases)

	return resp
}

// ToDomainCaseStatus конвертирует строку в domain.CaseStatus с валидацией
func ToDomainCaseStatus(status string) (domain.CaseStatus, error) {
	s := domain.CaseStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func fromDomainSlots(slots []domain.ProposalSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromDomainSlot(s))
	}
	return out
}
