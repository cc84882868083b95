package add_proposal_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
	addSlot "github.com/m04kA/SMC-BannerCaseService/internal/usecase/add_proposal_slot"
	"github.com/m04kA/SMC-BannerCaseService/pkg/types"
)

// SlotRequest HTTP request model
type SlotRequest struct {
	AreaSlotID *string `json:"areaSlotId,omitempty"`
	StartDate  string  `json:"startDate"` // "2026-02-01"
	EndDate    string  `json:"endDate"`   // "2026-02-07"
	StartTime  string  `json:"startTime"` // "10:00"
	EndTime    string  `json:"endTime"`   // "18:00"
	BannerType string  `json:"bannerType,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	Slot models.SlotResponse  `json:"slot"`
	Case *models.CaseResponse `json:"case"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SlotRequest) ToUseCaseRequest(caseID string, slotID *string) (*addSlot.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &addSlot.Request{
		CaseID:     caseID,
		SlotID:     slotID,
		AreaSlotID: r.AreaSlotID,
		StartDate:  startDate,
		EndDate:    endDate,
		StartTime:  startTime,
		EndTime:    endTime,
		BannerType: r.BannerType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addSlot.Response) *SlotResponse {
	return &SlotResponse{
		Slot: resp.Slot,
		Case: resp.Case,
	}
}
