package cases

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/pkg/types"
)

// slotRecord элемент JSONB массива proposal_slots / ai_recommended_slots
type slotRecord struct {
	ID         string           `json:"id"`
	AreaSlotID *string          `json:"areaSlotId,omitempty"`
	AreaName   *string          `json:"areaName,omitempty"`
	StartDate  string           `json:"startDate"`
	EndDate    string           `json:"endDate"`
	StartTime  types.TimeString `json:"startTime"`
	EndTime    types.TimeString `json:"endTime"`
	BannerType string           `json:"bannerType"`
}

// materialRecord элемент JSONB массива materials
type materialRecord struct {
	ID               string    `json:"id"`
	SlotID           *string   `json:"slotId,omitempty"`
	Name             string    `json:"name"`
	URL              string    `json:"url"`
	Size             int64     `json:"size"`
	Format           string    `json:"format"`
	Width            *int      `json:"width,omitempty"`
	Height           *int      `json:"height,omitempty"`
	UploadedAt       time.Time `json:"uploadedAt"`
	ValidationErrors []string  `json:"validationErrors"`
}

func toSlotRecords(slots []domain.ProposalSlot) []slotRecord {
	out := make([]slotRecord, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotRecord{
			ID:         s.ID,
			AreaSlotID: s.AreaSlotID,
			AreaName:   s.AreaName,
			StartDate:  s.StartDate.Format(domain.DateFormat),
			EndDate:    s.EndDate.Format(domain.DateFormat),
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			BannerType: string(s.BannerType),
		})
	}
	return out
}

func fromSlotRecords(records []slotRecord) ([]domain.ProposalSlot, error) {
	out := make([]domain.ProposalSlot, 0, len(records))
	for _, r := range records {
		start, err := time.Parse(domain.DateFormat, r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("slot %s startDate: %v", r.ID, err)
		}
		end, err := time.Parse(domain.DateFormat, r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("slot %s endDate: %v", r.ID, err)
		}
		out = append(out, domain.ProposalSlot{
			ID:         r.ID,
			AreaSlotID: r.AreaSlotID,
			AreaName:   r.AreaName,
			StartDate:  start,
			EndDate:    end,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			BannerType: domain.BannerType(r.BannerType),
		})
	}
	return out, nil
}

func toMaterialRecords(materials []domain.MaterialFile) []materialRecord {
	out := make([]materialRecord, 0, len(materials))
	for _, m := range materials {
		errs := m.ValidationErrors
		if errs == nil {
			errs = []string{}
		}
		out = append(out, materialRecord{
			ID:               m.ID,
			SlotID:           m.SlotID,
			Name:             m.Name,
			URL:              m.URL,
			Size:             m.Size,
			Format:           m.Format,
			Width:            m.Width,
			Height:           m.Height,
			UploadedAt:       m.UploadedAt.UTC(),
			ValidationErrors: errs,
		})
	}
	return out
}

func fromMaterialRecords(records []materialRecord) []domain.MaterialFile {
	out := make([]domain.MaterialFile, 0, len(records))
	for _, r := range records {
		out = append(out, domain.MaterialFile{
			ID:               r.ID,
			SlotID:           r.SlotID,
			Name:             r.Name,
			URL:              r.URL,
			Size:             r.Size,
			Format:           r.Format,
			Width:            r.Width,
			Height:           r.Height,
			UploadedAt:       r.UploadedAt,
			ValidationErrors: r.ValidationErrors,
		})
	}
	return out
}

// caseDocuments JSONB колонки кейса
type caseDocuments struct {
	ProposalSlots      []byte
	Materials          []byte
	AIRecommendedSlots []byte
}

func marshalDocuments(c *domain.Case) (caseDocuments, error) {
	var (
		docs caseDocuments
		err  error
	)
	if docs.ProposalSlots, err = json.Marshal(toSlotRecords(c.ProposalSlots)); err != nil {
		return docs, fmt.Errorf("%w: proposal_slots: %v", ErrMarshal, err)
	}
	if docs.Materials, err = json.Marshal(toMaterialRecords(c.Materials)); err != nil {
		return docs, fmt.Errorf("%w: materials: %v", ErrMarshal, err)
	}
	if docs.AIRecommendedSlots, err = json.Marshal(toSlotRecords(c.AIRecommendedSlots)); err != nil {
		return docs, fmt.Errorf("%w: ai_recommended_slots: %v", ErrMarshal, err)
	}
	return docs, nil
}

func unmarshalDocuments(docs caseDocuments, c *domain.Case) error {
	var slots, aiSlots []slotRecord
	var materials []materialRecord

	if err := unmarshalArray(docs.ProposalSlots, &slots); err != nil {
		return fmt.Errorf("%w: proposal_slots: %v", ErrMarshal, err)
	}
	if err := unmarshalArray(docs.Materials, &materials); err != nil {
		return fmt.Errorf("%w: materials: %v", ErrMarshal, err)
	}
	if err := unmarshalArray(docs.AIRecommendedSlots, &aiSlots); err != nil {
		return fmt.Errorf("%w: ai_recommended_slots: %v", ErrMarshal, err)
	}

	var err error
	if c.ProposalSlots, err = fromSlotRecords(slots); err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	if c.AIRecommendedSlots, err = fromSlotRecords(aiSlots); err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	c.Materials = fromMaterialRecords(materials)
	return nil
}

func unmarshalArray(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
