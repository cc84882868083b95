package models

import "github.com/m04kA/SMC-BannerCaseService/internal/domain"

// AreaSlotResponse площадка размещения
type AreaSlotResponse struct {
	ID         string `json:"id"`
	Area       string `json:"area"`
	AreaGroup  string `json:"areaGroup"`
	Prefecture string `json:"prefecture"`
}

// AreaSlotListResponse список площадок
type AreaSlotListResponse struct {
	AreaSlots   []AreaSlotResponse `json:"areaSlots"`
	Prefectures []string           `json:"prefectures"` // в порядке первого появления
}

// PackResponse юбилейный пакет
type PackResponse struct {
	ID              string `json:"id"`
	CorporateName   string `json:"corporateName"`
	Title           string `json:"title"`
	ExpiryDate      string `json:"expiryDate"` // "2026-03-31"
	RemainingAmount int64  `json:"remainingAmount"`
	IsAvailable     bool   `json:"isAvailable"`
	IsRecommended   bool   `json:"isRecommended"` // выбирается по умолчанию
}

// PackListResponse список юбилейных пакетов клиента
type PackListResponse struct {
	Packs []PackResponse `json:"packs"`
}

// FromDomainAreaSlots конвертирует площадки в DTO
func FromDomainAreaSlots(areas []domain.AreaSlot) *AreaSlotListResponse {
	resp := &AreaSlotListResponse{
		AreaSlots:   make([]AreaSlotResponse, 0, len(areas)),
		Prefectures: make([]string, 0),
	}

	seen := make(map[string]struct{})
	for _, a := range areas {
		resp.AreaSlots = append(resp.AreaSlots, AreaSlotResponse{
			ID:         a.ID,
			Area:       a.Area,
			AreaGroup:  a.AreaGroup,
			Prefecture: a.Prefecture,
		})
		if _, ok := seen[a.Prefecture]; !ok {
			seen[a.Prefecture] = struct{}{}
			resp.Prefectures = append(resp.Prefectures, a.Prefecture)
		}
	}

	return resp
}

// FromDomainPack конвертирует пакет в DTO
func FromDomainPack(p domain.AnniversaryPack, available, recommended bool) PackResponse {
	return PackResponse{
		ID:              p.ID,
		CorporateName:   p.CorporateName,
		Title:           p.Title,
		ExpiryDate:      p.ExpiryDate.Format(domain.DateFormat),
		RemainingAmount: p.RemainingAmount,
		IsAvailable:     available,
		IsRecommended:   recommended,
	}
}
