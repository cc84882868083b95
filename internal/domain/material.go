package domain

import (
	"fmt"
	"time"
)

const (
	msgSizeExceeded      = "ファイルサイズが10MBを超えています（現在: %.2fMB）"
	msgUnsupportedFormat = "対応していないファイル形式です（対応形式: JPEG, PNG, GIF, MP4）"
)

// MaterialFile загруженный креатив
type MaterialFile struct {
	ID               string
	SlotID           *string // слот, к которому относится материал
	Name             string
	URL              string
	Size             int64 // байты
	Format           string
	Width            *int
	Height           *int
	UploadedAt       time.Time
	ValidationErrors []string
}

// IsValid returns true if the material has no validation errors
func (m MaterialFile) IsValid() bool {
	return len(m.ValidationErrors) == 0
}

func (m MaterialFile) clone() MaterialFile {
	m.SlotID = clonePtr(m.SlotID)
	m.Width = clonePtr(m.Width)
	m.Height = clonePtr(m.Height)
	if m.ValidationErrors != nil {
		m.ValidationErrors = append([]string(nil), m.ValidationErrors...)
	}
	return m
}

// ValidateMaterial проверяет размер и формат файла
// Возвращает пустой список, если нарушений нет
func ValidateMaterial(size int64, format string) []string {
	errs := make([]string, 0, 2)

	if size > MaxMaterialSizeBytes {
		errs = append(errs, fmt.Sprintf(msgSizeExceeded, float64(size)/(1024*1024)))
	}

	if !isAllowedFormat(format) {
		errs = append(errs, msgUnsupportedFormat)
	}

	return errs
}

func isAllowedFormat(format string) bool {
	for _, allowed := range AllowedMaterialFormats {
		if format == allowed {
			return true
		}
	}
	return false
}

// AddMaterial сохраняет материал вместе с ошибками проверки
// Нарушения не блокируют сохранение; несуществующий слот - блокирует
func (c *Case) AddMaterial(m MaterialFile, now time.Time) error {
	if m.SlotID != nil && !c.HasProposalSlot(*m.SlotID) {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, *m.SlotID)
	}

	m.ValidationErrors = ValidateMaterial(m.Size, m.Format)
	if m.UploadedAt.IsZero() {
		m.UploadedAt = now
	}

	c.Materials = append(c.Materials, m)
	c.Touch(now)
	return nil
}

// RemoveMaterial удаляет материал
func (c *Case) RemoveMaterial(materialID string, now time.Time) error {
	for i, m := range c.Materials {
		if m.ID == materialID {
			c.Materials = append(c.Materials[:i], c.Materials[i+1:]...)
			c.Touch(now)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMaterialNotFound, materialID)
}

// MaterialsForSlot возвращает материалы, привязанные к слоту
func (c *Case) MaterialsForSlot(slotID string) []MaterialFile {
	out := make([]MaterialFile, 0)
	for _, m := range c.Materials {
		if m.SlotID != nil && *m.SlotID == slotID {
			out = append(out, m)
		}
	}
	return out
}
