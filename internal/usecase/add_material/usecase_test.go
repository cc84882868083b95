package add_material

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	"github.com/m04kA/SMC-BannerCaseService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type metricsSpy struct {
	valid, invalid int
}

func (m *metricsSpy) RecordMaterialValidation(valid bool) {
	if valid {
		m.valid++
		return
	}
	m.invalid++
}

var now = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*UseCase, *cases.MemoryRepository, *metricsSpy) {
	t.Helper()

	c := domain.NewCase("case-1", "A社", "B店", now.Add(-time.Hour))
	require.NoError(t, c.AddProposalSlot(domain.ProposalSlot{
		ID:         "slot-1",
		StartDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "18:00",
		BannerType: domain.BannerMain,
	}, now.Add(-time.Hour)))

	repo := cases.NewMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), c))

	spy := &metricsSpy{}
	uc := NewUseCase(repo, spy, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc, repo, spy
}

func TestUseCase_ValidMaterial(t *testing.T) {
	uc, _, spy := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{
		CaseID: "case-1",
		SlotID: ptr.Ptr("slot-1"),
		Name:   "banner.png",
		URL:    "https://files.example.com/banner.png",
		Size:   2 * 1024 * 1024,
		Format: "image/png",
		Width:  ptr.Ptr(1200),
		Height: ptr.Ptr(628),
	})
	require.NoError(t, err)

	assert.True(t, resp.Material.IsValid)
	assert.Empty(t, resp.Material.ValidationErrors)
	assert.Equal(t, now, resp.Material.UploadedAt)
	require.Len(t, resp.Case.Materials, 1)
	assert.Equal(t, 1, spy.valid)
}

func TestUseCase_OversizedMaterialIsStoredWithError(t *testing.T) {
	uc, repo, spy := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{
		CaseID: "case-1",
		Name:   "huge.jpg",
		Size:   11 * 1024 * 1024,
		Format: "image/jpeg",
	})
	require.NoError(t, err)

	assert.False(t, resp.Material.IsValid)
	require.NotEmpty(t, resp.Material.ValidationErrors)
	assert.Contains(t, resp.Material.ValidationErrors[0], "10MB")
	assert.Equal(t, 1, spy.invalid)

	stored, err := repo.GetByID(context.Background(), "case-1")
	require.NoError(t, err)
	require.Len(t, stored.Materials, 1)
	assert.Equal(t, resp.Material.ID, stored.Materials[0].ID)
	assert.False(t, stored.Materials[0].IsValid())
}

func TestUseCase_UnsupportedFormat(t *testing.T) {
	uc, _, _ := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{CaseID: "case-1", Name: "doc.pdf", Size: 1024, Format: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, []string{"対応していないファイル形式です（対応形式: JPEG, PNG, GIF, MP4）"}, resp.Material.ValidationErrors)
}

func TestUseCase_Errors(t *testing.T) {
	uc, repo, spy := setup(t)

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "unknown case", req: Request{CaseID: "nope", Name: "a.png", Size: 1, Format: "image/png"}, wantErr: ErrCaseNotFound},
		{name: "unknown slot", req: Request{CaseID: "case-1", SlotID: ptr.Ptr("slot-9"), Name: "a.png", Size: 1, Format: "image/png"}, wantErr: ErrSlotNotFound},
		{name: "empty name", req: Request{CaseID: "case-1", Size: 1, Format: "image/png"}, wantErr: ErrInvalidInput},
		{name: "negative size", req: Request{CaseID: "case-1", Name: "a.png", Size: -1, Format: "image/png"}, wantErr: ErrInvalidInput},
		{name: "zero width", req: Request{CaseID: "case-1", Name: "a.png", Size: 1, Format: "image/png", Width: ptr.Ptr(0)}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	stored, err := repo.GetByID(context.Background(), "case-1")
	require.NoError(t, err)
	assert.Empty(t, stored.Materials)
	assert.Zero(t, spy.valid+spy.invalid)
}
