package cases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	caseRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	"github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
	"github.com/m04kA/SMC-BannerCaseService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	created = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	now     = created.Add(time.Hour)
)

func setup(t *testing.T) (*Service, *caseRepo.MemoryRepository) {
	t.Helper()

	repo := caseRepo.NewMemoryRepository()

	c := domain.NewCase("case-1", "株式会社サンプル", "渋谷店", created)
	require.NoError(t, c.AddProposalSlot(domain.ProposalSlot{
		ID:         "slot-1",
		AreaSlotID: ptr.Ptr("area-1"),
		StartDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "18:00",
		BannerType: domain.BannerMain,
	}, created))
	require.NoError(t, c.AddMaterial(domain.MaterialFile{
		ID:     "mat-1",
		SlotID: ptr.Ptr("slot-1"),
		Name:   "banner.png",
		URL:    "https://cdn.example.com/banner.png",
		Size:   1024,
		Format: "image/png",
	}, created))
	require.NoError(t, repo.Create(context.Background(), c))
	require.NoError(t, repo.Create(context.Background(), domain.NewCase("case-2", "株式会社テスト", "梅田店", created)))

	packs, err := catalog.LoadFixture("")
	require.NoError(t, err)

	svc := NewService(repo, packs, nopLogger{})
	svc.timeProvider = fixedTime{now: now}
	return svc, repo
}

func TestService_GetByID(t *testing.T) {
	svc, _ := setup(t)

	resp, err := svc.GetByID(context.Background(), "case-1")
	require.NoError(t, err)
	assert.Equal(t, "提案中", resp.Status)
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, []string{"proceed", "skip"}, resp.AvailableActions)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestService_List(t *testing.T) {
	svc, _ := setup(t)

	resp, err := svc.List(context.Background(), &models.ListCasesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = svc.List(context.Background(), &models.ListCasesRequest{CorporateName: "株式会社テスト"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "case-2", resp.Cases[0].ID)

	resp, err = svc.List(context.Background(), &models.ListCasesRequest{NeedsAdminReview: true})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)

	_, err = svc.List(context.Background(), &models.ListCasesRequest{Status: ptr.Ptr("unknown")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateRoundTrip(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Update(context.Background(), "case-1", &models.UpdateCaseRequest{
		ImplementationPolicy: ptr.Ptr("X"),
	})
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), "case-1")
	require.NoError(t, err)
	assert.Equal(t, "X", resp.ImplementationPolicy)
	assert.True(t, resp.UpdatedAt.After(resp.CreatedAt))
	assert.Equal(t, "提案中", resp.Status)
	assert.Len(t, resp.ProposalSlots, 1)
}

func TestService_UpdateUnknownCase(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Update(context.Background(), "missing", &models.UpdateCaseRequest{
		ImplementationPolicy: ptr.Ptr("X"),
	})
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestService_UpdateValidation(t *testing.T) {
	svc, repo := setup(t)

	before, err := repo.GetByID(context.Background(), "case-1")
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *models.UpdateCaseRequest
	}{
		{"empty corporate name", &models.UpdateCaseRequest{CorporateName: ptr.Ptr("  ")}},
		{"empty store name", &models.UpdateCaseRequest{StoreName: ptr.Ptr("")}},
		{"negative billing", &models.UpdateCaseRequest{BillingAmount: ptr.Ptr(int64(-1))}},
		{"empty document url", &models.UpdateCaseRequest{ApplicationDocumentURL: ptr.Ptr(" ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), "case-1", tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	stored, err := repo.GetByID(context.Background(), "case-1")
	require.NoError(t, err)
	assert.Equal(t, before.UpdatedAt, stored.UpdatedAt)
}

func TestService_UpdateAnniversaryPack(t *testing.T) {
	svc, _ := setup(t)

	resp, err := svc.Update(context.Background(), "case-1", &models.UpdateCaseRequest{
		BillingAmount:       ptr.Ptr(int64(50000)),
		IsAnniversaryPack:   ptr.Ptr(true),
		AnniversaryPackCode: ptr.Ptr("pack-1"),
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAnniversaryPack)
	assert.Equal(t, "pack-1", resp.AnniversaryPackCode)
	require.NotNil(t, resp.BillingAmount)
	assert.Equal(t, int64(0), *resp.BillingAmount)

	// пакет другого клиента
	_, err = svc.Update(context.Background(), "case-1", &models.UpdateCaseRequest{
		AnniversaryPackCode: ptr.Ptr("pack-3"),
	})
	assert.ErrorIs(t, err, ErrPackUnavailable)

	_, err = svc.Update(context.Background(), "case-1", &models.UpdateCaseRequest{
		AnniversaryPackCode: ptr.Ptr("pack-404"),
	})
	assert.ErrorIs(t, err, ErrPackNotFound)
}

func TestService_UpdatePackCodeWithoutPack(t *testing.T) {
	svc, repo := setup(t)

	before, err := repo.GetByID(context.Background(), "case-1")
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *models.UpdateCaseRequest
	}{
		{"flag off in the same patch", &models.UpdateCaseRequest{
			IsAnniversaryPack:   ptr.Ptr(false),
			AnniversaryPackCode: ptr.Ptr("pack-1"),
		}},
		{"case is not a pack case, known code", &models.UpdateCaseRequest{
			AnniversaryPackCode: ptr.Ptr("pack-1"),
		}},
		{"case is not a pack case, unknown code", &models.UpdateCaseRequest{
			AnniversaryPackCode: ptr.Ptr("pack-404"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), "case-1", tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.NotErrorIs(t, err, ErrPackNotFound)
		})
	}

	stored, err := repo.GetByID(context.Background(), "case-1")
	require.NoError(t, err)
	assert.False(t, stored.IsAnniversaryPack)
	assert.Empty(t, stored.AnniversaryPackCode)
	assert.Equal(t, before.UpdatedAt, stored.UpdatedAt)
}

func TestService_RemoveProposalSlotDetachesMaterials(t *testing.T) {
	svc, _ := setup(t)

	resp, err := svc.RemoveProposalSlot(context.Background(), "case-1", "slot-1")
	require.NoError(t, err)
	assert.Empty(t, resp.ProposalSlots)
	require.Len(t, resp.Materials, 1)
	assert.Nil(t, resp.Materials[0].SlotID)

	_, err = svc.RemoveProposalSlot(context.Background(), "case-1", "slot-1")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = svc.RemoveProposalSlot(context.Background(), "missing", "slot-1")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestService_RemoveMaterial(t *testing.T) {
	svc, _ := setup(t)

	resp, err := svc.RemoveMaterial(context.Background(), "case-1", "mat-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Materials)

	_, err = svc.RemoveMaterial(context.Background(), "case-1", "mat-1")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestService_UploadApplicationDocument(t *testing.T) {
	svc, _ := setup(t)

	resp, err := svc.UploadApplicationDocument(context.Background(), "case-1", &models.UploadDocumentRequest{
		URL: "https://docs.example.com/application.pdf",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ApplicationDocumentURL)
	assert.Equal(t, "https://docs.example.com/application.pdf", *resp.ApplicationDocumentURL)
	assert.Equal(t, "提案中", resp.Status)

	_, err = svc.UploadApplicationDocument(context.Background(), "case-1", &models.UploadDocumentRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UseAnniversaryPack(t *testing.T) {
	svc, _ := setup(t)

	// ближайший срок у pack-2
	resp, err := svc.UseAnniversaryPack(context.Background(), "case-1", &models.UseAnniversaryPackRequest{})
	require.NoError(t, err)
	assert.True(t, resp.IsAnniversaryPack)
	assert.Equal(t, "pack-2", resp.AnniversaryPackCode)
	assert.Equal(t, int64(0), *resp.BillingAmount)

	resp, err = svc.UseAnniversaryPack(context.Background(), "case-1", &models.UseAnniversaryPackRequest{PackID: ptr.Ptr("pack-1")})
	require.NoError(t, err)
	assert.Equal(t, "pack-1", resp.AnniversaryPackCode)
}

func TestService_UseAnniversaryPackErrors(t *testing.T) {
	svc, _ := setup(t)

	tests := []struct {
		name    string
		caseID  string
		req     *models.UseAnniversaryPackRequest
		wantErr error
	}{
		{"unknown case", "missing", &models.UseAnniversaryPackRequest{}, ErrCaseNotFound},
		{"unknown pack", "case-1", &models.UseAnniversaryPackRequest{PackID: ptr.Ptr("pack-404")}, ErrPackNotFound},
		{"foreign pack", "case-1", &models.UseAnniversaryPackRequest{PackID: ptr.Ptr("pack-3")}, ErrPackUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UseAnniversaryPack(context.Background(), tt.caseID, tt.req)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestService_UseAnniversaryPackExpired(t *testing.T) {
	svc, _ := setup(t)
	svc.timeProvider = fixedTime{now: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)}

	_, err := svc.UseAnniversaryPack(context.Background(), "case-1", &models.UseAnniversaryPackRequest{PackID: ptr.Ptr("pack-1")})
	assert.ErrorIs(t, err, ErrPackUnavailable)

	_, err = svc.UseAnniversaryPack(context.Background(), "case-1", &models.UseAnniversaryPackRequest{})
	assert.ErrorIs(t, err, ErrPackNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, _ := setup(t)

	require.NoError(t, svc.Delete(context.Background(), "case-2"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "case-2"), ErrCaseNotFound)

	_, err := svc.GetByID(context.Background(), "case-2")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}
