package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	"github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	"github.com/m04kA/SMC-BannerCaseService/internal/service/cases/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// clock сдвигается на минуту при каждом вызове
type clock struct{ now time.Time }

func (c *clock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

type metricsSpy struct{ calls []string }

func (m *metricsSpy) RecordTransition(action, result string) {
	m.calls = append(m.calls, action+":"+result)
}

var created = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *cases.MemoryRepository, *metricsSpy) {
	t.Helper()

	repo := cases.NewMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), domain.NewCase("case-1", "株式会社サンプル", "渋谷店", created)))

	spy := &metricsSpy{}
	svc := NewService(repo, spy, nopLogger{})
	svc.timeProvider = &clock{now: created}
	return svc, repo, spy
}

func TestService_FullWorkflow(t *testing.T) {
	svc, repo, spy := setup(t)
	ctx := context.Background()

	resp, err := svc.ProceedToPublishing(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, "配信準備中", resp.Status)
	assert.Equal(t, 2, resp.Step)

	resp, err = svc.RequestAdminReview(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, "事務確認中", resp.Status)
	assert.Equal(t, "pending", resp.AdminReviewStatus)

	resp, err = svc.RejectCase(ctx, "case-1", "画像サイズ不備")
	require.NoError(t, err)
	assert.Equal(t, "差し戻し", resp.Status)
	assert.Equal(t, "rejected", resp.AdminReviewStatus)
	require.NotNil(t, resp.AdminReviewComment)
	assert.Equal(t, "画像サイズ不備", *resp.AdminReviewComment)

	resp, err = svc.RequestAdminReview(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.AdminReviewStatus)
	require.NotNil(t, resp.AdminReviewComment)

	resp, err = svc.ApproveCase(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, "事務確認中", resp.Status)
	assert.Equal(t, "approved", resp.AdminReviewStatus)
	assert.Nil(t, resp.AdminReviewComment)

	resp, err = svc.StartPublishing(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, "掲載中", resp.Status)

	resp, err = svc.RequestStopPublishing(ctx, "case-1", "予算超過")
	require.NoError(t, err)
	assert.Equal(t, "掲載停止依頼中", resp.Status)
	require.NotNil(t, resp.StopPublishingRequest)
	assert.Equal(t, "予算超過", *resp.StopPublishingRequest)

	resp, err = svc.ConfirmStopPublishing(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, "掲載停止", resp.Status)
	assert.Nil(t, resp.StopPublishingRequest)
	assert.Empty(t, resp.AvailableActions)

	stored, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStopped, stored.Status)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))

	assert.Len(t, spy.calls, 8)
	for _, call := range spy.calls {
		assert.Contains(t, call, ":ok")
	}
}

func TestService_InvalidTransitionLeavesCaseUnchanged(t *testing.T) {
	svc, repo, spy := setup(t)
	ctx := context.Background()

	before, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)

	_, err = svc.StartPublishing(ctx, "case-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.ApproveCase(ctx, "case-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	after, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	assert.Equal(t, []string{"start-publishing:rejected", "approve:rejected"}, spy.calls)
}

func TestService_RejectRequiresComment(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	_, err := svc.ProceedToPublishing(ctx, "case-1")
	require.NoError(t, err)
	_, err = svc.RequestAdminReview(ctx, "case-1")
	require.NoError(t, err)

	_, err = svc.RejectCase(ctx, "case-1", "   ")
	assert.ErrorIs(t, err, ErrCommentRequired)

	stored, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnderReview, stored.Status)
	assert.Equal(t, domain.ReviewPending, stored.AdminReviewStatus)
}

func TestService_DirectStopFromLive(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	for _, action := range []string{"proceed", "request-review", "approve", "start-publishing", "confirm-stop"} {
		_, err := svc.Execute(ctx, "case-1", &models.TransitionRequest{Action: action})
		require.NoError(t, err, action)
	}

	_, err := svc.RequestStopPublishing(ctx, "case-1", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_SkipIsTerminal(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	resp, err := svc.SkipProposal(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, "見送り", resp.Status)
	assert.Equal(t, 1, resp.Step)

	_, err = svc.ProceedToPublishing(ctx, "case-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Errors(t *testing.T) {
	svc, _, spy := setup(t)
	ctx := context.Background()

	_, err := svc.Execute(ctx, "case-1", &models.TransitionRequest{Action: "publish-now"})
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = svc.Execute(ctx, "missing", &models.TransitionRequest{Action: "proceed"})
	assert.ErrorIs(t, err, ErrCaseNotFound)

	long := make([]rune, domain.MaxReviewCommentLength+1)
	for i := range long {
		long[i] = 'あ'
	}
	_, err = svc.Execute(ctx, "case-1", &models.TransitionRequest{Action: "reject", Comment: string(long)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, []string{"proceed:not_found"}, spy.calls)
}
