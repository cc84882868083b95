package cases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

var testNow = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func seed(t *testing.T, repo *MemoryRepository, id, corporateName string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), domain.NewCase(id, corporateName, "店舗", createdAt)))
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	c := domain.NewCase("case-1", "A社", "B店", testNow)

	require.NoError(t, repo.Create(ctx, c))
	assert.ErrorIs(t, repo.Create(ctx, c), ErrCaseAlreadyExists)

	got, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	// возвращается копия
	got.CorporateName = "changed"
	again, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, "A社", again.CorporateName)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestMemoryRepository_UpdateCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, "case-1", "A社", testNow)

	updated, err := repo.Update(ctx, "case-1", func(c *domain.Case) error {
		return c.ProceedToPublishing(testNow.Add(time.Minute))
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, updated.Status)

	got, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestMemoryRepository_UpdateRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, "case-1", "A社", testNow)
	before, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "case-1", func(c *domain.Case) error {
		c.ImplementationPolicy = "partially applied"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.Update(ctx, "case-1", func(c *domain.Case) error {
		return c.StartPublishing(testNow)
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	after, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMemoryRepository_UpdateRejectsInvariantViolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, "case-1", "A社", testNow)

	_, err := repo.Update(ctx, "case-1", func(c *domain.Case) error {
		c.AdminReviewStatus = domain.ReviewPending
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrInvariantViolated)

	got, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewNone, got.AdminReviewStatus)
}

func TestMemoryRepository_UpdateUnknownCase(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Update(context.Background(), "missing", func(c *domain.Case) error { return nil })
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestMemoryRepository_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, "case-1", "A社", testNow)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := repo.Update(ctx, "case-1", func(c *domain.Case) error {
				return c.AddMaterial(domain.MaterialFile{
					ID:     fmt.Sprintf("m-%d", i),
					Size:   1,
					Format: "image/png",
				}, testNow)
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, "case-1")
	require.NoError(t, err)
	assert.Len(t, got.Materials, workers)
	assert.Equal(t, testNow.Add(workers*time.Microsecond), got.UpdatedAt)
}

func TestMemoryRepository_OnlyOneTransitionWins(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, "case-1", "A社", testNow)

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "case-1", func(c *domain.Case) error {
				return c.ProceedToPublishing(testNow)
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestMemoryRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, "case-1", "A社", testNow)
	seed(t, repo, "case-2", "B社", testNow.Add(time.Hour))
	seed(t, repo, "case-3", "A社", testNow.Add(2*time.Hour))

	_, err := repo.Update(ctx, "case-1", func(c *domain.Case) error {
		if err := c.ProceedToPublishing(testNow); err != nil {
			return err
		}
		return c.RequestAdminReview(testNow)
	})
	require.NoError(t, err)

	all, err := repo.List(ctx, domain.CaseFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "case-3", all[0].ID)
	assert.Equal(t, "case-1", all[2].ID)

	byCompany, err := repo.List(ctx, domain.CaseFilter{CorporateName: "A社"})
	require.NoError(t, err)
	assert.Len(t, byCompany, 2)

	queue, err := repo.List(ctx, domain.CaseFilter{NeedsAdminReview: true})
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "case-1", queue[0].ID)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, "case-1", "A社", testNow)

	require.NoError(t, repo.Delete(ctx, "case-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "case-1"), ErrCaseNotFound)

	_, err := repo.GetByID(ctx, "case-1")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}
