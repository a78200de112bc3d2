package results

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/database"
	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/resilience"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

func newTestService(t *testing.T) (*Service, *database.Repository) {
	t.Helper()

	db, err := database.NewDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := database.NewRepository(db)
	svc := NewService(repo)
	t.Cleanup(svc.Cache().Close)
	return svc, repo
}

func result(score int, archetype scoring.Archetype) scoring.Result {
	return scoring.Result{
		OverallScore: score,
		Percentile:   score,
		Archetype:    archetype,
		CategoryScores: []scoring.CategoryScore{
			{Category: scoring.CategoryWork, Score: 1, MaxScore: 2, Percentage: 50},
		},
		Answers: scoring.Answers{"terminal_ai": scoring.Bool(true)},
	}
}

func verifiedUser(t *testing.T, repo *database.Repository) string {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), "iphash", "test-agent")
	require.NoError(t, err)
	return user.ID
}

func TestPopulationPercentile(t *testing.T) {
	tests := []struct {
		name         string
		total, below int
		want         int
		ok           bool
	}{
		{"no verified results", 0, 0, 0, false},
		{"lowest", 10, 0, 1, true},
		{"middle", 4, 2, 50, true},
		{"highest", 10, 10, 99, true},
		{"rounds", 3, 1, 33, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PopulationPercentile(tt.total, tt.below)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, 0, ComputeStats(nil).AverageScore)
	assert.Empty(t, ComputeStats(nil).ScoreDistribution)

	stats := ComputeStats([]database.ScoreRow{
		{OverallScore: 70, Archetype: scoring.ArchetypePowerUser},
		{OverallScore: 30, Archetype: scoring.ArchetypeAICurious},
		{OverallScore: 45, Archetype: scoring.ArchetypeAICurious},
	})

	want := Stats{
		TotalVerified: 3,
		AverageScore:  48,
		ArchetypeCounts: map[scoring.Archetype]int{
			scoring.ArchetypePowerUser: 1,
			scoring.ArchetypeAICurious:    2,
		},
		ScoreDistribution: []int{30, 45, 70},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("ComputeStats mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_UnverifiedWithoutPopulation(t *testing.T) {
	svc, _ := newTestService(t)

	sub, err := svc.Submit(context.Background(), result(0, scoring.ArchetypeAISkeptic), "", "client")
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.IsVerified)
	assert.False(t, sub.PopulationBased)
	assert.Equal(t, 1, sub.Percentile)
}

func TestSubmit_PopulationPercentile(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	for _, score := range []int{30, 50, 70} {
		_, err := svc.Submit(ctx, result(score, scoring.ArchetypeAICurious), verifiedUser(t, repo), "")
		require.NoError(t, err)
	}

	sub, err := svc.Submit(ctx, result(60, scoring.ArchetypePowerUser), verifiedUser(t, repo), "")
	require.NoError(t, err)
	assert.True(t, sub.IsVerified)
	assert.True(t, sub.PopulationBased)
	assert.Equal(t, 50, sub.Percentile)

	// unverified results do not count towards the population
	_, err = svc.Submit(ctx, result(99, scoring.ArchetypeAINative), "", "")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalVerified)
	assert.Equal(t, 53, stats.AverageScore)
	assert.Equal(t, []int{30, 50, 60, 70}, stats.ScoreDistribution)
	assert.Equal(t, 3, stats.ArchetypeCounts[scoring.ArchetypeAICurious])
}

func TestStats_InvalidatedOnVerifiedSubmit(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalVerified)

	_, err = svc.Submit(ctx, result(40, scoring.ArchetypeAICurious), "", "")
	require.NoError(t, err)
	_, ok := svc.Cache().Get()
	assert.True(t, ok, "unverified submission keeps the cache")

	_, err = svc.Submit(ctx, result(40, scoring.ArchetypeAICurious), verifiedUser(t, repo), "")
	require.NoError(t, err)
	_, ok = svc.Cache().Get()
	assert.False(t, ok)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalVerified)
}

type failingStore struct {
	insertErr error
	rankErr   error
	inserts   int
}

func (f *failingStore) InsertResult(ctx context.Context, rec *database.ResultRecord) error {
	f.inserts++
	return f.insertErr
}

func (f *failingStore) GetResult(ctx context.Context, id string) (*database.ResultRecord, error) {
	return nil, database.ErrNotFound
}

func (f *failingStore) VerifiedRank(ctx context.Context, score int) (int, int, error) {
	return 0, 0, f.rankErr
}

func (f *failingStore) VerifiedScores(ctx context.Context) ([]database.ScoreRow, error) {
	return nil, f.rankErr
}

func TestSubmit_StoreFailures(t *testing.T) {
	t.Run("insert failure is a storage error", func(t *testing.T) {
		store := &failingStore{insertErr: errors.New("disk I/O error")}
		_, err := NewService(store).Submit(context.Background(), result(50, scoring.ArchetypeAICurious), "", "")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CategoryStorage, appErr.Category)
		assert.Equal(t, 1, store.inserts)
	})

	t.Run("rank failure falls back to provisional", func(t *testing.T) {
		store := &failingStore{rankErr: errors.New("no such table")}
		sub, err := NewService(store).Submit(context.Background(), result(150, scoring.ArchetypeAINative), "", "")
		require.NoError(t, err)
		assert.Equal(t, 99, sub.Percentile)
		assert.False(t, sub.PopulationBased)
	})

	t.Run("stats failure surfaces", func(t *testing.T) {
		store := &failingStore{rankErr: errors.New("no such table")}
		_, err := NewService(store).Stats(context.Background())
		assert.Error(t, err)
	})
}

func TestSubmit_BadDataKeepsBreakerClosed(t *testing.T) {
	t.Run("unencodable result is rejected before the store", func(t *testing.T) {
		store := &failingStore{}
		svc := NewService(store)
		t.Cleanup(svc.Cache().Close)

		bad := result(50, scoring.ArchetypeAICurious)
		bad.CategoryScores[0].Percentage = math.NaN()

		for i := 0; i < 10; i++ {
			_, err := svc.Submit(context.Background(), bad, "", "")
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.CategoryValidation, appErr.Category)
		}
		assert.Equal(t, 0, store.inserts)
		assert.Equal(t, resilience.StateClosed, svc.breaker.State())
	})

	t.Run("invalid record from the store is not a store failure", func(t *testing.T) {
		store := &failingStore{insertErr: fmt.Errorf("%w: answers", database.ErrInvalidRecord)}
		svc := NewService(store)
		t.Cleanup(svc.Cache().Close)

		for i := 0; i < 10; i++ {
			_, err := svc.Submit(context.Background(), result(50, scoring.ArchetypeAICurious), "", "")
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.CategoryValidation, appErr.Category)
		}
		assert.Equal(t, resilience.StateClosed, svc.breaker.State())
		assert.Equal(t, 0, svc.breaker.Failures())

		store.insertErr = nil
		_, err := svc.Submit(context.Background(), result(50, scoring.ArchetypeAICurious), "", "")
		assert.NoError(t, err)
	})

	t.Run("store failures still open the breaker", func(t *testing.T) {
		store := &failingStore{insertErr: errors.New("disk I/O error")}
		svc := NewService(store)
		t.Cleanup(svc.Cache().Close)

		for i := 0; i < 5; i++ {
			_, err := svc.Submit(context.Background(), result(50, scoring.ArchetypeAICurious), "", "")
			require.Error(t, err)
		}
		assert.Equal(t, resilience.StateOpen, svc.breaker.State())
	})
}

func TestGet(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, result(64, scoring.ArchetypePowerUser), verifiedUser(t, repo), "client")
	require.NoError(t, err)

	shared, err := svc.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, shared.ID)
	assert.Equal(t, 64, shared.OverallScore)
	assert.Equal(t, 64, shared.Percentile)
	assert.Equal(t, scoring.ArchetypePowerUser, shared.Archetype)
	assert.True(t, shared.IsVerified)
	assert.Len(t, shared.CategoryScores, 1)

	for i := 0; i < 10; i++ {
		_, err = svc.Get(ctx, "missing")
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CategoryNotFound, appErr.Category)
	}
	assert.Equal(t, resilience.StateClosed, svc.breaker.State())
}
