package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algolab/complexity"
	"github.com/katalvlaran/algolab/internal/store"
)

func report(t *testing.T, started time.Time) *complexity.Report {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)

	return &complexity.Report{
		RunID:      id,
		StartedAt:  started,
		FinishedAt: started.Add(250 * time.Millisecond),
		Config:     complexity.Config{Sizes: []int{8, 16}, FibMax: 4, Workers: 2, Seed: 1},
		Search: []complexity.SearchCase{
			{Size: 8, BinaryProbes: 4, RecursiveProbes: 4, LinearProbes: 8},
			{Size: 16, BinaryProbes: 5, RecursiveProbes: 5, LinearProbes: 16},
		},
		Sort:      []complexity.SortCase{{Size: 8, Compares: 28, Swaps: 11, EarlyExitCompares: 22, EarlyExitSwaps: 11}},
		Fibonacci: []complexity.FibCase{{N: 4, Value: 3, NaiveCalls: 9, IterativeSteps: 4}},
	}
}

func openTemp(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	rep := report(t, time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, s.SaveReport(ctx, rep))
	got, err := s.LoadReport(ctx, rep.RunID)
	require.NoError(t, err)

	assert.Equal(t, rep.RunID, got.RunID)
	assert.True(t, rep.StartedAt.Equal(got.StartedAt))
	assert.Equal(t, rep.Search, got.Search)
	assert.Equal(t, rep.Sort, got.Sort)
	assert.Equal(t, rep.Fibonacci, got.Fibonacci)
	assert.Equal(t, rep.Config, got.Config)

	// saving again replaces instead of failing on the primary key
	require.NoError(t, s.SaveReport(ctx, rep))
	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStore_ListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		rep := report(t, base.Add(time.Duration(i)*time.Hour))
		ids = append(ids, rep.RunID)
		require.NoError(t, s.SaveReport(ctx, rep))
	}

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, ids[2], runs[0].RunID)
	assert.Equal(t, ids[0], runs[2].RunID)
	assert.Equal(t, 2, runs[0].SizeCount)
	assert.Equal(t, 4, runs[0].FibMax)
	assert.True(t, runs[0].FinishedAt.After(runs[0].StartedAt))

	runs, err = s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStore_NotFound(t *testing.T) {
	s := openTemp(t)
	_, err := s.LoadReport(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestStore_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	rep, err := complexity.Run(ctx, complexity.Config{Sizes: []int{4}, FibMax: 3, Workers: 1})
	require.NoError(t, err)
	require.NoError(t, s.SaveReport(ctx, rep))

	got, err := s.LoadReport(ctx, rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, rep.Search, got.Search)
}
