package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalculateLevelBoundaries(t *testing.T) {
	cases := []struct {
		totalXP int
		want    int
	}{
		{-1000, 1},
		{-1, 1},
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{150, 2},
		{199, 2},
		{200, 3},
		{300, 4},
		{999, 10},
		{1000, 11},
	}
	for _, tc := range cases {
		if got := CalculateLevel(tc.totalXP); got != tc.want {
			t.Fatalf("CalculateLevel(%d)=%d, want %d", tc.totalXP, got, tc.want)
		}
	}
}

func TestCalculateLevelNeverBelowOne(t *testing.T) {
	for xp := -500; xp < 0; xp += 7 {
		if got := CalculateLevel(xp); got != 1 {
			t.Fatalf("CalculateLevel(%d)=%d, want 1", xp, got)
		}
	}
}

func TestAddRemoveXPRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stats, err := svc.AddXP(ctx, 130)
	require.NoError(t, err)
	require.Equal(t, 130, stats.TotalXP)
	require.Equal(t, 2, stats.Level)

	stats, err = svc.AddXP(ctx, 45)
	require.NoError(t, err)
	stats, err = svc.RemoveXP(ctx, 45)
	require.NoError(t, err)
	require.Equal(t, 130, stats.TotalXP)
	require.Equal(t, 2, stats.Level)
}

func TestRemoveXPFloorsAtZero(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddXP(ctx, 30)
	require.NoError(t, err)
	stats, err := svc.RemoveXP(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalXP)
	require.Equal(t, 1, stats.Level)
}

func TestXPForCurrentLevel(t *testing.T) {
	require.Equal(t, 0, XPForCurrentLevel(0))
	require.Equal(t, 99, XPForCurrentLevel(99))
	require.Equal(t, 0, XPForCurrentLevel(100))
	require.Equal(t, 50, XPForCurrentLevel(150))
}

func TestCheckStreakReset(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day1 := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	setDay(svc, day1)
	_, err := svc.CompleteTask(ctx, "t1", 10)
	require.NoError(t, err)

	// Yesterday's completion keeps the streak alive.
	setDay(svc, day1.AddDate(0, 0, 1))
	stats, err := svc.CheckStreakReset(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.CurrentStreak)

	// A two-day gap zeroes it lazily on read.
	setDay(svc, day1.AddDate(0, 0, 2))
	stats, err = svc.CheckStreakReset(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, stats.CurrentStreak)
}
