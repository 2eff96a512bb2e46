package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFocusSessionWallClockRemaining(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	start := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	setDay(svc, start)

	sess, err := svc.StartFocus(ctx, 50, "")
	require.NoError(t, err)
	require.True(t, sess.Active)

	// Remaining is recomputed from the wall clock, so it survives a
	// simulated process restart.
	reloaded, err := svc.FocusSession(ctx)
	require.NoError(t, err)
	require.Equal(t, 50*time.Minute, FocusRemaining(reloaded, start))
	require.Equal(t, 30*time.Minute, FocusRemaining(reloaded, start.Add(20*time.Minute)))
	require.Equal(t, time.Duration(0), FocusRemaining(reloaded, start.Add(2*time.Hour)))
}

func TestStopFocusPreservesConfiguredDuration(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartFocus(ctx, 50, "task-1")
	require.NoError(t, err)

	sess, err := svc.StopFocus(ctx)
	require.NoError(t, err)
	require.False(t, sess.Active)
	require.Nil(t, sess.StartedAt)
	require.Empty(t, sess.TaskID)
	require.Equal(t, 50, sess.Duration)
}

func TestStartFocusDefaultsDuration(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartFocus(ctx, 0, "")
	require.NoError(t, err)
	require.Equal(t, DefaultFocusMinutes, sess.Duration)
}

func TestCompleteFocusRewardsAndWaters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartFocus(ctx, 30, "")
	require.NoError(t, err)

	res, err := svc.CompleteFocus(ctx)
	require.NoError(t, err)
	require.False(t, res.Session.Active)
	require.Equal(t, FocusCompletionXP, res.Stats.TotalXP)
	// 30 minutes on a fresh seed crosses the first threshold.
	require.Equal(t, WaterResult{Watered: 1, Evolved: 1}, res.Water)

	garden, err := svc.Garden(ctx)
	require.NoError(t, err)
	require.Len(t, garden, 1)
	require.Equal(t, StageSprout, garden[0].Stage)
	require.Equal(t, 5, garden[0].GrowthProgress)

	_, err = svc.CompleteFocus(ctx)
	require.Error(t, err)
}

func TestWeeklyFocusAndReflections(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetWeeklyFocus(ctx, "Weniger Meetings"))
	text, err := svc.WeeklyFocus(ctx)
	require.NoError(t, err)
	require.Equal(t, "Weniger Meetings", text)

	ok, err := svc.HasReflectionToday(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = svc.SaveReflection(ctx, 4, "Guter Tag")
	require.NoError(t, err)
	_, err = svc.SaveReflection(ctx, 2, "Doch nicht")
	require.NoError(t, err)

	entries, err := svc.Reflections(ctx)
	require.NoError(t, err)
	// Same-day saves upsert instead of appending.
	require.Len(t, entries, 1)
	require.Equal(t, 2, entries[0].Mood)

	ok, err = svc.HasReflectionToday(ctx)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDailyChallengeDeterministic(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := svc.DailyChallenge()
	require.Equal(t, first, svc.DailyChallenge())

	done, err := svc.IsChallengeDoneToday(ctx)
	require.NoError(t, err)
	require.False(t, done)

	require.NoError(t, svc.MarkChallengeDone(ctx))
	done, err = svc.IsChallengeDoneToday(ctx)
	require.NoError(t, err)
	require.True(t, done)

	// The marker is per-day; tomorrow starts fresh.
	setDay(svc, time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC))
	done, err = svc.IsChallengeDoneToday(ctx)
	require.NoError(t, err)
	require.False(t, done)
}
