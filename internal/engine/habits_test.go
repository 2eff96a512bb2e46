package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHabitStreakConsecutiveDays(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	habit, err := svc.AddHabit(ctx, "Lesen")
	require.NoError(t, err)
	require.Equal(t, DefaultHabitXP, habit.XP)

	day1 := time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		setDay(svc, day1.AddDate(0, 0, i))
		res, err := svc.ToggleHabit(ctx, habit.ID)
		require.NoError(t, err)
		require.False(t, res.Undone)
		require.Equal(t, i+1, res.Habit.Streak)
	}

	habits, err := svc.Habits(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	require.Equal(t, 3, habits[0].Streak)
	require.Len(t, habits[0].History, 3)
}

func TestHabitStreakResetsAfterGap(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	habit, err := svc.AddHabit(ctx, "Meditation")
	require.NoError(t, err)

	day1 := time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)
	setDay(svc, day1)
	_, err = svc.ToggleHabit(ctx, habit.ID)
	require.NoError(t, err)

	// Skip day N+1; the N+2 toggle restarts at 1.
	setDay(svc, day1.AddDate(0, 0, 2))
	res, err := svc.ToggleHabit(ctx, habit.ID)
	require.NoError(t, err)
	require.Equal(t, 1, res.Habit.Streak)
}

func TestToggleHabitUndoIsSymmetric(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	habit, err := svc.AddHabit(ctx, "Dehnen")
	require.NoError(t, err)

	day1 := time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)
	setDay(svc, day1)
	_, err = svc.ToggleHabit(ctx, habit.ID)
	require.NoError(t, err)
	setDay(svc, day1.AddDate(0, 0, 1))

	res, err := svc.ToggleHabit(ctx, habit.ID)
	require.NoError(t, err)
	require.Equal(t, 2, res.Habit.Streak)
	require.Equal(t, 2*DefaultHabitXP, res.Stats.TotalXP)

	// Undo: history pops, lastDone falls back, streak drops, XP reverses.
	res, err = svc.ToggleHabit(ctx, habit.ID)
	require.NoError(t, err)
	require.True(t, res.Undone)
	require.Equal(t, 1, res.Habit.Streak)
	require.Len(t, res.Habit.History, 1)
	require.NotNil(t, res.Habit.LastDone)
	require.Equal(t, "2024-03-06", *res.Habit.LastDone)
	require.Equal(t, DefaultHabitXP, res.Stats.TotalXP)

	// Toggle on/off repeatedly must not farm XP.
	for i := 0; i < 3; i++ {
		_, err = svc.ToggleHabit(ctx, habit.ID)
		require.NoError(t, err)
		res, err = svc.ToggleHabit(ctx, habit.ID)
		require.NoError(t, err)
	}
	require.Equal(t, DefaultHabitXP, res.Stats.TotalXP)
}

func TestToggleHabitUndoFirstEverCompletion(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	habit, err := svc.AddHabit(ctx, "Joggen")
	require.NoError(t, err)

	_, err = svc.ToggleHabit(ctx, habit.ID)
	require.NoError(t, err)
	res, err := svc.ToggleHabit(ctx, habit.ID)
	require.NoError(t, err)
	require.True(t, res.Undone)
	require.Nil(t, res.Habit.LastDone)
	require.Empty(t, res.Habit.History)
	require.Equal(t, 0, res.Habit.Streak)
}

func TestDeleteHabit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.AddHabit(ctx, "A")
	require.NoError(t, err)
	_, err = svc.AddHabit(ctx, "B")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHabit(ctx, a.ID))
	habits, err := svc.Habits(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	require.Equal(t, "B", habits[0].Title)
}
