package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFilterTodayPrecedence(t *testing.T) {
	// 2024-03-06 is a Wednesday.
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

	tasks := []Task{
		{ID: "overdue", Repeat: RepeatManual, DueDate: "2024-03-05"},
		{ID: "due-today", Repeat: RepeatManual, DueDate: "2024-03-06"},
		{ID: "future", Repeat: RepeatDaily, DueDate: "2024-03-07"},
		{ID: "daily", Repeat: RepeatDaily},
		{ID: "weekly", Repeat: RepeatWeekly},
		{ID: "manual", Repeat: RepeatManual},
		{ID: "archived", Repeat: RepeatDaily, DueDate: "2024-03-01", IsArchived: true},
	}

	got := FilterToday(tasks, now)
	ids := make([]string, len(got))
	for i, task := range got {
		ids[i] = task.ID
	}
	// Overdue stays visible regardless of repeat; a future due date hides
	// even a daily task; weekly only shows on Mondays; archived never shows.
	require.Equal(t, []string{"overdue", "due-today", "daily", "manual"}, ids)

	monday := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	got = FilterToday(tasks, monday)
	found := false
	for _, task := range got {
		if task.ID == "weekly" {
			found = true
		}
	}
	require.True(t, found, "weekly task should be visible on Monday")
}

func TestCreateUpdateDeleteTask(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "  Wäsche waschen ", CategoryHaushalt, 20, RepeatWeekly, "", "")
	require.NoError(t, err)
	require.Equal(t, "Wäsche waschen", task.Title)
	require.Equal(t, PriorityMedium, task.Priority)
	require.False(t, task.IsArchived)
	require.Empty(t, task.Subtasks)

	_, err = svc.CreateTask(ctx, "   ", CategoryRoutine, 5, RepeatDaily, "", "")
	require.Error(t, err)

	note := "Nur bunt"
	updated, err := svc.UpdateTask(ctx, task.ID, TaskUpdate{Note: &note})
	require.NoError(t, err)
	require.Equal(t, "Nur bunt", updated.Note)
	require.Equal(t, "Wäsche waschen", updated.Title)

	archived, err := svc.ArchiveTask(ctx, task.ID, true)
	require.NoError(t, err)
	require.True(t, archived.IsArchived)

	today, err := svc.TodaysTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, today)

	require.NoError(t, svc.DeleteTask(ctx, task.ID))
	all, err := svc.Tasks(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestSubtasks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "Umzug", CategorySonstiges, 50, RepeatManual, PriorityHigh, "")
	require.NoError(t, err)

	withSub, err := svc.AddSubtask(ctx, task.ID, "Kartons besorgen")
	require.NoError(t, err)
	require.Len(t, withSub.Subtasks, 1)
	require.False(t, withSub.Subtasks[0].Completed)

	toggled, err := svc.ToggleSubtask(ctx, task.ID, withSub.Subtasks[0].ID)
	require.NoError(t, err)
	require.True(t, toggled.Subtasks[0].Completed)
}

func TestCompleteTaskStreakContinuity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day1 := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)

	setDay(svc, day1)
	stats, err := svc.CompleteTask(ctx, "t1", 10)
	require.NoError(t, err)
	require.Equal(t, 1, stats.CurrentStreak)
	require.Equal(t, 10, stats.TotalXP)
	require.Equal(t, 1, stats.TotalCompletedTasks)

	// Second completion the same day: XP counts, streak does not.
	stats, err = svc.CompleteTask(ctx, "t2", 5)
	require.NoError(t, err)
	require.Equal(t, 1, stats.CurrentStreak)
	require.Equal(t, 15, stats.TotalXP)
	require.Equal(t, 2, stats.TotalCompletedTasks)

	setDay(svc, day1.AddDate(0, 0, 1))
	stats, err = svc.CompleteTask(ctx, "t1", 10)
	require.NoError(t, err)
	require.Equal(t, 2, stats.CurrentStreak)

	setDay(svc, day1.AddDate(0, 0, 2))
	stats, err = svc.CompleteTask(ctx, "t1", 10)
	require.NoError(t, err)
	require.Equal(t, 3, stats.CurrentStreak)
	require.Equal(t, 3, stats.LongestStreak)

	// Skipping a day restarts at 1; the longest streak is kept.
	setDay(svc, day1.AddDate(0, 0, 4))
	stats, err = svc.CompleteTask(ctx, "t1", 10)
	require.NoError(t, err)
	require.Equal(t, 1, stats.CurrentStreak)
	require.Equal(t, 3, stats.LongestStreak)
}

func TestIsCompletedTodayDerivedFromLog(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day := time.Date(2024, 3, 6, 23, 50, 0, 0, time.UTC)
	setDay(svc, day)

	task, err := svc.CreateTask(ctx, "Spülen", CategoryHaushalt, 10, RepeatDaily, "", "")
	require.NoError(t, err)

	done, err := svc.IsTaskCompletedToday(ctx, task.ID)
	require.NoError(t, err)
	require.False(t, done)

	_, err = svc.CompleteTask(ctx, task.ID, task.XP)
	require.NoError(t, err)

	done, err = svc.IsTaskCompletedToday(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, done)

	// The log entry stays, but the next day derives to not-done.
	setDay(svc, day.AddDate(0, 0, 1))
	done, err = svc.IsTaskCompletedToday(ctx, task.ID)
	require.NoError(t, err)
	require.False(t, done)
}

func TestTodaysXP(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateTask(ctx, "A", CategoryRoutine, 10, RepeatDaily, "", "")
	require.NoError(t, err)
	b, err := svc.CreateTask(ctx, "B", CategoryRoutine, 25, RepeatDaily, "", "")
	require.NoError(t, err)

	_, err = svc.CompleteTask(ctx, a.ID, a.XP)
	require.NoError(t, err)
	_, err = svc.CompleteTask(ctx, b.ID, b.XP)
	require.NoError(t, err)

	sum, err := svc.TodaysXP(ctx)
	require.NoError(t, err)
	require.Equal(t, 35, sum)
}
