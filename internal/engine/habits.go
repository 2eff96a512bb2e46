package engine

import (
	"context"
	"fmt"
)

// Habit tracks one daily routine. History is an ordered list of date
// strings; undo pops the last entry.
type Habit struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Streak   int      `json:"streak"`
	LastDone *string  `json:"lastDone"`
	History  []string `json:"history"`
	XP       int      `json:"xp"`
}

// DefaultHabitXP is the reward for one habit completion.
const DefaultHabitXP = 5

// ToggleResult describes what one toggle did.
type ToggleResult struct {
	Habit  Habit
	Undone bool
	Stats  Stats
}

func (s *Service) loadHabits(ctx context.Context) ([]Habit, error) {
	var out []Habit
	if err := s.store.LoadJSON(ctx, keyHabits, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) saveHabits(ctx context.Context, habits []Habit) error {
	return s.store.SaveJSON(ctx, keyHabits, habits)
}

func (s *Service) Habits(ctx context.Context) ([]Habit, error) {
	return s.loadHabits(ctx)
}

// AddHabit appends a new habit with the default reward.
func (s *Service) AddHabit(ctx context.Context, title string) (*Habit, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	habit := Habit{
		ID:      s.newID(),
		Title:   t,
		History: []string{},
		XP:      DefaultHabitXP,
	}
	habits, err := s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}
	habits = append(habits, habit)
	if err := s.saveHabits(ctx, habits); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (s *Service) DeleteHabit(ctx context.Context, id string) error {
	habits, err := s.loadHabits(ctx)
	if err != nil {
		return err
	}
	kept := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	return s.saveHabits(ctx, kept)
}

// ToggleHabit flips today's state for a habit.
//
// Not done today: the streak continues when the previous completion was
// exactly yesterday, otherwise it restarts at 1; today is pushed onto the
// history and the habit's XP is credited.
//
// Done today: the toggle is an undo. The last history entry is popped,
// lastDone falls back to the entry before it, the streak drops (floored at
// 0) and the credited XP is reversed, so toggling on and off is symmetric
// and cannot be farmed.
func (s *Service) ToggleHabit(ctx context.Context, id string) (*ToggleResult, error) {
	habits, err := s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range habits {
		if habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("habit %s not found", id)
	}

	h := &habits[idx]
	today := s.today()
	doneToday := h.LastDone != nil && *h.LastDone == today

	var stats Stats
	if doneToday {
		if n := len(h.History); n > 0 {
			h.History = h.History[:n-1]
		}
		if n := len(h.History); n > 0 {
			last := h.History[n-1]
			h.LastDone = &last
		} else {
			h.LastDone = nil
		}
		h.Streak--
		if h.Streak < 0 {
			h.Streak = 0
		}
		stats, err = s.RemoveXP(ctx, h.XP)
		if err != nil {
			return nil, err
		}
	} else {
		if h.LastDone != nil && *h.LastDone == s.yesterday() {
			h.Streak++
		} else {
			h.Streak = 1
		}
		h.LastDone = &today
		h.History = append(h.History, today)
		stats, err = s.AddXP(ctx, h.XP)
		if err != nil {
			return nil, err
		}
	}

	if err := s.saveHabits(ctx, habits); err != nil {
		return nil, err
	}
	return &ToggleResult{Habit: habits[idx], Undone: doneToday, Stats: stats}, nil
}

// IsHabitDoneToday reports whether the habit was completed on the given day.
func IsHabitDoneToday(h Habit, today string) bool {
	return h.LastDone != nil && *h.LastDone == today
}
