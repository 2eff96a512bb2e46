package engine

import (
	"context"
	"fmt"
	"time"
)

type TaskCategory string

const (
	CategoryHaushalt   TaskCategory = "Haushalt"
	CategoryGesundheit TaskCategory = "Gesundheit"
	CategoryRoutine    TaskCategory = "Routine"
	CategorySonstiges  TaskCategory = "Sonstiges"
)

func (c TaskCategory) IsValid() bool {
	switch c {
	case CategoryHaushalt, CategoryGesundheit, CategoryRoutine, CategorySonstiges:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory TaskCategory = CategorySonstiges

type TaskRepeat string

const (
	RepeatDaily  TaskRepeat = "täglich"
	RepeatWeekly TaskRepeat = "wöchentlich"
	RepeatManual TaskRepeat = "manuell"
)

func (r TaskRepeat) IsValid() bool {
	switch r {
	case RepeatDaily, RepeatWeekly, RepeatManual:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "hoch"
	PriorityMedium TaskPriority = "mittel"
	PriorityLow    TaskPriority = "niedrig"
)

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Category   TaskCategory `json:"category"`
	XP         int          `json:"xp"`
	Repeat     TaskRepeat   `json:"repeat"`
	CreatedAt  time.Time    `json:"createdAt"`
	Priority   TaskPriority `json:"priority,omitempty"`
	DueDate    string       `json:"dueDate,omitempty"` // YYYY-MM-DD, empty = none
	Subtasks   []Subtask    `json:"subtasks"`
	IsArchived bool         `json:"isArchived"`
	Note       string       `json:"note"`
}

// TaskCompletion is one append-only log entry. Completion state is never
// stored on the task itself; "completed today" is derived from this log.
type TaskCompletion struct {
	TaskID      string    `json:"taskId"`
	CompletedAt time.Time `json:"completedAt"`
}

// TaskUpdate is a partial merge; nil fields keep the stored value.
type TaskUpdate struct {
	Title      *string
	Category   *TaskCategory
	XP         *int
	Repeat     *TaskRepeat
	Priority   *TaskPriority
	DueDate    *string
	Subtasks   *[]Subtask
	IsArchived *bool
	Note       *string
}

func (s *Service) loadTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := s.store.LoadJSON(ctx, keyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Service) saveTasks(ctx context.Context, tasks []Task) error {
	return s.store.SaveJSON(ctx, keyTasks, tasks)
}

// Tasks returns the whole collection, archived included.
func (s *Service) Tasks(ctx context.Context) ([]Task, error) {
	return s.loadTasks(ctx)
}

// CreateTask builds a task, appends it to the collection and persists.
func (s *Service) CreateTask(ctx context.Context, title string, category TaskCategory, xp int, repeat TaskRepeat, priority TaskPriority, dueDate string) (*Task, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if !category.IsValid() {
		category = DefaultCategory
	}
	if !repeat.IsValid() {
		repeat = RepeatManual
	}
	if priority == "" {
		priority = PriorityMedium
	}

	task := Task{
		ID:        s.newID(),
		Title:     t,
		Category:  category,
		XP:        xp,
		Repeat:    repeat,
		CreatedAt: s.now(),
		Priority:  priority,
		DueDate:   dueDate,
		Subtasks:  []Subtask{},
	}

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, task)
	if err := s.saveTasks(ctx, tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask merges the non-nil fields of upd into the task with the given id.
func (s *Service) UpdateTask(ctx context.Context, id string, upd TaskUpdate) (*Task, error) {
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("task %s not found", id)
	}

	t := &tasks[idx]
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Category != nil {
		t.Category = *upd.Category
	}
	if upd.XP != nil {
		t.XP = *upd.XP
	}
	if upd.Repeat != nil {
		t.Repeat = *upd.Repeat
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		t.DueDate = *upd.DueDate
	}
	if upd.Subtasks != nil {
		t.Subtasks = *upd.Subtasks
	}
	if upd.IsArchived != nil {
		t.IsArchived = *upd.IsArchived
	}
	if upd.Note != nil {
		t.Note = *upd.Note
	}

	if err := s.saveTasks(ctx, tasks); err != nil {
		return nil, err
	}
	out := tasks[idx]
	return &out, nil
}

// ArchiveTask flips the alternate lifecycle flag; the task stays in the
// collection and just disappears from every today view.
func (s *Service) ArchiveTask(ctx context.Context, id string, archived bool) (*Task, error) {
	return s.UpdateTask(ctx, id, TaskUpdate{IsArchived: &archived})
}

// DeleteTask removes the task unconditionally. Completion log entries are
// kept; the log is append-only.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return err
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.saveTasks(ctx, kept)
}

// AddSubtask appends a subtask to the task's ordered list.
func (s *Service) AddSubtask(ctx context.Context, taskID, title string) (*Task, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		tasks[i].Subtasks = append(tasks[i].Subtasks, Subtask{ID: s.newID(), Title: t})
		if err := s.saveTasks(ctx, tasks); err != nil {
			return nil, err
		}
		out := tasks[i]
		return &out, nil
	}
	return nil, fmt.Errorf("task %s not found", taskID)
}

// ToggleSubtask flips a subtask's completed flag.
func (s *Service) ToggleSubtask(ctx context.Context, taskID, subtaskID string) (*Task, error) {
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		for j := range tasks[i].Subtasks {
			if tasks[i].Subtasks[j].ID == subtaskID {
				tasks[i].Subtasks[j].Completed = !tasks[i].Subtasks[j].Completed
				if err := s.saveTasks(ctx, tasks); err != nil {
					return nil, err
				}
				out := tasks[i]
				return &out, nil
			}
		}
		return nil, fmt.Errorf("subtask %s not found on task %s", subtaskID, taskID)
	}
	return nil, fmt.Errorf("task %s not found", taskID)
}

// FilterToday applies the daily-visibility policy, in precedence order:
// archived tasks are always hidden; an explicit due date overrides the
// repeat rule entirely (visible once due and until dealt with, hidden while
// in the future); daily repeats are always visible; weekly repeats show on
// Mondays; everything else (manual, no date) is always visible.
func FilterToday(tasks []Task, now time.Time) []Task {
	todayStr := dateOf(now)
	monday := now.Weekday() == time.Monday

	var out []Task
	for _, t := range tasks {
		if t.IsArchived {
			continue
		}
		if t.DueDate != "" {
			if t.DueDate <= todayStr {
				out = append(out, t)
			}
			continue
		}
		switch t.Repeat {
		case RepeatDaily:
			out = append(out, t)
		case RepeatWeekly:
			if monday {
				out = append(out, t)
			}
		default:
			out = append(out, t)
		}
	}
	return out
}

// TodaysTasks returns the tasks visible today.
func (s *Service) TodaysTasks(ctx context.Context) ([]Task, error) {
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	return FilterToday(tasks, s.now()), nil
}

func (s *Service) loadCompletions(ctx context.Context) ([]TaskCompletion, error) {
	var out []TaskCompletion
	if err := s.store.LoadJSON(ctx, keyCompletions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Completions returns the full append-only completion log.
func (s *Service) Completions(ctx context.Context) ([]TaskCompletion, error) {
	return s.loadCompletions(ctx)
}

// CompleteTask records a completion event and credits xpValue. The task
// record itself is untouched: "done today" stays derived from the log. The
// streak increments when the previous completion day was exactly yesterday
// (or this is the first completion ever) and restarts at 1 after any gap.
func (s *Service) CompleteTask(ctx context.Context, taskID string, xpValue int) (Stats, error) {
	completions, err := s.loadCompletions(ctx)
	if err != nil {
		return Stats{}, err
	}
	completions = append(completions, TaskCompletion{TaskID: taskID, CompletedAt: s.now()})
	if err := s.store.SaveJSON(ctx, keyCompletions, completions); err != nil {
		return Stats{}, err
	}

	stats, err := s.loadStats(ctx)
	if err != nil {
		return Stats{}, err
	}
	today := s.today()

	stats.TotalXP += xpValue
	stats.Level = CalculateLevel(stats.TotalXP)
	stats.TotalCompletedTasks++

	if stats.LastCompletionDate == nil || *stats.LastCompletionDate != today {
		if stats.LastCompletionDate == nil || *stats.LastCompletionDate == s.yesterday() {
			stats.CurrentStreak++
		} else {
			stats.CurrentStreak = 1
		}
		stats.LastCompletionDate = &today
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
	}

	if err := s.saveStats(ctx, stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// IsCompletedToday reports whether any completion log entry for the task
// falls on today's date.
func IsCompletedToday(taskID string, completions []TaskCompletion, now time.Time) bool {
	today := dateOf(now)
	for _, c := range completions {
		if c.TaskID == taskID && dateOf(c.CompletedAt) == today {
			return true
		}
	}
	return false
}

// IsTaskCompletedToday is the store-backed form of IsCompletedToday.
func (s *Service) IsTaskCompletedToday(ctx context.Context, taskID string) (bool, error) {
	completions, err := s.loadCompletions(ctx)
	if err != nil {
		return false, err
	}
	return IsCompletedToday(taskID, completions, s.now()), nil
}

// TodaysXP sums the xp values of tasks completed today, looked up by id.
func (s *Service) TodaysXP(ctx context.Context) (int, error) {
	completions, err := s.loadCompletions(ctx)
	if err != nil {
		return 0, err
	}
	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return 0, err
	}

	byID := make(map[string]int, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t.XP
	}

	today := s.today()
	sum := 0
	for _, c := range completions {
		if dateOf(c.CompletedAt) == today {
			sum += byID[c.TaskID]
		}
	}
	return sum, nil
}
