package engine

import (
	"context"
	"errors"
	"time"
)

// DefaultFocusMinutes is the classic pomodoro length.
const DefaultFocusMinutes = 25

// FocusCompletionXP is the flat reward for finishing a session.
const FocusCompletionXP = 25

// FocusSession is the ephemeral singleton. Remaining time is always
// recomputed from the wall-clock delta against StartedAt, never counted
// down in memory, so a session survives process restarts.
type FocusSession struct {
	Active    bool       `json:"active"`
	StartedAt *time.Time `json:"startedAt"`
	Duration  int        `json:"duration"` // minutes target
	TaskID    string     `json:"taskId,omitempty"`
}

func defaultFocusSession() FocusSession {
	return FocusSession{Duration: DefaultFocusMinutes}
}

func (s *Service) FocusSession(ctx context.Context) (FocusSession, error) {
	sess := defaultFocusSession()
	if err := s.store.LoadJSON(ctx, keyFocus, &sess); err != nil {
		return FocusSession{}, err
	}
	if sess.Duration <= 0 {
		sess.Duration = DefaultFocusMinutes
	}
	return sess, nil
}

func (s *Service) saveFocusSession(ctx context.Context, sess FocusSession) error {
	return s.store.SaveJSON(ctx, keyFocus, sess)
}

// StartFocus begins a session anchored at the current wall clock.
func (s *Service) StartFocus(ctx context.Context, minutes int, taskID string) (FocusSession, error) {
	if minutes <= 0 {
		minutes = DefaultFocusMinutes
	}
	now := s.now()
	sess := FocusSession{
		Active:    true,
		StartedAt: &now,
		Duration:  minutes,
		TaskID:    taskID,
	}
	if err := s.saveFocusSession(ctx, sess); err != nil {
		return FocusSession{}, err
	}
	return sess, nil
}

// StopFocus abandons the active session without reward. The configured
// duration is preserved for the next start.
func (s *Service) StopFocus(ctx context.Context) (FocusSession, error) {
	sess, err := s.FocusSession(ctx)
	if err != nil {
		return FocusSession{}, err
	}
	sess.Active = false
	sess.StartedAt = nil
	sess.TaskID = ""
	if err := s.saveFocusSession(ctx, sess); err != nil {
		return FocusSession{}, err
	}
	return sess, nil
}

// FocusRemaining returns the time left in a session at the given instant,
// clamped at zero.
func FocusRemaining(sess FocusSession, now time.Time) time.Duration {
	if !sess.Active || sess.StartedAt == nil {
		return 0
	}
	remaining := time.Duration(sess.Duration)*time.Minute - now.Sub(*sess.StartedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CompleteFocusResult reports what a finished session paid out.
type CompleteFocusResult struct {
	Session FocusSession
	Stats   Stats
	Water   WaterResult
}

// CompleteFocus finishes the active session: stops it, credits the flat
// completion reward and waters the garden with the session's full duration.
func (s *Service) CompleteFocus(ctx context.Context) (*CompleteFocusResult, error) {
	sess, err := s.FocusSession(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.Active {
		return nil, errors.New("no active focus session")
	}
	minutes := sess.Duration

	sess.Active = false
	sess.StartedAt = nil
	sess.TaskID = ""
	if err := s.saveFocusSession(ctx, sess); err != nil {
		return nil, err
	}

	stats, err := s.AddXP(ctx, FocusCompletionXP)
	if err != nil {
		return nil, err
	}
	water, err := s.WaterGarden(ctx, minutes)
	if err != nil {
		return nil, err
	}
	return &CompleteFocusResult{Session: sess, Stats: stats, Water: water}, nil
}

// WeeklyFocus is the free-text weekly intention shown on the dashboard.
func (s *Service) WeeklyFocus(ctx context.Context) (string, error) {
	var text string
	if err := s.store.LoadJSON(ctx, keyWeeklyFocus, &text); err != nil {
		return "", err
	}
	return text, nil
}

func (s *Service) SetWeeklyFocus(ctx context.Context, text string) error {
	return s.store.SaveJSON(ctx, keyWeeklyFocus, text)
}

// Reflection is one end-of-day entry; at most one per calendar day.
type Reflection struct {
	Date string `json:"date"`
	Mood int    `json:"mood"` // 1-5
	Note string `json:"note"`
}

func (s *Service) Reflections(ctx context.Context) ([]Reflection, error) {
	var out []Reflection
	if err := s.store.LoadJSON(ctx, keyReflections, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveReflection upserts today's entry; a repeated save overwrites it.
func (s *Service) SaveReflection(ctx context.Context, mood int, note string) (*Reflection, error) {
	entries, err := s.Reflections(ctx)
	if err != nil {
		return nil, err
	}
	entry := Reflection{Date: s.today(), Mood: mood, Note: note}
	replaced := false
	for i := range entries {
		if entries[i].Date == entry.Date {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append([]Reflection{entry}, entries...)
	}
	if err := s.store.SaveJSON(ctx, keyReflections, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) HasReflectionToday(ctx context.Context) (bool, error) {
	entries, err := s.Reflections(ctx)
	if err != nil {
		return false, err
	}
	today := s.today()
	for _, e := range entries {
		if e.Date == today {
			return true, nil
		}
	}
	return false, nil
}

// ContextHints returns time-of-day suggestions for the dashboard.
func (s *Service) ContextHints() []string {
	hour := s.now().Hour()
	var hints []string
	switch {
	case hour >= 6 && hour < 9:
		hints = append(hints, "🌅 Morgenroutine: Starte mit deiner wichtigsten Aufgabe.")
		hints = append(hints, "💧 Trinke ein Glas Wasser.")
	case hour >= 9 && hour < 12:
		hints = append(hints, "🎯 Fokuszeit: Nutze die Vormittagsenergie.")
	case hour >= 12 && hour < 14:
		hints = append(hints, "🍽️ Mittagspause nicht vergessen.")
		hints = append(hints, "🚶 Kurze Bewegung tut gut.")
	case hour >= 14 && hour < 17:
		hints = append(hints, "📋 Check deine offenen Aufgaben.")
	case hour >= 17 && hour < 20:
		hints = append(hints, "🌇 Feierabend-Routine: Schließe den Tag ab.")
		hints = append(hints, "📖 Guter Zeitpunkt zum Lesen.")
	default:
		hints = append(hints, "🌙 Wind down: Bereite dich auf morgen vor.")
		hints = append(hints, "✍️ Tagesabschluss nicht vergessen.")
	}
	return hints
}
