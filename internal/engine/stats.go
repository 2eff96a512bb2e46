package engine

import (
	"context"

	"go.uber.org/zap"
)

// Stats is the progression singleton. Every XP-granting action in the
// system funnels through AddXP/RemoveXP on this record.
type Stats struct {
	TotalXP             int     `json:"totalXP"`
	Level               int     `json:"level"`
	CurrentStreak       int     `json:"currentStreak"`
	LongestStreak       int     `json:"longestStreak"`
	TotalCompletedTasks int     `json:"totalCompletedTasks"`
	LastCompletionDate  *string `json:"lastCompletionDate"`
}

func defaultStats() Stats {
	return Stats{Level: 1}
}

// XPPerLevel is the flat XP cost of each level.
const XPPerLevel = 100

// CalculateLevel derives the level tier from total XP. The result is never
// below 1, regardless of sign.
func CalculateLevel(totalXP int) int {
	level := floorDiv(totalXP, XPPerLevel) + 1
	if level < 1 {
		return 1
	}
	return level
}

// floorDiv divides rounding toward negative infinity, so negative XP does
// not round toward zero and overshoot the level-1 clamp.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// XPForCurrentLevel returns progress within the current level band.
func XPForCurrentLevel(totalXP int) int {
	if totalXP < 0 {
		return 0
	}
	return totalXP % XPPerLevel
}

// XPToNextLevel is the size of a level band.
func XPToNextLevel() int {
	return XPPerLevel
}

func (s *Service) loadStats(ctx context.Context) (Stats, error) {
	stats := defaultStats()
	if err := s.store.LoadJSON(ctx, keyStats, &stats); err != nil {
		return Stats{}, err
	}
	// A corrupted payload degrades to the zero value; re-apply the default.
	if stats.Level < 1 {
		stats.Level = CalculateLevel(stats.TotalXP)
	}
	return stats, nil
}

func (s *Service) saveStats(ctx context.Context, stats Stats) error {
	return s.store.SaveJSON(ctx, keyStats, stats)
}

// Stats returns the current progression snapshot.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.loadStats(ctx)
}

// AddXP credits experience and recomputes the level.
func (s *Service) AddXP(ctx context.Context, amount int) (Stats, error) {
	stats, err := s.loadStats(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats.TotalXP += amount
	stats.Level = CalculateLevel(stats.TotalXP)
	if err := s.saveStats(ctx, stats); err != nil {
		return Stats{}, err
	}
	s.log.Debug("xp added", zap.Int("amount", amount), zap.Int("total", stats.TotalXP))
	return stats, nil
}

// RemoveXP debits experience, floored at zero, and recomputes the level.
func (s *Service) RemoveXP(ctx context.Context, amount int) (Stats, error) {
	stats, err := s.loadStats(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats.TotalXP -= amount
	if stats.TotalXP < 0 {
		stats.TotalXP = 0
	}
	stats.Level = CalculateLevel(stats.TotalXP)
	if err := s.saveStats(ctx, stats); err != nil {
		return Stats{}, err
	}
	s.log.Debug("xp removed", zap.Int("amount", amount), zap.Int("total", stats.TotalXP))
	return stats, nil
}

// CheckStreakReset lazily zeroes a stale streak. Call before displaying the
// streak: if the last completion was neither today nor yesterday the chain
// is broken and the counter drops to 0.
func (s *Service) CheckStreakReset(ctx context.Context) (Stats, error) {
	stats, err := s.loadStats(ctx)
	if err != nil {
		return Stats{}, err
	}
	if stats.LastCompletionDate == nil {
		return stats, nil
	}
	last := *stats.LastCompletionDate
	if last != s.today() && last != s.yesterday() && stats.CurrentStreak != 0 {
		stats.CurrentStreak = 0
		if err := s.saveStats(ctx, stats); err != nil {
			return Stats{}, err
		}
	}
	return stats, nil
}
