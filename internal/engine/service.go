package engine

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/storage"
)

// Storage keys, one JSON document per collection.
const (
	keyTasks       = storage.Namespace + "tasks"
	keyCompletions = storage.Namespace + "completions"
	keyStats       = storage.Namespace + "stats"
	keyHabits      = storage.Namespace + "habits"
	keyWissen      = storage.Namespace + "wissen"
	keyDecisions   = storage.Namespace + "decisions"
	keyGarden      = storage.Namespace + "garden"
	keyFocus       = storage.Namespace + "focus"
	keyWeeklyFocus = storage.Namespace + "wochenfokus"
	keyReflections = storage.Namespace + "tagesabschluss"
	keyJournal     = storage.Namespace + "journal"
	keyLinks       = storage.Namespace + "links"
	keyWidgets     = storage.Namespace + "widgets"
	keyAccent      = storage.Namespace + "accent"
	keyUsername    = storage.Namespace + "username"
	keyChallenge   = storage.Namespace + "challenge"
)

// Service owns all domain state managers. Every operation is a full
// read-modify-write of one collection; last write wins. The clock, id
// source and rng are fields so tests can pin dates and species.
type Service struct {
	store *storage.Store
	log   *zap.Logger

	now      func() time.Time
	newID    func() string
	randIntn func(n int) int
}

type Option func(*Service)

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(store *storage.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		log:      zap.NewNop(),
		now:      time.Now,
		newID:    generateID,
		randIntn: rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Store() *storage.Store { return s.store }

// dateOf formats a timestamp as a calendar date string (YYYY-MM-DD), the
// unit of all streak and "done today" comparisons.
func dateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

func (s *Service) today() string {
	return dateOf(s.now())
}

func (s *Service) yesterday() string {
	return dateOf(s.now().AddDate(0, 0, -1))
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}
