package engine

import (
	"context"
	"time"
)

type JournalType string

const (
	JournalReflection JournalType = "reflection"
	JournalGratitude  JournalType = "gratitude"
	JournalIdea       JournalType = "idea"
)

func (t JournalType) IsValid() bool {
	switch t {
	case JournalReflection, JournalGratitude, JournalIdea:
		return true
	default:
		return false
	}
}

type JournalEntry struct {
	ID      string      `json:"id"`
	Date    time.Time   `json:"date"`
	Content string      `json:"content"`
	Type    JournalType `json:"type"`
}

func (s *Service) JournalEntries(ctx context.Context) ([]JournalEntry, error) {
	var out []JournalEntry
	if err := s.store.LoadJSON(ctx, keyJournal, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddJournalEntry prepends a new entry (newest first).
func (s *Service) AddJournalEntry(ctx context.Context, content string, typ JournalType) (*JournalEntry, error) {
	c, err := normalizeTitle(content)
	if err != nil {
		return nil, err
	}
	if !typ.IsValid() {
		typ = JournalReflection
	}
	entry := JournalEntry{
		ID:      s.newID(),
		Date:    s.now(),
		Content: c,
		Type:    typ,
	}
	entries, err := s.JournalEntries(ctx)
	if err != nil {
		return nil, err
	}
	entries = append([]JournalEntry{entry}, entries...)
	if err := s.store.SaveJSON(ctx, keyJournal, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}
