package engine

import (
	"context"
	"fmt"
	"time"
)

type WissenCategory string

const (
	WissenMedien  WissenCategory = "Medien"
	WissenProjekt WissenCategory = "Projekt"
)

type WissenStatus string

const (
	StatusGeplant     WissenStatus = "Geplant"
	StatusLaufend     WissenStatus = "Laufend"
	StatusBeendet     WissenStatus = "Beendet"
	StatusAbgebrochen WissenStatus = "Abgebrochen"
)

func (st WissenStatus) IsValid() bool {
	switch st {
	case StatusGeplant, StatusLaufend, StatusBeendet, StatusAbgebrochen:
		return true
	default:
		return false
	}
}

type WissenDifficulty string

const (
	DifficultyKlein         WissenDifficulty = "Klein"
	DifficultyMittel        WissenDifficulty = "Mittel"
	DifficultyAnspruchsvoll WissenDifficulty = "Anspruchsvoll"
)

// WissenTypes is the suggestion list for the free-form type field.
var WissenTypes = []string{"Buch", "Artikel", "Video", "Podcast", "Kurs", "Tool", "Projekt", "Sonstiges"}

// WissenEntry is a tracked piece of media or a personal project with a
// status lifecycle. XPAwarded guards the one-time completion reward.
type WissenEntry struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Type       string           `json:"type"`
	Rating     int              `json:"rating"` // 0-5
	Tags       []string         `json:"tags"`
	URL        string           `json:"url"`
	Notes      string           `json:"notes"`
	Category   WissenCategory   `json:"category"`
	Status     WissenStatus     `json:"status"`
	Difficulty WissenDifficulty `json:"difficulty,omitempty"` // Projekt only
	CreatedAt  time.Time        `json:"createdAt"`
	XPAwarded  bool             `json:"xpAwarded"`
}

// XPForEntry is the fixed completion reward table. Medien entries are worth
// a flat 15; Projekt entries scale with difficulty.
func XPForEntry(e WissenEntry) int {
	switch e.Category {
	case WissenMedien:
		return 15
	case WissenProjekt:
		switch e.Difficulty {
		case DifficultyKlein:
			return 10
		case DifficultyMittel:
			return 20
		case DifficultyAnspruchsvoll:
			return 30
		default:
			return 0
		}
	default:
		return 0
	}
}

// WissenUpdate is a partial merge; nil fields keep the stored value.
type WissenUpdate struct {
	Title      *string
	Type       *string
	Rating     *int
	Tags       *[]string
	URL        *string
	Notes      *string
	Category   *WissenCategory
	Status     *WissenStatus
	Difficulty *WissenDifficulty
}

func (s *Service) loadWissen(ctx context.Context) ([]WissenEntry, error) {
	var out []WissenEntry
	if err := s.store.LoadJSON(ctx, keyWissen, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) saveWissen(ctx context.Context, entries []WissenEntry) error {
	return s.store.SaveJSON(ctx, keyWissen, entries)
}

func (s *Service) WissenEntries(ctx context.Context) ([]WissenEntry, error) {
	return s.loadWissen(ctx)
}

// CreateWissenEntry prepends a new entry (collection order is newest first).
func (s *Service) CreateWissenEntry(ctx context.Context, e WissenEntry) (*WissenEntry, error) {
	t, err := normalizeTitle(e.Title)
	if err != nil {
		return nil, err
	}
	e.Title = t
	e.ID = s.newID()
	e.CreatedAt = s.now()
	e.XPAwarded = false
	if e.Category == "" {
		e.Category = WissenMedien
	}
	if e.Status == "" {
		e.Status = StatusGeplant
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}

	entries, err := s.loadWissen(ctx)
	if err != nil {
		return nil, err
	}
	entries = append([]WissenEntry{e}, entries...)
	if err := s.saveWissen(ctx, entries); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateWissenEntry merges upd and settles the completion reward on status
// transitions. Leaving Beendet while awarded reverses the XP computed from
// the OLD entry (fields may have changed since the grant); entering Beendet
// with the flag clear grants it. Only one direction applies per call.
func (s *Service) UpdateWissenEntry(ctx context.Context, id string, upd WissenUpdate) (*WissenEntry, error) {
	entries, err := s.loadWissen(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range entries {
		if entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("wissen entry %s not found", id)
	}

	old := entries[idx]
	e := old
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Type != nil {
		e.Type = *upd.Type
	}
	if upd.Rating != nil {
		e.Rating = *upd.Rating
	}
	if upd.Tags != nil {
		e.Tags = *upd.Tags
	}
	if upd.URL != nil {
		e.URL = *upd.URL
	}
	if upd.Notes != nil {
		e.Notes = *upd.Notes
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	if upd.Difficulty != nil {
		e.Difficulty = *upd.Difficulty
	}

	if old.Status != e.Status {
		if old.XPAwarded && old.Status == StatusBeendet && e.Status != StatusBeendet {
			if _, err := s.RemoveXP(ctx, XPForEntry(old)); err != nil {
				return nil, err
			}
			e.XPAwarded = false
		}
		if e.Status == StatusBeendet && !e.XPAwarded {
			if amount := XPForEntry(e); amount > 0 {
				if _, err := s.AddXP(ctx, amount); err != nil {
					return nil, err
				}
				e.XPAwarded = true
			}
		}
	}

	entries[idx] = e
	if err := s.saveWissen(ctx, entries); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteWissenEntry removes the entry; a still-awarded completion reward is
// reversed first so deletion never leaks granted XP.
func (s *Service) DeleteWissenEntry(ctx context.Context, id string) error {
	entries, err := s.loadWissen(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == id && e.XPAwarded {
			if _, err := s.RemoveXP(ctx, XPForEntry(e)); err != nil {
				return err
			}
			break
		}
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return s.saveWissen(ctx, kept)
}

// RunningMedia returns the first three currently-running media entries in
// collection order (newest first).
func RunningMedia(entries []WissenEntry) []WissenEntry {
	var out []WissenEntry
	for _, e := range entries {
		if e.Category == WissenMedien && e.Status == StatusLaufend {
			out = append(out, e)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}
