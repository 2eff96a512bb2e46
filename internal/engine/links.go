package engine

import (
	"context"
	"fmt"
)

type LinkItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Emoji string `json:"emoji"`
}

// LinkGroup is pure dashboard state: a titled, orderable, collapsible set
// of bookmarks.
type LinkGroup struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Emoji     string     `json:"emoji"`
	Color     string     `json:"color"`
	Links     []LinkItem `json:"links"`
	Collapsed bool       `json:"collapsed"`
	Order     int        `json:"order"`
}

// defaultLinkGroups seeds a fresh install.
func (s *Service) defaultLinkGroups() []LinkGroup {
	return []LinkGroup{
		{
			ID: s.newID(), Title: "Produktivität", Emoji: "⚡", Color: "--xp",
			Links: []LinkItem{
				{ID: s.newID(), Title: "Kalender", URL: "https://calendar.google.com", Emoji: "📅"},
				{ID: s.newID(), Title: "Notizen", URL: "https://notion.so", Emoji: "📝"},
			},
			Order: 0,
		},
		{
			ID: s.newID(), Title: "Lernen", Emoji: "📚", Color: "--wissen",
			Links: []LinkItem{
				{ID: s.newID(), Title: "YouTube", URL: "https://youtube.com", Emoji: "▶️"},
			},
			Order: 1,
		},
		{
			ID: s.newID(), Title: "Tools", Emoji: "🛠️", Color: "--streak",
			Links: []LinkItem{
				{ID: s.newID(), Title: "GitHub", URL: "https://github.com", Emoji: "🐙"},
			},
			Order: 2,
		},
	}
}

// LinkGroups returns the stored groups, seeding the defaults on first use.
func (s *Service) LinkGroups(ctx context.Context) ([]LinkGroup, error) {
	_, ok, err := s.store.Get(ctx, keyLinks)
	if err != nil {
		return nil, err
	}
	if !ok {
		groups := s.defaultLinkGroups()
		if err := s.store.SaveJSON(ctx, keyLinks, groups); err != nil {
			return nil, err
		}
		return groups, nil
	}
	var groups []LinkGroup
	if err := s.store.LoadJSON(ctx, keyLinks, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *Service) saveLinkGroups(ctx context.Context, groups []LinkGroup) error {
	return s.store.SaveJSON(ctx, keyLinks, groups)
}

func (s *Service) AddLinkGroup(ctx context.Context, title, emoji, color string) ([]LinkGroup, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	groups, err := s.LinkGroups(ctx)
	if err != nil {
		return nil, err
	}
	groups = append(groups, LinkGroup{
		ID:    s.newID(),
		Title: t,
		Emoji: emoji,
		Color: color,
		Links: []LinkItem{},
		Order: len(groups),
	})
	if err := s.saveLinkGroups(ctx, groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *Service) AddLink(ctx context.Context, groupID, title, url, emoji string) ([]LinkGroup, error) {
	groups, err := s.LinkGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == groupID {
			groups[i].Links = append(groups[i].Links, LinkItem{ID: s.newID(), Title: title, URL: url, Emoji: emoji})
			if err := s.saveLinkGroups(ctx, groups); err != nil {
				return nil, err
			}
			return groups, nil
		}
	}
	return nil, fmt.Errorf("link group %s not found", groupID)
}

func (s *Service) RemoveLink(ctx context.Context, groupID, linkID string) ([]LinkGroup, error) {
	groups, err := s.LinkGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID != groupID {
			continue
		}
		kept := groups[i].Links[:0]
		for _, l := range groups[i].Links {
			if l.ID != linkID {
				kept = append(kept, l)
			}
		}
		groups[i].Links = kept
		if err := s.saveLinkGroups(ctx, groups); err != nil {
			return nil, err
		}
		return groups, nil
	}
	return nil, fmt.Errorf("link group %s not found", groupID)
}

func (s *Service) DeleteLinkGroup(ctx context.Context, groupID string) ([]LinkGroup, error) {
	groups, err := s.LinkGroups(ctx)
	if err != nil {
		return nil, err
	}
	kept := groups[:0]
	for _, g := range groups {
		if g.ID != groupID {
			kept = append(kept, g)
		}
	}
	if err := s.saveLinkGroups(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Service) ToggleGroupCollapse(ctx context.Context, groupID string) ([]LinkGroup, error) {
	groups, err := s.LinkGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == groupID {
			groups[i].Collapsed = !groups[i].Collapsed
			if err := s.saveLinkGroups(ctx, groups); err != nil {
				return nil, err
			}
			return groups, nil
		}
	}
	return nil, fmt.Errorf("link group %s not found", groupID)
}

// ReorderGroups moves one group and reindexes every order field.
func (s *Service) ReorderGroups(ctx context.Context, fromIndex, toIndex int) ([]LinkGroup, error) {
	groups, err := s.LinkGroups(ctx)
	if err != nil {
		return nil, err
	}
	if fromIndex < 0 || fromIndex >= len(groups) || toIndex < 0 || toIndex >= len(groups) {
		return nil, fmt.Errorf("reorder out of range: %d -> %d", fromIndex, toIndex)
	}
	moved := groups[fromIndex]
	groups = append(groups[:fromIndex], groups[fromIndex+1:]...)
	groups = append(groups[:toIndex], append([]LinkGroup{moved}, groups[toIndex:]...)...)
	for i := range groups {
		groups[i].Order = i
	}
	if err := s.saveLinkGroups(ctx, groups); err != nil {
		return nil, err
	}
	return groups, nil
}
