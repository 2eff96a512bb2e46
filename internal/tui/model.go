package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

// rowKind distinguishes what a selectable dashboard row acts on.
type rowKind int

const (
	rowTask rowKind = iota
	rowHabit
)

type row struct {
	kind  rowKind
	id    string
	label string
	done  bool
	xp    int
}

type dashboardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	stats     engine.Stats
	rows      []row
	media     []engine.WissenEntry
	garden    []engine.Plant
	weekly    string
	challenge string
	focus     engine.FocusSession

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	stats     engine.Stats
	rows      []row
	media     []engine.WissenEntry
	garden    []engine.Plant
	weekly    string
	challenge string
	focus     engine.FocusSession
	err       error
}

type actedMsg struct {
	log string
	err error
}

func newDashboardModel(ctx context.Context, svc *engine.Service) dashboardModel {
	return dashboardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.svc.CheckStreakReset(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.TodaysTasks(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		completions, err := m.svc.Completions(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		habits, err := m.svc.Habits(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		entries, err := m.svc.WissenEntries(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		garden, err := m.svc.Garden(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		weekly, err := m.svc.WeeklyFocus(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		focus, err := m.svc.FocusSession(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}

		now := time.Now()
		today := now.Format("2006-01-02")
		var rows []row
		for _, t := range tasks {
			rows = append(rows, row{
				kind:  rowTask,
				id:    t.ID,
				label: t.Title,
				done:  engine.IsCompletedToday(t.ID, completions, now),
				xp:    t.XP,
			})
		}
		for _, h := range habits {
			rows = append(rows, row{
				kind:  rowHabit,
				id:    h.ID,
				label: fmt.Sprintf("%s (%s %d)", h.Title, ui.IconStreak, h.Streak),
				done:  engine.IsHabitDoneToday(h, today),
				xp:    h.XP,
			})
		}

		return loadedMsg{
			stats:     stats,
			rows:      rows,
			media:     engine.RunningMedia(entries),
			garden:    garden,
			weekly:    weekly,
			challenge: m.svc.DailyChallenge(),
			focus:     focus,
		}
	}
}

func (m dashboardModel) actCmd(r row) tea.Cmd {
	return func() tea.Msg {
		switch r.kind {
		case rowHabit:
			res, err := m.svc.ToggleHabit(m.ctx, r.id)
			if err != nil {
				return actedMsg{err: err}
			}
			if res.Undone {
				return actedMsg{log: fmt.Sprintf("Undid %q (-%d XP)", res.Habit.Title, res.Habit.XP)}
			}
			return actedMsg{log: fmt.Sprintf("Done %q: +%d XP, streak %d", res.Habit.Title, res.Habit.XP, res.Habit.Streak)}
		default:
			if r.done {
				return actedMsg{log: "Already completed today."}
			}
			stats, err := m.svc.CompleteTask(m.ctx, r.id, r.xp)
			if err != nil {
				return actedMsg{err: err}
			}
			return actedMsg{log: fmt.Sprintf("Completed %q: +%d XP (level %d)", r.label, r.xp, stats.Level)}
		}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.rows = msg.rows
		m.media = msg.media
		m.garden = msg.garden
		m.weekly = msg.weekly
		m.challenge = msg.challenge
		m.focus = msg.focus
		if m.selected >= len(m.rows) {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case actedMsg:
		if msg.err != nil {
			m.lastLog = "Action failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = msg.log
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected >= 0 && m.selected < len(m.rows) {
				return m, m.actCmd(m.rows[m.selected])
			}
			return m, nil
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.loading {
		return ui.Muted.Render("Loading…")
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError + " " + m.err.Error())
	}

	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconSpark, "Startpad"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d  %s %s  %s %d\n",
		ui.Key.Render("Level"), m.stats.Level,
		ui.Key.Render("XP"), ui.XPBar(engine.XPForCurrentLevel(m.stats.TotalXP), engine.XPToNextLevel(), 20),
		ui.IconStreak, m.stats.CurrentStreak,
	))
	if m.weekly != "" {
		b.WriteString(ui.Muted.Render("Wochenfokus: "+m.weekly) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(ui.H2.Render(ui.IconTask+" Heute") + "\n")
	if len(m.rows) == 0 {
		b.WriteString(ui.Muted.Render("Nothing on for today.") + "\n")
	}
	for i, r := range m.rows {
		line := fmt.Sprintf("%s %s %s", ui.Checkbox(r.done), r.label, ui.Muted.Render(fmt.Sprintf("+%d XP", r.xp)))
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	var panels []string
	if len(m.media) > 0 {
		var lines []string
		lines = append(lines, ui.PanelTitle.Render(ui.IconBook+" Läuft gerade"))
		for _, e := range m.media {
			lines = append(lines, "- "+e.Title)
		}
		panels = append(panels, ui.Panel.Render(strings.Join(lines, "\n")))
	}
	if len(m.garden) > 0 {
		var glyphs []string
		for _, p := range m.garden {
			glyphs = append(glyphs, engine.PlantArt[p.Type][p.Stage])
		}
		panels = append(panels, ui.Panel.Render(ui.PanelTitle.Render(ui.IconGarden+" Garten")+"\n"+strings.Join(glyphs, " ")))
	}
	panels = append(panels, ui.Panel.Render(ui.PanelTitle.Render(ui.IconChallenge+" Challenge")+"\n"+m.challenge))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	b.WriteString("\n")

	if m.focus.Active {
		remaining := engine.FocusRemaining(m.focus, time.Now())
		b.WriteString(ui.Warn.Render(fmt.Sprintf("%s Focus: %s remaining", ui.IconFocus, remaining.Round(time.Second))) + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render("↑/↓ select · enter complete/toggle · r refresh · q quit") + "\n")
	b.WriteString(ui.Muted.Render(m.lastLog) + "\n")
	return b.String()
}
