// Package tui renders the interactive startpad dashboard. It is a thin
// bubbletea shell over the engine: every action round-trips through the
// service and reloads, so the view never holds derived state of its own.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
)

// RunBoard starts the dashboard and blocks until the user quits.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	p := tea.NewProgram(newDashboardModel(ctx, svc), tea.WithContext(ctx), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
