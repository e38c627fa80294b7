package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Snapshot on startup, after the store has loaded
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Tracker), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
