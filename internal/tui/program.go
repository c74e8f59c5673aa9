package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/spencerwgreene/launchday/internal/audio"
	"github.com/spencerwgreene/launchday/internal/config"
)

// Run starts the Bubble Tea countdown screen and blocks until it exits.
func Run(ctx context.Context, cfg config.Config, player *audio.Player) error {
	model := NewModel(cfg, player)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Silence external logs during the TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err := p.Run()
	if player != nil {
		player.Close()
	}
	return err
}
