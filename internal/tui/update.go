package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model contract.
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tickMsg:
		m.now = time.Time(x)
		m.snap = m.engine.Observe(m.now)
		if m.snap.Expired {
			// One-way transition: swap the display and stop the tick
			// schedule. Frames keep running.
			m.finished = true
			return m, nil
		}
		return m, m.nextTick()

	case frameMsg:
		m.field.Step(frameInterval.Seconds())
		return m, m.nextFrame()

	case audioStartedMsg:
		return m, nil
	}

	return m, nil
}

// handleKey routes key presses. Any key that is not a binding counts as
// the first interaction and starts audio, mirroring the click-to-play rule
// of the web page this screen descends from.
func (m Model) handleKey(x tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(x, m.keys.Quit):
		m.quitting = true
		m.engine.Cancel()
		if m.player != nil {
			m.player.Close()
		}
		return m, tea.Quit

	case key.Matches(x, m.keys.Mute):
		if m.player != nil && m.player.Started() {
			m.player.ToggleMute()
			return m, nil
		}
	}

	if !m.audioStarted && m.player != nil && m.player.Enabled() {
		m.audioStarted = true
		return m, m.startAudio()
	}
	return m, nil
}
