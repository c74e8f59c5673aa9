package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spencerwgreene/launchday/internal/countdown"
)

// fallback dimensions used before the first WindowSizeMsg arrives.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	w, h := m.width, m.height
	if w <= 0 {
		w = fallbackWidth
	}
	if h <= 0 {
		h = fallbackHeight
	}

	st := newStyles(m.cfg.Theme)

	var fg string
	if m.finished {
		fg = m.renderTerminal(st)
	} else {
		fg = m.renderCountdown(st)
	}
	fgLines := strings.Split(lipgloss.PlaceHorizontal(w, lipgloss.Center, fg), "\n")

	// Particles fill the rows above and below the countdown block and keep
	// animating after expiry.
	top := (h - len(fgLines)) / 2
	if top < 0 {
		top = 0
	}
	bottom := h - len(fgLines) - top
	if bottom < 0 {
		bottom = 0
	}
	bg := m.field.Render(w, top+bottom)

	var b strings.Builder
	for i := 0; i < top; i++ {
		b.WriteString(st.particle.Render(bg[i]))
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(fgLines, "\n"))
	for i := top; i < top+bottom; i++ {
		b.WriteString("\n")
		b.WriteString(st.particle.Render(bg[i]))
	}
	return b.String()
}

// renderCountdown draws the four display slots plus title, elapsed bar,
// and footer.
func (m Model) renderCountdown(st styles) string {
	panels := []string{
		renderPanel(st, countdown.Pad2(m.snap.Days), "days"),
		renderPanel(st, countdown.Pad2(m.snap.Hours), "hours"),
		renderPanel(st, countdown.Pad2(m.snap.Minutes), "minutes"),
		renderPanel(st, countdown.Pad2(m.snap.Seconds), "seconds"),
	}
	gap := strings.Repeat(" ", boxGap)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		panels[0], gap, panels[1], gap, panels[2], gap, panels[3])

	parts := []string{
		st.title.Render(m.cfg.Title),
		"",
		row,
	}
	if bar := m.renderElapsed(); bar != "" {
		parts = append(parts, "", bar)
	}
	parts = append(parts, "", m.renderFooter(st))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// renderPanel draws one unit slot: block digits over a label.
func renderPanel(st styles, value, label string) string {
	digits := st.digit.Render(strings.Join(bigDigits(value), "\n"))
	return lipgloss.JoinVertical(lipgloss.Center, digits, st.label.Render(label))
}

// renderTerminal is the one-time replacement for the countdown region.
func (m Model) renderTerminal(st styles) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		st.title.Render(m.cfg.Title),
		"",
		st.terminal.Render(m.cfg.Message),
		"",
		m.renderFooter(st),
	)
}

// renderElapsed shows how much of the announce→target window has passed.
// Hidden when no announce date is configured.
func (m Model) renderElapsed() string {
	announced := m.cfg.AnnouncedTime()
	if announced.IsZero() || m.now.IsZero() {
		return ""
	}
	total := m.cfg.TargetTime().Sub(announced)
	if total <= 0 {
		return ""
	}
	pct := float64(m.now.Sub(announced)) / float64(total)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	bar := m.elapsedBar
	bar.Width = progressBarWidth
	return bar.ViewAs(pct)
}

func (m Model) renderFooter(st styles) string {
	hints := []string{"q quit"}
	if m.player != nil && m.player.Enabled() {
		switch {
		case !m.audioStarted:
			hints = append(hints, "press any key for audio")
		case m.player.Muted():
			hints = append(hints, "m unmute (muted)")
		default:
			hints = append(hints, "m mute")
		}
	}
	return st.footer.Render(strings.Join(hints, " • "))
}
