package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spencerwgreene/launchday/internal/audio"
	"github.com/spencerwgreene/launchday/internal/config"
	"github.com/spencerwgreene/launchday/internal/countdown"
	"github.com/spencerwgreene/launchday/internal/particles"
)

// Model is the root Bubble Tea model for the countdown screen.
type Model struct {
	cfg    config.Config
	engine *countdown.Engine
	field  *particles.Field
	player *audio.Player

	snap countdown.Snapshot
	now  time.Time

	// finished flips once, on the tick that first observes expiry; the
	// countdown region is then swapped for the terminal message and the
	// tick schedule is not re-armed.
	finished bool

	// audioStarted latches the first user interaction.
	audioStarted bool

	elapsedBar progress.Model
	keys       keyMap

	width    int
	height   int
	quitting bool
}

// NewModel constructs a Model from validated config.
func NewModel(cfg config.Config, player *audio.Player) Model {
	return Model{
		cfg:    cfg,
		engine: countdown.NewEngine(cfg.TargetTime(), cfg.Message),
		field: particles.NewField(particles.Options{
			Count:    cfg.Particles.Count,
			Speed:    cfg.Particles.Speed,
			Glyphs:   cfg.Particles.Glyphs,
			LinkDist: cfg.Particles.LinkDist,
			Seed:     cfg.Particles.Seed,
		}),
		player:     player,
		elapsedBar: progress.New(progress.WithDefaultGradient()),
		keys:       newKeyMap(),
	}
}

// Init implements tea.Model. The first countdown tick fires immediately;
// the particle clock starts on its own cadence.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return tickMsg(time.Now()) },
		m.nextFrame(),
	)
}

// nextTick schedules the next countdown tick.
func (m Model) nextTick() tea.Cmd {
	return tea.Tick(countdownTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// nextFrame schedules the next particle frame.
func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// startAudio kicks off playback off the update loop; speaker init can
// block for a moment.
func (m Model) startAudio() tea.Cmd {
	return func() tea.Msg {
		m.player.Start()
		return audioStartedMsg{}
	}
}

// Finished reports whether the terminal transition has happened.
func (m Model) Finished() bool { return m.finished }
