// Package audio plays the optional background track. Playback is a
// best-effort collaborator: every failure is logged and swallowed, and the
// countdown never depends on the player's state.
package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/sirupsen/logrus"
)

// speakerBufferLen is the speaker buffer duration; long enough to survive
// render stalls, short enough that mute feels immediate.
const speakerBufferLen = 100 * time.Millisecond

// ErrUnsupportedFormat is returned for audio files that are not mp3, wav,
// or flac.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Options configures a Player.
type Options struct {
	// File is the track to play. Empty disables audio entirely.
	File string
	// Volume in [0,1]; 0 starts silent.
	Volume float64
	// Loop restarts the track when it ends.
	Loop bool
}

// Player lazily owns the audio pipeline. Nothing is opened or initialized
// until the first Start call — the terminal analog of waiting for the first
// user interaction before playing page audio.
type Player struct {
	opts Options

	mu       sync.Mutex
	started  bool
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
	file     *os.File
}

// NewPlayer prepares a player without touching the audio device.
func NewPlayer(opts Options) *Player {
	return &Player{opts: opts}
}

// Enabled reports whether a track is configured at all.
func (p *Player) Enabled() bool { return p.opts.File != "" }

// Started reports whether playback has been kicked off.
func (p *Player) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

// Start opens, decodes, and plays the configured track. Idempotent: the
// second and later calls are no-ops. Failures are logged, never returned;
// the player simply stays silent.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.opts.File == "" {
		return
	}
	// Mark started even on failure so a broken file is not reopened on
	// every keypress.
	p.started = true

	f, err := os.Open(p.opts.File)
	if err != nil {
		logrus.Warnf("audio: cannot open %s: %v", p.opts.File, err)
		return
	}

	streamer, format, err := decode(f)
	if err != nil {
		logrus.Warnf("audio: cannot decode %s: %v", p.opts.File, err)
		_ = f.Close()
		return
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(speakerBufferLen)); err != nil {
		logrus.Warnf("audio: speaker init failed: %v", err)
		_ = streamer.Close()
		_ = f.Close()
		return
	}

	var src beep.Streamer = streamer
	if p.opts.Loop {
		src = beep.Loop(-1, streamer)
	}

	vol := &effects.Volume{
		Streamer: src,
		Base:     2,
		Volume:   volumeGain(p.opts.Volume),
		Silent:   p.opts.Volume == 0,
	}
	p.ctrl = &beep.Ctrl{Streamer: vol}
	p.streamer = streamer
	p.file = f

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		_ = streamer.Close()
		_ = f.Close()
	})))
	logrus.Debugf("audio: playing %s (loop=%v)", p.opts.File, p.opts.Loop)
}

// ToggleMute pauses or resumes playback. A no-op before Start.
func (p *Player) ToggleMute() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	speaker.Unlock()
}

// Muted reports the pause state.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Close stops playback and releases the stream.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Clear()
	if p.streamer != nil {
		_ = p.streamer.Close()
	}
	if p.file != nil {
		_ = p.file.Close()
	}
	p.ctrl = nil
}

// decode picks a decoder from the file extension.
func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(f.Name())) {
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, ErrUnsupportedFormat
	}
}

// volumeGain converts a linear [0,1] volume into the log scale the beep
// volume effect expects. Zero is handled by the Silent flag instead.
func volumeGain(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(v)
}
