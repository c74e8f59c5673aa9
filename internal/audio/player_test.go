//nolint:testpackage // White-box tests; playback itself needs a device and is not tested.
package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerDisabledWithoutFile(t *testing.T) {
	p := NewPlayer(Options{})
	assert.False(t, p.Enabled())
	assert.False(t, p.Started())

	// Start on a disabled player is a no-op, not a failure.
	p.Start()
	assert.False(t, p.Started())
}

func TestPlayerStartMissingFileIsSwallowed(t *testing.T) {
	p := NewPlayer(Options{File: filepath.Join(t.TempDir(), "missing.mp3"), Volume: 0.5})
	assert.True(t, p.Enabled())

	p.Start()
	// The failure is absorbed but the attempt is remembered, so later
	// interactions do not retry the broken file.
	assert.True(t, p.Started())
	assert.False(t, p.Muted())
}

func TestToggleMuteBeforeStart(t *testing.T) {
	p := NewPlayer(Options{File: "theme.mp3"})
	p.ToggleMute()
	assert.False(t, p.Muted())
	p.Close()
}

func TestDecodeRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.ogg")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, _, err = decode(f)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestVolumeGain(t *testing.T) {
	assert.Zero(t, volumeGain(0))
	assert.Zero(t, volumeGain(1)) // unity gain
	assert.InDelta(t, -1, volumeGain(0.5), 1e-9)
	assert.True(t, math.Signbit(volumeGain(0.25)))
}
