package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spencerwgreene/launchday/internal/config"
)

func statusConfig(t *testing.T, target time.Time) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Title = "Big Launch"
	cfg.Message = "WE ARE LIVE!"
	cfg.Target = target.Format(time.RFC3339)
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestStatusReportHuman(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := statusConfig(t, now.Add(26*time.Hour+3*time.Minute+7*time.Second))

	out, err := statusReport(cfg, now, false)
	require.NoError(t, err)
	assert.Equal(t, "Big Launch: T-minus 01d 02h 03m 07s", out)
}

func TestStatusReportExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := statusConfig(t, now.Add(-time.Second))

	out, err := statusReport(cfg, now, false)
	require.NoError(t, err)
	assert.Equal(t, "WE ARE LIVE!", out)
}

func TestStatusReportJSON(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := statusConfig(t, now.Add(90*time.Second))

	out, err := statusReport(cfg, now, true)
	require.NoError(t, err)

	var line statusLine
	require.NoError(t, json.Unmarshal([]byte(out), &line))
	assert.Equal(t, 1, line.Minutes)
	assert.Equal(t, 30, line.Seconds)
	assert.False(t, line.Expired)

	// Expired JSON omits unit values rather than emitting negatives.
	cfg = statusConfig(t, now.Add(-time.Hour))
	out, err = statusReport(cfg, now, true)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &line))
	assert.True(t, line.Expired)
	assert.Zero(t, line.Days)
	assert.Zero(t, line.Seconds)
}

func TestCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "status", "build"} {
		assert.True(t, names[want], "missing %s command", want)
	}
	assert.Equal(t, "launchday", rootCmd.Use)
}
