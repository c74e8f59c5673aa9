//nolint:testpackage // White-box tests exercise the unexported render path.
package site

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spencerwgreene/launchday/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Title = "Test Launch"
	cfg.Target = "2027-01-01T00:00:00Z"
	cfg.Message = "DONE"
	require.NoError(t, cfg.Validate())
	return cfg
}

func writeContent(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestBuildFullSite(t *testing.T) {
	content := t.TempDir()
	assets := t.TempDir()
	out := t.TempDir()

	writeContent(t, content, "blog/first.md", `---
title: First Post
description: hello world
date: 2026-01-02
---
# Heading

Some **bold** text.
`)
	writeContent(t, content, "blog/second.md", `---
title: Second Post
date: 2026-02-03
---
body
`)
	writeContent(t, content, "books/reading.md", "no frontmatter here\n")
	writeContent(t, assets, "css/site.css", "body{}\n")

	b, err := NewBuilder(testConfig(t), content, assets, "", out)
	require.NoError(t, err)

	manifest, err := b.Build(context.Background())
	require.NoError(t, err)

	// Every page the manifest claims exists on disk.
	for _, page := range manifest.Pages {
		_, err := os.Stat(filepath.Join(out, page))
		assert.NoError(t, err, "page %s", page)
	}
	assert.ElementsMatch(t, []string{
		"index.html",
		"blog.html",
		"books.html",
		"blog/first.html",
		"blog/second.html",
		"books/reading.html",
	}, manifest.Pages)
	assert.NotEmpty(t, manifest.BuildID)

	// Post page carries rendered markdown inside the base layout.
	first, err := os.ReadFile(filepath.Join(out, "blog", "first.html"))
	require.NoError(t, err)
	assert.Contains(t, string(first), "<h1>Heading</h1>")
	assert.Contains(t, string(first), "<strong>bold</strong>")
	assert.Contains(t, string(first), "<title>First Post</title>")

	// Listing is date-descending, newest first.
	listing, err := os.ReadFile(filepath.Join(out, "blog.html"))
	require.NoError(t, err)
	second := string(listing)
	assert.Less(t, strings.Index(second, "Second Post"), strings.Index(second, "First Post"))

	// Frontmatter-less page falls back to defaults.
	reading, err := os.ReadFile(filepath.Join(out, "books", "reading.html"))
	require.NoError(t, err)
	assert.Contains(t, string(reading), fallbackTitle)
	assert.Contains(t, string(reading), fallbackImage)

	// Assets mirrored.
	_, err = os.Stat(filepath.Join(out, "assets", "css", "site.css"))
	assert.NoError(t, err)

	// Manifest round-trips.
	var m Manifest
	data, err := os.ReadFile(filepath.Join(out, ManifestName))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, manifest.BuildID, m.BuildID)
}

func TestBuildIndexEmbedsCountdownSettings(t *testing.T) {
	out := t.TempDir()
	b, err := NewBuilder(testConfig(t), "", "", "", out)
	require.NoError(t, err)

	_, err = b.Build(context.Background())
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	page := string(index)

	// The four display slots and the container the terminal message
	// replaces.
	assert.Contains(t, page, `id="countdown-boxes"`)
	for _, slot := range []string{"days", "hours", "minutes", "seconds"} {
		assert.Contains(t, page, `id="`+slot+`"`)
	}
	assert.Contains(t, page, "2027-01-01T00:00:00Z")
	assert.Contains(t, page, "DONE")
}

func TestBuildCustomTemplateDirOverrides(t *testing.T) {
	tmpl := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpl, "index.html"),
		[]byte("<html><body>custom {{ .Title }}</body></html>"), 0o600))

	b, err := NewBuilder(testConfig(t), "", "", tmpl, out)
	require.NoError(t, err)
	_, err = b.Build(context.Background())
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "custom Test Launch")
}

func TestBuildFailsOnBadFrontmatter(t *testing.T) {
	content := t.TempDir()
	writeContent(t, content, "post.md", "---\ntitle: broken\n")

	b, err := NewBuilder(testConfig(t), content, "", "", t.TempDir())
	require.NoError(t, err)
	_, err = b.Build(context.Background())
	require.Error(t, err)
}
