// Package site renders the launch page and its companion content into a
// static directory: markdown posts through HTML templates, a countdown
// index page carrying the same target instant the TUI counts down to,
// section listings, and a copied asset tree.
package site

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"

	"github.com/spencerwgreene/launchday/internal/config"
)

// Post is the metadata of one rendered content page, as listed on its
// section page.
type Post struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Section     string `json:"section"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Date        string `json:"date"`
}

// Builder renders the site in one pass.
type Builder struct {
	ContentDir  string
	AssetsDir   string
	TemplateDir string
	OutDir      string

	cfg       config.Config
	templates *templateSet
	markdown  func([]byte) ([]byte, error)
}

// NewBuilder wires a builder for the given config and directories. Any of
// ContentDir/AssetsDir/TemplateDir may be empty; the countdown index is
// always generated.
func NewBuilder(cfg config.Config, contentDir, assetsDir, templateDir, outDir string) (*Builder, error) {
	ts, err := loadTemplates(templateDir)
	if err != nil {
		return nil, err
	}
	return &Builder{
		ContentDir:  contentDir,
		AssetsDir:   assetsDir,
		TemplateDir: templateDir,
		OutDir:      outDir,
		cfg:         cfg,
		templates:   ts,
		markdown:    renderMarkdown,
	}, nil
}

// Build renders everything into OutDir. A failing page aborts the build.
func (b *Builder) Build(ctx context.Context) (*Manifest, error) {
	if err := os.MkdirAll(b.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	manifest := NewManifest()

	if b.ContentDir != "" {
		sections, err := b.renderContent(ctx, manifest)
		if err != nil {
			return nil, err
		}
		if err := b.renderListings(sections, manifest); err != nil {
			return nil, err
		}
	}

	if err := b.renderIndex(manifest); err != nil {
		return nil, err
	}

	if b.AssetsDir != "" {
		if err := b.copyAssets(); err != nil {
			return nil, err
		}
	}

	if err := manifest.Write(b.OutDir); err != nil {
		return nil, err
	}
	logrus.Infof("site generated in %s (%d pages, build %s)", b.OutDir, len(manifest.Pages), manifest.BuildID)
	return manifest, nil
}

// renderContent walks ContentDir for markdown and renders each page,
// returning posts grouped by top-level section.
func (b *Builder) renderContent(ctx context.Context, manifest *Manifest) (map[string][]Post, error) {
	files, err := collectMarkdown(ctx, b.ContentDir)
	if err != nil {
		return nil, err
	}

	sections := make(map[string][]Post)
	for _, path := range files {
		post, relHTML, err := b.renderPage(path)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", path, err)
		}
		if post.Section != "" {
			sections[post.Section] = append(sections[post.Section], post)
		}
		manifest.AddPage(relHTML)
	}
	return sections, nil
}

// renderPage renders one markdown file to its mirrored .html output path
// and returns the post metadata plus the page path relative to OutDir.
func (b *Builder) renderPage(path string) (Post, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, "", err
	}

	fm, body, err := SplitFrontmatter(raw)
	if err != nil {
		return Post{}, "", err
	}

	htmlBody, err := b.markdown(body)
	if err != nil {
		return Post{}, "", err
	}

	rel, err := filepath.Rel(b.ContentDir, path)
	if err != nil {
		return Post{}, "", err
	}
	slug := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	section := ""
	if dir := filepath.Dir(rel); dir != "." {
		// Only the top-level directory names a section.
		section = strings.Split(filepath.ToSlash(dir), "/")[0]
	}

	relHTML := strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
	outPath := filepath.Join(b.OutDir, relHTML)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return Post{}, "", err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return Post{}, "", err
	}
	defer out.Close()

	data := postData{
		Title:       fm.Title,
		Description: fm.Description,
		Image:       fm.Image,
		Date:        fm.Date,
		Content:     template.HTML(htmlBody), //nolint:gosec // Site author's own markdown.
	}
	if err := b.templates.renderPost(out, data); err != nil {
		return Post{}, "", err
	}

	return Post{
		Title:       fm.Title,
		Slug:        slug,
		Section:     section,
		Description: fm.Description,
		Image:       fm.Image,
		Date:        fm.Date,
	}, relHTML, nil
}

// renderListings writes one listing page per content section.
func (b *Builder) renderListings(sections map[string][]Post, manifest *Manifest) error {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		posts := sections[name]
		sort.Slice(posts, func(i, j int) bool { return posts[i].Date > posts[j].Date })

		outPath := filepath.Join(b.OutDir, name+".html")
		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		data := listingData{
			Title:       strings.Title(name) + " Listing", //nolint:staticcheck // Section names are ASCII dir names.
			Description: b.cfg.Title,
			Posts:       posts,
		}
		if err := b.templates.renderListing(out, data); err != nil {
			out.Close()
			return fmt.Errorf("rendering listing %s: %w", name, err)
		}
		if err := out.Close(); err != nil {
			return err
		}
		manifest.AddPage(name + ".html")
	}
	return nil
}

// pageSettings is the JSON blob embedded in the countdown index page; the
// page script reads the same target instant and collaborator settings the
// TUI uses.
type pageSettings struct {
	Target    string                 `json:"target"`
	Message   string                 `json:"message"`
	Audio     string                 `json:"audio,omitempty"`
	Loop      bool                   `json:"loop"`
	Particles config.ParticlesConfig `json:"particles"`
}

// renderIndex writes the countdown front page.
func (b *Builder) renderIndex(manifest *Manifest) error {
	settings, err := json.Marshal(pageSettings{
		Target:    b.cfg.TargetTime().Format("2006-01-02T15:04:05Z07:00"),
		Message:   b.cfg.Message,
		Audio:     b.cfg.Audio.File,
		Loop:      b.cfg.Audio.Loop,
		Particles: b.cfg.Particles,
	})
	if err != nil {
		return err
	}

	out, err := os.Create(filepath.Join(b.OutDir, "index.html"))
	if err != nil {
		return err
	}
	defer out.Close()

	data := indexData{
		Title:    b.cfg.Title,
		Settings: template.JS(settings), //nolint:gosec // json.Marshal output.
	}
	if err := b.templates.renderIndex(out, data); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	manifest.AddPage("index.html")
	return nil
}

// copyAssets mirrors AssetsDir into OutDir/assets.
func (b *Builder) copyAssets() error {
	dest := filepath.Join(b.OutDir, "assets")
	return filepath.WalkDir(b.AssetsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(b.AssetsDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// collectMarkdown walks root and returns every .md file, sorted for
// deterministic build order.
func collectMarkdown(ctx context.Context, root string) ([]string, error) {
	var (
		mu    sync.Mutex
		files []string
	)
	// fastwalk runs the callback from multiple workers.
	conf := fastwalk.DefaultConfig
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries.
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			mu.Lock()
			files = append(files, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
