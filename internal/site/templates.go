package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

//go:embed templates/*.html
var builtinTemplates embed.FS

// templateSet renders the three page shapes. Each page template is parsed
// together with the base layout so their "content" blocks do not collide.
type templateSet struct {
	post    *template.Template
	listing *template.Template
	index   *template.Template
}

// loadTemplates parses templates from dir, falling back to the embedded
// defaults for any file the dir does not provide.
func loadTemplates(dir string) (*templateSet, error) {
	read := func(name string) ([]byte, error) {
		if dir != "" {
			if b, err := os.ReadFile(filepath.Join(dir, name)); err == nil {
				return b, nil
			} else if !os.IsNotExist(err) {
				return nil, err
			}
		}
		return builtinTemplates.ReadFile("templates/" + name)
	}

	base, err := read("base.html")
	if err != nil {
		return nil, fmt.Errorf("loading base template: %w", err)
	}

	page := func(name string) (*template.Template, error) {
		body, err := read(name)
		if err != nil {
			return nil, fmt.Errorf("loading template %s: %w", name, err)
		}
		t, err := template.New("base.html").Parse(string(base))
		if err != nil {
			return nil, fmt.Errorf("parsing base template: %w", err)
		}
		if _, err := t.New(name).Parse(string(body)); err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		return t, nil
	}

	ts := &templateSet{}
	if ts.post, err = page("post.html"); err != nil {
		return nil, err
	}
	if ts.listing, err = page("listing.html"); err != nil {
		return nil, err
	}

	// The index stands alone; it does not extend the base layout.
	idx, err := read("index.html")
	if err != nil {
		return nil, fmt.Errorf("loading index template: %w", err)
	}
	if ts.index, err = template.New("index.html").Parse(string(idx)); err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	return ts, nil
}

func (ts *templateSet) renderPost(w io.Writer, data postData) error {
	return ts.post.ExecuteTemplate(w, "post.html", data)
}

func (ts *templateSet) renderListing(w io.Writer, data listingData) error {
	return ts.listing.ExecuteTemplate(w, "listing.html", data)
}

func (ts *templateSet) renderIndex(w io.Writer, data indexData) error {
	return ts.index.ExecuteTemplate(w, "index.html", data)
}

type postData struct {
	Title       string
	Description string
	Image       string
	Date        string
	Content     template.HTML //nolint:gosec // Markdown output rendered as-is, matching the original site.
}

type listingData struct {
	Title       string
	Description string
	Posts       []Post
}

type indexData struct {
	Title    string
	Settings template.JS //nolint:gosec // Marshalled by Build, not user HTML.
}
