package site

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// frontmatterDelim separates the YAML header from the markdown body.
var frontmatterDelim = []byte("---")

// Frontmatter is the YAML header of a content page.
type Frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Date        string `yaml:"date"`
}

// defaults applied when a page omits header fields, matching the site's
// historical fallbacks.
const (
	fallbackTitle       = "Untitled"
	fallbackDescription = "No description"
	fallbackImage       = "/assets/images/rubber-duck.jpg"
	fallbackDate        = "No date"
)

// SplitFrontmatter separates a `---`-delimited YAML header from the
// markdown body. Content without a header is returned whole with default
// metadata.
func SplitFrontmatter(content []byte) (Frontmatter, []byte, error) {
	fm := Frontmatter{
		Title:       fallbackTitle,
		Description: fallbackDescription,
		Image:       fallbackImage,
		Date:        fallbackDate,
	}

	trimmed := bytes.TrimLeft(content, "\r\n")
	if !bytes.HasPrefix(trimmed, frontmatterDelim) {
		return fm, content, nil
	}

	rest := trimmed[len(frontmatterDelim):]
	// The closing delimiter must start its own line.
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return fm, nil, fmt.Errorf("unterminated frontmatter block")
	}

	header := rest[:end]
	body := rest[end+1+len(frontmatterDelim):]

	var parsed Frontmatter
	if err := yaml.Unmarshal(header, &parsed); err != nil {
		return fm, nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	if parsed.Title != "" {
		fm.Title = parsed.Title
	}
	if parsed.Description != "" {
		fm.Description = parsed.Description
	}
	if parsed.Image != "" {
		fm.Image = parsed.Image
	}
	if parsed.Date != "" {
		fm.Date = parsed.Date
	}
	return fm, bytes.TrimLeft(body, "\r\n"), nil
}
