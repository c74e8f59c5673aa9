package site

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//nolint:gochecknoglobals // Shared converter, built once.
var (
	markdownOnce sync.Once
	markdownInst goldmark.Markdown
)

func converter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInst = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		)
	})
	return markdownInst
}

// renderMarkdown converts a markdown body to HTML. Raw HTML passes through
// unchanged; content is the site author's own.
func renderMarkdown(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := converter().Convert(body, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
