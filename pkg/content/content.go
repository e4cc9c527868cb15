// Package content renders the embedded markdown resource pages (guides, examples) into sanitized HTML.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed pages/*.md
var pagesFS embed.FS

// ErrNotFound is returned for unknown page names
var ErrNotFound = errors.New("page not found")

// Page is a rendered resource page
type Page struct {
	Name  string
	Title string
	HTML  template.HTML
}

// Library renders pages from a filesystem of markdown files and caches the results
type Library struct {
	src    fs.FS
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu    sync.Mutex
	cache map[string]Page
}

// NewLibrary makes a library over the embedded pages
func NewLibrary() *Library {
	sub, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		panic(fmt.Sprintf("embedded pages: %v", err)) // embed pattern guarantees the dir
	}
	return NewLibraryFS(sub)
}

// NewLibraryFS makes a library over any filesystem with <name>.md files at its root
func NewLibraryFS(src fs.FS) *Library {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4")
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code")

	return &Library{
		src: src,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: policy,
		cache:  map[string]Page{},
	}
}

// Page returns the rendered page by name, e.g. "guides"
func (l *Library) Page(name string) (Page, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if p, ok := l.cache[name]; ok {
		return p, nil
	}

	if strings.ContainsAny(name, "/\\.") || name == "" {
		return Page{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	src, err := fs.ReadFile(l.src, name+".md")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return Page{}, fmt.Errorf("read page %s: %w", name, err)
	}

	body, err := l.Render(src)
	if err != nil {
		return Page{}, fmt.Errorf("render page %s: %w", name, err)
	}

	p := Page{Name: name, Title: title(src, name), HTML: body}
	l.cache[name] = p
	return p, nil
}

// Render converts markdown to sanitized HTML
func (l *Library) Render(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := l.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(l.policy.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitized above
}

// title takes the first level-one heading, falls back to the page name
func title(src []byte, name string) string {
	for _, line := range strings.Split(string(src), "\n") {
		if t, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return strings.TrimSpace(t)
		}
	}
	return name
}
