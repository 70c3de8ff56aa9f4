// Package render produces a static rendition of a content document: an
// index.html page plus a theme stylesheet carrying the color slots.
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/style"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// File names written by WriteDir.
const (
	IndexFile      = "index.html"
	StylesheetFile = "theme.css"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Site is a rendered document.
type Site struct {
	HTML []byte
	CSS  []byte
}

// Renderer turns documents into a Site. It is safe for concurrent use.
type Renderer struct {
	page     *template.Template
	sheet    *texttemplate.Template
	markdown goldmark.Markdown
	logger   ports.Logger
}

type pageData struct {
	Doc             content.Document
	Bio             template.HTML
	ContactHref     string
	ImageBackground bool
	StylesheetHref  string
}

type sheetData struct {
	Variables      string
	ImageURL       string
	OverlayOpacity string
}

// New parses the embedded templates.
func New(logger ports.Logger) (*Renderer, error) {
	funcs := template.FuncMap{"join": strings.Join}

	page, err := template.New("index.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	sheet, err := texttemplate.New("theme.css.tmpl").ParseFS(templateFS, "templates/theme.css.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)

	if logger != nil {
		logger = logger.With("component", "render")
	}

	return &Renderer{page: page, sheet: sheet, markdown: md, logger: logger}, nil
}

// Render produces the page and stylesheet for doc.
func (r *Renderer) Render(doc content.Document) (Site, error) {
	bio, err := r.Markdown(doc.About.Bio)
	if err != nil {
		return Site{}, err
	}

	var html bytes.Buffer
	err = r.page.Execute(&html, pageData{
		Doc:             doc,
		Bio:             bio,
		ContactHref:     ContactHref(doc),
		ImageBackground: imageURL(doc.UI.Background) != "",
		StylesheetHref:  StylesheetFile,
	})
	if err != nil {
		return Site{}, fmt.Errorf("render page: %w", err)
	}

	css, err := r.Stylesheet(doc.UI)
	if err != nil {
		return Site{}, err
	}

	return Site{HTML: html.Bytes(), CSS: css}, nil
}

// Stylesheet renders the theme variables and background layers of ui.
func (r *Renderer) Stylesheet(ui content.UIConfig) ([]byte, error) {
	root := style.NewRoot()
	theme.Apply(root, ui.Theme)

	var css bytes.Buffer
	err := r.sheet.Execute(&css, sheetData{
		Variables:      root.CSS(),
		ImageURL:       cssString(imageURL(ui.Background)),
		OverlayOpacity: strconv.FormatFloat(clamp01(ui.Background.OverlayOpacity), 'f', -1, 64),
	})
	if err != nil {
		return nil, fmt.Errorf("render stylesheet: %w", err)
	}
	return css.Bytes(), nil
}

// Markdown converts source to HTML. Raw HTML in source is not passed
// through.
func (r *Renderer) Markdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// WriteDir renders doc into dir, creating it when needed.
func (r *Renderer) WriteDir(ctx context.Context, dir string, doc content.Document) ([]string, error) {
	site, err := r.Render(doc)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", dir, err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{name: IndexFile, data: site.HTML},
		{name: StylesheetFile, data: site.CSS},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if r.logger != nil {
		r.logger.Info(ctx, "site rendered", "dir", dir, "files", len(written))
	}
	return written, nil
}

// ContactHref is the contact button target: the custom link, or a mailto:
// of the profile email when no link is set.
func ContactHref(doc content.Document) string {
	if doc.UI.Contact.Link != "" {
		return doc.UI.Contact.Link
	}
	return "mailto:" + doc.About.Email
}

func imageURL(bg content.BackgroundConfig) string {
	if bg.Type != content.BackgroundImage {
		return ""
	}
	return strings.TrimSpace(bg.Value)
}

// cssString escapes s for use inside a double-quoted CSS string.
func cssString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case '\n', '\r', '\f':
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
