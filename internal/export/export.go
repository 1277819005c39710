// Package export writes a static snapshot of the site for CDN deployment.
//
// The snapshot renders through the same components as the live server, with
// the banner in its initial hidden state and every server-backed feed left
// out: the static pages carry no scroll feed, no search box, and no reload
// stream. Alongside the HTML it ships the bundled stylesheet, the favicon,
// and llms.txt, a Markdown mirror of the landing page for crawlers and LLM
// agents.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/components"
	"github.com/fernlight-labs/fernsite/internal/web/resources"
)

// Options controls a snapshot run.
type Options struct {
	// OutDir is the directory the snapshot is written into. It is created
	// if missing; existing files are overwritten, never cleaned.
	OutDir string

	// BaseURL is the canonical site URL recorded in llms.txt. Empty falls
	// back to the bundle's site URL.
	BaseURL string

	// Minify shrinks the bundled stylesheet.
	Minify bool
}

// Artifact is one written file.
type Artifact struct {
	// Path is relative to the output directory, always slash-separated.
	Path string

	// Size is the written size in bytes.
	Size int64
}

// Manifest lists everything a snapshot wrote.
type Manifest struct {
	OutDir    string
	Artifacts []Artifact
}

// TotalSize sums the artifact sizes.
func (m *Manifest) TotalSize() int64 {
	var total int64
	for _, a := range m.Artifacts {
		total += a.Size
	}
	return total
}

// Run writes a full snapshot of the bundle and reports what it wrote. The
// manifest lists artifacts in path order.
func Run(b *content.Bundle, opts Options) (*Manifest, error) {
	static := components.PageOptions{}

	index, err := components.RenderString(components.LandingPage(b, static))
	if err != nil {
		return nil, fmt.Errorf("render landing page: %w", err)
	}
	faq, err := components.RenderString(components.FAQPage(b, static))
	if err != nil {
		return nil, fmt.Errorf("render faq page: %w", err)
	}
	notFound, err := components.RenderString(components.NotFoundPage(b.Site))
	if err != nil {
		return nil, fmt.Errorf("render 404 page: %w", err)
	}

	stylesheet, err := resources.BundleStylesheet(opts.Minify)
	if err != nil {
		return nil, fmt.Errorf("bundle stylesheet: %w", err)
	}

	llms, err := llmsText(b, index, opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("llms.txt: %w", err)
	}

	files := map[string][]byte{
		"index.html":         []byte(index),
		"faq/index.html":     []byte(faq),
		"404.html":           []byte(notFound),
		"static/site.css":    []byte(stylesheet),
		"static/favicon.svg": resources.Favicon(),
		"llms.txt":           []byte(llms),
	}

	m := &Manifest{OutDir: opts.OutDir}
	for rel, data := range files {
		fpath := filepath.Join(opts.OutDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(fpath), 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", filepath.Dir(fpath), err)
		}
		if err := os.WriteFile(fpath, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", rel, err)
		}
		m.Artifacts = append(m.Artifacts, Artifact{Path: rel, Size: int64(len(data))})
	}

	sort.Slice(m.Artifacts, func(i, j int) bool {
		return m.Artifacts[i].Path < m.Artifacts[j].Path
	})
	return m, nil
}

// llmsText converts the landing page to Markdown and prefixes it with site
// metadata.
func llmsText(b *content.Bundle, indexHTML, baseURL string) (string, error) {
	if baseURL == "" {
		baseURL = b.Site.BaseURL
	}

	main, err := extractMain(indexHTML)
	if err != nil {
		return "", err
	}

	md, err := htmltomarkdown.ConvertString(main)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# " + b.Site.Name + "\n\n")
	sb.WriteString("> " + b.Site.Tagline + "\n\n")
	sb.WriteString("Site: " + baseURL + "\n\n")
	sb.WriteString(strings.TrimSpace(md))
	sb.WriteString("\n")
	return sb.String(), nil
}

// extractMain returns the serialized <main> element of the page, so chrome
// like the nav and footer stays out of the Markdown mirror.
func extractMain(pageHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	main := findElement(doc, "main")
	if main == nil {
		return "", fmt.Errorf("no <main> element in page")
	}

	var sb strings.Builder
	if err := html.Render(&sb, main); err != nil {
		return "", fmt.Errorf("render <main>: %w", err)
	}
	return sb.String(), nil
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
