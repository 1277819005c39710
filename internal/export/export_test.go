package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight-labs/fernsite/internal/content"
)

func exportDefaults(t *testing.T, opts Options) *Manifest {
	t.Helper()

	b, err := content.LoadDefault()
	require.NoError(t, err)

	m, err := Run(b, opts)
	require.NoError(t, err)
	return m
}

func TestRunWritesSnapshot(t *testing.T) {
	dir := t.TempDir()
	m := exportDefaults(t, Options{OutDir: dir})

	wantPaths := []string{
		"404.html",
		"faq/index.html",
		"index.html",
		"llms.txt",
		"static/favicon.svg",
		"static/site.css",
	}
	var gotPaths []string
	for _, a := range m.Artifacts {
		gotPaths = append(gotPaths, a.Path)
	}
	assert.Equal(t, wantPaths, gotPaths, "manifest should list artifacts in path order")

	for _, a := range m.Artifacts {
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(a.Path)))
		require.NoError(t, err, "artifact %s should exist", a.Path)
		assert.Equal(t, info.Size(), a.Size, "manifest size for %s", a.Path)
		assert.Positive(t, a.Size, "artifact %s should not be empty", a.Path)
	}

	assert.Equal(t, dir, m.OutDir)
	assert.Equal(t, m.TotalSize(), func() int64 {
		var sum int64
		for _, a := range m.Artifacts {
			sum += a.Size
		}
		return sum
	}())
}

func TestRunSnapshotIsInert(t *testing.T) {
	dir := t.TempDir()
	exportDefaults(t, Options{OutDir: dir})

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)

	html := string(index)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "cta-banner is-hidden", "exported banner starts hidden")
	assert.NotContains(t, html, "data-on-scroll", "no scroll feed without a server")
	assert.NotContains(t, html, "data-init", "no reload feed without a server")

	faq, err := os.ReadFile(filepath.Join(dir, "faq", "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(faq), `type="search"`, "no live search without a server")
}

func TestRunLlmsText(t *testing.T) {
	dir := t.TempDir()
	exportDefaults(t, Options{OutDir: dir})

	data, err := os.ReadFile(filepath.Join(dir, "llms.txt"))
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# Fernlight\n"))
	assert.Contains(t, text, "> Focus that grows back.")
	assert.Contains(t, text, "Site: https://fernlight.app")
	assert.Contains(t, text, "Wind down your screen time")
	assert.NotContains(t, text, "<main", "llms.txt should be Markdown, not HTML")
}

func TestRunBaseURLOverride(t *testing.T) {
	dir := t.TempDir()
	exportDefaults(t, Options{OutDir: dir, BaseURL: "https://staging.fernlight.app"})

	data, err := os.ReadFile(filepath.Join(dir, "llms.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Site: https://staging.fernlight.app")
}

func TestRunMinifyShrinksStylesheet(t *testing.T) {
	plainDir := t.TempDir()
	minDir := t.TempDir()

	exportDefaults(t, Options{OutDir: plainDir})
	exportDefaults(t, Options{OutDir: minDir, Minify: true})

	plain, err := os.ReadFile(filepath.Join(plainDir, "static", "site.css"))
	require.NoError(t, err)
	minified, err := os.ReadFile(filepath.Join(minDir, "static", "site.css"))
	require.NoError(t, err)

	assert.Less(t, len(minified), len(plain))
}

func TestExtractMain(t *testing.T) {
	page := `<!DOCTYPE html><html><body><nav>chrome</nav><main><h1>Hi</h1></main><footer>legal</footer></body></html>`

	got, err := extractMain(page)
	require.NoError(t, err)

	assert.Contains(t, got, "<h1>Hi</h1>")
	assert.NotContains(t, got, "chrome")
	assert.NotContains(t, got, "legal")
}

func TestExtractMainMissing(t *testing.T) {
	_, err := extractMain("<html><body><p>bare</p></body></html>")
	assert.Error(t, err)
}
