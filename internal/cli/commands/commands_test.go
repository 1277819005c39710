// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight-labs/fernsite/internal/export"
)

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist (output is a global flag on root, not local)
	flags := []string{"port", "watch", "content", "dev-open"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewExportCommand(t *testing.T) {
	cmd := NewExportCommand()

	assert.Equal(t, "export", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"out", "base-url", "minify", "content"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewContentCommand(t *testing.T) {
	cmd := NewContentCommand()

	assert.Equal(t, "content", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	subs := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subs[sub.Use] = true
	}
	assert.True(t, subs["list"], "content should have a list subcommand")
	assert.True(t, subs["validate"], "content should have a validate subcommand")
}

func TestNewDoctorCommand(t *testing.T) {
	cmd := NewDoctorCommand()

	assert.Equal(t, "doctor", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestExportCommandWritesSnapshot(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "dist")

	cmd := NewExportCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--out", outDir})

	require.NoError(t, cmd.Execute())

	for _, path := range []string{
		"index.html",
		filepath.Join("faq", "index.html"),
		"404.html",
		filepath.Join("static", "site.css"),
		filepath.Join("static", "favicon.svg"),
		"llms.txt",
	} {
		assert.FileExists(t, filepath.Join(outDir, path))
	}

	assert.Contains(t, buf.String(), "index.html")
	assert.Contains(t, buf.String(), "Exported")
}

func TestExportCommandMissingContentDir(t *testing.T) {
	cmd := NewExportCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--content", filepath.Join(t.TempDir(), "nope")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content directory does not exist")
}

func TestBuildExportOutput(t *testing.T) {
	m := &export.Manifest{
		OutDir: "dist",
		Artifacts: []export.Artifact{
			{Path: "index.html", Size: 100},
			{Path: "llms.txt", Size: 50},
		},
	}

	out := buildExportOutput(m)

	assert.Equal(t, "dist", out.OutDir)
	assert.Len(t, out.Files, 2)
	assert.Equal(t, int64(150), out.TotalBytes)
	assert.Equal(t, "index.html", out.Files[0].Path)
}

func TestContentListCommand(t *testing.T) {
	cmd := newContentListCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.Execute())

	// The embedded bundle ships three plans with USD prices.
	out := buf.String()
	assert.Contains(t, out, "Fernlight")
	assert.Contains(t, out, "Plus")
	assert.Contains(t, out, "$6.00")
	assert.Contains(t, out, "FAQ")
}

func TestContentValidateCommandEmbedded(t *testing.T) {
	cmd := newContentValidateCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Content is valid")
}

func TestContentValidateCommandReportsProblems(t *testing.T) {
	dir := writeContentDir(t, map[string]string{
		"site.yaml": "site:\n  name: Test\nhero:\n  headline: H\n  cta_label: C\nbanner:\n  message: M\n  cta_label: C\n",
	})

	cmd := newContentValidateCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--content", dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problems")
	assert.Contains(t, buf.String(), "signup_url")
}

// writeContentDir writes a complete minimal content directory, with files
// optionally overridden per test.
func writeContentDir(t *testing.T, overrides map[string]string) string {
	t.Helper()

	files := map[string]string{
		"site.yaml": `site:
  name: Test
  signup_url: https://example.com/start
banner:
  message: Still reading?
  cta_label: Start now
hero:
  headline: A headline
  cta_label: Start now
`,
		"faq.yaml": `faq:
  - id: first
    question: Is this a question?
    answer: It is.
`,
		"plans.yaml": `plans:
  - id: solo
    name: Solo
    monthly: {cents: 500, currency: USD}
    yearly: {cents: 5000, currency: USD}
`,
		"testimonials.yaml": `testimonials:
  - quote: Works great.
    author: A. Tester
`,
	}
	for name, body := range overrides {
		files[name] = body
	}

	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}
