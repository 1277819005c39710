package commands

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight-labs/fernsite/internal/cli/config"
)

func TestCheckPort(t *testing.T) {
	t.Run("free port passes", func(t *testing.T) {
		ln, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		port := ln.Addr().(*net.TCPAddr).Port
		require.NoError(t, ln.Close())

		check := checkPort(port)
		assert.Equal(t, "pass", check.Status)
	})

	t.Run("busy port warns", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer func() { _ = ln.Close() }()
		port := ln.Addr().(*net.TCPAddr).Port

		check := checkPort(port)
		assert.Equal(t, "warn", check.Status)
		assert.Contains(t, check.Detail, "already in use")
	})
}

func TestCheckSessionSecret(t *testing.T) {
	cfg := config.Defaults()
	check := checkSessionSecret(cfg)
	assert.Equal(t, "warn", check.Status)

	cfg.Server.SessionSecret = "hunter2hunter2"
	check = checkSessionSecret(cfg)
	assert.Equal(t, "pass", check.Status)
}

func TestCheckExportDir(t *testing.T) {
	t.Run("missing dir passes", func(t *testing.T) {
		check := checkExportDir(filepath.Join(t.TempDir(), "dist"))
		assert.Equal(t, "pass", check.Status)
		assert.Contains(t, check.Detail, "will be created")
	})

	t.Run("existing dir passes", func(t *testing.T) {
		check := checkExportDir(t.TempDir())
		assert.Equal(t, "pass", check.Status)
	})

	t.Run("file errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dist")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		check := checkExportDir(path)
		assert.Equal(t, "error", check.Status)
		assert.Contains(t, check.Detail, "not a directory")
	})
}

func TestCheckContent(t *testing.T) {
	t.Run("embedded copy passes", func(t *testing.T) {
		check := checkContent(config.Defaults())
		assert.Equal(t, "pass", check.Status)
		assert.Contains(t, check.Detail, "embedded copy")
	})

	t.Run("missing dir errors", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Site.ContentDir = filepath.Join(t.TempDir(), "nope")

		check := checkContent(cfg)
		assert.Equal(t, "error", check.Status)
		assert.Contains(t, check.Detail, "does not exist")
	})

	t.Run("invalid bundle errors", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Site.ContentDir = writeContentDir(t, map[string]string{
			"site.yaml": "site:\n  name: Test\nhero:\n  headline: H\n  cta_label: C\nbanner:\n  message: M\n  cta_label: C\n",
		})

		check := checkContent(cfg)
		assert.Equal(t, "error", check.Status)
		assert.Contains(t, check.Detail, "problems")
	})

	t.Run("unreadable bundle errors", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Site.ContentDir = t.TempDir() // exists but has no content files

		check := checkContent(cfg)
		assert.Equal(t, "error", check.Status)
	})
}

func TestBuildDoctorOutput(t *testing.T) {
	doctorOutput := buildDoctorOutput(config.Defaults())

	assert.Len(t, doctorOutput.Checks, 5)
	total := doctorOutput.Passed + doctorOutput.Warned + doctorOutput.Failed
	assert.Equal(t, len(doctorOutput.Checks), total, "every check should be counted once")

	// Defaults have no session secret configured.
	assert.GreaterOrEqual(t, doctorOutput.Warned, 1)
	assert.Zero(t, doctorOutput.Failed)
}

func TestDoctorCommandRuns(t *testing.T) {
	cmd := NewDoctorCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Preflight")
	assert.Contains(t, out, "content bundle")
	assert.Contains(t, out, "session secret")
}
