package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fernlight-labs/fernsite/internal/cli/config"
	"github.com/fernlight-labs/fernsite/internal/cli/output"
	"github.com/fernlight-labs/fernsite/internal/content"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise the defaults.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Defaults()
}

// openStore opens the content bundle in dir, or the copy embedded in the
// binary when dir is empty.
func openStore(dir string) (*content.Store, error) {
	if err := config.ValidateContentDir(dir); err != nil {
		return nil, err
	}
	store, err := content.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return store, nil
}
