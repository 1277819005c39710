package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fernlight-labs/fernsite/internal/cli/config"
	"github.com/fernlight-labs/fernsite/internal/web"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port    int
	Watch   bool
	Content string
	DevOpen bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the marketing site server",
		Long: `Start the web server that renders the Fernlight marketing site.

Every page is rendered on the server. The sticky call-to-action banner,
FAQ search, and other interactions stream over server-sent events, so
no page ships a custom JavaScript bundle.

With --watch the server reloads the content bundle when its YAML files
change and tells connected browsers to refresh.`,
		Example: `  # Serve on the default port
  fernsite serve

  # Serve on a custom port with a content directory
  fernsite serve --port 3000 --content ./content

  # Reload content and refresh browsers on edit
  fernsite serve --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8080)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload content and refresh browsers on change")
	cmd.Flags().StringVar(&opts.Content, "content", "", "Content directory (default: embedded copy)")
	cmd.Flags().BoolVar(&opts.DevOpen, "dev-open", false, "Open the site in a browser after starting")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	// CLI flags override config file
	port := cfg.Server.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	watch := cfg.Server.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	contentDir := cfg.Site.ContentDir
	if opts.Content != "" {
		contentDir = opts.Content
	}

	store, err := openStore(contentDir)
	if err != nil {
		return err
	}

	serverCfg := web.Config{
		Content:       store,
		Port:          port,
		Watch:         watch,
		SessionSecret: sessionSecret(cfg, logger),
		Banner:        cfg.Banner.Controller(),
		IdleTTL:       cfg.Registry.IdleTTL,
		SweepInterval: cfg.Registry.SweepInterval,
		Logger:        logger,
	}

	server := web.NewServer(serverCfg)

	// Open browser if requested
	if opts.DevOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Serving %s on http://localhost:%d\n", store.Bundle().Site.Name, port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

// sessionSecret returns the configured session secret, minting a random one
// when none is set. A minted secret invalidates viewer cookies on restart, so
// deployments should set FERNSITE_SESSION_SECRET.
func sessionSecret(cfg *config.Config, logger *slog.Logger) string {
	if cfg.Server.SessionSecret != "" {
		return cfg.Server.SessionSecret
	}
	logger.Warn("no session secret configured, viewer cookies will reset on restart")
	return uuid.NewString()
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
