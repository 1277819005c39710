package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fernlight-labs/fernsite/internal/cli/output"
	"github.com/fernlight-labs/fernsite/internal/export"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Out     string
	BaseURL string
	Minify  bool
	Content string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static snapshot of the site",
		Long: `Render every page to a directory of plain HTML and assets.

The snapshot has no live banner, no FAQ search, and no reload feed; it
is the site as a first-time visitor sees it, suitable for CDN hosting
or an outage fallback. An llms.txt summary of the landing page is
written alongside the pages.`,
		Example: `  # Export to the default directory
  fernsite export

  # Export a content directory to a custom location
  fernsite export --content ./content --out ./public

  # Export without minifying the stylesheet
  fernsite export --minify=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "", "Output directory (default: dist)")
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "Canonical site URL recorded in llms.txt")
	cmd.Flags().BoolVar(&opts.Minify, "minify", true, "Minify the exported stylesheet")
	cmd.Flags().StringVar(&opts.Content, "content", "", "Content directory (default: embedded copy)")

	return cmd
}

// exportOutput is the JSON output for the export command.
type exportOutput struct {
	OutDir     string           `json:"out_dir"`
	Files      []exportFileInfo `json:"files"`
	TotalBytes int64            `json:"total_bytes"`
}

type exportFileInfo struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// CLI flags override config file
	out := cfg.Export.Out
	if opts.Out != "" {
		out = opts.Out
	}

	baseURL := cfg.Export.BaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}

	minify := cfg.Export.Minify
	if cmd.Flags().Changed("minify") {
		minify = opts.Minify
	}

	contentDir := cfg.Site.ContentDir
	if opts.Content != "" {
		contentDir = opts.Content
	}

	store, err := openStore(contentDir)
	if err != nil {
		return err
	}

	manifest, err := export.Run(store.Bundle(), export.Options{
		OutDir:  out,
		BaseURL: baseURL,
		Minify:  minify,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(buildExportOutput(manifest))
	}
	return renderExportText(r, manifest)
}

func buildExportOutput(m *export.Manifest) exportOutput {
	files := make([]exportFileInfo, 0, len(m.Artifacts))
	for _, a := range m.Artifacts {
		files = append(files, exportFileInfo{Path: a.Path, Bytes: a.Size})
	}
	return exportOutput{
		OutDir:     m.OutDir,
		Files:      files,
		TotalBytes: m.TotalSize(),
	}
}

func renderExportText(r *output.Renderer, m *export.Manifest) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Bytes"})

	for _, a := range m.Artifacts {
		t.AppendRow(table.Row{a.Path, a.Size})
	}

	t.Render()
	_, _ = fmt.Fprintf(r.Writer(), "(%d files)\n", len(m.Artifacts))

	r.Success(fmt.Sprintf("Exported %d files (%d bytes) to %s", len(m.Artifacts), m.TotalSize(), m.OutDir))
	return nil
}
