package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fernlight-labs/fernsite/internal/cli/config"
	"github.com/fernlight-labs/fernsite/internal/cli/output"
	"github.com/fernlight-labs/fernsite/internal/content"
)

// NewContentCommand creates the content command group.
func NewContentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and validate the content bundle",
		Long: `Work with the YAML content bundle that holds the site copy.

Without --content the commands operate on the copy embedded in the
binary, which is what the server falls back to when no content
directory is configured.`,
	}

	cmd.AddCommand(newContentListCommand())
	cmd.AddCommand(newContentValidateCommand())

	return cmd
}

func newContentListCommand() *cobra.Command {
	var contentDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans, FAQ entries, and testimonials",
		Example: `  # List the embedded content
  fernsite content list

  # List a content directory as JSON
  fernsite content list --content ./content --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runContentList(cmd, contentDir)
		},
	}

	cmd.Flags().StringVar(&contentDir, "content", "", "Content directory (default: embedded copy)")

	return cmd
}

func newContentValidateCommand() *cobra.Command {
	var contentDir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the content bundle for problems",
		Long: `Report every problem in the content bundle instead of stopping at the
first one. Exits non-zero when the bundle is invalid, so it slots into
CI ahead of a deploy.`,
		Example: `  # Validate a content directory
  fernsite content validate --content ./content`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runContentValidate(cmd, contentDir)
		},
	}

	cmd.Flags().StringVar(&contentDir, "content", "", "Content directory (default: embedded copy)")

	return cmd
}

// contentListOutput is the JSON output for content list.
type contentListOutput struct {
	Site         siteInfo          `json:"site"`
	Plans        []planInfo        `json:"plans"`
	FAQ          []faqInfo         `json:"faq"`
	Testimonials []testimonialInfo `json:"testimonials"`
	FeatureCount int               `json:"feature_count"`
}

type siteInfo struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	BaseURL string `json:"base_url"`
}

type planInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Monthly  string `json:"monthly"`
	Yearly   string `json:"yearly"`
	Featured bool   `json:"featured"`
}

type faqInfo struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Tags     []string `json:"tags,omitempty"`
}

type testimonialInfo struct {
	Author string `json:"author"`
	Role   string `json:"role"`
}

func runContentList(cmd *cobra.Command, contentDir string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if contentDir == "" {
		contentDir = cfg.Site.ContentDir
	}

	store, err := openStore(contentDir)
	if err != nil {
		return err
	}
	b := store.Bundle()

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(buildContentListOutput(b))
	}
	return renderContentListText(r, b)
}

func buildContentListOutput(b *content.Bundle) contentListOutput {
	out := contentListOutput{
		Site: siteInfo{
			Name:    b.Site.Name,
			Tagline: b.Site.Tagline,
			BaseURL: b.Site.BaseURL,
		},
		Plans:        make([]planInfo, 0, len(b.Plans)),
		FAQ:          make([]faqInfo, 0, len(b.FAQ)),
		Testimonials: make([]testimonialInfo, 0, len(b.Testimonials)),
		FeatureCount: len(b.Features),
	}

	for _, p := range b.Plans {
		out.Plans = append(out.Plans, planInfo{
			ID:       p.ID,
			Name:     p.Name,
			Monthly:  p.Monthly.Format(),
			Yearly:   p.Yearly.Format(),
			Featured: p.Featured,
		})
	}
	for _, e := range b.FAQ {
		out.FAQ = append(out.FAQ, faqInfo{ID: e.ID, Question: e.Question, Tags: e.Tags})
	}
	for _, tm := range b.Testimonials {
		out.Testimonials = append(out.Testimonials, testimonialInfo{Author: tm.Author, Role: tm.Role})
	}

	return out
}

func renderContentListText(r *output.Renderer, b *content.Bundle) error {
	styles := r.Styles()

	r.Header(1, b.Site.Name)
	r.Muted(b.Site.Tagline)
	r.Println("")

	r.Header(2, fmt.Sprintf("Plans (%d)", len(b.Plans)))
	pt := table.NewWriter()
	pt.SetOutputMirror(r.Writer())
	pt.SetStyle(table.StyleLight)
	pt.AppendHeader(table.Row{"ID", "Name", "Monthly", "Yearly", "Featured"})
	for _, p := range b.Plans {
		featured := ""
		if p.Featured {
			featured = styles.StatusSuccess.String()
		}
		pt.AppendRow(table.Row{p.ID, p.Name, p.Monthly.Format(), p.Yearly.Format(), featured})
	}
	pt.Render()
	r.Println("")

	r.Header(2, fmt.Sprintf("FAQ (%d)", len(b.FAQ)))
	ft := table.NewWriter()
	ft.SetOutputMirror(r.Writer())
	ft.SetStyle(table.StyleLight)
	ft.AppendHeader(table.Row{"ID", "Question", "Tags"})
	for _, e := range b.FAQ {
		ft.AppendRow(table.Row{e.ID, e.Question, strings.Join(e.Tags, ", ")})
	}
	ft.Render()
	r.Println("")

	r.Header(2, fmt.Sprintf("Testimonials (%d)", len(b.Testimonials)))
	tt := table.NewWriter()
	tt.SetOutputMirror(r.Writer())
	tt.SetStyle(table.StyleLight)
	tt.AppendHeader(table.Row{"Author", "Role"})
	for _, tm := range b.Testimonials {
		tt.AppendRow(table.Row{tm.Author, tm.Role})
	}
	tt.Render()

	return nil
}

// contentValidateOutput is the JSON output for content validate.
type contentValidateOutput struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems"`
}

func runContentValidate(cmd *cobra.Command, contentDir string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if contentDir == "" {
		contentDir = cfg.Site.ContentDir
	}
	if err := config.ValidateContentDir(contentDir); err != nil {
		return err
	}

	b, err := content.DecodeDir(contentDir)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	problems := b.Problems()

	if r.EffectiveMode() == output.ModeJSON {
		out := contentValidateOutput{Valid: len(problems) == 0, Problems: problems}
		if out.Problems == nil {
			out.Problems = []string{}
		}
		if err := r.JSON(out); err != nil {
			return err
		}
		if len(problems) > 0 {
			return fmt.Errorf("content has %d problems", len(problems))
		}
		return nil
	}

	if len(problems) == 0 {
		r.Success(fmt.Sprintf("Content is valid (%d plans, %d FAQ entries, %d testimonials)",
			len(b.Plans), len(b.FAQ), len(b.Testimonials)))
		return nil
	}

	for _, p := range problems {
		r.StatusLine(false, p)
	}
	return fmt.Errorf("content has %d problems", len(problems))
}
