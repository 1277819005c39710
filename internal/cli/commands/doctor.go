package commands

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernlight-labs/fernsite/internal/cli/config"
	"github.com/fernlight-labs/fernsite/internal/cli/output"
	"github.com/fernlight-labs/fernsite/internal/content"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run preflight checks on the site setup",
		Long: `Check the current configuration and environment before serving.

The doctor command verifies:
- Which config file is in use
- The content bundle loads and validates
- The server port is free
- A session secret is configured
- The export directory is usable

All checks run even when one fails; doctor exits non-zero only when a
check reports an error.`,
		Example: `  # Run all checks
  fernsite doctor

  # Output as JSON
  fernsite doctor --output json`,
		RunE: runDoctor,
	}
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Checks []DoctorCheck `json:"checks"`
	Passed int           `json:"passed"`
	Warned int           `json:"warned"`
	Failed int           `json:"failed"`
}

// DoctorCheck represents a single check result.
type DoctorCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // "pass", "warn", "error"
	Detail string `json:"detail,omitempty"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	doctorOutput := buildDoctorOutput(cfg)

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(doctorOutput); err != nil {
			return err
		}
	} else {
		renderDoctorText(r, doctorOutput)
	}

	if doctorOutput.Failed > 0 {
		return fmt.Errorf("%d checks failed", doctorOutput.Failed)
	}
	return nil
}

func buildDoctorOutput(cfg *config.Config) *DoctorOutput {
	checks := []DoctorCheck{
		checkConfigFile(),
		checkContent(cfg),
		checkPort(cfg.Server.Port),
		checkSessionSecret(cfg),
		checkExportDir(cfg.Export.Out),
	}

	doctorOutput := &DoctorOutput{Checks: checks}
	for _, c := range checks {
		switch c.Status {
		case "pass":
			doctorOutput.Passed++
		case "warn":
			doctorOutput.Warned++
		case "error":
			doctorOutput.Failed++
		}
	}
	return doctorOutput
}

func checkConfigFile() DoctorCheck {
	check := DoctorCheck{Name: "config file", Status: "pass"}
	if path := config.GetConfigFileUsed(); path != "" {
		check.Detail = path
	} else {
		check.Detail = "none found, using defaults"
	}
	return check
}

func checkContent(cfg *config.Config) DoctorCheck {
	check := DoctorCheck{Name: "content bundle"}

	source := "embedded copy"
	if cfg.Site.ContentDir != "" {
		source = cfg.Site.ContentDir
		if _, err := os.Stat(cfg.Site.ContentDir); os.IsNotExist(err) {
			check.Status = "error"
			check.Detail = fmt.Sprintf("content directory does not exist: %s", cfg.Site.ContentDir)
			return check
		}
	}

	b, err := content.DecodeDir(cfg.Site.ContentDir)
	if err != nil {
		check.Status = "error"
		check.Detail = err.Error()
		return check
	}

	if problems := b.Problems(); len(problems) > 0 {
		check.Status = "error"
		check.Detail = fmt.Sprintf("%s has %d problems, run 'fernsite content validate'", source, len(problems))
		return check
	}

	check.Status = "pass"
	check.Detail = fmt.Sprintf("%s, %d plans, %d FAQ entries", source, len(b.Plans), len(b.FAQ))
	return check
}

func checkPort(port int) DoctorCheck {
	check := DoctorCheck{Name: "server port"}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		check.Status = "warn"
		check.Detail = fmt.Sprintf("port %d is already in use", port)
		return check
	}
	_ = ln.Close()

	check.Status = "pass"
	check.Detail = fmt.Sprintf("port %d is free", port)
	return check
}

func checkSessionSecret(cfg *config.Config) DoctorCheck {
	check := DoctorCheck{Name: "session secret"}
	if cfg.Server.SessionSecret == "" {
		check.Status = "warn"
		check.Detail = "not set, viewer cookies will reset on every restart"
		return check
	}
	check.Status = "pass"
	check.Detail = "configured"
	return check
}

func checkExportDir(dir string) DoctorCheck {
	check := DoctorCheck{Name: "export directory"}

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		check.Status = "pass"
		check.Detail = fmt.Sprintf("%s will be created on export", dir)
	case err != nil:
		check.Status = "error"
		check.Detail = err.Error()
	case !info.IsDir():
		check.Status = "error"
		check.Detail = fmt.Sprintf("%s exists and is not a directory", dir)
	default:
		check.Status = "pass"
		check.Detail = dir
	}
	return check
}

func renderDoctorText(r *output.Renderer, doctorOutput *DoctorOutput) {
	styles := r.Styles()

	r.Println("")
	r.Header(1, "Fernsite Preflight")
	r.Println("")

	for _, check := range doctorOutput.Checks {
		icon := styles.StatusSuccess.String()
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "error":
			icon = styles.StatusFailed.String()
		}

		line := fmt.Sprintf("%s %s", icon, check.Name)
		if check.Detail != "" {
			line += ": " + check.Detail
		}
		r.Println("  " + line)
	}

	r.Println("")
	summary := fmt.Sprintf("%d passed", doctorOutput.Passed)
	if doctorOutput.Warned > 0 {
		summary += fmt.Sprintf(", %d warnings", doctorOutput.Warned)
	}
	if doctorOutput.Failed > 0 {
		summary += fmt.Sprintf(", %d failed", doctorOutput.Failed)
	}
	r.Muted("  " + summary)
	r.Println("")
}
