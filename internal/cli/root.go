package cli

import (
	"fmt"
	"io"

	"github.com/exgen-labs/exgen/internal/branding"
	"github.com/exgen-labs/exgen/internal/catalog"
	"github.com/exgen-labs/exgen/internal/config"
	"github.com/exgen-labs/exgen/internal/prompt"
	"github.com/exgen-labs/exgen/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// newDriver builds the prompt driver for interactive commands.
var newDriver = func() prompt.Driver { return prompt.NewSurveyDriver() }

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds Express + TypeScript + MySQL/Sequelize projects and
adds modules (controller, service, model, routes, interface, validation) to
existing ones. Templates come from a catalog: the built-in one, or a directory
given with --templates or the templates_dir setting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		newPrinter(rootCmd.ErrOrStderr()).Error("%v", err)
	}
	return err
}

func newPrinter(w io.Writer) *ui.Printer {
	return ui.New(w, ui.ColorAllowed(config.ColorEnabled()))
}

// openCatalog opens the catalog from the flag value, falling back to the
// templates_dir setting and then to the built-in catalog.
func openCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		dir = config.TemplatesDir()
	}
	cat, err := catalog.Open(dir, buildVersion)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	return cat, nil
}
