package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/exgen-labs/exgen/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogTemplates string

func init() {
	catalogShowCmd.Flags().StringVar(&catalogTemplates, "templates", "", "Catalog directory (default: built-in templates)")
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, validate and export template catalogs",
	Long: `A catalog is a directory of templates plus a catalog.yaml manifest that
lists the project files, the directories to create and the modules every new
project starts with. The built-in catalog can be exported, edited and used
with --templates or the templates_dir setting.`,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the files and modules of a catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog(catalogTemplates)
		if err != nil {
			return err
		}
		m := cat.Manifest

		out := cmd.OutOrStdout()
		newPrinter(out).Title("%s %s", m.Name, m.Version)
		if m.Description != "" {
			fmt.Fprintln(out, m.Description)
		}
		fmt.Fprintf(out, "Source: %s\n\n", cat.Source)

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "OUTPUT\tTEMPLATE\tCONDITION")
		for _, f := range m.Files {
			fmt.Fprintf(w, "%s\t%s\t%s\n", f.Output, f.Template, gateString(f.Gate))
		}
		for _, mod := range m.Modules {
			set := mod.Set
			if set == "" {
				set = m.ModuleSetDir()
			}
			fmt.Fprintf(w, "src/modules/%s/\t%s/\t%s\n", mod.Name, set, gateString(mod.Gate))
		}
		return w.Flush()
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a catalog directory",
	Long: `Check a catalog's manifest against the catalog schema, its version
constraint against this binary and that every referenced template exists.
Without a directory the built-in catalog is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}

		out := newPrinter(cmd.OutOrStdout())
		cat, err := catalog.Open(dir, buildVersion)
		var invalid *catalog.InvalidError
		if errors.As(err, &invalid) {
			for _, issue := range invalid.Issues {
				out.Error("%s", issue)
			}
			return fmt.Errorf("%s: %d schema issue(s)", invalid.Source, len(invalid.Issues))
		}
		if err != nil {
			return err
		}

		missing := cat.MissingTemplates()
		for _, id := range missing {
			out.Error("missing template %s", id)
		}
		if len(missing) > 0 {
			return fmt.Errorf("%s: %d missing template(s)", cat.Source, len(missing))
		}

		out.Success("%s %s is valid (%s, %s)", cat.Manifest.Name, cat.Manifest.Version,
			plural(len(cat.Manifest.Files), "file"), plural(len(cat.Manifest.Modules), "module"))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Copy the built-in catalog to a directory for editing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		if _, err := os.Stat(dir); err == nil {
			return fmt.Errorf("export target %s already exists", dir)
		}
		if err := os.CopyFS(dir, catalog.Default()); err != nil {
			return fmt.Errorf("exporting catalog: %w", err)
		}
		out := newPrinter(cmd.OutOrStdout())
		out.Success("Exported the built-in catalog to %s", dir)
		out.Item("use it with: %s config set templates_dir %s", rootCmd.Name(), dir)
		return nil
	},
}

func gateString(g catalog.Gate) string {
	var parts []string
	if g.When != "" {
		parts = append(parts, "when "+g.When)
	}
	if g.Unless != "" {
		parts = append(parts, "unless "+g.Unless)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
