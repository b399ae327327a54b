package cli

import (
	"github.com/exgen-labs/exgen/internal/config"
	"github.com/exgen-labs/exgen/internal/prompt"
	"github.com/exgen-labs/exgen/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	moduleKind       string
	moduleProjectDir string
	moduleTemplates  string
	moduleDryRun     bool
	moduleSet        []string
	moduleValues     string
)

func init() {
	generateModuleCmd.Flags().StringVarP(&moduleKind, "kind", "k", "", "Files to generate: full, controller, service, model, routes, interface or validation")
	generateModuleCmd.Flags().StringVar(&moduleProjectDir, "project-dir", ".", "Project root (must contain package.json)")
	generateModuleCmd.Flags().StringVar(&moduleTemplates, "templates", "", "Catalog directory (default: built-in templates)")
	generateModuleCmd.Flags().BoolVar(&moduleDryRun, "dry-run", false, "Show the files that would be created without writing")
	generateModuleCmd.Flags().StringArrayVar(&moduleSet, "set", nil, "Extra template variable as key=value (repeatable)")
	generateModuleCmd.Flags().StringVar(&moduleValues, "values", "", "YAML file of extra template variables")
	rootCmd.AddCommand(generateModuleCmd)
}

var generateModuleCmd = &cobra.Command{
	Use:     "generate:module [name]",
	Aliases: []string{"module"},
	Short:   "Add a module to an existing project",
	Long: `Generate module files into src/modules/<name> of an existing project.

The file selection comes from --kind, then the default_kind setting, and is
asked interactively when neither is set. An existing module directory is
overwritten.

Examples:
  exgen generate:module order
  exgen generate:module order --kind service
  exgen module invoice --project-dir ./shop-api --set author=ops`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := templateVars(moduleValues, moduleSet)
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			name, err = prompt.AskModuleName(cmd.Context(), newDriver())
			if err != nil {
				return err
			}
		}
		if err := scaffold.ValidateModuleName(name); err != nil {
			return err
		}

		selection := moduleKind
		if selection == "" {
			selection = config.DefaultKind()
		}
		if selection == "" {
			selection, err = prompt.AskModuleKind(cmd.Context(), newDriver(), scaffold.SelectionFull)
			if err != nil {
				return err
			}
		}
		kinds, err := scaffold.ParseSelection(selection)
		if err != nil {
			return err
		}

		cat, err := openCatalog(moduleTemplates)
		if err != nil {
			return err
		}

		asm := scaffold.New(cat.ModuleStore(""), scaffold.DiskSink{DryRun: moduleDryRun})
		result, err := asm.GenerateInProject(moduleProjectDir, scaffold.ModuleRequest{
			Name:  name,
			Kinds: kinds,
			Vars:  vars,
		})
		if err != nil {
			if result != nil {
				printPartial(newPrinter(cmd.ErrOrStderr()), result.OutputDir, result.Files)
			}
			return err
		}

		out := newPrinter(cmd.OutOrStdout())
		errOut := newPrinter(cmd.ErrOrStderr())
		if result.Existed {
			errOut.Warn("module directory %s already exists; files were overwritten", result.OutputDir)
		}
		out.Title("%s module (%s)", name, selection)
		printFiles(out, result.Files, moduleDryRun)
		printWarnings(errOut, result.Warnings)

		if moduleDryRun {
			out.Success("Dry run: %s would be written to %s", plural(len(result.Files), "file"), result.OutputDir)
			return nil
		}
		out.Success("Created %s in %s", plural(len(result.Files), "file"), result.OutputDir)
		return nil
	},
}
