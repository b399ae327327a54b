package cli

import (
	"fmt"

	"github.com/exgen-labs/exgen/internal/project"
	"github.com/exgen-labs/exgen/internal/prompt"
	"github.com/exgen-labs/exgen/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	newAuth      bool
	newSwagger   bool
	newDocker    bool
	newTesting   bool
	newYes       bool
	newTemplates string
	newOutputDir string
	newDryRun    bool
)

func init() {
	newCmd.Flags().BoolVar(&newAuth, "auth", true, "Add the JWT authentication module")
	newCmd.Flags().BoolVar(&newSwagger, "swagger", true, "Add Swagger API docs")
	newCmd.Flags().BoolVar(&newDocker, "docker", false, "Add Dockerfile and docker-compose.yml")
	newCmd.Flags().BoolVar(&newTesting, "testing", false, "Add Jest test setup")
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "Skip prompts and use flag values")
	newCmd.Flags().StringVar(&newTemplates, "templates", "", "Catalog directory (default: built-in templates)")
	newCmd.Flags().StringVar(&newOutputDir, "output-dir", ".", "Directory the project folder is created in")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Show the files that would be created without writing")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Create a new Express + TypeScript + MySQL project",
	Long: `Create a new project folder from the template catalog.

Without --yes the project name and each optional feature are asked
interactively, with flag values as the pre-selected answers.

Examples:
  exgen new
  exgen new shop-api --yes --docker --testing
  exgen new shop-api --yes --auth=false --templates ./my-catalog`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := project.Options{
			ProjectName:    project.DefaultProjectName,
			Authentication: newAuth,
			Swagger:        newSwagger,
			Docker:         newDocker,
			Testing:        newTesting,
		}
		if len(args) == 1 {
			opts.ProjectName = args[0]
		}

		if !newYes {
			var err error
			opts, err = prompt.AskProjectOptions(cmd.Context(), newDriver(), opts)
			if err != nil {
				return err
			}
		}

		cat, err := openCatalog(newTemplates)
		if err != nil {
			return err
		}

		result, err := project.Generate(cat, opts, newOutputDir, scaffold.DiskSink{DryRun: newDryRun})
		if err != nil {
			if result != nil {
				printPartial(newPrinter(cmd.ErrOrStderr()), result.ProjectDir, result.Files)
			}
			return err
		}

		out := newPrinter(cmd.OutOrStdout())
		out.Title("%s (%s)", opts.ProjectName, cat.Manifest.Name)
		printFiles(out, result.Files, newDryRun)
		printWarnings(newPrinter(cmd.ErrOrStderr()), result.Warnings)

		if newDryRun {
			out.Success("Dry run: %s would be created in %s", plural(len(result.Files), "file"), result.ProjectDir)
			return nil
		}
		out.Success("Created %s in %s", plural(len(result.Files), "file"), result.ProjectDir)

		fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
		fmt.Fprintf(cmd.OutOrStdout(), "  1. cd %s\n", result.ProjectDir)
		fmt.Fprintln(cmd.OutOrStdout(), "  2. npm install")
		if opts.Docker {
			fmt.Fprintln(cmd.OutOrStdout(), "  3. docker compose up -d mysql")
			fmt.Fprintln(cmd.OutOrStdout(), "  4. npm run dev")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "  3. npm run dev")
		}
		return nil
	},
}
