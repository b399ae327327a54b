package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/exgen-labs/exgen/internal/render"
	"github.com/spf13/cobra"
)

var (
	renderSet    []string
	renderValues string
	renderJSON   bool
	renderStrict bool
	renderKeys   bool
)

func init() {
	renderCmd.Flags().StringArrayVar(&renderSet, "set", nil, "Template variable as key=value (repeatable)")
	renderCmd.Flags().StringVar(&renderValues, "values", "", "YAML file of template variables")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "Require the output to be JSON and pretty-print it")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "Fail when tokens are left unresolved")
	renderCmd.Flags().BoolVar(&renderKeys, "keys", false, "List the variables the template uses instead of rendering it")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <template-file>",
	Short: "Render a single template to stdout",
	Long: `Render one template file with the given variables and print the result.
Unresolved {{...}} tokens are reported on stderr.

Examples:
  exgen render user.controller.ts.tmpl --set moduleName=user --set ModuleName=User
  exgen render package.json.tmpl --values answers.yaml --json
  exgen render user.model.ts.tmpl --keys --set moduleName=user`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
		vars, err := templateVars(renderValues, renderSet)
		if err != nil {
			return err
		}

		if renderKeys {
			printTemplateKeys(cmd.OutOrStdout(), render.Parse(string(data)), vars)
			return nil
		}

		var (
			out      string
			warnings []render.Warning
		)
		if renderJSON {
			out, warnings, err = render.RenderJSONIndent(string(data), vars, "  ")
			if err != nil {
				return fmt.Errorf("rendering %s: %w", args[0], err)
			}
		} else {
			out, warnings = render.Render(string(data), vars)
		}

		fmt.Fprint(cmd.OutOrStdout(), out)

		errOut := newPrinter(cmd.ErrOrStderr())
		for _, w := range warnings {
			errOut.Warn("%s", w)
		}
		if renderStrict && len(warnings) > 0 {
			return fmt.Errorf("%d unresolved token(s) in %s", len(warnings), args[0])
		}
		return nil
	},
}

// printTemplateKeys lists the variables tmpl references, marking those vars
// does not set, then any vars the template never reads.
func printTemplateKeys(w io.Writer, tmpl *render.Template, vars render.Vars) {
	p := newPrinter(w)
	used := make(map[string]bool)

	p.Title("Variables")
	for _, key := range tmpl.Keys() {
		used[key] = true
		if _, ok := vars[key]; ok {
			p.Item("%s = %s", key, render.String(vars[key]))
		} else {
			p.Item("%s %s", key, p.Faint("(unset)"))
		}
	}

	var unused []string
	for _, key := range vars.Keys() {
		if !used[key] {
			unused = append(unused, key)
		}
	}
	if len(unused) > 0 {
		p.Warn("unused: %s", strings.Join(unused, ", "))
	}
	fmt.Fprintln(w, p.Faint("helpers: "+strings.Join(render.HelperNames(), ", ")))
}
