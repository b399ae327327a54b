package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/exgen-labs/exgen/internal/prompt"
	"github.com/exgen-labs/exgen/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(kindsCmd)
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List module file kinds and their templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KIND\tTEMPLATE\tOUTPUT")
		for _, spec := range scaffold.Kinds {
			fmt.Fprintf(w, "%s\t%s\t%s\n", spec.Kind, spec.TemplateID, spec.OutputPattern)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "\nSelections for --kind:")
		for _, s := range scaffold.Selectable() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-11s %s\n", s, prompt.KindLabel(s))
		}
		return nil
	},
}
