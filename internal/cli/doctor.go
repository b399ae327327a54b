package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/exgen-labs/exgen/internal/config"
	"github.com/spf13/cobra"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools and settings generated projects need",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := runRuntimeCheck(out)
		failed += runConfigCheck(out)
		failed += runCatalogCheck(out)
		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func runRuntimeCheck(w io.Writer) int {
	fmt.Fprintln(w, "Runtime check:")
	failed := 0
	for _, name := range []string{"node", "npm"} {
		if !checkBinary(w, name, true) {
			failed++
		}
	}
	checkBinary(w, "docker", false)
	return failed
}

func checkBinary(w io.Writer, name string, required bool) bool {
	path, err := lookPath(name)
	if err == nil {
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
		return true
	}
	if required {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return false
	}
	fmt.Fprintf(w, "  [INFO] %s not found (only needed for --docker projects)\n", name)
	return true
}

func runConfigCheck(w io.Writer) int {
	fmt.Fprintln(w, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] %s not present, using defaults\n", path)
		return 0
	}
	if _, err := os.ReadFile(path); err != nil {
		fmt.Fprintf(w, "  [FAIL] cannot read %s: %v\n", path, err)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
	return 0
}

func runCatalogCheck(w io.Writer) int {
	fmt.Fprintln(w, "Catalog check:")
	cat, err := openCatalog("")
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	missing := cat.MissingTemplates()
	for _, id := range missing {
		fmt.Fprintf(w, "  [FAIL] missing template %s\n", id)
	}
	if len(missing) > 0 {
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s %s (%s)\n", cat.Manifest.Name, cat.Manifest.Version, cat.Source)
	return 0
}
