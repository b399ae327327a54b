package cli

import (
	"fmt"

	"github.com/exgen-labs/exgen/internal/scaffold"
	"github.com/exgen-labs/exgen/internal/ui"
)

func printFiles(p *ui.Printer, files []string, dryRun bool) {
	for _, f := range files {
		if dryRun {
			p.Item("%s %s", f, p.Faint("(dry run)"))
			continue
		}
		p.Item("%s", f)
	}
}

func printWarnings(p *ui.Printer, warnings []scaffold.Warning) {
	for _, w := range warnings {
		p.Warn("%s", w)
	}
}

// printPartial lists what a failed run already wrote under dir.
func printPartial(p *ui.Printer, dir string, files []string) {
	if len(files) == 0 {
		return
	}
	p.Warn("%s left in %s:", plural(len(files), "file"), dir)
	for _, f := range files {
		p.Item("%s", f)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
