package project

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/exgen-labs/exgen/internal/catalog"
	"github.com/exgen-labs/exgen/internal/render"
	"github.com/exgen-labs/exgen/internal/scaffold"
)

// ErrProjectExists is returned when the target project directory is already
// present.
var ErrProjectExists = errors.New("project directory already exists")

// jsonIndent is the indentation of files with format: json.
const jsonIndent = "  "

// Result holds the outcome of a project generation.
type Result struct {
	ProjectDir string
	Files      []string // written files, slash-separated and relative to ProjectDir
	Warnings   []scaffold.Warning
}

// Generate creates <parentDir>/<opts.ProjectName> from the catalog. Missing
// templates and unresolved tokens are reported as warnings. A JSON file that
// does not parse, or a sink failure, stops the run; files already written are
// left in place and listed in the returned Result alongside the error.
func Generate(cat *catalog.Catalog, opts Options, parentDir string, sink scaffold.FileSink) (*Result, error) {
	if err := ValidateProjectName(opts.ProjectName); err != nil {
		return nil, err
	}

	projectDir := filepath.Join(parentDir, opts.ProjectName)
	if _, err := os.Stat(projectDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, projectDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking project directory: %w", err)
	}

	if err := sink.EnsureDir(projectDir); err != nil {
		return nil, err
	}
	for _, dir := range cat.Manifest.Directories {
		if err := sink.EnsureDir(filepath.Join(projectDir, filepath.FromSlash(dir))); err != nil {
			return nil, err
		}
	}

	result := &Result{ProjectDir: projectDir}
	vars := opts.Vars()

	if err := writeFiles(cat.Store(), cat.Manifest.Files, vars, projectDir, sink, result); err != nil {
		return result, err
	}

	for _, m := range cat.Manifest.Modules {
		if !m.Enabled(vars) {
			continue
		}
		if err := generateModule(cat, m, vars, projectDir, sink, result); err != nil {
			return result, fmt.Errorf("generating module %s: %w", m.Name, err)
		}
	}

	return result, nil
}

func writeFiles(store scaffold.TemplateStore, files []catalog.FileEntry, vars render.Vars, projectDir string, sink scaffold.FileSink, result *Result) error {
	for _, f := range files {
		if !f.Enabled(vars) {
			continue
		}

		body, err := store.Load(f.Template)
		if errors.Is(err, scaffold.ErrTemplateNotFound) {
			result.Warnings = append(result.Warnings, scaffold.Warning{
				Kind:   scaffold.MissingTemplate,
				File:   f.Output,
				Detail: f.Template,
			})
			continue
		}
		if err != nil {
			return err
		}

		var (
			content  string
			warnings []render.Warning
		)
		if f.IsJSON() {
			content, warnings, err = render.RenderJSONIndent(body, vars, jsonIndent)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", f.Output, err)
			}
		} else {
			content, warnings = render.Render(body, vars)
		}
		for _, w := range warnings {
			result.Warnings = append(result.Warnings, scaffold.Warning{
				Kind:   scaffold.UnresolvedToken,
				File:   f.Output,
				Detail: w.Token,
			})
		}

		if err := scaffold.WriteFile(sink, filepath.Join(projectDir, filepath.FromSlash(f.Output)), content); err != nil {
			return err
		}
		result.Files = append(result.Files, f.Output)
	}
	return nil
}

// generateModule renders one module entry into src/modules/<name>. Entries
// without a file list get a full module of the default set.
func generateModule(cat *catalog.Catalog, m catalog.ModuleEntry, vars render.Vars, projectDir string, sink scaffold.FileSink, result *Result) error {
	asm := scaffold.New(cat.ModuleStore(m.Set), sink)
	dir := scaffold.ModuleDir(projectDir, m.Name)

	var (
		res *scaffold.Result
		err error
	)
	if len(m.Files) == 0 {
		kinds, _ := scaffold.ParseSelection(scaffold.SelectionFull)
		res, err = asm.Assemble(scaffold.ModuleRequest{
			Name:  m.Name,
			Kinds: kinds,
			Dir:   dir,
			Vars:  vars,
		})
	} else {
		if err := scaffold.ValidateModuleName(m.Name); err != nil {
			return err
		}
		files := make([]scaffold.FileDescriptor, 0, len(m.Files))
		for _, f := range m.Files {
			if f.Enabled(vars) {
				files = append(files, scaffold.FileDescriptor{TemplateID: f.Template, Output: f.Output})
			}
		}
		res, err = asm.WriteFiles(dir, files, scaffold.ModuleVars(m.Name).Merge(vars))
	}
	if res == nil {
		return err
	}

	rel := path.Join("src", "modules", m.Name)
	for _, f := range res.Files {
		result.Files = append(result.Files, path.Join(rel, f))
	}
	for _, w := range res.Warnings {
		w.File = path.Join(rel, w.File)
		result.Warnings = append(result.Warnings, w)
	}
	return err
}
