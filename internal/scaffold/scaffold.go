package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/exgen-labs/exgen/internal/render"
)

// ErrNotAProject is returned when a module is generated outside a project
// root (no package.json).
var ErrNotAProject = errors.New("not a project root: package.json not found")

// FileDescriptor describes one file to materialize.
type FileDescriptor struct {
	TemplateID string
	Output     string      // path relative to the output directory
	Vars       render.Vars // overrides merged over the request variables
}

// ModuleRequest asks for the files of one module.
type ModuleRequest struct {
	Name  string
	Kinds []Kind
	Dir   string      // output directory for the module files
	Vars  render.Vars // extra variables, e.g. project options
}

// WarningKind classifies a non-fatal assembly diagnostic.
type WarningKind int

const (
	// MissingTemplate means a requested template had no body; the file was
	// skipped.
	MissingTemplate WarningKind = iota
	// UnresolvedToken means a {{...}} token was left in a written file.
	UnresolvedToken
)

// Warning is a diagnostic attached to a Result.
type Warning struct {
	Kind   WarningKind
	File   string
	Detail string
}

func (w Warning) String() string {
	switch w.Kind {
	case MissingTemplate:
		return fmt.Sprintf("%s: template not found (%s), skipped", w.File, w.Detail)
	case UnresolvedToken:
		return fmt.Sprintf("%s: unresolved token %s", w.File, w.Detail)
	default:
		return fmt.Sprintf("%s: %s", w.File, w.Detail)
	}
}

// Result holds the outcome of an assembly.
type Result struct {
	OutputDir string
	Files     []string // written files, relative to OutputDir
	Skipped   []string // outputs whose template was missing
	Warnings  []Warning
	Existed   bool // OutputDir was already present; files were overwritten
}

// Assembler renders catalog templates and writes them through a sink.
type Assembler struct {
	Store TemplateStore
	Sink  FileSink
}

// New returns an Assembler.
func New(store TemplateStore, sink FileSink) *Assembler {
	return &Assembler{Store: store, Sink: sink}
}

// Descriptors resolves a module request into file descriptors using the
// Kinds table.
func Descriptors(name string, kinds []Kind) ([]FileDescriptor, error) {
	files := make([]FileDescriptor, 0, len(kinds))
	for _, k := range kinds {
		spec, ok := Spec(k)
		if !ok {
			return nil, fmt.Errorf("unknown module kind %q", k)
		}
		files = append(files, FileDescriptor{
			TemplateID: spec.TemplateID,
			Output:     spec.Output(name),
		})
	}
	return files, nil
}

// Assemble generates the requested kinds of one module into req.Dir.
func (a *Assembler) Assemble(req ModuleRequest) (*Result, error) {
	if err := ValidateModuleName(req.Name); err != nil {
		return nil, err
	}
	files, err := Descriptors(req.Name, req.Kinds)
	if err != nil {
		return nil, err
	}
	vars := ModuleVars(req.Name).Merge(req.Vars)
	return a.WriteFiles(req.Dir, files, vars)
}

// WriteFiles renders each descriptor with vars (plus its own overrides) and
// writes it under dir. A missing template is recorded as a warning and the
// file is skipped. A sink failure stops the run; files already written are
// left in place and listed in the returned Result alongside the error.
func (a *Assembler) WriteFiles(dir string, files []FileDescriptor, vars render.Vars) (*Result, error) {
	result := &Result{OutputDir: dir}

	if err := a.Sink.EnsureDir(dir); err != nil {
		return result, err
	}

	for _, f := range files {
		body, err := a.Store.Load(f.TemplateID)
		if errors.Is(err, ErrTemplateNotFound) {
			result.Skipped = append(result.Skipped, f.Output)
			result.Warnings = append(result.Warnings, Warning{
				Kind:   MissingTemplate,
				File:   f.Output,
				Detail: f.TemplateID,
			})
			continue
		}
		if err != nil {
			return result, err
		}

		content, warnings := render.Render(body, vars.Merge(f.Vars))
		for _, w := range warnings {
			result.Warnings = append(result.Warnings, Warning{
				Kind:   UnresolvedToken,
				File:   f.Output,
				Detail: w.Token,
			})
		}

		if err := WriteFile(a.Sink, filepath.Join(dir, f.Output), content); err != nil {
			return result, err
		}
		result.Files = append(result.Files, f.Output)
	}

	return result, nil
}

// ModuleDir returns the directory a module lives in inside a project.
func ModuleDir(projectDir, name string) string {
	return filepath.Join(projectDir, "src", "modules", name)
}

// GenerateInProject generates a module inside an existing project, placing
// its files under src/modules/<name>. An existing module directory is
// overwritten and reported through Result.Existed.
func (a *Assembler) GenerateInProject(projectDir string, req ModuleRequest) (*Result, error) {
	if _, err := os.Stat(filepath.Join(projectDir, "package.json")); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (looked in %s)", ErrNotAProject, projectDir)
		}
		return nil, fmt.Errorf("checking project root: %w", err)
	}

	req.Dir = ModuleDir(projectDir, req.Name)
	_, statErr := os.Stat(req.Dir)
	existed := statErr == nil

	result, err := a.Assemble(req)
	if result != nil {
		result.Existed = existed
	}
	return result, err
}
