package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/exgen-labs/exgen/internal/scaffold"
)

//go:embed all:default
var embedded embed.FS

// EmbeddedSource is the Source of the built-in catalog.
const EmbeddedSource = "embedded"

// Catalog is an opened, validated template catalog.
type Catalog struct {
	FS       fs.FS
	Manifest *Manifest
	Source   string // directory path, or EmbeddedSource
}

// InvalidError reports schema violations in a catalog manifest.
type InvalidError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("invalid %s in %s:\n  %s", ManifestFile, e.Source, strings.Join(msgs, "\n  "))
}

// Default returns the embedded catalog filesystem.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "default")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Open loads the catalog in dir, or the embedded catalog when dir is empty,
// and checks it against generatorVersion.
func Open(dir, generatorVersion string) (*Catalog, error) {
	if dir == "" {
		return Load(Default(), EmbeddedSource, generatorVersion)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening catalog: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), dir, generatorVersion)
}

// Load reads and validates catalog.yaml at the root of fsys.
func Load(fsys fs.FS, source, generatorVersion string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s has no %s", source, ManifestFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s in %s: %w", ManifestFile, source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	if err := CheckCompatibility(m, generatorVersion); err != nil {
		return nil, err
	}

	return &Catalog{FS: fsys, Manifest: m, Source: source}, nil
}

// Store returns a template store rooted at the catalog root.
func (c *Catalog) Store() *scaffold.FSStore {
	return scaffold.NewFSStore(c.FS, ".")
}

// ModuleStore returns a template store for a module set. An empty set means
// the manifest's default module set.
func (c *Catalog) ModuleStore(set string) *scaffold.FSStore {
	if set == "" {
		set = c.Manifest.ModuleSetDir()
	}
	return c.Store().Sub(set)
}

// MissingTemplates lists the template paths the manifest references that the
// catalog does not contain. Modules without a file list are checked against
// every kind of the scaffold table.
func (c *Catalog) MissingTemplates() []string {
	var missing []string
	check := func(store *scaffold.FSStore, prefix, id string) {
		if _, err := store.Load(id); errors.Is(err, scaffold.ErrTemplateNotFound) {
			missing = append(missing, path.Join(prefix, id))
		}
	}

	for _, f := range c.Manifest.Files {
		check(c.Store(), "", f.Template)
	}
	for _, m := range c.Manifest.Modules {
		set := m.Set
		if set == "" {
			set = c.Manifest.ModuleSetDir()
		}
		store := c.ModuleStore(m.Set)
		if len(m.Files) == 0 {
			for _, spec := range scaffold.Kinds {
				check(store, set, spec.TemplateID)
			}
			continue
		}
		for _, f := range m.Files {
			check(store, set, f.Template)
		}
	}
	return missing
}
