package catalog

import (
	"fmt"

	"github.com/exgen-labs/exgen/internal/render"
	"go.yaml.in/yaml/v3"
)

// ManifestFile is the name of the manifest at the catalog root.
const ManifestFile = "catalog.yaml"

// DefaultModuleSet is the template directory used for modules that do not
// name their own set.
const DefaultModuleSet = "modules/default"

// Format values for FileEntry.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Manifest describes a catalog: the project files it generates, the
// directories it creates and the modules every new project starts with.
type Manifest struct {
	Name        string        `yaml:"name"`
	Version     string        `yaml:"version"`
	Description string        `yaml:"description,omitempty"`
	Requires    string        `yaml:"requires,omitempty"`
	ModuleSet   string        `yaml:"module_set,omitempty"`
	Directories []string      `yaml:"directories,omitempty"`
	Files       []FileEntry   `yaml:"files"`
	Modules     []ModuleEntry `yaml:"modules,omitempty"`
}

// Gate enables an entry only when the named option is truthy (When) and/or
// falsy (Unless).
type Gate struct {
	When   string `yaml:"when,omitempty"`
	Unless string `yaml:"unless,omitempty"`
}

// Enabled reports whether the gate passes for vars.
func (g Gate) Enabled(vars render.Vars) bool {
	if g.When != "" && !render.Truthy(vars[g.When]) {
		return false
	}
	if g.Unless != "" && render.Truthy(vars[g.Unless]) {
		return false
	}
	return true
}

// FileEntry maps one template to one output path relative to the project.
type FileEntry struct {
	Template string `yaml:"template"`
	Output   string `yaml:"output"`
	Format   string `yaml:"format,omitempty"`
	Gate     `yaml:",inline"`
}

// IsJSON reports whether the rendered output must be valid JSON.
func (f FileEntry) IsJSON() bool { return f.Format == FormatJSON }

// ModuleEntry is a module generated into src/modules/<name>. Without Files
// the module uses every kind of the default set; with Files it renders
// exactly those templates from Set.
type ModuleEntry struct {
	Name  string      `yaml:"name"`
	Set   string      `yaml:"set,omitempty"`
	Files []FileEntry `yaml:"files,omitempty"`
	Gate  `yaml:",inline"`
}

// ModuleSetDir returns the template directory of the manifest's default
// module set.
func (m *Manifest) ModuleSetDir() string {
	if m.ModuleSet != "" {
		return m.ModuleSet
	}
	return DefaultModuleSet
}

// ParseManifest decodes catalog.yaml content. It does not validate; see
// Validate.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	return &m, nil
}
