package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/exgen-labs/exgen/internal/render"
)

// Kind is a category of generated module file.
type Kind string

const (
	KindController Kind = "controller"
	KindService    Kind = "service"
	KindModel      Kind = "model"
	KindRoutes     Kind = "routes"
	KindInterface  Kind = "interface"
	KindValidation Kind = "validation"
	KindIndex      Kind = "index"
)

// SelectionFull selects every kind of a module.
const SelectionFull = "full"

// namePlaceholder is replaced by the module name in output patterns.
const namePlaceholder = "{name}"

// KindSpec maps a kind to the template it renders and the file it produces.
// TemplateID is the literal file name in the template set; it is never
// rendered.
type KindSpec struct {
	Kind          Kind
	TemplateID    string
	OutputPattern string
}

// Output returns the output file name for a module.
func (s KindSpec) Output(moduleName string) string {
	return strings.ReplaceAll(s.OutputPattern, namePlaceholder, moduleName)
}

// Kinds lists every kind in the order a full module is generated.
//
// The model template carries a different identifier from its siblings in the
// shipped catalog; keep it as it is.
var Kinds = []KindSpec{
	{KindController, "{{moduleName}}.controller.ts.tmpl", "{name}.controller.ts"},
	{KindService, "{{moduleName}}.service.ts.tmpl", "{name}.service.ts"},
	{KindModel, "{{modulelName}}.model.ts.tmpl", "{name}.model.ts"},
	{KindRoutes, "{{moduleName}}.routes.ts.tmpl", "{name}.routes.ts"},
	{KindInterface, "{{moduleName}}.interface.ts.tmpl", "{name}.interface.ts"},
	{KindValidation, "{{moduleName}}.validation.ts.tmpl", "{name}.validation.ts"},
	{KindIndex, "index.ts.tmpl", "index.ts"},
}

// Spec returns the table entry for k.
func Spec(k Kind) (KindSpec, bool) {
	for _, s := range Kinds {
		if s.Kind == k {
			return s, true
		}
	}
	return KindSpec{}, false
}

// Selectable lists the values accepted by ParseSelection.
func Selectable() []string {
	return []string{
		SelectionFull,
		string(KindController),
		string(KindService),
		string(KindModel),
		string(KindRoutes),
		string(KindInterface),
		string(KindValidation),
	}
}

// ParseSelection resolves "full" to every kind and a single kind name to
// itself. Matching is case-insensitive. The index file is only generated as
// part of a full module.
func ParseSelection(s string) ([]Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == SelectionFull {
		kinds := make([]Kind, len(Kinds))
		for i, spec := range Kinds {
			kinds[i] = spec.Kind
		}
		return kinds, nil
	}
	for _, name := range Selectable()[1:] {
		if s == name {
			return []Kind{Kind(name)}, nil
		}
	}
	return nil, fmt.Errorf("unknown module kind %q (valid: %s)", s, strings.Join(Selectable(), ", "))
}

var moduleNamePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9_-]*$`)

// ValidateModuleName rejects names that would not make a usable directory
// and TypeScript identifier prefix.
func ValidateModuleName(name string) error {
	if !moduleNamePattern.MatchString(name) {
		return fmt.Errorf("invalid module name %q: must match pattern [a-z][a-zA-Z0-9_-]*", name)
	}
	return nil
}

// ModuleVars returns the variables every module template receives.
func ModuleVars(name string) render.Vars {
	return render.Vars{
		"moduleName": name,
		"ModuleName": render.CapitalizeFirstLetter(name),
	}
}
