package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/exgen-labs/exgen/internal/render"
	"go.yaml.in/yaml/v3"
)

// parseSetFlags turns repeated key=value flags into variables. Values
// "true", "false" and numbers become typed values.
func parseSetFlags(pairs []string) (render.Vars, error) {
	vars := render.Vars{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: want key=value", pair)
		}
		vars[key] = render.ParseValue(value)
	}
	return vars, nil
}

// loadValuesFile reads variables from a YAML mapping.
func loadValuesFile(path string) (render.Vars, error) {
	if path == "" {
		return render.Vars{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values file: %w", err)
	}
	var vars render.Vars
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("parsing values file %s: %w", path, err)
	}
	if vars == nil {
		vars = render.Vars{}
	}
	return vars, nil
}

// templateVars merges the values file under the --set flags.
func templateVars(valuesFile string, pairs []string) (render.Vars, error) {
	base, err := loadValuesFile(valuesFile)
	if err != nil {
		return nil, err
	}
	set, err := parseSetFlags(pairs)
	if err != nil {
		return nil, err
	}
	return base.Merge(set), nil
}
