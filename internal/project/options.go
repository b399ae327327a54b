package project

import (
	"fmt"
	"regexp"

	"github.com/exgen-labs/exgen/internal/render"
)

// DefaultProjectName is suggested when the user gives no name.
const DefaultProjectName = "express-app"

// Options are the answers that shape a new project.
type Options struct {
	ProjectName    string
	Authentication bool
	Swagger        bool
	Docker         bool
	Testing        bool
}

// DefaultOptions returns the options offered as prompt defaults.
func DefaultOptions() Options {
	return Options{
		ProjectName:    DefaultProjectName,
		Authentication: true,
		Swagger:        true,
	}
}

// Vars returns the template variables for the options.
func (o Options) Vars() render.Vars {
	return render.Vars{
		"projectName":    o.ProjectName,
		"authentication": o.Authentication,
		"swagger":        o.Swagger,
		"docker":         o.Docker,
		"testing":        o.Testing,
	}
}

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateProjectName rejects names that are not a single, plain directory
// name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-zA-Z0-9][a-zA-Z0-9._-]*", name)
	}
	return nil
}
