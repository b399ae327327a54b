package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/exgen-labs/exgen/internal/project"
	"github.com/exgen-labs/exgen/internal/scaffold"
)

// AskProjectOptions asks for the project name and each optional feature,
// offering defaults as the pre-selected answers.
func AskProjectOptions(ctx context.Context, d Driver, defaults project.Options) (project.Options, error) {
	var opts project.Options
	var err error

	opts.ProjectName, err = d.Input(ctx, InputConfig{
		Message:   "Project name:",
		Default:   defaults.ProjectName,
		Validator: project.ValidateProjectName,
	})
	if err != nil {
		return project.Options{}, err
	}
	opts.ProjectName = strings.TrimSpace(opts.ProjectName)

	features := []struct {
		message string
		help    string
		def     bool
		dst     *bool
	}{
		{"Add an authentication module (JWT)?", "Generates src/modules/auth and an auth middleware", defaults.Authentication, &opts.Authentication},
		{"Add Swagger API docs?", "Serves the API document at /api-docs", defaults.Swagger, &opts.Swagger},
		{"Add Docker setup?", "Generates a Dockerfile and docker-compose.yml with MySQL", defaults.Docker, &opts.Docker},
		{"Add Jest test setup?", "Generates jest.config.ts and a first test", defaults.Testing, &opts.Testing},
	}
	for _, f := range features {
		*f.dst, err = d.Confirm(ctx, ConfirmConfig{Message: f.message, Help: f.help, Default: f.def})
		if err != nil {
			return project.Options{}, err
		}
	}
	return opts, nil
}

// AskModuleName asks for the name of the module to generate.
func AskModuleName(ctx context.Context, d Driver) (string, error) {
	name, err := d.Input(ctx, InputConfig{
		Message: "Module name:",
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("module name is required")
			}
			return scaffold.ValidateModuleName(strings.TrimSpace(s))
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

var kindLabels = map[string]string{
	scaffold.SelectionFull: "Full module (controller, service, model, routes, interface, validation)",
}

// KindLabel returns the menu label of a selection value.
func KindLabel(selection string) string {
	if label, ok := kindLabels[selection]; ok {
		return label
	}
	return strings.ToUpper(selection[:1]) + selection[1:] + " only"
}

// AskModuleKind asks which files of the module to generate and returns the
// selection value ("full" or a kind name). def pre-selects an entry; an
// unknown or empty def selects "full".
func AskModuleKind(ctx context.Context, d Driver, def string) (string, error) {
	values := scaffold.Selectable()
	labels := make([]string, len(values))
	defIndex := 0
	for i, v := range values {
		labels[i] = KindLabel(v)
		if strings.EqualFold(v, def) {
			defIndex = i
		}
	}

	idx, err := d.Select(ctx, SelectConfig{
		Message:      "Files to generate:",
		Options:      labels,
		DefaultIndex: defIndex,
		PageSize:     len(labels),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(values) {
		return "", fmt.Errorf("invalid selection index %d", idx)
	}
	return values[idx], nil
}
