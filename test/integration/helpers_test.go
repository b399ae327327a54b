//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // EXGEN_HOME, holds config.yaml
	CatalogDir string // a synthetic on-disk catalog
	WorkDir    string // parent directory of generated projects
}

// setupTestEnv creates isolated temp directories and points EXGEN_HOME at
// one of them so no user settings leak into the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		CatalogDir: filepath.Join(t.TempDir(), "catalog"),
		WorkDir:    t.TempDir(),
	}

	t.Setenv("EXGEN_HOME", env.HomeDir)
	t.Setenv("EXGEN_TEMPLATES_DIR", "")
	t.Setenv("EXGEN_DEFAULT_KIND", "")

	return env
}

// setupCatalog writes a small catalog with a gated file, a JSON file, a
// default module set and a named set.
func setupCatalog(t *testing.T, catalogDir string) string {
	t.Helper()

	writeFile(t, filepath.Join(catalogDir, "catalog.yaml"), `name: mini-api
version: 1.2.0
requires: ">= 0.1.0"
module_set: modules/rest
directories:
  - src/modules
files:
  - template: base/package.json.tmpl
    output: package.json
    format: json
  - template: base/README.md.tmpl
    output: README.md
  - template: docker/Dockerfile.tmpl
    output: Dockerfile
    when: docker
  - template: local/run.sh.tmpl
    output: run.sh
    unless: docker
modules:
  - name: health
  - name: auth
    when: authentication
    set: auth
    files:
      - template: index.ts.tmpl
        output: index.ts
`)

	writeFile(t, filepath.Join(catalogDir, "base/package.json.tmpl"), `{
  "name": "{{projectName}}",
  "dependencies": {
{{#if authentication}}    "jsonwebtoken": "^9.0.2",
{{/if}}    "express": "^4.18.2"
  }
}
`)
	writeFile(t, filepath.Join(catalogDir, "base/README.md.tmpl"), "# {{projectName}}\n{{#if !docker}}Run ./run.sh\n{{/if}}")
	writeFile(t, filepath.Join(catalogDir, "docker/Dockerfile.tmpl"), "FROM node:20-alpine\n")
	writeFile(t, filepath.Join(catalogDir, "local/run.sh.tmpl"), "npm run dev\n")
	writeFile(t, filepath.Join(catalogDir, "auth/index.ts.tmpl"), "export const {{moduleName}}Module = '{{ModuleName}}';\n")

	rest := filepath.Join(catalogDir, "modules/rest")
	writeFile(t, filepath.Join(rest, "{{moduleName}}.controller.ts.tmpl"), "export class {{ModuleName}}Controller {}\n")
	writeFile(t, filepath.Join(rest, "{{moduleName}}.service.ts.tmpl"), "export class {{ModuleName}}Service {}\n")
	writeFile(t, filepath.Join(rest, "{{modulelName}}.model.ts.tmpl"), "export class {{ModuleName}} {}\n")
	writeFile(t, filepath.Join(rest, "{{moduleName}}.routes.ts.tmpl"), "// routes for /{{moduleName}}s\n")
	writeFile(t, filepath.Join(rest, "{{moduleName}}.interface.ts.tmpl"), "export interface I{{ModuleName}} {}\n")
	writeFile(t, filepath.Join(rest, "{{moduleName}}.validation.ts.tmpl"), "// {{moduleName}} validation{{#if_eq moduleName = health}} (none){{/if_eq}}\n")
	writeFile(t, filepath.Join(rest, "index.ts.tmpl"), "export * from './{{moduleName}}.routes';\n")

	return catalogDir
}

// writeFile creates a file with the given content, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected path to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q", path, substr)
	}
}
