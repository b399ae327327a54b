package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/catalog.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/files/0/output")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("catalog.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("catalog.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw catalog.yaml bytes against the catalog JSON schema.
// The error return is for YAML or schema compilation failures; schema
// violations are reported in the ValidationResult, ordered by path.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := yamlInstance(data)
	if err != nil {
		return nil, err
	}

	var ve *jsonschema.ValidationError
	if err := schema.Validate(inst); err == nil {
		return &ValidationResult{Valid: true}, nil
	} else if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating: %w", err)
	}

	issues := leafIssues(ve)
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return &ValidationResult{Issues: issues}, nil
}

// yamlInstance decodes YAML and re-reads it as JSON so numbers reach the
// validator as json.Number.
func yamlInstance(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(buf))
}

// leafIssues flattens the error tree. Only leaves carry a failing keyword
// worth reporting; $ref and allOf nodes just wrap them.
func leafIssues(root *jsonschema.ValidationError) []ValidationIssue {
	seen := make(map[ValidationIssue]bool)
	var issues []ValidationIssue

	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		ve := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(ve.Causes) > 0 {
			stack = append(stack, ve.Causes...)
			continue
		}
		keyword := keywordOf(ve.ErrorKind)
		if keyword == "" {
			continue
		}

		issue := ValidationIssue{
			Path:    instancePath(ve.InstanceLocation),
			Keyword: keyword,
		}
		issue.Message = issueMessage(issue, ve.ErrorKind.LocalizedString(printer))
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}

// keywordOf names the schema keyword behind an error kind. Kinds such as
// kind.Not report no keyword path of their own.
func keywordOf(k jsonschema.ErrorKind) string {
	switch k.(type) {
	case nil:
		return ""
	case *kind.Not:
		return "not"
	case *kind.FalseSchema:
		return "false"
	}
	if kw := k.KeywordPath(); len(kw) > 0 {
		return kw[len(kw)-1]
	}
	return ""
}

func instancePath(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	return "/" + strings.Join(loc, "/")
}

// issueMessage replaces the library's wording where the catalog schema uses
// a keyword whose generic message says nothing useful.
func issueMessage(issue ValidationIssue, msg string) string {
	switch {
	case issue.Keyword == "not":
		return "must be a relative path that stays inside the project"
	case issue.Keyword == "enum" && strings.HasSuffix(issue.Path, "/format"):
		return "format must be text or json"
	}
	return msg
}
