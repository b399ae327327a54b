package render

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateJSONError is returned by RenderJSON when the rendered text is not
// valid JSON. Raw holds the rendered text.
type TemplateJSONError struct {
	Raw string
	Err error
}

func (e *TemplateJSONError) Error() string {
	return fmt.Sprintf("rendered template is not valid JSON: %v", e.Err)
}

func (e *TemplateJSONError) Unwrap() error { return e.Err }

// RenderJSON renders src and decodes the result as JSON. Objects decode to
// map[string]any and numbers to float64.
func RenderJSON(src string, vars Vars) (any, []Warning, error) {
	out, warnings := Render(src, vars)

	var v any
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		return nil, warnings, &TemplateJSONError{Raw: out, Err: err}
	}
	return v, warnings, nil
}

// RenderJSONIndent renders src and re-indents the JSON result with indent,
// keeping the key order of the template. The output ends with a newline.
func RenderJSONIndent(src string, vars Vars, indent string) (string, []Warning, error) {
	out, warnings := Render(src, vars)

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace([]byte(out)), "", indent); err != nil {
		return "", warnings, &TemplateJSONError{Raw: out, Err: err}
	}
	buf.WriteByte('\n')
	return buf.String(), warnings, nil
}
