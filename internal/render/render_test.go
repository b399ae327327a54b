package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderWithoutTokensIsIdentity(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"braces { that } are { not tokens",
		"function f() { return { a: 1 }; }\n",
		"{single} and {{unterminated",
	}
	vars := Vars{"name": "order", "flag": true}

	for _, in := range inputs {
		out, warnings := Render(in, vars)
		if out != in {
			t.Errorf("Render(%q) = %q, want input unchanged", in, out)
		}
		if len(warnings) != 0 {
			t.Errorf("Render(%q) warnings = %v, want none", in, warnings)
		}
	}
}

func TestRenderIfBlock(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"true", true, "X"},
		{"false", false, ""},
		{"non-empty string", "yes", "X"},
		{"empty string", "", ""},
		{"non-zero int", 3, "X"},
		{"zero int", 0, ""},
		{"non-zero float", 2.5, "X"},
		{"zero float", 0.0, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Render("{{#if k}}X{{/if}}", Vars{"k": tt.val})
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderIfNotBlock(t *testing.T) {
	got, _ := Render("{{#if !docker}}no docker{{/if}}", Vars{"docker": false})
	if got != "no docker" {
		t.Errorf("falsy: got %q, want %q", got, "no docker")
	}

	got, _ = Render("{{#if !docker}}no docker{{/if}}", Vars{"docker": true})
	if got != "" {
		t.Errorf("truthy: got %q, want empty", got)
	}
}

func TestRenderBlockWithAbsentKeyIsLeftVerbatim(t *testing.T) {
	src := "{{#if k}}X{{/if}}"
	got, warnings := Render(src, Vars{})
	if got != src {
		t.Errorf("Render() = %q, want %q", got, src)
	}

	want := []Warning{
		{Kind: UnresolvedToken, Token: "{{#if k}}", Offset: 0},
		{Kind: UnresolvedToken, Token: "{{/if}}", Offset: 10},
	}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}

	t.Run("negated and equality blocks", func(t *testing.T) {
		for _, src := range []string{
			"{{#if !k}}X{{/if}}",
			"{{#if_eq k = admin}}X{{/if_eq}}",
		} {
			if got, _ := Render(src, Vars{"other": true}); got != src {
				t.Errorf("Render(%q) = %q, want unchanged", src, got)
			}
		}
	})

	t.Run("body is still processed", func(t *testing.T) {
		got, _ := Render("{{#if x}}Hi {{name}}{{/if}}", Vars{"name": "Bob"})
		if got != "{{#if x}}Hi Bob{{/if}}" {
			t.Errorf("Render() = %q", got)
		}
	})
}

func TestRenderIfEqBlock(t *testing.T) {
	src := "{{#if_eq role = admin}}A{{/if_eq}}"

	tests := []struct {
		name string
		vars Vars
		want string
	}{
		{"match", Vars{"role": "admin"}, "A"},
		{"mismatch", Vars{"role": "user"}, ""},
		{"case sensitive", Vars{"role": "Admin"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := Render(src, tt.vars); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("number compared by string form", func(t *testing.T) {
		got, _ := Render("{{#if_eq n = 5}}five{{/if_eq}}", Vars{"n": 5})
		if got != "five" {
			t.Errorf("Render() = %q, want %q", got, "five")
		}
	})

	t.Run("quoted literal is not a bare word", func(t *testing.T) {
		src := `{{#if_eq role = "admin"}}A{{/if_eq}}`
		got, warnings := Render(src, Vars{"role": "admin"})
		if got != src {
			t.Errorf("Render() = %q, want unchanged", got)
		}
		if len(warnings) != 2 {
			t.Errorf("warnings = %v, want 2", warnings)
		}
	})
}

func TestRenderCapitalizeFirstLetter(t *testing.T) {
	got, warnings := Render("{{capitalizeFirstLetter name}}", Vars{"name": "alice"})
	if got != "Alice" {
		t.Errorf("Render() = %q, want %q", got, "Alice")
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	src := "{{capitalizeFirstLetter name}}"
	got, warnings = Render(src, Vars{})
	if got != src {
		t.Errorf("absent: Render() = %q, want %q", got, src)
	}
	if diff := cmp.Diff([]string{src}, Tokens(warnings)); diff != "" {
		t.Errorf("absent: warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderUnknownHelperIsLeftVerbatim(t *testing.T) {
	src := "{{shout name}}"
	got, warnings := Render(src, Vars{"name": "bob", "shout": "x"})
	if got != src {
		t.Errorf("Render() = %q, want %q", got, src)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want 1", warnings)
	}
}

func TestRenderPlaceholders(t *testing.T) {
	t.Run("absent key renders empty", func(t *testing.T) {
		got, warnings := Render("Hello {{name}}!", Vars{})
		if got != "Hello !" {
			t.Errorf("Render() = %q, want %q", got, "Hello !")
		}
		if len(warnings) != 0 {
			t.Errorf("unexpected warnings: %v", warnings)
		}
	})

	t.Run("every occurrence", func(t *testing.T) {
		got, _ := Render("{{m}}/{{ m }}/{{m }}", Vars{"m": "order"})
		if got != "order/order/order" {
			t.Errorf("Render() = %q", got)
		}
	})

	t.Run("value types", func(t *testing.T) {
		got, _ := Render("{{s}} {{b}} {{i}} {{f}}", Vars{"s": "x", "b": false, "i": 42, "f": 2.5})
		if got != "x false 42 2.5" {
			t.Errorf("Render() = %q", got)
		}
	})

	t.Run("brace adjacent to token", func(t *testing.T) {
		tests := []struct {
			src  string
			want string
		}{
			{"const o = {{{name}}};", "const o = {x};"},
			{"a {{ b\n{{name}} c", "a {{ b\nx c"},
			{"`${ {{name}} }`", "`${ x }`"},
			{"{{{name}}}{{{name}}}", "{x}{x}"},
		}
		for _, tt := range tests {
			got, warnings := Render(tt.src, Vars{"name": "x"})
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.src, got, tt.want)
			}
			if len(warnings) != 0 {
				t.Errorf("Render(%q) warnings = %v", tt.src, warnings)
			}
		}
	})

	t.Run("substituted text is not rescanned", func(t *testing.T) {
		got, warnings := Render("{{v}}", Vars{"v": "{{other}}"})
		if got != "{{other}}" {
			t.Errorf("Render() = %q", got)
		}
		if diff := cmp.Diff([]string{"{{other}}"}, Tokens(warnings)); diff != "" {
			t.Errorf("warnings mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRenderBlockBodyTokensAreResolved(t *testing.T) {
	src := `{{#if authentication}}import { auth } from './{{moduleName}}';
router.use(auth{{capitalizeFirstLetter moduleName}});
{{/if}}done`
	got, warnings := Render(src, Vars{"authentication": true, "moduleName": "order"})

	want := `import { auth } from './order';
router.use(authOrder);
done`
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestRenderUnbalancedBlocks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		vars Vars
		want string
	}{
		{"opener without closer", "{{#if a}}text", Vars{"a": true}, "{{#if a}}text"},
		{"stray closer", "text{{/if}}", Vars{}, "text{{/if}}"},
		{"mismatched closer kind", "{{#if a}}x{{/if_eq}}", Vars{"a": false}, "{{#if a}}x{{/if_eq}}"},
		{
			"inner block inside absent block",
			"{{#if absent}} {{#if present}}Y{{/if}} {{/if}}",
			Vars{"present": true},
			"{{#if absent}} Y {{/if}}",
		},
		{
			"unclosed opener inside a block",
			"{{#if_eq a = b}}{{#if c}}x{{/if_eq}}",
			Vars{"a": "b", "c": true},
			"{{#if c}}x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := Render(tt.src, tt.vars); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderNestedBlocks(t *testing.T) {
	src := "{{#if b}}A{{#if a}}B{{/if}}C{{/if}}"
	tests := []struct {
		name string
		vars Vars
		want string
	}{
		{"outer false drops whole block", Vars{"b": false, "a": true}, ""},
		{"outer true inner false", Vars{"b": true, "a": false}, "AC"},
		{"both true", Vars{"b": true, "a": true}, "ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := Render(src, tt.vars)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
		})
	}

	t.Run("mixed kinds interleave", func(t *testing.T) {
		got, _ := Render("{{#if_eq k = x}}1{{#if f}}2{{/if}}3{{/if_eq}}", Vars{"k": "x", "f": false})
		if got != "13" {
			t.Errorf("Render() = %q, want %q", got, "13")
		}
	})
}

func TestTemplateKeys(t *testing.T) {
	tmpl := Parse("{{#if a}}{{b}}{{/if}}{{capitalizeFirstLetter c}}{{#if_eq d = x}}{{b}}{{/if_eq}}{{#if !e}}{{/if}}")
	want := []string{"a", "b", "c", "d", "e"}
	if diff := cmp.Diff(want, tmpl.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateExecuteIsRepeatable(t *testing.T) {
	tmpl := Parse("{{#if a}}{{name}}{{/if}}")
	first, _ := tmpl.Execute(Vars{"a": true, "name": "one"})
	second, _ := tmpl.Execute(Vars{"a": true, "name": "two"})
	if first != "one" || second != "two" {
		t.Errorf("Execute() = %q, %q; want %q, %q", first, second, "one", "two")
	}
}

func TestRenderJSON(t *testing.T) {
	got, _, err := RenderJSON(`{"n": {{n}}}`, Vars{"n": 5})
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"n": float64(5)}, got); diff != "" {
		t.Errorf("RenderJSON() mismatch (-want +got):\n%s", diff)
	}

	_, _, err = RenderJSON(`{"n": {{n}}`, Vars{"n": 5})
	var jsonErr *TemplateJSONError
	if !errors.As(err, &jsonErr) {
		t.Fatalf("RenderJSON() error = %v, want *TemplateJSONError", err)
	}
	if jsonErr.Raw != `{"n": 5` {
		t.Errorf("Raw = %q, want %q", jsonErr.Raw, `{"n": 5`)
	}
	if jsonErr.Unwrap() == nil {
		t.Error("Unwrap() should return the decoder error")
	}
}

func TestRenderJSONIndent(t *testing.T) {
	src := `{"name": "{{name}}", "scripts": {"start": "node"},
{{#if dev}}"dev": true,{{/if}} "version": 1}`

	got, _, err := RenderJSONIndent(src, Vars{"name": "api", "dev": false}, "  ")
	if err != nil {
		t.Fatalf("RenderJSONIndent() error: %v", err)
	}
	want := `{
  "name": "api",
  "scripts": {
    "start": "node"
  },
  "version": 1
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderJSONIndent() mismatch (-want +got):\n%s", diff)
	}

	_, _, err = RenderJSONIndent(`[{{a}}]`, Vars{"a": "x"}, "  ")
	var jsonErr *TemplateJSONError
	if !errors.As(err, &jsonErr) {
		t.Fatalf("RenderJSONIndent() error = %v, want *TemplateJSONError", err)
	}
	if jsonErr.Raw != "[x]" {
		t.Errorf("Raw = %q", jsonErr.Raw)
	}
}

func TestCapitalizeFirstLetter(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"a":     "A",
		"order": "Order",
		"Order": "Order",
		"élan":  "Élan",
		"1st":   "1st",
	}
	for in, want := range tests {
		if got := CapitalizeFirstLetter(in); got != want {
			t.Errorf("CapitalizeFirstLetter(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"42", int64(42)},
		{"2.5", 2.5},
		{"order", "order"},
		{"", ""},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseValue(tt.in)); diff != "" {
			t.Errorf("ParseValue(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestVarsMerge(t *testing.T) {
	base := Vars{"a": 1, "b": 2}
	merged := base.Merge(Vars{"b": 3}, Vars{"c": 4})
	if diff := cmp.Diff(Vars{"a": 1, "b": 3, "c": 4}, merged); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	if base["b"] != 2 {
		t.Error("Merge() must not modify the receiver")
	}
}
