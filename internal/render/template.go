package render

import (
	"regexp"
	"sort"
	"strings"
)

// node is a token, plus for paired openers the enclosed body and the closing
// token.
type node struct {
	token
	body   []node
	closer *token
}

// Template is a parsed template ready to be executed against any Vars.
type Template struct {
	src   string
	nodes []node
}

// Parse tokenizes src and pairs block openers with their closers. A closer
// pairs with the nearest preceding unpaired opener of its kind; openers left
// without a closer and stray closers stay in the tree as literal text.
func Parse(src string) *Template {
	toks := tokenize(src)
	pairs := pairBlocks(toks)
	return &Template{src: src, nodes: build(toks, pairs, 0, len(toks))}
}

func pairBlocks(toks []token) map[int]int {
	pairs := make(map[int]int)
	var open []int

	for i, t := range toks {
		if _, ok := t.closer(); ok {
			open = append(open, i)
			continue
		}
		if !t.isCloser() {
			continue
		}
		for j := len(open) - 1; j >= 0; j-- {
			want, _ := toks[open[j]].closer()
			if want == t.kind {
				pairs[open[j]] = i
				open = open[:j]
				break
			}
		}
	}
	return pairs
}

func build(toks []token, pairs map[int]int, lo, hi int) []node {
	var nodes []node
	for i := lo; i < hi; i++ {
		end, ok := pairs[i]
		if !ok {
			nodes = append(nodes, node{token: toks[i]})
			continue
		}
		closer := toks[end]
		nodes = append(nodes, node{
			token:  toks[i],
			body:   build(toks, pairs, i+1, end),
			closer: &closer,
		})
		i = end
	}
	return nodes
}

// Keys returns every variable name the template references, sorted and
// deduplicated.
func (t *Template) Keys() []string {
	seen := make(map[string]bool)
	var walk func([]node)
	walk = func(nodes []node) {
		for _, n := range nodes {
			switch n.kind {
			case tokenPlaceholder, tokenHelper, tokenIf, tokenIfNot, tokenIfEq:
				seen[n.key] = true
			}
			walk(n.body)
		}
	}
	walk(t.nodes)

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Execute renders the template against vars and reports every {{...}} token
// still present in the output.
func (t *Template) Execute(vars Vars) (string, []Warning) {
	var b strings.Builder
	b.Grow(len(t.src))
	evaluate(&b, t.nodes, vars)
	out := b.String()
	return out, unresolved(out)
}

// Render parses and executes src in one call.
func Render(src string, vars Vars) (string, []Warning) {
	return Parse(src).Execute(vars)
}

func evaluate(b *strings.Builder, nodes []node, vars Vars) {
	for _, n := range nodes {
		switch n.kind {
		case tokenPlaceholder:
			// Absent keys render empty, unlike blocks and helpers.
			b.WriteString(String(vars[n.key]))

		case tokenHelper:
			fn, known := helpers[n.helper]
			val, present := vars[n.key]
			if !known || !present {
				b.WriteString(n.raw)
				continue
			}
			b.WriteString(fn(String(val)))

		case tokenIf, tokenIfNot, tokenIfEq:
			if n.closer == nil {
				b.WriteString(n.raw)
				continue
			}
			val, present := vars[n.key]
			if !present {
				b.WriteString(n.raw)
				evaluate(b, n.body, vars)
				b.WriteString(n.closer.raw)
				continue
			}
			if selects(n.token, val) {
				evaluate(b, n.body, vars)
			}

		default:
			b.WriteString(n.raw)
		}
	}
}

func selects(t token, val any) bool {
	switch t.kind {
	case tokenIf:
		return Truthy(val)
	case tokenIfNot:
		return !Truthy(val)
	case tokenIfEq:
		return String(val) == t.literal
	}
	return false
}

var leftoverRegex = regexp.MustCompile(`\{\{[^{}]*\}\}`)

func unresolved(out string) []Warning {
	var warnings []Warning
	for _, loc := range leftoverRegex.FindAllStringIndex(out, -1) {
		warnings = append(warnings, Warning{
			Kind:   UnresolvedToken,
			Token:  out[loc[0]:loc[1]],
			Offset: loc[0],
		})
	}
	return warnings
}
