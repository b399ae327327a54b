package render

import (
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenPlaceholder
	tokenHelper
	tokenIf
	tokenIfNot
	tokenIfEq
	tokenEndIf
	tokenEndIfEq
	tokenUnknown
)

func (k tokenKind) String() string {
	switch k {
	case tokenText:
		return "text"
	case tokenPlaceholder:
		return "placeholder"
	case tokenHelper:
		return "helper"
	case tokenIf:
		return "#if"
	case tokenIfNot:
		return "#if !"
	case tokenIfEq:
		return "#if_eq"
	case tokenEndIf:
		return "/if"
	case tokenEndIfEq:
		return "/if_eq"
	default:
		return "unknown"
	}
}

// token is one lexical element of a template. raw is always the exact source
// text so that anything left unresolved can be written back unchanged.
type token struct {
	kind    tokenKind
	raw     string
	key     string // variable name for placeholders, helpers and conditions
	helper  string // helper name
	literal string // right-hand side of #if_eq
	offset  int
}

// closer returns the kind of token that ends a block opened by t.
func (t token) closer() (tokenKind, bool) {
	switch t.kind {
	case tokenIf, tokenIfNot:
		return tokenEndIf, true
	case tokenIfEq:
		return tokenEndIfEq, true
	}
	return 0, false
}

func (t token) isCloser() bool {
	return t.kind == tokenEndIf || t.kind == tokenEndIfEq
}

const ident = `[\w.-]+`

var (
	tokenRegex = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

	ifEqRegex        = regexp.MustCompile(`^#if_eq\s+(` + ident + `)\s*=\s*(\w+)$`)
	ifNotRegex       = regexp.MustCompile(`^#if\s+!(` + ident + `)$`)
	ifRegex          = regexp.MustCompile(`^#if\s+(` + ident + `)$`)
	endIfRegex       = regexp.MustCompile(`^/if$`)
	endIfEqRegex     = regexp.MustCompile(`^/if_eq$`)
	helperRegex      = regexp.MustCompile(`^(\w+)\s+(\w+)$`)
	placeholderRegex = regexp.MustCompile(`^(` + ident + `)$`)
)

// tokenize splits src into text and {{...}} tokens.
func tokenize(src string) []token {
	var tokens []token
	last := 0

	for _, m := range tokenRegex.FindAllStringSubmatchIndex(src, -1) {
		if m[0] > last {
			tokens = append(tokens, token{kind: tokenText, raw: src[last:m[0]], offset: last})
		}
		t := classify(strings.TrimSpace(src[m[2]:m[3]]))
		t.raw = src[m[0]:m[1]]
		t.offset = m[0]
		tokens = append(tokens, t)
		last = m[1]
	}

	if last < len(src) {
		tokens = append(tokens, token{kind: tokenText, raw: src[last:], offset: last})
	}
	return tokens
}

func classify(content string) token {
	if m := ifEqRegex.FindStringSubmatch(content); m != nil {
		return token{kind: tokenIfEq, key: m[1], literal: m[2]}
	}
	if m := ifNotRegex.FindStringSubmatch(content); m != nil {
		return token{kind: tokenIfNot, key: m[1]}
	}
	if m := ifRegex.FindStringSubmatch(content); m != nil {
		return token{kind: tokenIf, key: m[1]}
	}
	if endIfRegex.MatchString(content) {
		return token{kind: tokenEndIf}
	}
	if endIfEqRegex.MatchString(content) {
		return token{kind: tokenEndIfEq}
	}
	if m := helperRegex.FindStringSubmatch(content); m != nil {
		return token{kind: tokenHelper, helper: m[1], key: m[2]}
	}
	if m := placeholderRegex.FindStringSubmatch(content); m != nil {
		return token{kind: tokenPlaceholder, key: m[1]}
	}
	return token{kind: tokenUnknown}
}
