package render

import "fmt"

// WarningKind classifies a non-fatal rendering diagnostic.
type WarningKind int

const (
	// UnresolvedToken marks a {{...}} token left in the rendered output.
	UnresolvedToken WarningKind = iota
)

func (k WarningKind) String() string {
	switch k {
	case UnresolvedToken:
		return "unresolved token"
	default:
		return "unknown"
	}
}

// Warning is a diagnostic collected during rendering. Offset is the byte
// position of Token in the rendered output.
type Warning struct {
	Kind   WarningKind
	Token  string
	Offset int
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s at offset %d", w.Kind, w.Token, w.Offset)
}

// Tokens returns the Token of each warning, in order.
func Tokens(warnings []Warning) []string {
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.Token
	}
	return out
}
