package render

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HelperFunc transforms the string form of a variable.
type HelperFunc func(string) string

var helpers = map[string]HelperFunc{
	"capitalizeFirstLetter": CapitalizeFirstLetter,
}

// CapitalizeFirstLetter upper-cases the first character of s and leaves the
// rest unchanged.
func CapitalizeFirstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

// HelperNames lists the helpers templates may call.
func HelperNames() []string {
	names := make([]string, 0, len(helpers))
	for name := range helpers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
