package rewrite

import (
	"regexp"
	"strings"

	"github.com/ardnew/subst/tree"
)

// The matchers below decide whether one tree node corresponds to one
// candidate key. Each applies to a single syntactic shape; the engine
// commits to the first ranked key whose matcher reports true.

// matchMember reports whether the node's dotted access chain textually
// equals the candidate key.
func matchMember(m *tree.Member, key string) bool {
	path, ok := m.Path()

	return ok && path == key
}

// matchIdent reports whether the identifier's bound name equals the
// candidate key exactly.
func matchIdent(id *tree.Ident, key string) bool {
	return id.Name == key
}

// typeofCandidate derives the typeof-shape candidate from a configuration
// key by stripping its "typeof " prefix. Keys without the prefix are not
// considered for this shape.
func typeofCandidate(key string) (string, bool) {
	return strings.CutPrefix(key, "typeof ")
}

// matchTypeof reports whether the node is a typeof unary expression whose
// argument name equals the candidate derived from key.
func matchTypeof(u *tree.Unary, key string) bool {
	name, ok := typeofCandidate(key)
	if !ok || u.Op != "typeof" {
		return false
	}

	id, ok := u.Operand.(*tree.Ident)

	return ok && id.Name == name
}

// compilePattern interprets a candidate key as a regular expression, as
// the import matchers require. Malformed patterns are not an error; they
// simply never match.
func compilePattern(key string) *regexp.Regexp {
	re, err := regexp.Compile(key)
	if err != nil {
		return nil
	}

	return re
}

// replaceFirst substitutes repl for the first occurrence of re in s.
// It reports false when s does not match.
func replaceFirst(re *regexp.Regexp, s, repl string) (string, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, false
	}

	return s[:loc[0]] + repl + s[loc[1]:], true
}
