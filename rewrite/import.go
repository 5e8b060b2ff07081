package rewrite

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/subst/tree"
)

// ImportDeclaration applies the two independent import substitutions in a
// fixed order: named specifier aliases are renamed first, then the module
// source path is rewritten. Either, both, or neither may apply. It reports
// whether the declaration was modified.
//
// Candidate keys for both substitutions are interpreted as regular
// expressions, enabling partial renames like "^old-pkg" matching inside
// "old-pkg/utils".
func (e *Engine) ImportDeclaration(decl *tree.Import, cfg Config) bool {
	cands := rank(flatten(cfg))

	changed := e.renameAliases(decl, cands)
	if e.rewriteSource(decl, cands) {
		changed = true
	}

	return changed
}

// renameAliases rewrites the imported name of every named specifier that
// matches a candidate key. Each specifier is rewritten at most once per
// declaration: the rewritten set is local state of this call and never
// leaks across declarations. The local alias of an `x as y` specifier is
// preserved; shorthand specifiers keep both names consistent.
func (e *Engine) renameAliases(decl *tree.Import, cands []candidate) bool {
	rewritten := make(map[int]bool, len(decl.Specs))
	changed := false

	for _, cand := range cands {
		repl, ok := cand.value.(string)
		if !ok {
			continue
		}

		re := compilePattern(cand.key)
		if re == nil {
			continue
		}

		for i, spec := range decl.Specs {
			if rewritten[i] {
				continue
			}

			renamed, ok := replaceFirst(re, spec.Imported, repl)
			if !ok {
				continue
			}

			clone := &tree.Spec{Imported: renamed, Local: spec.Local}
			if spec.Local == spec.Imported {
				clone.Local = renamed
			}

			decl.Specs[i] = clone
			rewritten[i] = true
			changed = true

			e.logger.Trace(
				"rename import alias",
				slog.String("key", cand.key),
				slog.String("imported", renamed),
			)
		}
	}

	return changed
}

// rewriteSource replaces the first pattern occurrence in the module source
// with the bound value. The source literal is cloned before any mutation:
// downstream code may still hold the pre-rewrite node for diagnostics. The
// clone's raw text is re-derived from the new value using the original
// quoting so the two representations stay consistent.
func (e *Engine) rewriteSource(decl *tree.Import, cands []candidate) bool {
	if decl.Source == nil {
		return false
	}

	for _, cand := range cands {
		repl, ok := cand.value.(string)
		if !ok {
			continue
		}

		re := compilePattern(cand.key)
		if re == nil {
			continue
		}

		rewritten, ok := replaceFirst(re, decl.Source.Value, repl)
		if !ok {
			continue
		}

		clone := tree.Clone(decl.Source).(*tree.String)
		clone.Value = rewritten
		clone.Raw = requote(decl.Source.Raw, rewritten)

		decl.Source = clone

		e.logger.Trace(
			"rewrite import source",
			slog.String("key", cand.key),
			slog.String("source", rewritten),
		)

		return true
	}

	return false
}

// requote renders value using the quote style of the original raw text.
// Synthesized literals without raw text stay raw-less.
func requote(raw, value string) string {
	if raw == "" {
		return ""
	}

	if raw[0] == '\'' {
		quoted := strconv.Quote(value)
		body := quoted[1 : len(quoted)-1]

		// Inside single quotes, double quotes are plain text and single
		// quotes need escaping.
		body = strings.ReplaceAll(body, `\"`, `"`)
		body = strings.ReplaceAll(body, "'", `\'`)

		return "'" + body + "'"
	}

	return strconv.Quote(value)
}
