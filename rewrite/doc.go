// Package rewrite implements the matching-and-replacement engine behind the
// subst command: given a nested replacement configuration mapping symbolic
// names (an environment variable path, a global identifier, an imported
// symbol) to concrete values, it substitutes matching syntax tree nodes
// with literals and folds constant expressions that result.
//
// The engine exposes one entry point per recognized node shape
// ([Engine.MemberAccess], [Engine.Identifier], [Engine.UnaryTypeof],
// [Engine.ImportDeclaration]) for hosts that drive their own traversal,
// plus [Engine.File] for whole-file rewriting.
//
// Matching follows a most-specific-first policy: the configuration is
// flattened into dot-joined keys, ranked by descending key length with a
// stable discovery-order tiebreak, and the first key whose shape matcher
// accepts the node wins. Every visit re-derives the ranked keys from the
// configuration, so the engine carries no state between nodes or files.
package rewrite
