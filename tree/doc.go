// Package tree defines the syntax tree that the substitution engine
// operates on, together with the collaborators the engine depends on:
//
//   - a parser for a small JS-like subset (import declarations and
//     expression statements) built on participle,
//   - a pre-order traversal ([Walk]) whose [Cursor] can replace the
//     visited node in its parent,
//   - a [LiteralBuilder] that converts Go values into literal nodes, and
//   - a formatter ([Format]) that renders trees back to source text.
//
// The engine in package subst never constructs or prints trees itself;
// it consumes these capabilities through their interfaces.
package tree
