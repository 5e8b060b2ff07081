package rewrite

import (
	"log/slog"

	"github.com/ardnew/subst/log"
	"github.com/ardnew/subst/tree"
)

// Engine performs literal substitution on syntax tree nodes.
//
// The engine holds no per-file state: every entry point re-flattens and
// re-ranks the configuration it is handed, so one Engine is safe to use
// concurrently across independent files as long as callers treat the
// Config as read-only.
type Engine struct {
	builder tree.LiteralBuilder
	logger  log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithBuilder sets the literal builder used to synthesize replacement
// nodes. The default is [tree.Builder].
func WithBuilder(b tree.LiteralBuilder) Option {
	return func(e *Engine) {
		e.builder = b
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine with the given options applied.
func New(opts ...Option) *Engine {
	e := &Engine{builder: tree.Builder{}}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// MemberAccess substitutes a member-access node whose dotted chain equals
// a candidate key. It reports whether a substitution was performed.
func (e *Engine) MemberAccess(c *tree.Cursor, cfg Config) bool {
	m, ok := c.Node().(*tree.Member)
	if !ok {
		return false
	}

	for _, cand := range rank(flatten(cfg)) {
		if matchMember(m, cand.key) {
			return e.substitute(c, cand)
		}
	}

	return false
}

// Identifier substitutes a bare identifier whose name equals a candidate
// key. It reports whether a substitution was performed.
func (e *Engine) Identifier(c *tree.Cursor, cfg Config) bool {
	id, ok := c.Node().(*tree.Ident)
	if !ok {
		return false
	}

	for _, cand := range rank(flatten(cfg)) {
		if matchIdent(id, cand.key) {
			return e.substitute(c, cand)
		}
	}

	return false
}

// UnaryTypeof substitutes a typeof expression whose argument matches a
// "typeof "-prefixed candidate key. It reports whether a substitution was
// performed.
func (e *Engine) UnaryTypeof(c *tree.Cursor, cfg Config) bool {
	u, ok := c.Node().(*tree.Unary)
	if !ok {
		return false
	}

	for _, cand := range rank(flatten(cfg)) {
		if matchTypeof(u, cand.key) {
			return e.substitute(c, cand)
		}
	}

	return false
}

// File walks a parsed file and dispatches every recognized node shape to
// the engine, returning the number of nodes rewritten. Nodes produced by a
// substitution are not re-visited.
func (e *Engine) File(f *tree.File, cfg Config) int {
	count := 0

	tree.Walk(f, func(c *tree.Cursor) bool {
		switch n := c.Node().(type) {
		case *tree.Import:
			if e.ImportDeclaration(n, cfg) {
				count++
			}

			return false

		case *tree.Member:
			if e.MemberAccess(c, cfg) {
				count++

				return false
			}

		case *tree.Ident:
			if e.Identifier(c, cfg) {
				count++

				return false
			}

		case *tree.Unary:
			if n.Op == "typeof" {
				if e.UnaryTypeof(c, cfg) {
					count++

					return false
				}

				// A bare identifier under typeof is a binding query,
				// not a value reference: substituting it would change
				// what typeof reports. Only a "typeof X" key may
				// rewrite the expression.
				if _, ok := n.Operand.(*tree.Ident); ok {
					return false
				}
			}
		}

		return true
	})

	e.logger.Debug("file rewritten", slog.Int("substitutions", count))

	return count
}
