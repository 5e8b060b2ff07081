package rewrite

import (
	"log/slog"

	"github.com/expr-lang/expr"

	"github.com/ardnew/subst/tree"
)

// substitute replaces the node at c with a literal encoding the candidate's
// bound value, then attempts to fold the node's immediate parent.
func (e *Engine) substitute(c *tree.Cursor, cand candidate) bool {
	lit, err := e.builder.Literal(cand.value)
	if err != nil {
		e.logger.Warn(
			"skipping substitution",
			slog.Any("error", ErrBuildLiteral.Wrap(err)),
			slog.String("key", cand.key),
		)

		return false
	}

	c.Replace(lit)

	e.logger.Trace(
		"substitute",
		slog.String("key", cand.key),
	)

	e.foldParent(c.Parent())

	return true
}

// foldParent collapses a binary parent expression into a literal when both
// operands are statically known scalars. The cascade inspects exactly one
// parent level; folding any further is left to the host's subsequent
// passes.
//
// An evaluation that is not confident — composite operands, an unsupported
// operator, or a runtime type error — leaves the parent untouched.
func (e *Engine) foldParent(p *tree.Cursor) {
	if p == nil {
		return
	}

	bin, ok := p.Node().(*tree.Binary)
	if !ok {
		return
	}

	lhs, ok := tree.ScalarValue(bin.Left)
	if !ok {
		return
	}

	rhs, ok := tree.ScalarValue(bin.Right)
	if !ok {
		return
	}

	op, ok := exprOperator(bin.Op)
	if !ok {
		return
	}

	out, err := evaluate(op, lhs, rhs)
	if err != nil {
		e.logger.Trace(
			"fold not confident",
			slog.String("op", bin.Op),
			slog.Any("error", err),
		)

		return
	}

	lit, err := e.builder.Literal(out)
	if err != nil {
		return
	}

	p.Replace(lit)

	e.logger.Trace("fold parent", slog.String("op", bin.Op))
}

// exprOperator maps a source operator to its expr-lang equivalent. Strict
// equality collapses to plain equality: both operands are literals of
// known type, so the distinction carries no information here.
func exprOperator(op string) (string, bool) {
	switch op {
	case "===":
		return "==", true

	case "!==":
		return "!=", true

	case "==", "!=", "&&", "||", "+", "<", ">", "<=", ">=":
		return op, true

	default:
		return "", false
	}
}

// evaluate runs the folded expression through expr-lang with the operands
// bound as variables.
func evaluate(op string, lhs, rhs any) (any, error) {
	program, err := expr.Compile("lhs " + op + " rhs")
	if err != nil {
		return nil, err
	}

	return expr.Run(program, map[string]any{"lhs": lhs, "rhs": rhs})
}
