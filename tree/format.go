package tree

import (
	"strconv"
	"strings"
)

// Format renders a node back to source text. Statements are terminated with
// semicolons; files separate statements with newlines.
func Format(n Node) string {
	var b strings.Builder

	writeNode(&b, n)

	return b.String()
}

// operator precedence, higher binds tighter
func prec(op string) int {
	switch op {
	case "||":
		return 1
	case "&&":
		return 2
	case "===", "!==", "==", "!=", "<", ">", "<=", ">=":
		return 3
	case "+":
		return 4
	default:
		return 5
	}
}

func writeNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *File:
		for i, stmt := range v.Stmts {
			if i > 0 {
				b.WriteByte('\n')
			}

			writeNode(b, stmt)
		}

		if len(v.Stmts) > 0 {
			b.WriteByte('\n')
		}

	case *ExprStmt:
		writeExpr(b, v.Expr, 0)
		b.WriteByte(';')

	case *Import:
		writeImport(b, v)

	default:
		writeExpr(b, n, 0)
	}
}

func writeImport(b *strings.Builder, decl *Import) {
	b.WriteString("import ")

	if decl.Default != "" {
		b.WriteString(decl.Default)

		if len(decl.Specs) > 0 {
			b.WriteString(", ")
		}
	}

	if len(decl.Specs) > 0 {
		b.WriteString("{ ")

		for i, s := range decl.Specs {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(s.Imported)

			if s.Local != "" && s.Local != s.Imported {
				b.WriteString(" as ")
				b.WriteString(s.Local)
			}
		}

		b.WriteString(" }")
	}

	if decl.Default != "" || len(decl.Specs) > 0 {
		b.WriteString(" from")
	}

	b.WriteByte(' ')
	writeExpr(b, decl.Source, 0)
	b.WriteByte(';')
}

func writeExpr(b *strings.Builder, n Node, parentPrec int) {
	switch v := n.(type) {
	case *Ident:
		b.WriteString(v.Name)

	case *String:
		if v.Raw != "" {
			b.WriteString(v.Raw)
		} else {
			b.WriteString(strconv.Quote(v.Value))
		}

	case *Number:
		if v.Raw != "" {
			b.WriteString(v.Raw)
		} else {
			b.WriteString(strconv.FormatFloat(v.Value, 'f', -1, 64))
		}

	case *Bool:
		b.WriteString(strconv.FormatBool(v.Value))

	case *Null:
		b.WriteString("null")

	case *Array:
		b.WriteByte('[')

		for i, e := range v.Elems {
			if i > 0 {
				b.WriteString(", ")
			}

			writeExpr(b, e, 0)
		}

		b.WriteByte(']')

	case *Object:
		if len(v.Fields) == 0 {
			b.WriteString("{}")

			return
		}

		b.WriteString("{ ")

		for i, f := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(strconv.Quote(f.Name))
			b.WriteString(": ")
			writeExpr(b, f.Value, 0)
		}

		b.WriteString(" }")

	case *Member:
		writeExpr(b, v.Object, prec("."))
		b.WriteByte('.')
		b.WriteString(v.Property)

	case *Unary:
		b.WriteString(v.Op)

		if v.Op == "typeof" {
			b.WriteByte(' ')
		}

		writeExpr(b, v.Operand, prec("."))

	case *Binary:
		p := prec(v.Op)

		if p < parentPrec {
			b.WriteByte('(')
		}

		writeExpr(b, v.Left, p)
		b.WriteByte(' ')
		b.WriteString(v.Op)
		b.WriteByte(' ')
		writeExpr(b, v.Right, p+1)

		if p < parentPrec {
			b.WriteByte(')')
		}
	}
}
