package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrParse reports invalid source input.
var ErrParse = errors.New("parse error")

// The grammar below recognizes the subset of JS-like syntax that the
// substitution engine operates on: import declarations and expression
// statements built from identifiers, member access, typeof, and the
// common binary operators.

var sourceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
	{Name: "Operator", Pattern: `===|!==|==|!=|&&|\|\||<=|>=|[<>+!.]`},
	{Name: "Punct", Pattern: `[{}(),;]`},
	{Name: "Ident", Pattern: `[A-Za-z_$][A-Za-z0-9_$]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

//nolint:gochecknoglobals
var sourceParser = participle.MustBuild[fileGrammar](
	participle.Lexer(sourceLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

type fileGrammar struct {
	Stmts []*stmtGrammar `parser:"@@*"`
}

type stmtGrammar struct {
	Import *importGrammar `parser:"  @@ ';'?"`
	Expr   *exprGrammar   `parser:"| @@ ';'?"`
}

type importGrammar struct {
	Default string         `parser:"'import' ( @Ident ','? )?"`
	Specs   []*specGrammar `parser:"( '{' ( @@ ( ',' @@ )* ','? )? '}' )?"`
	Source  string         `parser:"'from' @String"`
}

type specGrammar struct {
	Imported string `parser:"@Ident"`
	Local    string `parser:"( 'as' @Ident )?"`
}

type exprGrammar struct {
	Left *andGrammar `parser:"@@"`
	Rest []*orOp     `parser:"@@*"`
}

type orOp struct {
	Op    string      `parser:"@'||'"`
	Right *andGrammar `parser:"@@"`
}

type andGrammar struct {
	Left *eqGrammar `parser:"@@"`
	Rest []*andOp   `parser:"@@*"`
}

type andOp struct {
	Op    string     `parser:"@'&&'"`
	Right *eqGrammar `parser:"@@"`
}

type eqGrammar struct {
	Left *addGrammar `parser:"@@"`
	Rest []*eqOp     `parser:"@@*"`
}

type eqOp struct {
	Op    string      `parser:"@('===' | '!==' | '==' | '!=' | '<=' | '>=' | '<' | '>')"`
	Right *addGrammar `parser:"@@"`
}

type addGrammar struct {
	Left *unaryGrammar `parser:"@@"`
	Rest []*addOp      `parser:"@@*"`
}

type addOp struct {
	Op    string        `parser:"@'+'"`
	Right *unaryGrammar `parser:"@@"`
}

type unaryGrammar struct {
	Op      string          `parser:"( @('typeof' | '!')"`
	Operand *unaryGrammar   `parser:"  @@ )"`
	Postfix *postfixGrammar `parser:"| @@"`
}

type postfixGrammar struct {
	Primary *primaryGrammar `parser:"@@"`
	Props   []string        `parser:"( '.' @Ident )*"`
}

type primaryGrammar struct {
	Str   *string      `parser:"  @String"`
	Num   *string      `parser:"| @Number"`
	True  bool         `parser:"| @'true'"`
	False bool         `parser:"| @'false'"`
	Null  bool         `parser:"| @'null'"`
	Ident *string      `parser:"| @Ident"`
	Paren *exprGrammar `parser:"| '(' @@ ')'"`
}

// Parse parses source text of the recognized JS-like subset into a File.
func Parse(input string) (*File, error) {
	g, err := sourceParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	file := &File{Stmts: make([]Node, 0, len(g.Stmts))}

	for _, s := range g.Stmts {
		file.Stmts = append(file.Stmts, s.toNode())
	}

	return file, nil
}

func (s *stmtGrammar) toNode() Node {
	if s.Import != nil {
		return s.Import.toNode()
	}

	return &ExprStmt{Expr: s.Expr.toNode()}
}

func (g *importGrammar) toNode() Node {
	specs := make([]*Spec, 0, len(g.Specs))

	for _, s := range g.Specs {
		local := s.Local
		if local == "" {
			local = s.Imported
		}

		specs = append(specs, &Spec{Imported: s.Imported, Local: local})
	}

	return &Import{
		Default: g.Default,
		Specs:   specs,
		Source:  &String{Value: unquote(g.Source), Raw: g.Source},
	}
}

func (g *exprGrammar) toNode() Node {
	n := g.Left.toNode()
	for _, op := range g.Rest {
		n = &Binary{Op: op.Op, Left: n, Right: op.Right.toNode()}
	}

	return n
}

func (g *andGrammar) toNode() Node {
	n := g.Left.toNode()
	for _, op := range g.Rest {
		n = &Binary{Op: op.Op, Left: n, Right: op.Right.toNode()}
	}

	return n
}

func (g *eqGrammar) toNode() Node {
	n := g.Left.toNode()
	for _, op := range g.Rest {
		n = &Binary{Op: op.Op, Left: n, Right: op.Right.toNode()}
	}

	return n
}

func (g *addGrammar) toNode() Node {
	n := g.Left.toNode()
	for _, op := range g.Rest {
		n = &Binary{Op: op.Op, Left: n, Right: op.Right.toNode()}
	}

	return n
}

func (g *unaryGrammar) toNode() Node {
	if g.Op != "" {
		return &Unary{Op: g.Op, Operand: g.Operand.toNode()}
	}

	return g.Postfix.toNode()
}

func (g *postfixGrammar) toNode() Node {
	n := g.Primary.toNode()
	for _, prop := range g.Props {
		n = &Member{Object: n, Property: prop}
	}

	return n
}

func (g *primaryGrammar) toNode() Node {
	switch {
	case g.Str != nil:
		return &String{Value: unquote(*g.Str), Raw: *g.Str}

	case g.Num != nil:
		f, _ := strconv.ParseFloat(*g.Num, 64)

		return &Number{Value: f, Raw: *g.Num}

	case g.True:
		return &Bool{Value: true}

	case g.False:
		return &Bool{Value: false}

	case g.Null:
		return &Null{}

	case g.Ident != nil:
		return &Ident{Name: *g.Ident}

	case g.Paren != nil:
		return g.Paren.toNode()

	default:
		return &Null{}
	}
}

// unquote strips the surrounding quotes from a string token and resolves
// the common escape sequences. Both single and double quoted forms are
// accepted.
func unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}

	body := raw[1 : len(raw)-1]

	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)

			continue
		}

		i++

		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(body[i])
		}
	}

	return b.String()
}
