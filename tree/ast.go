package tree

// Node is implemented by every syntax tree node.
type Node interface {
	node()
}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
}

// String is a string literal. Raw holds the original quoted source text when
// the node was produced by the parser; it is empty for synthesized nodes, in
// which case the formatter derives the quoting from Value.
type String struct {
	Value string
	Raw   string
}

// Number is a numeric literal. Raw preserves the source spelling.
type Number struct {
	Value float64
	Raw   string
}

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

// Null is the null literal.
type Null struct{}

// Array is an array literal.
type Array struct {
	Elems []Node
}

// Field is a single key-value entry of an object literal.
type Field struct {
	Name  string
	Value Node
}

// Object is an object literal.
type Object struct {
	Fields []*Field
}

// Member is a dotted property access, e.g. process.env.NODE_ENV.
// Object is the receiver expression; Property is the accessed name.
type Member struct {
	Object   Node
	Property string
}

// Unary is a prefix unary expression, e.g. typeof window.
type Unary struct {
	Op      string
	Operand Node
}

// Binary is an infix binary expression, e.g. a === b.
type Binary struct {
	Op    string
	Left  Node
	Right Node
}

// Spec is a single named import specifier. Local equals Imported for
// shorthand specifiers without an alias.
type Spec struct {
	Imported string
	Local    string
}

// Import is an import declaration with an optional default binding,
// zero or more named specifiers, and a module source string.
type Import struct {
	Default string
	Specs   []*Spec
	Source  *String
}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	Expr Node
}

// File is the root of a parsed source file.
type File struct {
	Stmts []Node
}

func (*Ident) node()    {}
func (*String) node()   {}
func (*Number) node()   {}
func (*Bool) node()     {}
func (*Null) node()     {}
func (*Array) node()    {}
func (*Object) node()   {}
func (*Member) node()   {}
func (*Unary) node()    {}
func (*Binary) node()   {}
func (*Import) node()   {}
func (*ExprStmt) node() {}
func (*File) node()     {}

// Path returns the full dotted access chain of a member expression, e.g.
// "process.env.NODE_ENV". It reports false when the chain's base is not a
// plain identifier or nested member access.
func (m *Member) Path() (string, bool) {
	switch o := m.Object.(type) {
	case *Ident:
		return o.Name + "." + m.Property, true

	case *Member:
		base, ok := o.Path()
		if !ok {
			return "", false
		}

		return base + "." + m.Property, true

	default:
		return "", false
	}
}

// IsLiteral reports whether n is a literal node.
func IsLiteral(n Node) bool {
	switch n.(type) {
	case *String, *Number, *Bool, *Null, *Array, *Object:
		return true
	default:
		return false
	}
}

// ScalarValue returns the Go value of a scalar literal node.
// Composite literals (arrays, objects) are not statically comparable and
// report false.
func ScalarValue(n Node) (any, bool) {
	switch v := n.(type) {
	case *String:
		return v.Value, true

	case *Number:
		return v.Value, true

	case *Bool:
		return v.Value, true

	case *Null:
		return nil, true

	default:
		return nil, false
	}
}

// Clone returns a deep copy of n. A nil node clones to nil.
func Clone(n Node) Node {
	switch v := n.(type) {
	case nil:
		return nil

	case *Ident:
		c := *v

		return &c

	case *String:
		c := *v

		return &c

	case *Number:
		c := *v

		return &c

	case *Bool:
		c := *v

		return &c

	case *Null:
		return &Null{}

	case *Array:
		elems := make([]Node, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = Clone(e)
		}

		return &Array{Elems: elems}

	case *Object:
		fields := make([]*Field, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = &Field{Name: f.Name, Value: Clone(f.Value)}
		}

		return &Object{Fields: fields}

	case *Member:
		return &Member{Object: Clone(v.Object), Property: v.Property}

	case *Unary:
		return &Unary{Op: v.Op, Operand: Clone(v.Operand)}

	case *Binary:
		return &Binary{Op: v.Op, Left: Clone(v.Left), Right: Clone(v.Right)}

	case *Import:
		specs := make([]*Spec, len(v.Specs))
		for i, s := range v.Specs {
			c := *s
			specs[i] = &c
		}

		var src *String
		if v.Source != nil {
			c := *v.Source
			src = &c
		}

		return &Import{Default: v.Default, Specs: specs, Source: src}

	case *ExprStmt:
		return &ExprStmt{Expr: Clone(v.Expr)}

	case *File:
		stmts := make([]Node, len(v.Stmts))
		for i, s := range v.Stmts {
			stmts[i] = Clone(s)
		}

		return &File{Stmts: stmts}

	default:
		return n
	}
}
