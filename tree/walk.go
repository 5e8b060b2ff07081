package tree

// Cursor identifies a node's position during traversal and allows the
// visitor to swap a replacement node into the parent's slot. The original
// node is never mutated; ownership of the slot transfers to the replacement.
type Cursor struct {
	slot   *Node
	parent *Cursor
}

// Node returns the node currently occupying the cursor's slot.
func (c *Cursor) Node() Node {
	return *c.slot
}

// Parent returns the cursor of the enclosing node, or nil at the root.
func (c *Cursor) Parent() *Cursor {
	return c.parent
}

// Replace swaps n into the cursor's slot. The traversal does not descend
// into replaced nodes.
func (c *Cursor) Replace(n Node) {
	*c.slot = n
}

// Walk traverses root in depth-first pre-order, invoking visit at every
// node. If visit returns false, the node's children are skipped. Walk
// returns the (possibly replaced) root.
//
// Import declarations are visited but not descended into: their specifiers
// and source string are not free-standing expressions.
func Walk(root Node, visit func(*Cursor) bool) Node {
	slot := root
	walkSlot(&Cursor{slot: &slot}, visit)

	return slot
}

func walkSlot(c *Cursor, visit func(*Cursor) bool) {
	if *c.slot == nil {
		return
	}

	if !visit(c) {
		return
	}

	switch n := (*c.slot).(type) {
	case *File:
		for i := range n.Stmts {
			walkSlot(&Cursor{slot: &n.Stmts[i], parent: c}, visit)
		}

	case *ExprStmt:
		walkSlot(&Cursor{slot: &n.Expr, parent: c}, visit)

	case *Binary:
		walkSlot(&Cursor{slot: &n.Left, parent: c}, visit)
		walkSlot(&Cursor{slot: &n.Right, parent: c}, visit)

	case *Unary:
		walkSlot(&Cursor{slot: &n.Operand, parent: c}, visit)

	case *Member:
		walkSlot(&Cursor{slot: &n.Object, parent: c}, visit)

	case *Array:
		for i := range n.Elems {
			walkSlot(&Cursor{slot: &n.Elems[i], parent: c}, visit)
		}

	case *Object:
		for _, f := range n.Fields {
			walkSlot(&Cursor{slot: &f.Value, parent: c}, visit)
		}
	}
}
