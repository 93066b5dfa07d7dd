package mathex

import (
	"strconv"
	"strings"
)

// OpKind identifies a binary arithmetic operation.
type OpKind int8

const (
	OpMul OpKind = iota
	OpDiv
	OpAdd
	OpSub
	OpExp
)

func (k OpKind) String() string {
	switch k {
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpExp:
		return "^"
	}
	return "OpKind(" + strconv.Itoa(int(k)) + ")"
}

// Node is a node in the abstract syntax tree of an expression. A node is one
// of four shapes: a binary operation, a constant, a symbol reference, or a
// function call. Children are exclusively owned; trees never share subtrees.
type Node struct {
	kind nodeKind

	op   OpKind
	num  Number
	name string

	left  *Node
	right *Node
	args  []*Node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeOp    // binary operation, left and right set
	nodeConst // numeric constant
	nodeSym   // symbol reference by name
	nodeCall  // function call, name and args set
)

// Op returns a binary operation node owning both children.
func Op(kind OpKind, left, right *Node) *Node {
	return &Node{kind: nodeOp, op: kind, left: left, right: right}
}

// Constant returns a constant node holding v.
func Constant(v Number) *Node {
	return &Node{kind: nodeConst, num: v}
}

// Symbol returns a symbol reference node.
func Symbol(name string) *Node {
	return &Node{kind: nodeSym, name: name}
}

// Call returns a function call node owning its arguments.
func Call(name string, args ...*Node) *Node {
	return &Node{kind: nodeCall, name: name, args: args}
}

// Copy returns a fully independent deep clone of the tree.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, op: n.op, num: n.num, name: n.name}
	c.left = n.left.Copy()
	c.right = n.right.Copy()
	if n.args != nil {
		c.args = make([]*Node, len(n.args))
		for i, a := range n.args {
			c.args[i] = a.Copy()
		}
	}
	return c
}

// String renders the tree in a parenthesized infix form: "(left OP right)"
// for operations and "name(arg, arg)" for calls.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeOp:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.op.String())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeConst:
		b.WriteString(n.num.String())
	case nodeSym:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	default:
		panic("mathex: invalid node kind " + strconv.Itoa(int(n.kind)) + " after writing " + b.String())
	}
}
