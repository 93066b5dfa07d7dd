package mathex

import "strconv"

// Value is the result of simplification: either a final Number, or a
// residual tree containing the symbols that could not be resolved.
type Value struct {
	num  Number
	node *Node
}

// NumberValue wraps a fully reduced Number.
func NumberValue(n Number) Value { return Value{num: n} }

// TreeValue wraps a residual tree.
func TreeValue(n *Node) Value { return Value{node: n} }

// IsNumber reports whether the value is a fully reduced Number.
func (v Value) IsNumber() bool { return v.node == nil }

// Number returns the reduced Number, if the value is one.
func (v Value) Number() (Number, bool) {
	return v.num, v.node == nil
}

// Node returns the residual tree, if the value is one.
func (v Value) Node() (*Node, bool) {
	return v.node, v.node != nil
}

func (v Value) String() string {
	if v.node != nil {
		return v.node.String()
	}
	return v.num.String()
}

// asNode re-boxes a pure number as a constant node for use in a residual
// tree.
func (v Value) asNode() *Node {
	if v.node != nil {
		return v.node
	}
	return Constant(v.num)
}

// Simplify reduces a tree as far as the VM's bindings allow. A closed tree
// reduces to a Number; a tree with unbound symbols comes back as a residual
// tree with every closed subtree folded to a constant. The input tree is
// never mutated or consumed, so the caller may keep using it. Any execution
// error aborts the whole call; no partial result accompanies an error.
//
// Recursion depth follows the nesting depth of the expression and is not
// checked; pathologically deep input can exhaust the stack.
func Simplify(n *Node, vm *VM) (Value, error) {
	switch n.kind {
	case nodeOp:
		left, err := Simplify(n.left, vm)
		if err != nil {
			return Value{}, err
		}
		right, err := Simplify(n.right, vm)
		if err != nil {
			return Value{}, err
		}
		ln, lok := left.Number()
		rn, rok := right.Number()
		if lok && rok {
			return NumberValue(applyOp(n.op, ln, rn)), nil
		}
		return TreeValue(Op(n.op, left.asNode(), right.asNode())), nil
	case nodeConst:
		return NumberValue(n.num), nil
	case nodeSym:
		// A bound symbol simplifies through its binding rather than
		// returning it verbatim: the bound tree may itself be reducible.
		bound := vm.Lookup(n.name)
		if bound == nil {
			return TreeValue(n.Copy()), nil
		}
		return Simplify(bound, vm)
	case nodeCall:
		fn := FindFunc(n.name)
		if fn == nil {
			return Value{}, &ExecutionError{Message: "function " + n.name + " not found"}
		}
		nums := make([]Number, 0, len(n.args))
		for i, arg := range n.args {
			v, err := Simplify(arg, vm)
			if err != nil {
				return Value{}, err
			}
			num, ok := v.Number()
			if !ok {
				// Residual call: arguments reduced so far become
				// constants, the rest are copied from the original
				// unevaluated. Stopping at the first irreducible
				// argument keeps the residual deterministic.
				args := make([]*Node, len(n.args))
				for j, m := range nums {
					args[j] = Constant(m)
				}
				for j := i; j < len(n.args); j++ {
					args[j] = n.args[j].Copy()
				}
				return TreeValue(Call(n.name, args...)), nil
			}
			nums = append(nums, num)
		}
		r, err := fn.Fn(nums)
		if err != nil {
			return Value{}, err
		}
		return NumberValue(r), nil
	}
	panic("mathex: invalid node kind " + strconv.Itoa(int(n.kind)))
}

func applyOp(op OpKind, l, r Number) Number {
	switch op {
	case OpMul:
		return l.Mul(r)
	case OpDiv:
		return l.Div(r)
	case OpAdd:
		return l.Add(r)
	case OpSub:
		return l.Sub(r)
	case OpExp:
		return l.Pow(r)
	}
	panic("mathex: invalid operation " + op.String())
}

// EvalString is a shortcut to lex, parse, and simplify a string expression.
func EvalString(src string, vm *VM) (Value, error) {
	n, err := ParseString(src)
	if err != nil {
		return Value{}, err
	}
	return Simplify(n, vm)
}
