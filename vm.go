package mathex

// VM is the symbol table consulted during simplification: a name-to-tree
// binding store. Bindings live in a linear association list; insertion
// replaces an existing binding by name, last write wins, no scoping. Both
// Insert and Lookup deep-copy so the store never aliases a caller's tree.
// A VM is owned by a single caller and is not safe for concurrent use.
type VM struct {
	symbols []binding
}

type binding struct {
	name string
	node *Node
}

// Insert binds name to a deep copy of n, replacing any existing binding.
func (vm *VM) Insert(name string, n *Node) {
	c := n.Copy()
	for i := range vm.symbols {
		if vm.symbols[i].name == name {
			vm.symbols[i].node = c
			return
		}
	}
	vm.symbols = append(vm.symbols, binding{name: name, node: c})
}

// Lookup returns a deep copy of the tree bound to name, or nil if the name
// is unbound. A nil VM has no bindings.
func (vm *VM) Lookup(name string) *Node {
	if vm == nil {
		return nil
	}
	for i := range vm.symbols {
		if vm.symbols[i].name == name {
			return vm.symbols[i].node.Copy()
		}
	}
	return nil
}
