package mathex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVMInsertLookup(t *testing.T) {
	opts := cmp.AllowUnexported(Node{}, Number{})
	vm := &VM{}
	if n := vm.Lookup("x"); n != nil {
		t.Errorf("empty VM returned %v for x", n)
	}

	bound := Op(OpAdd, Symbol("y"), Constant(Int(1)))
	vm.Insert("x", bound)
	got := vm.Lookup("x")
	if diff := cmp.Diff(bound, got, opts); diff != "" {
		t.Errorf("lookup x (-want +got):\n%s", diff)
	}

	// last write wins
	vm.Insert("x", Constant(Int(3)))
	got = vm.Lookup("x")
	if diff := cmp.Diff(Constant(Int(3)), got, opts); diff != "" {
		t.Errorf("rebound x (-want +got):\n%s", diff)
	}
	if len(vm.symbols) != 1 {
		t.Errorf("rebinding grew the table to %d entries", len(vm.symbols))
	}
}

func TestVMCopies(t *testing.T) {
	vm := &VM{}
	n := Constant(Int(1))
	vm.Insert("a", n)

	// mutating the inserted tree must not affect the binding
	n.num = Int(2)
	if got := vm.Lookup("a"); !got.num.Equal(Int(1)) {
		t.Errorf("binding aliases the inserted tree: %v", got)
	}

	// each lookup is an independent copy
	first := vm.Lookup("a")
	second := vm.Lookup("a")
	if first == second {
		t.Error("lookups returned the same pointer")
	}
	if first == vm.symbols[0].node {
		t.Error("lookup returned the stored tree itself")
	}
}

func TestVMNil(t *testing.T) {
	var vm *VM
	if n := vm.Lookup("x"); n != nil {
		t.Errorf("nil VM returned %v", n)
	}
}
