package irgen

import "github.com/nyxlang/corec/internal/ast"

// Variable is one bridge variable: a named, typed slot a VarPtr
// instruction can address.
type Variable struct {
	Name string
	Type ast.Type
	ID   int
}

// VarScope is one node of the bridge variable scope tree
// (original_source/include/BRIDGE/bridge.h's bridge_var_scope_t):
// variables declared in an inner scope shadow same-named variables in an
// enclosing one, and Lookup walks outward until it finds a match.
type VarScope struct {
	parent *VarScope
	vars   map[string]*Variable
}

// Lookup searches s and its ancestors for a variable named name.
func (s *VarScope) Lookup(name string) (*Variable, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// OpenVarScope pushes a new, empty scope as a child of the builder's
// current one (open_var_scope).
func (b *Builder) OpenVarScope() {
	b.VarScope = &VarScope{parent: b.VarScope, vars: make(map[string]*Variable)}
}

// CloseVarScope pops the current scope, discarding the variables declared
// in it (close_var_scope).
func (b *Builder) CloseVarScope() {
	b.VarScope = b.VarScope.parent
}

// AddVariable declares a new variable in the builder's current scope,
// assigning it the next bridge variable id (add_variable).
func (b *Builder) AddVariable(name string, typ ast.Type) *Variable {
	v := &Variable{Name: name, Type: typ, ID: b.NextVarID}
	b.NextVarID++
	b.VarScope.vars[name] = v
	return v
}
