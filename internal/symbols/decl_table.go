// Package symbols holds the declaration and trait tables produced by name
// resolution. Later passes treat a DeclTable as a read-only query surface;
// it is never mutated during analysis, so concurrent module-level passes may
// share one table.
package symbols

import (
	"github.com/lyra-lang/lyra/internal/session"
	"github.com/lyra-lang/lyra/internal/token"
)

// DeclKind classifies a declaration for const-context derivation.
type DeclKind int

const (
	DeclFunc DeclKind = iota
	DeclConst
	DeclStatic
)

// Decl is the resolved identity of a function, constant, or static
// declaration.
type Decl struct {
	Name  string
	Token token.Token
	Kind  DeclKind

	// ConstFn marks a function declared compile-time-evaluable.
	ConstFn bool

	// Trait names the trait this declaration belongs to, when it is a trait
	// method (a default body or an impl method resolved against a trait).
	// Empty for free declarations.
	Trait string

	// ConstUnstable marks a declaration that does not claim a stable const
	// surface under the staged-stability protocol.
	ConstUnstable bool

	// AllowConstUnstable lists the experimental capabilities this
	// declaration is explicitly permitted to use despite claiming a stable
	// const surface.
	AllowConstUnstable []session.Feature
}

// BelongsToTrait reports whether this declaration is owned by a trait
// definition.
func (d *Decl) BelongsToTrait() bool {
	return d != nil && d.Trait != ""
}

// AllowsConstUnstable reports whether the declaration's allow-list names the
// given capability.
func (d *Decl) AllowsConstUnstable(f session.Feature) bool {
	if d == nil {
		return false
	}
	for _, g := range d.AllowConstUnstable {
		if g == f {
			return true
		}
	}
	return false
}

// TraitMethodDef is one associated function of a trait, in definition order.
type TraitMethodDef struct {
	Name         string
	HasDefault   bool
	ConstDefault bool // default body certified compile-time-safe
}

// TraitDef is the resolved definition of a trait.
type TraitDef struct {
	Name    string
	Methods []*TraitMethodDef // definition order
}

// ImplDef records which trait methods an implementation overrides itself.
type ImplDef struct {
	Trait     string
	TypeName  string
	Overrides map[string]bool
}

// LeafNode is the result of ancestor resolution for one trait method: the
// nearest definition, and whether it came from the trait itself rather than
// the implementation.
type LeafNode struct {
	FromTrait bool
}

// DeclTable maps names to resolved declarations and traits. Population
// happens during name resolution; analysis passes only query it.
type DeclTable struct {
	decls  map[string]*Decl
	traits map[string]*TraitDef
	impls  map[string]*ImplDef
}

func NewDeclTable() *DeclTable {
	return &DeclTable{
		decls:  make(map[string]*Decl),
		traits: make(map[string]*TraitDef),
		impls:  make(map[string]*ImplDef),
	}
}

// Define registers a declaration, replacing any previous entry of the same
// name. Redefinition errors are the resolver's concern, not ours.
func (t *DeclTable) Define(d *Decl) {
	t.decls[d.Name] = d
}

// Lookup returns the declaration for name, or nil.
func (t *DeclTable) Lookup(name string) *Decl {
	return t.decls[name]
}

// DefineTrait registers a trait definition.
func (t *DeclTable) DefineTrait(td *TraitDef) {
	t.traits[td.Name] = td
}

// Trait returns the trait definition for name, or nil.
func (t *DeclTable) Trait(name string) *TraitDef {
	return t.traits[name]
}

// DefineImpl registers a trait implementation's own overrides.
func (t *DeclTable) DefineImpl(im *ImplDef) {
	t.impls[implKey(im.Trait, im.TypeName)] = im
}

// Impl returns the implementation of trait for typeName, or nil.
func (t *DeclTable) Impl(trait, typeName string) *ImplDef {
	return t.impls[implKey(trait, typeName)]
}

func implKey(trait, typeName string) string {
	return trait + "\x00" + typeName
}

// BodyConstContext returns the compile-time context a declaration's body is
// evaluated in, or ConstCtxNone for ordinary runtime code.
func (t *DeclTable) BodyConstContext(d *Decl) ConstContext {
	if d == nil {
		return ConstCtxNone
	}
	switch d.Kind {
	case DeclConst:
		return ConstCtxConst
	case DeclStatic:
		return ConstCtxStatic
	case DeclFunc:
		if d.ConstFn {
			return ConstCtxConstFn
		}
	}
	return ConstCtxNone
}

// LeafDef resolves, through the implementation's ancestry, where the given
// trait method is defined: on the implementation itself, or fallen back to
// the trait's default body. The second result is false when the method is
// not supplied anywhere.
func (t *DeclTable) LeafDef(trait, typeName, method string) (LeafNode, bool) {
	if im := t.Impl(trait, typeName); im != nil && im.Overrides[method] {
		return LeafNode{FromTrait: false}, true
	}
	td := t.Trait(trait)
	if td == nil {
		return LeafNode{}, false
	}
	for _, m := range td.Methods {
		if m.Name == method && m.HasDefault {
			return LeafNode{FromTrait: true}, true
		}
	}
	return LeafNode{}, false
}
