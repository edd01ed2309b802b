package symbols

import (
	"testing"

	"github.com/lyra-lang/lyra/internal/session"
)

func TestBodyConstContext(t *testing.T) {
	table := NewDeclTable()
	cases := []struct {
		decl *Decl
		want ConstContext
	}{
		{nil, ConstCtxNone},
		{&Decl{Kind: DeclFunc}, ConstCtxNone},
		{&Decl{Kind: DeclFunc, ConstFn: true}, ConstCtxConstFn},
		{&Decl{Kind: DeclConst}, ConstCtxConst},
		{&Decl{Kind: DeclStatic}, ConstCtxStatic},
	}
	for _, tc := range cases {
		if got := table.BodyConstContext(tc.decl); got != tc.want {
			t.Errorf("BodyConstContext(%+v) = %v, want %v", tc.decl, got, tc.want)
		}
	}
}

func TestConstContextKeyword(t *testing.T) {
	cases := map[ConstContext]string{
		ConstCtxConstFn: "const fun",
		ConstCtxStatic:  "static",
		ConstCtxConst:   "const",
	}
	for ctx, want := range cases {
		if got := ctx.Keyword(); got != want {
			t.Errorf("Keyword(%v) = %q, want %q", ctx, got, want)
		}
	}
}

func TestDeclAllowsConstUnstable(t *testing.T) {
	d := &Decl{AllowConstUnstable: []session.Feature{session.FeatureConstFor}}
	if !d.AllowsConstUnstable(session.FeatureConstFor) {
		t.Error("expected listed capability allowed")
	}
	if d.AllowsConstUnstable(session.FeatureConstTry) {
		t.Error("expected unlisted capability rejected")
	}
	var nilDecl *Decl
	if nilDecl.AllowsConstUnstable(session.FeatureConstFor) || nilDecl.BelongsToTrait() {
		t.Error("nil decl must report nothing")
	}
}

func TestLeafDef(t *testing.T) {
	table := NewDeclTable()
	table.DefineTrait(&TraitDef{
		Name: "Show",
		Methods: []*TraitMethodDef{
			{Name: "fmt"},
			{Name: "show", HasDefault: true},
		},
	})
	table.DefineImpl(&ImplDef{Trait: "Show", TypeName: "Point", Overrides: map[string]bool{"fmt": true}})

	if leaf, ok := table.LeafDef("Show", "Point", "fmt"); !ok || leaf.FromTrait {
		t.Errorf("expected fmt resolved to the impl, got %+v ok=%v", leaf, ok)
	}
	if leaf, ok := table.LeafDef("Show", "Point", "show"); !ok || !leaf.FromTrait {
		t.Errorf("expected show resolved to the trait default, got %+v ok=%v", leaf, ok)
	}
	if _, ok := table.LeafDef("Show", "Point", "missing"); ok {
		t.Error("expected unknown method unresolved")
	}
	if _, ok := table.LeafDef("Eq", "Point", "eq"); ok {
		t.Error("expected unknown trait unresolved")
	}
}

func TestDefineReplaces(t *testing.T) {
	table := NewDeclTable()
	table.Define(&Decl{Name: "f", Kind: DeclFunc})
	table.Define(&Decl{Name: "f", Kind: DeclFunc, ConstFn: true})
	if d := table.Lookup("f"); d == nil || !d.ConstFn {
		t.Errorf("expected latest definition, got %+v", d)
	}
	if table.Lookup("g") != nil {
		t.Error("expected nil for unknown name")
	}
}
