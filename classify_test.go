// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package projector

import (
	"testing"

	. "github.com/wdamron/projector/construct"

	"github.com/wdamron/projector/ast"
	"github.com/wdamron/projector/diagnostics"
)

func TestClassify(t *testing.T) {
	ctx := NewContext()
	tests := []struct {
		node         ast.Node
		kind         MatchKind
		params       int
		placeholders []int
	}{
		{Lambda(Ids("A"), Id("A")), ExplicitLambda, 1, nil},
		{Lambda(Ids("A", "B", "C"), Id("A")), ExplicitLambda, 3, nil},
		{AppN("λ", Arrow(Id("A"), Id("A"))), ExplicitLambda, 1, nil},
		{AppN("Either", Id("?"), Id("Int")), PlaceholderApplication, 0, []int{0}},
		{AppN("Tuple3", Id("Int"), Id("+?"), AppN("-?", Id("_"))), PlaceholderApplication, 0, []int{1, 2}},
		{AppN("F", Exists(AppN("?", Id("_")), Id("_"))), PlaceholderApplication, 0, []int{0}},
		{AppN("Lambda", Id("?")), PlaceholderApplication, 0, []int{0}},
		{AppN("Lambda", Id("Int")), NoMatch, 0, nil},
		{AppN("Lambda", Arrow(Id("A"), Id("B")), Id("C")), NoMatch, 0, nil},
		{AppN("Either", Id("Int"), Id("String")), NoMatch, 0, nil},
		{AppN("Option", AppN("List", Id("?"))), NoMatch, 0, nil},
		{Id("?"), NoMatch, 0, nil},
		{Block("trait T", AppN("Either", Id("?"), Id("Int"))), NoMatch, 0, nil},
		{nil, NoMatch, 0, nil},
	}

	for _, test := range tests {
		m := ctx.Classify(test.node)
		if m.Kind != test.kind {
			t.Fatalf("%s: expected %s, found %s", ast.NodeString(test.node), test.kind, m.Kind)
		}
		if len(m.Params) != test.params {
			t.Fatalf("%s: expected %d params, found %d", ast.NodeString(test.node), test.params, len(m.Params))
		}
		if len(m.Placeholders) != len(test.placeholders) {
			t.Fatalf("%s: placeholders %v", ast.NodeString(test.node), m.Placeholders)
		}
		for i := range m.Placeholders {
			if m.Placeholders[i] != test.placeholders[i] {
				t.Fatalf("%s: placeholders %v", ast.NodeString(test.node), m.Placeholders)
			}
		}
	}
}

func TestClassifyLambdaBody(t *testing.T) {
	body := AppN("Function2", Id("A"), Id("Int"), Id("B"))
	m := NewContext().Classify(Lambda(Ids("A", "B"), body))
	if m.Body != ast.Node(body) {
		t.Fatalf("body: %s", ast.NodeString(m.Body))
	}
	if s := ast.NodeString(m.Params[0]) + ", " + ast.NodeString(m.Params[1]); s != "A, B" {
		t.Fatalf("params: %s", s)
	}
}

func TestSynthesize(t *testing.T) {
	ctx := NewContext()
	tests := []struct {
		arg      ast.Node
		param    string
		variance ast.Variance
	}{
		{Id("A"), "A", ast.Invariant},
		{Id("+A"), "A", ast.Covariant},
		{Id("-A"), "A", ast.Contravariant},
		{Plus("A"), "A", ast.Covariant},
		{Minus("+A"), "+A", ast.Contravariant},
		{AppN("F", Id("_")), "F[_]", ast.Invariant},
		{AppN("+F", Id("-A"), AppN("G", Id("_"))), "F[-A, G[_]]", ast.Covariant},
		{Exists(AppN("F", Id("_")), Id("_")), "F[_]", ast.Invariant},
	}

	for _, test := range tests {
		var ds diagnostics.List
		p := ctx.Synthesize(test.arg, &ds)
		if ds.Len() != 0 {
			t.Fatalf("%s: %v", ast.NodeString(test.arg), ds.Diagnostics())
		}
		if p.Variance != test.variance {
			t.Fatalf("%s: expected %s, found %s", ast.NodeString(test.arg), test.variance, p.Variance)
		}
		p.Variance = ast.Invariant
		if s := ast.NodeString(p); s != test.param {
			t.Fatalf("%s: expected %s, found %s", ast.NodeString(test.arg), test.param, s)
		}
		ast.WalkNode(p, func(n ast.Node) bool {
			if tp, ok := n.(*ast.TypeParam); ok {
				if s := ast.NodeString(tp.Bounds.Lower) + ".." + ast.NodeString(tp.Bounds.Upper); s != "Nothing..Any" {
					t.Fatalf("%s: bounds %s", ast.NodeString(test.arg), s)
				}
			}
			return true
		})
	}
}

func TestSynthesizeUnparseable(t *testing.T) {
	ctx := NewContext()
	args := []ast.Node{
		Arrow(Id("A"), Id("B")),
		App(AppN("F", Id("A")), Id("B")),
		AppN("+"),
		AppN("+", Id("A"), Id("B")),
		AppN("-", AppN("F", Id("_"))),
		Exists(Id("F")),
		Block("class C"),
		&ast.Projection{Member: "T", Params: []*ast.TypeParam{Param("A", ast.Invariant)}, Body: Id("A")},
		nil,
	}

	for _, arg := range args {
		var ds diagnostics.List
		if p := ctx.Synthesize(At(arg, 2, 4), &ds); p != nil {
			t.Fatalf("%s: expected nil, found %s", ast.NodeString(arg), ast.NodeString(p))
		}
		if ds.Len() != 1 {
			t.Fatalf("%s: expected 1 diagnostic, found %d", ast.NodeString(arg), ds.Len())
		}
		d := ds.Diagnostics()[0]
		if d.Code != diagnostics.CodeUnparseableSugarArgument {
			t.Fatalf("code: %s", d.Code)
		}
		if arg != nil && (d.Pos.Line != 2 || d.Pos.Column != 4) {
			t.Fatalf("%s: position %s", ast.NodeString(arg), d.Pos)
		}
	}
}

func TestBuildProjectionRequiresParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	BuildProjection("Λ$", nil, Id("Int"), ast.Pos{})
}
