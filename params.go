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
	"github.com/wdamron/projector/ast"
	"github.com/wdamron/projector/diagnostics"
)

// Synthesize converts a single sugared parameter into a type-parameter declaration. The
// recognized shapes are:
//
//   A, +A, -A          (variance from the name prefix)
//   +[A], -[A]         (variance from the marker)
//   F[A, G[_]]         (higher-kinded, parameters synthesized recursively)
//   F[_] forSome {...} (higher-kinded, constraints discarded)
//
// Any other shape is reported to sink and nil is returned.
func (c *Context) Synthesize(arg ast.Node, sink diagnostics.Reporter) *ast.TypeParam {
	if sink == nil {
		sink = diagnostics.ReporterFunc(func(diagnostics.Diagnostic) {})
	}
	r := rewriter{vocab: c.vocab, sink: sink}
	return r.param(arg, ast.Pos{})
}

// param synthesizes a declaration for n; at is the position reported when n has none.
func (r *rewriter) param(n ast.Node, at ast.Pos) *ast.TypeParam {
	pos := at
	if n != nil {
		if p := n.Position(); p.IsValid() {
			pos = p
		}
	}

	switch n := n.(type) {
	case *ast.Ident:
		name, variance := ast.ParseVariance(n.Name)
		return r.newParam(name, nil, variance, pos)

	case *ast.Applied:
		head, ok := n.Head.(*ast.Ident)
		if !ok || head.Name == ast.ArrowName {
			break
		}
		switch role := r.vocab.Role(head.Name); role {
		case RoleCovariantMarker, RoleContravariantMarker:
			if len(n.Args) != 1 {
				break
			}
			if id, ok := n.Args[0].(*ast.Ident); ok {
				return r.newParam(id.Name, nil, role.Variance(), pos)
			}
		default:
			name, variance := ast.ParseVariance(head.Name)
			return r.newParam(name, r.params(n.Args, pos), variance, pos)
		}

	case *ast.Existential:
		inner, ok := n.Inner.(*ast.Applied)
		if !ok {
			break
		}
		head, ok := inner.Head.(*ast.Ident)
		if !ok || head.Name == ast.ArrowName {
			break
		}
		name, variance := ast.ParseVariance(head.Name)
		return r.newParam(name, r.params(inner.Args, pos), variance, pos)
	}

	r.sink.Report(diagnostics.Diagnostic{
		Code:    diagnostics.CodeUnparseableSugarArgument,
		Pos:     pos,
		Message: "unable to parse type parameter: " + ast.NodeString(n) + " (" + nodeName(n) + ")",
	})
	return nil
}

func (r *rewriter) params(ns []ast.Node, at ast.Pos) []*ast.TypeParam {
	if ns == nil {
		return nil
	}
	ps := make([]*ast.TypeParam, len(ns))
	for i, n := range ns {
		ps[i] = r.param(n, at)
	}
	return ps
}

// newParam declares a parameter with the universal bounds.
func (r *rewriter) newParam(name string, params []*ast.TypeParam, variance ast.Variance, pos ast.Pos) *ast.TypeParam {
	return &ast.TypeParam{
		Name:     name,
		Params:   params,
		Variance: variance,
		Bounds: ast.Bounds{
			Lower: &ast.Ident{Name: r.vocab.Bottom, Pos: pos},
			Upper: &ast.Ident{Name: r.vocab.Top, Pos: pos},
		},
		Pos: pos,
	}
}

func nodeName(n ast.Node) string {
	if n == nil {
		return "nil"
	}
	return n.NodeName()
}
