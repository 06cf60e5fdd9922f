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

// Context rewrites sugared type-expressions using a fixed vocabulary of reserved names.
//
// A context holds no per-rewrite state and may be used concurrently.
type Context struct {
	vocab *Vocabulary
}

// Option configures a Context.
type Option func(*Context)

// WithVocabulary sets the reserved names recognized and introduced by the context.
// The vocabulary must have been validated and must not be modified afterwards.
func WithVocabulary(v *Vocabulary) Option {
	return func(c *Context) { c.vocab = v }
}

// Create a new rewriting context. The default vocabulary is used unless another is given.
func NewContext(opts ...Option) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	if c.vocab == nil {
		c.vocab = DefaultVocabulary()
	}
	return c
}

var defaultContext = NewContext()

// Rewrite expands sugared type-expressions within root using the default vocabulary.
// See (*Context).Rewrite.
func Rewrite(root ast.Node, sink diagnostics.Reporter) ast.Node {
	return defaultContext.Rewrite(root, sink)
}

// Desugar expands sugared type-expressions within root using the default vocabulary.
// See (*Context).Desugar.
func Desugar(root ast.Node) (ast.Node, error) {
	return defaultContext.Desugar(root)
}

// Rewrite returns a copy of root in which every explicit type-lambda and every application
// containing placeholders has been expanded into a type projection. The input tree is not
// modified, and the returned tree shares no nodes with it.
//
// Problems are reported to sink in pre-order, and the rewrite continues past them. When any
// diagnostic has been reported, the returned tree contains nil parameters in place of the
// unparseable arguments and must not be used. If sink is nil, diagnostics are discarded.
func (c *Context) Rewrite(root ast.Node, sink diagnostics.Reporter) ast.Node {
	if sink == nil {
		sink = diagnostics.ReporterFunc(func(diagnostics.Diagnostic) {})
	}
	r := rewriter{vocab: c.vocab, sink: sink}
	return r.rewrite(root)
}

// Desugar rewrites root and collects any diagnostics. If diagnostics were reported, the
// rewritten tree is discarded and a *diagnostics.Error is returned.
func (c *Context) Desugar(root ast.Node) (ast.Node, error) {
	var ds diagnostics.List
	out := c.Rewrite(root, &ds)
	if err := ds.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rewriter struct {
	vocab *Vocabulary
	sink  diagnostics.Reporter
}

func (r *rewriter) rewrite(n ast.Node) ast.Node {
	if _, ok := n.(*ast.Container); !ok {
		switch m := classify(r.vocab, n); m.Kind {
		case ExplicitLambda:
			return r.lambda(m)
		case PlaceholderApplication:
			return r.placeholders(m)
		}
	}

	switch n := n.(type) {
	case *ast.Ident:
		return &ast.Ident{Name: n.Name, Pos: n.Pos}

	case *ast.Applied:
		return &ast.Applied{Head: r.rewrite(n.Head), Args: r.rewriteAll(n.Args), Pos: n.Pos}

	case *ast.Existential:
		return &ast.Existential{Inner: r.rewrite(n.Inner), Constraints: r.rewriteAll(n.Constraints), Pos: n.Pos}

	case *ast.TypeParam:
		if n == nil {
			return (*ast.TypeParam)(nil)
		}
		return r.typeParam(n)

	case *ast.Projection:
		return &ast.Projection{Member: n.Member, Params: r.typeParams(n.Params), Body: r.rewrite(n.Body), Pos: n.Pos}

	case *ast.Container:
		return &ast.Container{Label: n.Label, Children: r.rewriteAll(n.Children), Pos: n.Pos}

	case nil:
		return nil
	}
	panic("unknown node type: " + n.NodeName())
}

func (r *rewriter) rewriteAll(ns []ast.Node) []ast.Node {
	if ns == nil {
		return nil
	}
	next := make([]ast.Node, len(ns))
	for i, n := range ns {
		next[i] = r.rewrite(n)
	}
	return next
}

// Declared type-parameters are copied; only their bounds may contain sugar.
func (r *rewriter) typeParam(p *ast.TypeParam) *ast.TypeParam {
	if p == nil {
		return nil
	}
	return &ast.TypeParam{
		Name:     p.Name,
		Params:   r.typeParams(p.Params),
		Variance: p.Variance,
		Bounds:   ast.Bounds{Lower: r.rewrite(p.Bounds.Lower), Upper: r.rewrite(p.Bounds.Upper)},
		Pos:      p.Pos,
	}
}

func (r *rewriter) typeParams(ps []*ast.TypeParam) []*ast.TypeParam {
	if ps == nil {
		return nil
	}
	next := make([]*ast.TypeParam, len(ps))
	for i, p := range ps {
		next[i] = r.typeParam(p)
	}
	return next
}

// Lambda[(A, B) => F[A, B]] becomes ({type Λ$[A, B] = F[A, B]})#Λ$
func (r *rewriter) lambda(m Match) ast.Node {
	params := make([]*ast.TypeParam, len(m.Params))
	for i, p := range m.Params {
		params[i] = r.param(p, m.Node.Pos)
	}
	body := r.rewrite(m.Body)
	return BuildProjection(r.vocab.Member, params, body, m.Node.Pos)
}

// Either[?, Int] becomes ({type Λ$[X_kp0] = Either[X_kp0, Int]})#Λ$
func (r *rewriter) placeholders(m Match) ast.Node {
	app := m.Node
	head := r.rewrite(app.Head)
	args := make([]ast.Node, len(app.Args))
	var params []*ast.TypeParam
	for i, arg := range app.Args {
		ph, ok := placeholderOf(r.vocab, arg)
		if !ok {
			args[i] = r.rewrite(arg)
			continue
		}
		pos := arg.Position()
		if !pos.IsValid() {
			pos = app.Pos
		}
		name := r.vocab.FreshName(i)
		args[i] = &ast.Ident{Name: name, Pos: pos}
		params = append(params, r.newParam(name, r.params(ph.nested, pos), ph.role.Variance(), pos))
	}
	return BuildProjection(r.vocab.Member, params, &ast.Applied{Head: head, Args: args, Pos: app.Pos}, app.Pos)
}
