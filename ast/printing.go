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

package ast

import (
	"strings"
	"sync"
)

// ArrowName is the head of an arrow application: `A => B` is `=>[A, B]`.
const ArrowName = "=>"

var printerPool = sync.Pool{
	New: func() interface{} { return &nodePrinter{} },
}

type nodePrinter struct {
	sb     strings.Builder
	bounds bool
}

func newNodePrinter(bounds bool) *nodePrinter {
	p := printerPool.Get().(*nodePrinter)
	p.bounds = bounds
	return p
}

func (p *nodePrinter) String() string {
	s := p.sb.String()
	p.sb.Reset()
	printerPool.Put(p)
	return s
}

// NodeString returns a string representation of a node. Bounds of type-parameters are omitted.
func NodeString(n Node) string {
	p := newNodePrinter(false)
	p.node(false, n)
	return p.String()
}

// VerboseNodeString returns a string representation of a node, including the bounds of
// type-parameters.
func VerboseNodeString(n Node) string {
	p := newNodePrinter(true)
	p.node(false, n)
	return p.String()
}

// IsArrow returns true if n is an application of the arrow identifier.
func IsArrow(n Node) bool {
	app, ok := n.(*Applied)
	if !ok {
		return false
	}
	head, ok := app.Head.(*Ident)
	return ok && head.Name == ArrowName
}

func (p *nodePrinter) node(simple bool, n Node) {
	sb := &p.sb
	switch n := n.(type) {
	case *Ident:
		sb.WriteString(n.Name)

	case *Applied:
		if IsArrow(n) && len(n.Args) >= 2 {
			p.arrow(simple, n.Args)
			return
		}
		p.node(true, n.Head)
		sb.WriteByte('[')
		p.nodes(n.Args)
		sb.WriteByte(']')

	case *Existential:
		if simple {
			sb.WriteByte('(')
		}
		p.node(true, n.Inner)
		sb.WriteString(" forSome { ")
		for i, c := range n.Constraints {
			if i > 0 {
				sb.WriteString("; ")
			}
			p.node(false, c)
		}
		sb.WriteString(" }")
		if simple {
			sb.WriteByte(')')
		}

	case *TypeParam:
		p.param(n)

	case *Projection:
		sb.WriteString("({type ")
		sb.WriteString(n.Member)
		sb.WriteByte('[')
		p.params(n.Params)
		sb.WriteString("] = ")
		p.node(false, n.Body)
		sb.WriteString("})#")
		sb.WriteString(n.Member)

	case *Container:
		sb.WriteString(n.Label)
		sb.WriteString(" {")
		for i, child := range n.Children {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteByte(' ')
			p.node(false, child)
		}
		sb.WriteString(" }")

	case nil:
		sb.WriteString("<nil>")

	default:
		panic("unknown node type: " + n.NodeName())
	}
}

func (p *nodePrinter) nodes(ns []Node) {
	for i, n := range ns {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.node(false, n)
	}
}

func (p *nodePrinter) arrow(simple bool, operands []Node) {
	sb := &p.sb
	if simple {
		sb.WriteByte('(')
	}
	args, ret := operands[:len(operands)-1], operands[len(operands)-1]
	if len(args) == 1 && !IsArrow(args[0]) {
		p.node(true, args[0])
	} else {
		sb.WriteByte('(')
		p.nodes(args)
		sb.WriteByte(')')
	}
	sb.WriteString(" => ")
	p.node(false, ret)
	if simple {
		sb.WriteByte(')')
	}
}

func (p *nodePrinter) params(ps []*TypeParam) {
	for i, tp := range ps {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.param(tp)
	}
}

func (p *nodePrinter) param(tp *TypeParam) {
	sb := &p.sb
	if tp == nil {
		sb.WriteString("<error>")
		return
	}
	sb.WriteString(tp.Variance.Prefix())
	sb.WriteString(tp.Name)
	if len(tp.Params) > 0 {
		sb.WriteByte('[')
		p.params(tp.Params)
		sb.WriteByte(']')
	}
	if !p.bounds || tp.Bounds.IsZero() {
		return
	}
	if tp.Bounds.Lower != nil {
		sb.WriteString(" >: ")
		p.node(true, tp.Bounds.Lower)
	}
	if tp.Bounds.Upper != nil {
		sb.WriteString(" <: ")
		p.node(true, tp.Bounds.Upper)
	}
}
