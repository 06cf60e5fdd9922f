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

// CopyNode returns a deep copy of n. The copy shares no nodes or slices with n.
func CopyNode(n Node) Node {
	switch n := n.(type) {
	case *Ident:
		return &Ident{n.Name, n.Pos}

	case *Applied:
		return &Applied{CopyNode(n.Head), copyNodes(n.Args), n.Pos}

	case *Existential:
		return &Existential{CopyNode(n.Inner), copyNodes(n.Constraints), n.Pos}

	case *TypeParam:
		if n == nil {
			return (*TypeParam)(nil)
		}
		return CopyParam(n)

	case *Projection:
		return &Projection{n.Member, CopyParams(n.Params), CopyNode(n.Body), n.Pos}

	case *Container:
		return &Container{n.Label, copyNodes(n.Children), n.Pos}

	case nil:
		return nil
	}
	panic("unknown node type: " + n.NodeName())
}

// CopyParam returns a deep copy of a type-parameter declaration. A nil parameter is copied as nil.
func CopyParam(p *TypeParam) *TypeParam {
	if p == nil {
		return nil
	}
	return &TypeParam{p.Name, CopyParams(p.Params), p.Variance, CopyBounds(p.Bounds), p.Pos}
}

// CopyParams returns a deep copy of a list of type-parameter declarations.
func CopyParams(params []*TypeParam) []*TypeParam {
	if params == nil {
		return nil
	}
	next := make([]*TypeParam, len(params))
	for i, p := range params {
		next[i] = CopyParam(p)
	}
	return next
}

func CopyBounds(b Bounds) Bounds {
	return Bounds{CopyNode(b.Lower), CopyNode(b.Upper)}
}

func copyNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	next := make([]Node, len(nodes))
	for i, n := range nodes {
		next[i] = CopyNode(n)
	}
	return next
}
