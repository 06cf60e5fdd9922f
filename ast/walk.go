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

// WalkNode visits n and every node beneath it in pre-order, left to right. Nested
// type-parameter declarations and bounds are visited after the declaring parameter.
// If f returns false, the children of the current node are skipped.
func WalkNode(n Node, f func(Node) bool) {
	switch n := n.(type) {
	case *Ident:
		f(n)

	case *Applied:
		if !f(n) {
			return
		}
		WalkNode(n.Head, f)
		for _, arg := range n.Args {
			WalkNode(arg, f)
		}

	case *Existential:
		if !f(n) {
			return
		}
		WalkNode(n.Inner, f)
		for _, c := range n.Constraints {
			WalkNode(c, f)
		}

	case *TypeParam:
		if n == nil {
			return
		}
		if !f(n) {
			return
		}
		walkParams(n.Params, f)
		walkBounds(n.Bounds, f)

	case *Projection:
		if !f(n) {
			return
		}
		walkParams(n.Params, f)
		WalkNode(n.Body, f)

	case *Container:
		if !f(n) {
			return
		}
		for _, child := range n.Children {
			WalkNode(child, f)
		}

	case nil:

	default:
		panic("unknown node type: " + n.NodeName())
	}
}

func walkParams(params []*TypeParam, f func(Node) bool) {
	for _, p := range params {
		if p != nil {
			WalkNode(p, f)
		}
	}
}

func walkBounds(b Bounds, f func(Node) bool) {
	if b.Lower != nil {
		WalkNode(b.Lower, f)
	}
	if b.Upper != nil {
		WalkNode(b.Upper, f)
	}
}

// CountNodes returns the number of nodes in the tree rooted at n.
func CountNodes(n Node) int {
	count := 0
	WalkNode(n, func(Node) bool {
		count++
		return true
	})
	return count
}
