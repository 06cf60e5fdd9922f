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

// construct provides terse constructors for building type-expression trees.
package construct

import "github.com/wdamron/projector/ast"

// Type identifier: `Int`
func Id(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

// Type identifiers: `A, B, C`
func Ids(names ...string) []ast.Node {
	ids := make([]ast.Node, len(names))
	for i, name := range names {
		ids[i] = Id(name)
	}
	return ids
}

// Type application: `Either[A, Int]`
func App(head ast.Node, args ...ast.Node) *ast.Applied {
	return &ast.Applied{Head: head, Args: args}
}

// Type application with a named head: `Either[A, Int]`
func AppN(head string, args ...ast.Node) *ast.Applied {
	return &ast.Applied{Head: Id(head), Args: args}
}

// Arrow: `A => B`, or `(A, B) => C` when more than two operands are given.
func Arrow(operands ...ast.Node) *ast.Applied {
	return &ast.Applied{Head: Id(ast.ArrowName), Args: operands}
}

// Explicit type-lambda: `Lambda[(A, B) => body]`
func Lambda(params []ast.Node, body ast.Node) *ast.Applied {
	return AppN("Lambda", Arrow(append(append([]ast.Node(nil), params...), body)...))
}

// Existential type: `F[_] forSome { ... }`
func Exists(inner ast.Node, constraints ...ast.Node) *ast.Existential {
	return &ast.Existential{Inner: inner, Constraints: constraints}
}

// Covariant parameter marker: `+[A]`
func Plus(name string) *ast.Applied {
	return AppN("+", Id(name))
}

// Contravariant parameter marker: `-[A]`
func Minus(name string) *ast.Applied {
	return AppN("-", Id(name))
}

// Type-parameter declaration: `F[_]`
func Param(name string, variance ast.Variance, params ...*ast.TypeParam) *ast.TypeParam {
	return &ast.TypeParam{Name: name, Params: params, Variance: variance}
}

// Structural aggregate: `trait Foo { ... }`
func Block(label string, children ...ast.Node) *ast.Container {
	return &ast.Container{Label: label, Children: children}
}

// At sets the position of n and returns it.
func At(n ast.Node, line, column int) ast.Node {
	pos := ast.Pos{Line: line, Column: column}
	switch n := n.(type) {
	case *ast.Ident:
		n.Pos = pos
	case *ast.Applied:
		n.Pos = pos
	case *ast.Existential:
		n.Pos = pos
	case *ast.TypeParam:
		n.Pos = pos
	case *ast.Projection:
		n.Pos = pos
	case *ast.Container:
		n.Pos = pos
	}
	return n
}
