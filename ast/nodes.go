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

import "strconv"

// Node is the base for all type-expression and syntax nodes.
type Node interface {
	// Name of the syntax-type of the node.
	NodeName() string
	// Position returns the source position the node was read from, if known.
	Position() Pos
}

var (
	_ Node = (*Ident)(nil)
	_ Node = (*Applied)(nil)
	_ Node = (*Existential)(nil)
	_ Node = (*TypeParam)(nil)
	_ Node = (*Projection)(nil)
	_ Node = (*Container)(nil)
)

// Pos is a location in a source file. The zero Pos is unknown.
type Pos struct {
	Filename string
	Line     int
	Column   int
}

// IsValid returns true if the position has line information.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		if p.Filename != "" {
			return p.Filename
		}
		return "-"
	}
	s := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
	if p.Filename != "" {
		return p.Filename + ":" + s
	}
	return s
}

// Type identifier: `Int`, `A`, `?`
type Ident struct {
	Name string
	Pos  Pos
}

// "Ident"
func (n *Ident) NodeName() string { return "Ident" }
func (n *Ident) Position() Pos    { return n.Pos }

// Type application: `Either[A, Int]`
//
// Arrows are applications of the arrow identifier: `(A, B) => C` is `=>[A, B, C]`.
type Applied struct {
	Head Node
	Args []Node
	Pos  Pos
}

// "Applied"
func (n *Applied) NodeName() string { return "Applied" }
func (n *Applied) Position() Pos    { return n.Pos }

// Existential type: `F[_] forSome { type _ }`
type Existential struct {
	Inner       Node
	Constraints []Node
	Pos         Pos
}

// "Existential"
func (n *Existential) NodeName() string { return "Existential" }
func (n *Existential) Position() Pos    { return n.Pos }

// Type-parameter declaration: `+A >: Nothing <: Any` or `F[_]`
type TypeParam struct {
	Name     string
	Params   []*TypeParam
	Variance Variance
	Bounds   Bounds
	Pos      Pos
}

// "TypeParam"
func (n *TypeParam) NodeName() string { return "TypeParam" }

// Position returns the position of the declaration. A nil declaration has no position.
func (n *TypeParam) Position() Pos {
	if n == nil {
		return Pos{}
	}
	return n.Pos
}

// Type projection out of an anonymous structural type: `({type Λ$[A] = Body})#Λ$`
//
// Member names the single type alias declared by the structural type.
// Params entries may be nil where a parameter could not be synthesized.
type Projection struct {
	Member string
	Params []*TypeParam
	Body   Node
	Pos    Pos
}

// "Projection"
func (n *Projection) NodeName() string { return "Projection" }
func (n *Projection) Position() Pos    { return n.Pos }

// Container is a structural aggregate (a class body, a template, a file) which holds
// type-expressions but is never itself rewritten.
type Container struct {
	Label    string
	Children []Node
	Pos      Pos
}

// "Container"
func (n *Container) NodeName() string { return "Container" }
func (n *Container) Position() Pos    { return n.Pos }

// Bounds of a type-parameter: `>: Lower <: Upper`
type Bounds struct {
	Lower Node
	Upper Node
}

// IsZero returns true if neither bound is set.
func (b Bounds) IsZero() bool { return b.Lower == nil && b.Upper == nil }

// Variance of a type-parameter.
type Variance int

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Covariant:
		return "Covariant"
	case Contravariant:
		return "Contravariant"
	default:
		return "Invariant"
	}
}

// Prefix returns the lexical marker for the variance: "+", "-", or "".
func (v Variance) Prefix() string {
	switch v {
	case Covariant:
		return "+"
	case Contravariant:
		return "-"
	default:
		return ""
	}
}

// ParseVariance strips a leading "+" or "-" from name and returns the remaining name
// along with the variance the prefix denotes. A lone "+" or "-" is not a prefix.
func ParseVariance(name string) (string, Variance) {
	if len(name) < 2 {
		return name, Invariant
	}
	switch name[0] {
	case '+':
		return name[1:], Covariant
	case '-':
		return name[1:], Contravariant
	}
	return name, Invariant
}
