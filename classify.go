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

import "github.com/wdamron/projector/ast"

// MatchKind identifies which sugared form a node takes, if any.
type MatchKind int

const (
	NoMatch MatchKind = iota
	// Explicit type-lambda: `Lambda[(A, B) => F[A, B]]`
	ExplicitLambda
	// Application with placeholder arguments: `Either[?, Int]`
	PlaceholderApplication
)

func (k MatchKind) String() string {
	switch k {
	case ExplicitLambda:
		return "ExplicitLambda"
	case PlaceholderApplication:
		return "PlaceholderApplication"
	default:
		return "NoMatch"
	}
}

// Match is the result of classifying a node.
type Match struct {
	Kind MatchKind
	// Node is the matched application, or nil for NoMatch.
	Node *ast.Applied
	// Params holds the arrow operands declaring the parameters of an explicit lambda.
	Params []ast.Node
	// Body is the result operand of an explicit lambda's arrow.
	Body ast.Node
	// Placeholders holds the argument indexes of the placeholders in a placeholder application.
	Placeholders []int
}

// Classify matches n against the sugared forms. Explicit lambdas take precedence over
// placeholder applications.
func (c *Context) Classify(n ast.Node) Match {
	return classify(c.vocab, n)
}

func classify(v *Vocabulary, n ast.Node) Match {
	app, ok := n.(*ast.Applied)
	if !ok {
		return Match{}
	}

	if head, ok := app.Head.(*ast.Ident); ok && v.Role(head.Name) == RoleLambda && len(app.Args) == 1 {
		if arrow, ok := app.Args[0].(*ast.Applied); ok && ast.IsArrow(arrow) && len(arrow.Args) >= 2 {
			last := len(arrow.Args) - 1
			return Match{Kind: ExplicitLambda, Node: app, Params: arrow.Args[:last], Body: arrow.Args[last]}
		}
	}

	var indexes []int
	for i, arg := range app.Args {
		if _, ok := placeholderOf(v, arg); ok {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) == 0 {
		return Match{}
	}
	return Match{Kind: PlaceholderApplication, Node: app, Placeholders: indexes}
}

type placeholder struct {
	role Role
	// Arguments of a higher-kinded placeholder: `?[_]`
	nested []ast.Node
}

// placeholderOf recognizes `?`, `?[_, _]`, and `?[_] forSome { ... }` and their variant forms.
func placeholderOf(v *Vocabulary, n ast.Node) (placeholder, bool) {
	switch n := n.(type) {
	case *ast.Ident:
		if role := v.Role(n.Name); role.isPlaceholder() {
			return placeholder{role: role}, true
		}

	case *ast.Applied:
		head, ok := n.Head.(*ast.Ident)
		if !ok {
			break
		}
		if role := v.Role(head.Name); role.isPlaceholder() {
			return placeholder{role: role, nested: n.Args}, true
		}

	case *ast.Existential:
		switch inner := n.Inner.(type) {
		case *ast.Ident, *ast.Applied:
			return placeholderOf(v, inner)
		}
	}
	return placeholder{}, false
}
