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

// BuildProjection declares a type alias named member, parameterized by params and bound to
// body, inside an anonymous structural type, and projects the alias back out:
// `({type Λ$[params] = body})#Λ$`. The member name need not be unique, since every
// projection is its own scope.
//
// BuildProjection panics if params is empty.
func BuildProjection(member string, params []*ast.TypeParam, body ast.Node, pos ast.Pos) *ast.Projection {
	if len(params) == 0 {
		panic("projection requires at least one type-parameter")
	}
	return &ast.Projection{Member: member, Params: params, Body: body, Pos: pos}
}
