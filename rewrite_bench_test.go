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

package projector_test

import (
	"testing"

	. "github.com/wdamron/projector"
	. "github.com/wdamron/projector/construct"

	"github.com/wdamron/projector/ast"
	"github.com/wdamron/projector/diagnostics"
)

func BenchmarkRewritePlaceholders(b *testing.B) {
	ctx := NewContext()
	expr := Block("trait Monad",
		AppN("Kleisli", Id("F"), Id("?"), Id("?")),
		AppN("Either", Id("String"), AppN("StateT", Id("?"), Id("Int"), Id("-?"))),
		AppN("Function1", Id("-?"), Id("+?")))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if out := ctx.Rewrite(expr, nil); out == nil {
			b.Fatal("nil output")
		}
	}
}

func BenchmarkRewriteLambdas(b *testing.B) {
	ctx := NewContext()
	expr := Block("trait Bifunctor",
		Lambda(Ids("A", "B"), AppN("Function2", Id("A"), Id("Int"), Id("B"))),
		Lambda([]ast.Node{AppN("F", Id("_")), Id("+A")}, AppN("EitherT", Id("F"), Id("A"), Id("?"))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		var ds diagnostics.List
		ctx.Rewrite(expr, &ds)
		if ds.Len() != 0 {
			b.Fatal(ds.Err())
		}
	}
}

func BenchmarkPassThrough(b *testing.B) {
	ctx := NewContext()
	expr := Block("object O")
	for i := 0; i < 32; i++ {
		expr.Children = append(expr.Children, AppN("Map", Id("String"), AppN("List", Id("Int"))))
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ctx.Rewrite(expr, nil)
	}
}
