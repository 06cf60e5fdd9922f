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

// projector expands type-lambda sugar into explicit type projections.
//
// Two sugared forms are recognized within a tree of type-expressions:
//
//   Lambda[(A, B) => Function2[A, Int, B]]   explicit type-lambdas (also written with λ)
//   Either[?, Int]                           applications with placeholders (?, +?, -?)
//
// Each occurrence is rewritten into a projection out of an anonymous structural type which
// declares a single parameterized type alias:
//
//   ({type Λ$[A, B] = Function2[A, Int, B]})#Λ$
//   ({type Λ$[X_kp0] = Either[X_kp0, Int]})#Λ$
//
// so a type-checker may accept partially-applied type constructors without any knowledge of
// the sugar.
//
//
// Supported Features:
//
//   * Variance from name prefixes (`+A`, `-A`) or markers (`+[A]`, `-[A]`, `+?`, `-?`)
//   * Higher-kinded parameters (`Lambda[F[_] => ...]`, `Foo[?[_]]`), including existential forms
//   * Curried arrow parameter lists (`Lambda[(A, B, C) => ...]`)
//   * Configurable reserved names, loaded from YAML
//   * Accumulated diagnostics: every unparseable argument in a tree is reported in one pass
//
//
// The rewriter only transforms syntax. It does not resolve or check the types it produces.
//
// Links:
//
// kind-projector (Scala compiler plugin): https://github.com/typelevel/kind-projector
//
// Type lambdas (Scala 3 reference): https://docs.scala-lang.org/scala3/reference/new-types/type-lambdas.html
package projector
