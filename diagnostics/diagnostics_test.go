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

package diagnostics

import (
	"bytes"
	"sync"
	"testing"

	"github.com/wdamron/projector/ast"
)

func TestList(t *testing.T) {
	var l List
	if l.Len() != 0 || l.Err() != nil {
		t.Fatalf("expected empty list")
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Report(Diagnostic{Code: CodeUnparseableSugarArgument, Pos: ast.Pos{Line: i + 1}, Message: "bad"})
		}(i)
	}
	wg.Wait()

	if l.Len() != 32 {
		t.Fatalf("expected 32 diagnostics, found %d", l.Len())
	}
	lines := make(map[int]bool)
	for _, d := range l.Diagnostics() {
		lines[d.Pos.Line] = true
	}
	if len(lines) != 32 {
		t.Fatalf("expected distinct diagnostics, found %d", len(lines))
	}
}

func TestListSnapshot(t *testing.T) {
	var l List
	l.Report(Diagnostic{Message: "first"})
	snap := l.Diagnostics()
	l.Report(Diagnostic{Message: "second"})
	if len(snap) != 1 || l.Len() != 2 {
		t.Fatalf("snapshot: %v, list: %d", snap, l.Len())
	}
}

func TestError(t *testing.T) {
	var l List
	l.Report(Diagnostic{Code: CodeUnparseableSugarArgument, Pos: ast.Pos{Filename: "a.scala", Line: 2, Column: 5}, Message: "bad argument"})
	err := l.Err()
	if err == nil {
		t.Fatalf("expected error")
	}
	if s := err.Error(); s != "a.scala:2:5: bad argument [UNPARSEABLE_SUGAR_ARGUMENT]" {
		t.Fatalf("error: %s", s)
	}

	l.Report(Diagnostic{Code: CodeUnparseableSugarArgument, Message: "another"})
	l.Report(Diagnostic{Code: CodeUnparseableSugarArgument, Message: "another"})
	if s := l.Err().Error(); s != "a.scala:2:5: bad argument [UNPARSEABLE_SUGAR_ARGUMENT] (and 2 more)" {
		t.Fatalf("error: %s", s)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	ds := []Diagnostic{
		{Code: CodeUnparseableSugarArgument, Pos: ast.Pos{Line: 1, Column: 2}, Message: "one"},
		{Code: CodeUnparseableSugarArgument, Message: "two"},
	}
	if err := Fprint(&buf, ds); err != nil {
		t.Fatal(err)
	}
	want := "1:2: error: one [UNPARSEABLE_SUGAR_ARGUMENT]\n-: error: two [UNPARSEABLE_SUGAR_ARGUMENT]\n"
	if buf.String() != want {
		t.Fatalf("output: %q", buf.String())
	}
}

func TestReporterFunc(t *testing.T) {
	var got []Diagnostic
	var r Reporter = ReporterFunc(func(d Diagnostic) { got = append(got, d) })
	r.Report(Diagnostic{Message: "x"})
	if len(got) != 1 || got[0].Message != "x" {
		t.Fatalf("reported: %v", got)
	}
}
