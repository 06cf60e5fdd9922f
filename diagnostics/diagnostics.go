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

// diagnostics provides the sink through which the rewriter reports problems with sugared
// type-expressions, along with a collector and a renderer for hosts.
package diagnostics

import (
	"strconv"
	"strings"
	"sync"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/projector/ast"
)

// Code is a stable identifier for a kind of diagnostic.
type Code string

const (
	// An argument of a type-lambda or placeholder application is not a recognized
	// type-parameter shape.
	CodeUnparseableSugarArgument Code = "UNPARSEABLE_SUGAR_ARGUMENT"
)

// Diagnostic is a problem reported at a source position.
type Diagnostic struct {
	Code    Code
	Pos     ast.Pos
	Message string
}

func (d Diagnostic) String() string {
	return d.Pos.String() + ": " + d.Message + " [" + string(d.Code) + "]"
}

// Reporter receives diagnostics during a rewrite.
//
// A Reporter shared between concurrent rewrites must be safe for concurrent use.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

var emptyList = immutable.NewList()

// List collects diagnostics in the order they are reported. A List is safe for concurrent use.
// The zero List is ready to use.
type List struct {
	mu sync.Mutex
	l  *immutable.List
}

// Report appends d to the list.
func (l *List) Report(d Diagnostic) {
	l.mu.Lock()
	if l.l == nil {
		l.l = emptyList
	}
	l.l = l.l.Append(d)
	l.mu.Unlock()
}

// Len returns the number of collected diagnostics.
func (l *List) Len() int {
	return l.snapshot().Len()
}

// Diagnostics returns the collected diagnostics. Reports made after the call are not included.
func (l *List) Diagnostics() []Diagnostic {
	snap := l.snapshot()
	ds := make([]Diagnostic, 0, snap.Len())
	iter := snap.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		ds = append(ds, v.(Diagnostic))
	}
	return ds
}

// Err returns an *Error holding the collected diagnostics, or nil if the list is empty.
func (l *List) Err() error {
	ds := l.Diagnostics()
	if len(ds) == 0 {
		return nil
	}
	return &Error{Diagnostics: ds}
}

func (l *List) snapshot() *immutable.List {
	l.mu.Lock()
	snap := l.l
	l.mu.Unlock()
	if snap == nil {
		return emptyList
	}
	return snap
}

// Error is returned to hosts when a rewrite reported diagnostics. The rewritten tree must
// not be used.
type Error struct {
	Diagnostics []Diagnostic
}

func (e *Error) Error() string {
	switch len(e.Diagnostics) {
	case 0:
		return "no diagnostics"
	case 1:
		return e.Diagnostics[0].String()
	}
	var sb strings.Builder
	sb.WriteString(e.Diagnostics[0].String())
	sb.WriteString(" (and ")
	sb.WriteString(strconv.Itoa(len(e.Diagnostics) - 1))
	sb.WriteString(" more)")
	return sb.String()
}
