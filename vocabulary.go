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

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/benbjohnson/immutable"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/projector/ast"
)

// Vocabulary is the set of reserved names recognized and introduced by the rewriter.
// None of the names may collide with identifiers used by the host program.
type Vocabulary struct {
	// Heads which introduce an explicit type-lambda: `Lambda[A => F[A]]`
	Lambdas []string `yaml:"lambdas,omitempty"`
	// Placeholder markers: `Either[?, Int]`
	Placeholder              string `yaml:"placeholder,omitempty"`
	CovariantPlaceholder     string `yaml:"covariant_placeholder,omitempty"`
	ContravariantPlaceholder string `yaml:"contravariant_placeholder,omitempty"`
	// Heads which mark the variance of a lambda parameter: `+[A]`, `-[A]`
	CovariantMarker     string `yaml:"covariant_marker,omitempty"`
	ContravariantMarker string `yaml:"contravariant_marker,omitempty"`
	// Name of the type alias declared inside each projection.
	Member string `yaml:"member,omitempty"`
	// Prefix of synthesized parameter names; the argument index is appended.
	FreshPrefix string `yaml:"fresh_prefix,omitempty"`
	// Universal bounds attached to every synthesized parameter.
	Bottom string `yaml:"bottom,omitempty"`
	Top    string `yaml:"top,omitempty"`

	roles *immutable.SortedMap
}

// Role of a reserved name.
type Role int

const (
	RoleNone Role = iota
	RoleLambda
	RolePlaceholder
	RoleCovariantPlaceholder
	RoleContravariantPlaceholder
	RoleCovariantMarker
	RoleContravariantMarker
)

// DefaultVocabulary returns the standard reserved names.
func DefaultVocabulary() *Vocabulary {
	v := &Vocabulary{
		Lambdas:                  []string{"Lambda", "λ"},
		Placeholder:              "?",
		CovariantPlaceholder:     "+?",
		ContravariantPlaceholder: "-?",
		CovariantMarker:          "+",
		ContravariantMarker:      "-",
		Member:                   "Λ$",
		FreshPrefix:              "X_kp",
		Bottom:                   "Nothing",
		Top:                      "Any",
	}
	if err := v.Validate(); err != nil {
		panic(err)
	}
	return v
}

// LoadVocabulary reads a YAML vocabulary file. Keys missing from the file keep their defaults.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary %s: %w", path, err)
	}
	return ParseVocabulary(data, path)
}

// ParseVocabulary parses YAML vocabulary content. The path is only used in error messages.
func ParseVocabulary(data []byte, path string) (*Vocabulary, error) {
	v := DefaultVocabulary()
	v.roles = nil
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Role returns the role of a reserved name, or RoleNone if the name is not reserved.
func (v *Vocabulary) Role(name string) Role {
	if v.roles == nil {
		return RoleNone
	}
	r, ok := v.roles.Get(name)
	if !ok {
		return RoleNone
	}
	return r.(Role)
}

// IsReserved returns true if the name is reserved by the vocabulary, including names in the
// fresh-name family.
func (v *Vocabulary) IsReserved(name string) bool {
	if v.Role(name) != RoleNone || name == v.Member {
		return true
	}
	_, ok := v.freshIndex(name)
	return ok
}

// FreshName returns the synthesized name for the parameter at argument index i.
func (v *Vocabulary) FreshName(i int) string {
	return v.FreshPrefix + strconv.Itoa(i)
}

func (v *Vocabulary) freshIndex(name string) (int, bool) {
	if len(name) <= len(v.FreshPrefix) || name[:len(v.FreshPrefix)] != v.FreshPrefix {
		return 0, false
	}
	i, err := strconv.Atoi(name[len(v.FreshPrefix):])
	return i, err == nil && i >= 0
}

// Variance returns the variance of a placeholder marker.
func (r Role) Variance() ast.Variance {
	switch r {
	case RoleCovariantPlaceholder, RoleCovariantMarker:
		return ast.Covariant
	case RoleContravariantPlaceholder, RoleContravariantMarker:
		return ast.Contravariant
	default:
		return ast.Invariant
	}
}

func (r Role) isPlaceholder() bool {
	return r == RolePlaceholder || r == RoleCovariantPlaceholder || r == RoleContravariantPlaceholder
}

// Validate checks that every reserved name is set and that no name is claimed by two roles,
// then indexes the names by role. A vocabulary must be validated before use; vocabularies
// returned by DefaultVocabulary, LoadVocabulary and ParseVocabulary are already validated.
func (v *Vocabulary) Validate() error {
	if len(v.Lambdas) == 0 {
		return errors.New("at least one lambda name is required")
	}
	required := []struct {
		key, name string
	}{
		{"placeholder", v.Placeholder},
		{"covariant_placeholder", v.CovariantPlaceholder},
		{"contravariant_placeholder", v.ContravariantPlaceholder},
		{"covariant_marker", v.CovariantMarker},
		{"contravariant_marker", v.ContravariantMarker},
		{"member", v.Member},
		{"fresh_prefix", v.FreshPrefix},
		{"bottom", v.Bottom},
		{"top", v.Top},
	}
	for _, r := range required {
		if r.name == "" {
			return fmt.Errorf("%s must not be empty", r.key)
		}
	}

	b := immutable.NewSortedMapBuilder(immutable.NewSortedMap(nil))
	add := func(name string, role Role) error {
		if name == "" {
			return errors.New("lambda names must not be empty")
		}
		if name == v.Member || name == ast.ArrowName {
			return fmt.Errorf("reserved name %q is used more than once", name)
		}
		if _, exists := b.Get(name); exists {
			return fmt.Errorf("reserved name %q is used more than once", name)
		}
		b.Set(name, role)
		return nil
	}
	for _, name := range v.Lambdas {
		if err := add(name, RoleLambda); err != nil {
			return err
		}
	}
	roles := []struct {
		name string
		role Role
	}{
		{v.Placeholder, RolePlaceholder},
		{v.CovariantPlaceholder, RoleCovariantPlaceholder},
		{v.ContravariantPlaceholder, RoleContravariantPlaceholder},
		{v.CovariantMarker, RoleCovariantMarker},
		{v.ContravariantMarker, RoleContravariantMarker},
	}
	for _, r := range roles {
		if err := add(r.name, r.role); err != nil {
			return err
		}
	}
	v.roles = b.Map()
	return nil
}
