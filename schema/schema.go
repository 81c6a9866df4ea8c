// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package schema extracts an inheritance-aware type schema from annotated
// definition files. A Module drives the load, expand and build lifecycle over
// one file; the resulting Schema is the serializable artifact handed to a
// downstream code generator.
package schema

import "golang.org/x/mod/semver"

// FormatVersion is the schema artifact format version stamped into every
// built Schema. Downstream generators gate on it.
const FormatVersion = "v1"

// ValidFormatVersion reports whether v is an acceptable schema format
// version, i.e. a valid semantic version.
func ValidFormatVersion(v string) bool {
	return semver.IsValid(v)
}

// Schema is the exported, generation-ready view of one definition file. It
// contains only genuine type declarations, pass-through declarations are
// dropped. Inherits entries may still be unlinked, linking them is the job of
// a later stage with visibility over all modules.
type Schema struct {
	Version     string      `json:"version" yaml:"version"`
	Source      string      `json:"source" yaml:"source"`
	Definitions Definitions `json:"definitions" yaml:"definitions"`
}

// Definitions wraps the ordered list of type declarations of a Schema.
type Definitions struct {
	Types []TypeDef `json:"types" yaml:"types"`
}

// TypeDef is the serializable projection of a single type declaration.
type TypeDef struct {
	// Kind is either "enum" or "struct".
	Kind     string       `json:"kind" yaml:"kind"`
	Name     string       `json:"name" yaml:"name"`
	Generics []string     `json:"generics,omitempty" yaml:"generics,omitempty"`
	Variants []VariantDef `json:"variants,omitempty" yaml:"variants,omitempty"`
	Inherits []Inherit    `json:"inherits,omitempty" yaml:"inherits,omitempty"`
	Fields   []FieldDef   `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// VariantDef is one alternative of an enumerated type.
type VariantDef struct {
	Name string `json:"name" yaml:"name"`
	// Types holds the positional types of a tuple variant.
	Types []string `json:"types,omitempty" yaml:"types,omitempty"`
	// Fields holds the named members of a struct-variant.
	Fields []FieldDef `json:"fields,omitempty" yaml:"fields,omitempty"`
	// Discriminant is the explicit numeric value, if declared.
	Discriminant string `json:"discriminant,omitempty" yaml:"discriminant,omitempty"`
}

// FieldDef is a named and typed member of a struct or struct-variant.
type FieldDef struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Inherit is a reference to an enumerated supertype whose variant set is
// reused. It starts out unlinked, carrying the name only. A later
// cross-module linking stage resolves it into a linked reference that also
// carries the contributed variants. This package only ever produces unlinked
// references.
type Inherit struct {
	Super    string       `json:"super" yaml:"super"`
	Variants []VariantDef `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// Unlinked returns a symbolic reference to the named supertype.
func Unlinked(name string) Inherit {
	return Inherit{Super: name}
}

// Linked returns a resolved reference carrying the variant set the named
// supertype contributes. Reserved for the cross-module linking stage.
func Linked(name string, variants []VariantDef) Inherit {
	if variants == nil {
		variants = []VariantDef{}
	}

	return Inherit{Super: name, Variants: variants}
}

// IsLinked reports whether the reference has been resolved.
func (i Inherit) IsLinked() bool {
	return i.Variants != nil
}

// typeDef projects a declaration node into its schema form. Pass-through
// nodes have no schema form.
func typeDef(d Decl) (TypeDef, bool) {
	switch d := d.(type) {
	case *EnumDecl:
		return TypeDef{
			Kind:     "enum",
			Name:     d.Name,
			Generics: d.Generics,
			Variants: d.Variants,
			Inherits: d.Inherits,
		}, true
	case *StructDecl:
		return TypeDef{
			Kind:     "struct",
			Name:     d.Name,
			Generics: d.Generics,
			Fields:   d.Fields,
		}, true
	}

	return TypeDef{}, false
}
