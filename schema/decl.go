// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package schema

import "github.com/alecthomas/participle/v2/lexer"

// Decl is one retained top-level declaration of a Module. The set of
// implementations is closed, consumers match on the concrete type.
type Decl interface {
	decl()
}

// EnumDecl is an enumerated type declaration that takes part in the schema.
// Inherits carries the supertype references declared through the inheritance
// construct, in source order.
type EnumDecl struct {
	Name     string
	Generics []string
	Variants []VariantDef
	Inherits []Inherit

	attrs []string
	vis   string
	where string
	raw   string
}

func (*EnumDecl) decl() {}

// StructDecl is a structure type declaration that takes part in the schema.
type StructDecl struct {
	Name     string
	Generics []string
	Fields   []FieldDef

	raw string
}

func (*StructDecl) decl() {}

// UseDecl is an import kept only for re-emission, it never appears in the
// built schema.
type UseDecl struct {
	raw string
}

func (*UseDecl) decl() {}

// ConstDecl is a constant kept only for re-emission, it never appears in the
// built schema.
type ConstDecl struct {
	Name string

	raw string
}

func (*ConstDecl) decl() {}

// MacroDecl is an unexpanded inheritance construct placeholder. Expansion
// rewrites the node into an EnumDecl.
type MacroDecl struct {
	Name string

	body    string
	bodyPos lexer.Position
	raw     string
}

func (*MacroDecl) decl() {}

// declName returns the identifier of a declaration, if it has one.
func declName(d Decl) (string, bool) {
	switch d := d.(type) {
	case *EnumDecl:
		return d.Name, true
	case *StructDecl:
		return d.Name, true
	case *ConstDecl:
		return d.Name, true
	case *MacroDecl:
		return d.Name, true
	case *UseDecl:
		return "", false
	}

	return "", false
}
