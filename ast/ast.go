// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/golangee/astgen/token"
)

// File represents a single parsed definition file: an optional shebang line,
// file-level inner attributes and the ordered list of top-level items.
type File struct {
	Pos     lexer.Position
	Shebang *string      `@Shebang?`
	Attrs   []*InnerAttr `@@*`
	Items   []*Item      `@@*`
	EndPos  lexer.Position
}

// InnerAttr is a file-level attribute of the form #![name], #![name(args)]
// or #![name = "value"].
type InnerAttr struct {
	Pos    lexer.Position
	Name   []string   `InnerAttrOpen @Ident ("::" @Ident)*`
	Value  *string    `("=" @String)?`
	Args   *RawParens `@@? "]"`
	EndPos lexer.Position
}

// Attr is an outer attribute of the form #[name], #[name(args)] or
// #[name = "value"].
type Attr struct {
	Pos    lexer.Position
	Name   []string   `AttrOpen @Ident ("::" @Ident)*`
	Value  *string    `("=" @String)?`
	Args   *RawParens `@@? "]"`
	EndPos lexer.Position
}

// Is returns true if the attribute path equals the given name.
func (a *Attr) Is(name string) bool {
	return strings.Join(a.Name, "::") == name
}

// Item is one top-level declaration. Exactly one of the alternatives is set.
// Attributes and visibility are shared by all alternatives and therefore
// hoisted up here.
type Item struct {
	Pos    lexer.Position
	Attrs  []*Attr     `@@*`
	Vis    *Visibility `@@?`
	Use    *Use        `( @@`
	Const  *Const      `| @@`
	Enum   *Enum       `| @@`
	Struct *Struct     `| @@`
	Alias  *Alias      `| @@`
	Macro  *Macro      `| @@ )`
	EndPos lexer.Position
}

// Visibility is a pub marker with an optional restriction like pub(crate).
type Visibility struct {
	Pos    lexer.Position
	Scope  *string `"pub" ("(" @Ident ")")?`
	EndPos lexer.Position
}

// Use is an import declaration. The import tree is kept opaque, it is only
// ever re-emitted verbatim.
type Use struct {
	Pos    lexer.Position
	Tree   RawUntilSemi `"use" @@ ";"`
	EndPos lexer.Position
}

// Const is a constant declaration. The value expression is kept opaque.
type Const struct {
	Pos    lexer.Position
	Name   string       `"const" @Ident`
	Type   TypeRef      `":" @@`
	Value  RawUntilSemi `"=" @@ ";"`
	EndPos lexer.Position
}

// Macro is a macro invocation like name!{...}. The brace-delimited body is
// captured opaquely and parsed later, if at all.
type Macro struct {
	Pos    lexer.Position
	Name   string   `@Ident "!"`
	Body   RawBlock `@@`
	EndPos lexer.Position
}

// Alias is a type alias declaration.
type Alias struct {
	Pos      lexer.Position
	Name     string    `"type" @Ident`
	Generics *Generics `@@?`
	Target   TypeRef   `"=" @@ ";"`
	EndPos   lexer.Position
}

// Enum is an enumerated type declaration.
type Enum struct {
	Pos      lexer.Position
	Name     string     `"enum" @Ident`
	Generics *Generics  `@@?`
	Where    *Where     `@@?`
	Variants []*Variant `"{" @@* "}"`
	EndPos   lexer.Position
}

// Struct is a structure type declaration. A unit struct is terminated by a
// semicolon and has no fields.
type Struct struct {
	Pos      lexer.Position
	Name     string    `"struct" @Ident`
	Generics *Generics `@@?`
	Where    *Where    `@@?`
	Fields   []*Field  `( "{" @@* "}" | ";" )`
	EndPos   lexer.Position
}

// Field is a named and typed member of a struct or struct-variant.
type Field struct {
	Pos    lexer.Position
	Attrs  []*Attr     `@@*`
	Vis    *Visibility `@@?`
	Name   string      `@Ident ":"`
	Type   TypeRef     `@@ ","?`
	EndPos lexer.Position
}

// Variant is one alternative of an enum: a bare name, a tuple variant with
// positional types, a struct-variant with named fields, or a name with an
// explicit discriminant.
type Variant struct {
	Pos    lexer.Position
	Attrs  []*Attr   `@@*`
	Name   string    `@Ident`
	Tuple  []TypeRef `( "(" @@ ("," @@)* ")"`
	Fields []*Field  `| "{" @@* "}" )?`
	Disc   *string   `("=" @Int)? ","?`
	EndPos lexer.Position
}

// Generics is the parameter list of a generic declaration, e.g. <'a, T>.
type Generics struct {
	Pos    lexer.Position
	Params []GenericParam `"<" @@ ("," @@)* ">"`
	EndPos lexer.Position
}

// GenericParam is a single generic parameter, either a lifetime or a type name.
type GenericParam struct {
	Lifetime *string `  @Lifetime`
	Name     *string `| @Ident`
}

// String returns the parameter in source syntax.
func (g GenericParam) String() string {
	if g.Lifetime != nil {
		return *g.Lifetime
	}

	if g.Name != nil {
		return *g.Name
	}

	return ""
}

// TypeRef is a reference to a type, e.g. Expression, Vec<Statement> or
// &'a Box<'a, BindingPattern>.
type TypeRef struct {
	Pos      lexer.Position
	Ref      bool      `@"&"?`
	Lifetime *string   `@Lifetime?`
	Path     []string  `@Ident ("::" @Ident)*`
	Args     []TypeArg `("<" @@ ("," @@)* ">")?`
	EndPos   lexer.Position
}

// String renders the type reference back into source syntax.
func (t TypeRef) String() string {
	sb := &strings.Builder{}

	if t.Ref {
		sb.WriteByte('&')
	}

	if t.Lifetime != nil {
		sb.WriteString(*t.Lifetime)
		sb.WriteByte(' ')
	}

	sb.WriteString(strings.Join(t.Path, "::"))

	if len(t.Args) > 0 {
		sb.WriteByte('<')

		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(arg.String())
		}

		sb.WriteByte('>')
	}

	return sb.String()
}

// TypeArg is one generic argument: either a lifetime or a nested type.
type TypeArg struct {
	Lifetime *string  `  @Lifetime`
	Type     *TypeRef `| @@`
}

// String renders the argument back into source syntax.
func (a TypeArg) String() string {
	if a.Lifetime != nil {
		return *a.Lifetime
	}

	if a.Type != nil {
		return a.Type.String()
	}

	return ""
}

// wrapPos converts a participle position into our token position.
func wrapPos(pos lexer.Position) token.Pos {
	return token.Pos{
		File:   pos.Filename,
		Line:   pos.Line,
		Col:    pos.Column,
		Offset: pos.Offset,
	}
}

// Begin returns the start of the item.
func (i *Item) Begin() token.Pos {
	return wrapPos(i.Pos)
}

// End returns the position just behind the item.
func (i *Item) End() token.Pos {
	return wrapPos(i.EndPos)
}
