// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/alecthomas/participle/v2/lexer"

// InheritBody is the content of an inheritance construct invocation: a full
// enum declaration whose body may interleave ordinary variants with
// @inherit markers naming the supertypes whose variant sets are reused.
type InheritBody struct {
	Pos      lexer.Position
	Attrs    []*Attr         `@@*`
	Vis      *Visibility     `@@?`
	Name     string          `"enum" @Ident`
	Generics *Generics       `@@?`
	Where    *Where          `@@?`
	Entries  []*InheritEntry `"{" @@* "}"`
	EndPos   lexer.Position
}

// InheritEntry is one body segment: either an @inherit marker or a variant
// definition. Anything else is a parse error.
type InheritEntry struct {
	Pos     lexer.Position
	Inherit *string  `( "@" "inherit" @Ident ","?`
	Variant *Variant `| @@ )`
	EndPos  lexer.Position
}
