// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/golangee/astgen/ast"
)

// lexerDef tokenizes the definition language. Lowercase rules are elided from
// the token stream. Attribute openers are distinct tokens because a shebang
// line and an inner attribute share the same prefix.
var lexerDef = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},
	{Name: "Shebang", Pattern: `#![^\[\n][^\n]*`},
	{Name: "InnerAttrOpen", Pattern: `#!\[`},
	{Name: "AttrOpen", Pattern: `#\[`},
	{Name: "Lifetime", Pattern: `'[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `::|->|[-\[\](){}<>=,;:&*!.@|#+/]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var fileParser = participle.MustBuild[ast.File](
	participle.Lexer(lexerDef),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

var inheritParser = participle.MustBuild[ast.InheritBody](
	participle.Lexer(lexerDef),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Parse turns the raw text of a definition file into its file tree. The
// returned error is a participle error carrying the offending position.
func Parse(fname, src string) (*ast.File, error) {
	return fileParser.ParseString(fname, src)
}

// ParseInheritBody parses the body of an inheritance construct invocation.
// Positions in the returned tree and in errors are relative to the body, not
// to the enclosing file.
func ParseInheritBody(fname, body string) (*ast.InheritBody, error) {
	return inheritParser.ParseString(fname, body)
}
