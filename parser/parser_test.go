// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `#!/usr/bin/env astgen
#![allow(dead_code)]

use crate::ast::*;

const SPAN_SIZE: usize = 8;

#[visited_node]
#[derive(Debug)]
pub struct Program<'a> {
    pub body: Vec<Statement<'a>>,
    pub span: Span,
}

struct Scratch;

#[visited_node]
pub enum Statement<'a> {
    Block(Box<'a, BlockStatement<'a>>),
    Empty,
}

inherit_variants! {
#[visited_node]
pub enum Expression<'a> {
    BooleanLiteral(Box<'a, BooleanLiteral>),
    @inherit MemberExpression
}
}

type Shorthand = Program<'static>;
`

func TestParseFile(t *testing.T) {
	file, err := Parse("sample.astdl", sample)
	require.NoError(t, err)

	require.NotNil(t, file.Shebang)
	assert.Equal(t, "#!/usr/bin/env astgen", *file.Shebang)

	require.Len(t, file.Attrs, 1)
	assert.Equal(t, []string{"allow"}, file.Attrs[0].Name)
	require.NotNil(t, file.Attrs[0].Args)
	assert.Equal(t, "dead_code", file.Attrs[0].Args.String())

	require.Len(t, file.Items, 7)

	use := file.Items[0]
	require.NotNil(t, use.Use)
	assert.Equal(t, "crate::ast::*", use.Use.Tree.String())

	cnst := file.Items[1]
	require.NotNil(t, cnst.Const)
	assert.Equal(t, "SPAN_SIZE", cnst.Const.Name)
	assert.Equal(t, "usize", cnst.Const.Type.String())
	assert.Equal(t, "8", cnst.Const.Value.String())

	program := file.Items[2]
	require.NotNil(t, program.Struct)
	assert.Equal(t, "Program", program.Struct.Name)
	require.Len(t, program.Attrs, 2)
	assert.True(t, program.Attrs[0].Is("visited_node"))
	require.NotNil(t, program.Vis)
	require.NotNil(t, program.Struct.Generics)
	assert.Equal(t, "'a", program.Struct.Generics.Params[0].String())
	require.Len(t, program.Struct.Fields, 2)
	assert.Equal(t, "body", program.Struct.Fields[0].Name)
	assert.Equal(t, "Vec<Statement<'a>>", program.Struct.Fields[0].Type.String())

	scratch := file.Items[3]
	require.NotNil(t, scratch.Struct)
	assert.Empty(t, scratch.Attrs)
	assert.Empty(t, scratch.Struct.Fields)

	statement := file.Items[4]
	require.NotNil(t, statement.Enum)
	require.Len(t, statement.Enum.Variants, 2)
	assert.Equal(t, "Block", statement.Enum.Variants[0].Name)
	assert.Equal(t, "Box<'a, BlockStatement<'a>>", statement.Enum.Variants[0].Tuple[0].String())
	assert.Equal(t, "Empty", statement.Enum.Variants[1].Name)

	macro := file.Items[5]
	require.NotNil(t, macro.Macro)
	assert.Equal(t, "inherit_variants", macro.Macro.Name)

	body := sample[macro.Macro.Body.Pos.Offset+1 : macro.Macro.Body.ClosePos.Offset]
	assert.Contains(t, body, "@inherit MemberExpression")
	assert.Contains(t, body, "pub enum Expression<'a>")

	alias := file.Items[6]
	require.NotNil(t, alias.Alias)
	assert.Equal(t, "Shorthand", alias.Alias.Name)
}

func TestParseWhereClause(t *testing.T) {
	file, err := Parse("where.astdl", `#[visited_node] pub enum Wrap<T> where T: Clone { One(T) }`)
	require.NoError(t, err)

	require.Len(t, file.Items, 1)
	enum := file.Items[0].Enum
	require.NotNil(t, enum)
	require.NotNil(t, enum.Where)
	assert.Equal(t, "where T: Clone", enum.Where.String())
}

func TestParseVariantShapes(t *testing.T) {
	file, err := Parse("variants.astdl", `#[visited_node]
enum Kind {
    Unit,
    Tuple(A, B),
    Record { left: A, right: B },
    Tagged = 3,
}`)
	require.NoError(t, err)

	enum := file.Items[0].Enum
	require.NotNil(t, enum)
	require.Len(t, enum.Variants, 4)

	assert.Empty(t, enum.Variants[0].Tuple)
	assert.Len(t, enum.Variants[1].Tuple, 2)
	require.Len(t, enum.Variants[2].Fields, 2)
	assert.Equal(t, "left", enum.Variants[2].Fields[0].Name)
	require.NotNil(t, enum.Variants[3].Disc)
	assert.Equal(t, "3", *enum.Variants[3].Disc)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "garbage", text: `enum {`},
		{name: "unterminated macro", text: `inherit_variants! { enum Foo {`},
		{name: "missing semicolon", text: `use crate::ast`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.name+".astdl", tt.text)
			assert.Error(t, err)
		})
	}
}

func TestParseInheritBody(t *testing.T) {
	body, err := ParseInheritBody("expr.astdl", `
#[visited_node]
pub enum Expression<'a> {
    A,
    @inherit Bar,
    B(Box<'a, Thing>),
    @inherit Baz
}`)
	require.NoError(t, err)

	assert.Equal(t, "Expression", body.Name)
	require.Len(t, body.Entries, 4)

	require.NotNil(t, body.Entries[0].Variant)
	assert.Equal(t, "A", body.Entries[0].Variant.Name)

	require.NotNil(t, body.Entries[1].Inherit)
	assert.Equal(t, "Bar", *body.Entries[1].Inherit)

	require.NotNil(t, body.Entries[2].Variant)
	assert.Equal(t, "B", body.Entries[2].Variant.Name)

	require.NotNil(t, body.Entries[3].Inherit)
	assert.Equal(t, "Baz", *body.Entries[3].Inherit)
}

func TestParseInheritBodyRejectsUnknownMarker(t *testing.T) {
	_, err := ParseInheritBody("bad.astdl", `enum Foo { A, @foo }`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "@") || strings.Contains(err.Error(), "foo"))
}
