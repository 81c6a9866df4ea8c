// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inheritSource = `
use crate::ast::*;

inherit_variants! {
#[visited_node]
pub enum Foo<'a> {
    A,
    @inherit Bar,
    B(Box<'a, Thing>),
    @inherit Baz
}
}
`

func TestExpandRewritesPlaceholder(t *testing.T) {
	m := NewModule("src/foo.astdl")
	require.NoError(t, m.loadSource(inheritSource))
	require.Len(t, m.items, 2)

	_, isMacro := m.nodes.node(m.items[1]).(*MacroDecl)
	assert.True(t, isMacro)

	require.NoError(t, m.Expand())

	enum, ok := m.nodes.node(m.items[1]).(*EnumDecl)
	require.True(t, ok, "placeholder must be rewritten in place")

	assert.Equal(t, "Foo", enum.Name)
	assert.Equal(t, []string{"'a"}, enum.Generics)

	// Variants and inherit markers keep their own encounter order
	// independently of how they interleave in the body.
	require.Len(t, enum.Variants, 2)
	assert.Equal(t, "A", enum.Variants[0].Name)
	assert.Equal(t, "B", enum.Variants[1].Name)

	require.Len(t, enum.Inherits, 2)
	assert.Equal(t, Unlinked("Bar"), enum.Inherits[0])
	assert.Equal(t, Unlinked("Baz"), enum.Inherits[1])
	assert.False(t, enum.Inherits[0].IsLinked())
}

func TestExpandIsIdempotent(t *testing.T) {
	m := NewModule("src/foo.astdl")
	require.NoError(t, m.loadSource(inheritSource))

	require.NoError(t, m.Expand())
	first := m.nodes.node(m.items[1])

	// Nothing matches anymore, the second pass must not rewrite.
	require.NoError(t, m.Expand())
	assert.Same(t, first, m.nodes.node(m.items[1]))
}

func TestExpandRejectsInvalidBody(t *testing.T) {
	bad := NewModule("src/bad.astdl")
	require.NoError(t, bad.loadSource(`
inherit_variants! {
pub enum Broken {
    A,
    @foo
}
}
`))

	err := bad.Expand()
	require.Error(t, err)
	assert.Contains(t, err.Error(), InheritMacroName)

	// A failing module leaves every other module untouched.
	good := NewModule("src/foo.astdl")
	require.NoError(t, good.loadSource(inheritSource))
	require.NoError(t, good.Expand())
}

func TestExpandedSchemaCarriesUnlinkedInherits(t *testing.T) {
	m := NewModule("src/foo.astdl")
	require.NoError(t, m.loadSource(inheritSource))
	require.NoError(t, m.Expand())

	s, err := m.Build()
	require.NoError(t, err)

	require.Len(t, s.Definitions.Types, 1)
	def := s.Definitions.Types[0]
	assert.Equal(t, "enum", def.Kind)
	assert.Equal(t, "Foo", def.Name)
	assert.Equal(t, []Inherit{Unlinked("Bar"), Unlinked("Baz")}, def.Inherits)
}

func TestExpandedEnumRendersStructurally(t *testing.T) {
	m := NewModule("src/foo.astdl")
	require.NoError(t, m.loadSource(inheritSource))
	require.NoError(t, m.Expand())

	sb := &strings.Builder{}
	require.NoError(t, m.WriteSource(sb))

	out := sb.String()
	assert.Contains(t, out, "use crate::ast::*;")
	assert.Contains(t, out, "#[visited_node]")
	assert.Contains(t, out, "pub enum Foo<'a> {")
	assert.Contains(t, out, "B(Box<'a, Thing>),")
	assert.NotContains(t, out, "inherit_variants!")
	assert.NotContains(t, out, "@inherit")
}

func TestArenaRejectsSecondRewrite(t *testing.T) {
	a := &arena{}
	id := a.alloc(&UseDecl{raw: "use x;"})

	a.rewrite(id, &UseDecl{raw: "use y;"})

	assert.Panics(t, func() {
		a.rewrite(id, &UseDecl{raw: "use z;"})
	})
}
