// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"strconv"
	"strings"

	"github.com/golangee/astgen/ast"
)

// newEnumDecl converts a tagged enum item into its declaration node.
func newEnumDecl(item *ast.Item, raw string) *EnumDecl {
	e := item.Enum

	return &EnumDecl{
		Name:     e.Name,
		Generics: genericNames(e.Generics),
		Variants: variantDefs(e.Variants),
		attrs:    renderAttrs(item.Attrs),
		vis:      renderVis(item.Vis),
		where:    whereText(e.Where),
		raw:      raw,
	}
}

// newStructDecl converts a tagged struct item into its declaration node.
func newStructDecl(item *ast.Item, raw string) *StructDecl {
	s := item.Struct

	return &StructDecl{
		Name:     s.Name,
		Generics: genericNames(s.Generics),
		Fields:   fieldDefs(s.Fields),
		raw:      raw,
	}
}

func genericNames(g *ast.Generics) []string {
	if g == nil {
		return nil
	}

	var names []string
	for _, p := range g.Params {
		names = append(names, p.String())
	}

	return names
}

func variantDefs(variants []*ast.Variant) []VariantDef {
	var defs []VariantDef
	for _, v := range variants {
		defs = append(defs, variantDef(v))
	}

	return defs
}

func variantDef(v *ast.Variant) VariantDef {
	def := VariantDef{Name: v.Name}

	for _, t := range v.Tuple {
		def.Types = append(def.Types, t.String())
	}

	def.Fields = fieldDefs(v.Fields)

	if v.Disc != nil {
		def.Discriminant = *v.Disc
	}

	return def
}

func fieldDefs(fields []*ast.Field) []FieldDef {
	var defs []FieldDef
	for _, f := range fields {
		defs = append(defs, FieldDef{Name: f.Name, Type: f.Type.String()})
	}

	return defs
}

func renderAttrs(attrs []*ast.Attr) []string {
	var rendered []string
	for _, a := range attrs {
		rendered = append(rendered, renderAttr(a))
	}

	return rendered
}

// renderAttr rebuilds the source form of an outer attribute.
func renderAttr(a *ast.Attr) string {
	sb := &strings.Builder{}
	sb.WriteString("#[")
	sb.WriteString(strings.Join(a.Name, "::"))

	if a.Value != nil {
		sb.WriteString(" = ")
		sb.WriteString(strconv.Quote(*a.Value))
	}

	if a.Args != nil {
		sb.WriteByte('(')
		sb.WriteString(a.Args.String())
		sb.WriteByte(')')
	}

	sb.WriteByte(']')

	return sb.String()
}

// renderInnerAttr rebuilds the source form of a file-level attribute.
func renderInnerAttr(a *ast.InnerAttr) string {
	sb := &strings.Builder{}
	sb.WriteString("#![")
	sb.WriteString(strings.Join(a.Name, "::"))

	if a.Value != nil {
		sb.WriteString(" = ")
		sb.WriteString(strconv.Quote(*a.Value))
	}

	if a.Args != nil {
		sb.WriteByte('(')
		sb.WriteString(a.Args.String())
		sb.WriteByte(')')
	}

	sb.WriteByte(']')

	return sb.String()
}

func renderVis(v *ast.Visibility) string {
	if v == nil {
		return ""
	}

	if v.Scope != nil {
		return "pub(" + *v.Scope + ")"
	}

	return "pub"
}

func whereText(w *ast.Where) string {
	if w == nil {
		return ""
	}

	return w.String()
}

// hasAttr reports whether any of the attributes matches the given name.
func hasAttr(attrs []*ast.Attr, name string) bool {
	for _, a := range attrs {
		if a.Is(name) {
			return true
		}
	}

	return false
}
