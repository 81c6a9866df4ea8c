// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package schema

import "strings"

// renderDecl writes one declaration node in source syntax. Nodes still backed
// by their original source span are reproduced verbatim; enums synthesized by
// expansion are rendered structurally. Unlinked supertype references have no
// plain-enum syntax and are therefore not re-emitted.
func renderDecl(sb *strings.Builder, d Decl) {
	switch d := d.(type) {
	case *EnumDecl:
		if d.raw != "" {
			sb.WriteString(d.raw)
			return
		}

		renderEnum(sb, d)
	case *StructDecl:
		sb.WriteString(d.raw)
	case *UseDecl:
		sb.WriteString(d.raw)
	case *ConstDecl:
		sb.WriteString(d.raw)
	case *MacroDecl:
		sb.WriteString(d.raw)
	}
}

func renderEnum(sb *strings.Builder, d *EnumDecl) {
	for _, a := range d.attrs {
		sb.WriteString(a)
		sb.WriteByte('\n')
	}

	if d.vis != "" {
		sb.WriteString(d.vis)
		sb.WriteByte(' ')
	}

	sb.WriteString("enum ")
	sb.WriteString(d.Name)

	if len(d.Generics) > 0 {
		sb.WriteByte('<')
		sb.WriteString(strings.Join(d.Generics, ", "))
		sb.WriteByte('>')
	}

	if d.where != "" {
		sb.WriteByte(' ')
		sb.WriteString(d.where)
	}

	sb.WriteString(" {\n")

	for _, v := range d.Variants {
		sb.WriteString("    ")
		renderVariant(sb, v)
		sb.WriteString(",\n")
	}

	sb.WriteString("}")
}

func renderVariant(sb *strings.Builder, v VariantDef) {
	sb.WriteString(v.Name)

	if len(v.Types) > 0 {
		sb.WriteByte('(')
		sb.WriteString(strings.Join(v.Types, ", "))
		sb.WriteByte(')')
	}

	if len(v.Fields) > 0 {
		sb.WriteString(" { ")

		for i, f := range v.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(f.Name)
			sb.WriteString(": ")
			sb.WriteString(f.Type)
		}

		sb.WriteString(" }")
	}

	if v.Discriminant != "" {
		sb.WriteString(" = ")
		sb.WriteString(v.Discriminant)
	}
}
