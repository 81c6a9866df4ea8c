// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/golangee/astgen/parser"
)

// expandNode rewrites an inheritance construct placeholder into the enum
// declaration its body describes. Variants keep their encounter order, and so
// do the @inherit markers, which become unlinked supertype references. Nodes
// of any other kind are left untouched, which makes a second pass over an
// already expanded node set a no-op.
func expandNode(m *Module, id NodeID) error {
	mac, ok := m.nodes.node(id).(*MacroDecl)
	if !ok || mac.Name != InheritMacroName {
		return nil
	}

	body, err := parser.ParseInheritBody(m.path, mac.body)
	if err != nil {
		return fmt.Errorf("invalid %s body at %s:%d:%d: %w",
			InheritMacroName, m.path, mac.bodyPos.Line, mac.bodyPos.Column, err)
	}

	enum := &EnumDecl{
		Name:     body.Name,
		Generics: genericNames(body.Generics),
		attrs:    renderAttrs(body.Attrs),
		vis:      renderVis(body.Vis),
		where:    whereText(body.Where),
	}

	for _, entry := range body.Entries {
		switch {
		case entry.Inherit != nil:
			enum.Inherits = append(enum.Inherits, Unlinked(*entry.Inherit))
		case entry.Variant != nil:
			enum.Variants = append(enum.Variants, variantDef(entry.Variant))
		}
	}

	m.nodes.rewrite(id, enum)

	return nil
}
