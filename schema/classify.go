// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"strings"

	"github.com/golangee/astgen/ast"
)

const (
	// VisitedNodeAttr tags enum and struct declarations that take part in
	// schema extraction. Untagged type declarations are dropped silently.
	VisitedNodeAttr = "visited_node"

	// InheritMacroName is the reserved name of the inheritance construct.
	// Invocations of any other macro are dropped silently.
	InheritMacroName = "inherit_variants"
)

// classify filters the parsed items down to the declaration nodes relevant to
// schema extraction and allocates them in source order:
//
//   - use and const declarations pass through unconditionally, they may be
//     needed by the regenerated file but never appear in the schema;
//   - inheritance construct invocations become placeholders for expansion;
//   - enum and struct declarations are kept only when tagged as visited nodes.
//
// Everything else is dropped. A kept item that cannot be converted fails the
// whole load.
func classify(src string, file *ast.File, nodes *arena) ([]NodeID, error) {
	var items []NodeID

	for _, item := range file.Items {
		raw := itemRaw(src, item)

		var d Decl

		switch {
		case item.Use != nil:
			d = &UseDecl{raw: raw}
		case item.Const != nil:
			d = &ConstDecl{Name: item.Const.Name, raw: raw}
		case item.Macro != nil:
			if item.Macro.Name != InheritMacroName {
				continue
			}

			// The body braces carry exact offsets, so the body and the
			// full invocation can be sliced verbatim.
			body := src[item.Macro.Body.Pos.Offset+1 : item.Macro.Body.ClosePos.Offset]
			d = &MacroDecl{
				Name:    item.Macro.Name,
				body:    body,
				bodyPos: item.Macro.Body.Pos,
				raw:     strings.TrimSpace(src[item.Pos.Offset : item.Macro.Body.ClosePos.Offset+1]),
			}
		case item.Enum != nil:
			if !hasAttr(item.Attrs, VisitedNodeAttr) {
				continue
			}

			d = newEnumDecl(item, raw)
		case item.Struct != nil:
			if !hasAttr(item.Attrs, VisitedNodeAttr) {
				continue
			}

			d = newStructDecl(item, raw)
		case item.Alias != nil:
			continue
		default:
			return nil, fmt.Errorf("unsupported declaration at %s", item.Begin())
		}

		items = append(items, nodes.alloc(d))
	}

	return items, nil
}

// itemRaw slices the original source span of an item. The end position may
// point into the trivia behind the item, so the slice is trimmed.
func itemRaw(src string, item *ast.Item) string {
	begin := item.Pos.Offset
	end := item.EndPos.Offset

	if end > len(src) {
		end = len(src)
	}

	if begin < 0 || begin > end {
		return ""
	}

	return strings.TrimSpace(src[begin:end])
}
