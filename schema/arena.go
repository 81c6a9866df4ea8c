// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package schema

import "fmt"

// NodeID addresses a declaration node within a Module's arena. Holders keep
// the ID, never a copy of the node, so a rewrite of the slot is observed by
// every holder.
type NodeID int

// arena owns all declaration nodes of a Module. Slot content may be replaced
// exactly once, node identity (the ID) is stable across that rewrite.
type arena struct {
	slots     []Decl
	rewritten []bool
}

func (a *arena) alloc(d Decl) NodeID {
	a.slots = append(a.slots, d)
	a.rewritten = append(a.rewritten, false)

	return NodeID(len(a.slots) - 1)
}

func (a *arena) node(id NodeID) Decl {
	return a.slots[id]
}

// rewrite replaces the slot content in place. A second rewrite of the same
// slot is a programmer error.
func (a *arena) rewrite(id NodeID, d Decl) {
	if a.rewritten[id] {
		panic(fmt.Sprintf("schema: node %d rewritten twice", id))
	}

	a.slots[id] = d
	a.rewritten[id] = true
}

func (a *arena) len() int {
	return len(a.slots)
}
