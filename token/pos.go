// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import "strconv"

// Node contains access to the start and end positions of a token.
type Node interface {
	Begin() Pos
	End() Pos
}

// A Pos describes a resolved position within a file.
type Pos struct {
	// File contains the file path as given to the parser.
	File string
	// Line denotes the one-based line number in the denoted File.
	Line int
	// Col denotes the one-based column number in the denoted Line.
	Col int
	// Offset is the zero-based byte offset into the file.
	Offset int
}

// String returns the content in the "file:line:col" format.
func (p Pos) String() string {
	return p.File + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

func (p Pos) Begin() Pos {
	return p
}

func (p Pos) End() Pos {
	return p
}

// NewNode returns a Node spanning the two given positions.
func NewNode(begin, end Pos) Node {
	return span{begin, end}
}

type span struct {
	begin, end Pos
}

func (s span) Begin() Pos {
	return s.begin
}

func (s span) End() Pos {
	return s.end
}
