// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// RawBlock captures a brace-delimited token run without interpreting it,
// tracking nested braces. Pos is the opening brace, ClosePos the matching
// closing brace, so the enclosed source can be sliced verbatim from the input
// via the byte offsets.
type RawBlock struct {
	Pos      lexer.Position
	Tokens   []string
	ClosePos lexer.Position
}

func (r *RawBlock) Parse(lex *lexer.PeekingLexer) error {
	tok := lex.Peek()
	if tok.EOF() || tok.Value != "{" {
		return participle.NextMatch
	}

	r.Pos = tok.Pos
	lex.Next()

	depth := 1

	for {
		tok = lex.Next()
		if tok.EOF() {
			return fmt.Errorf("unterminated block starting at %s", r.Pos)
		}

		switch tok.Value {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				r.ClosePos = tok.Pos
				return nil
			}
		}

		r.Tokens = append(r.Tokens, tok.Value)
	}
}

// String joins the captured tokens back into a token-equivalent string.
func (r RawBlock) String() string {
	return joinTokens(r.Tokens)
}

// RawParens captures a parenthesized token run without interpreting it,
// tracking nested parentheses.
type RawParens struct {
	Pos      lexer.Position
	Tokens   []string
	ClosePos lexer.Position
}

func (r *RawParens) Parse(lex *lexer.PeekingLexer) error {
	tok := lex.Peek()
	if tok.EOF() || tok.Value != "(" {
		return participle.NextMatch
	}

	r.Pos = tok.Pos
	lex.Next()

	depth := 1

	for {
		tok = lex.Next()
		if tok.EOF() {
			return fmt.Errorf("unterminated parentheses starting at %s", r.Pos)
		}

		switch tok.Value {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				r.ClosePos = tok.Pos
				return nil
			}
		}

		r.Tokens = append(r.Tokens, tok.Value)
	}
}

// String joins the captured tokens back into a token-equivalent string.
func (r RawParens) String() string {
	return joinTokens(r.Tokens)
}

// RawUntilSemi captures tokens up to, but not including, the next semicolon
// at bracket depth zero. At least one token must be present.
type RawUntilSemi struct {
	Pos    lexer.Position
	Tokens []string
}

func (r *RawUntilSemi) Parse(lex *lexer.PeekingLexer) error {
	depth := 0

	for {
		tok := lex.Peek()
		if tok.EOF() {
			if len(r.Tokens) == 0 {
				return participle.NextMatch
			}

			return nil
		}

		if depth == 0 {
			switch tok.Value {
			case ";":
				if len(r.Tokens) == 0 {
					return participle.NextMatch
				}

				return nil
			case ")", "]", "}":
				// A stray closer ends the run, the surrounding
				// production reports the mismatch.
				if len(r.Tokens) == 0 {
					return participle.NextMatch
				}

				return nil
			}
		}

		switch tok.Value {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}

		if len(r.Tokens) == 0 {
			r.Pos = tok.Pos
		}

		r.Tokens = append(r.Tokens, lex.Next().Value)
	}
}

// String joins the captured tokens back into a token-equivalent string.
func (r RawUntilSemi) String() string {
	return joinTokens(r.Tokens)
}

// Where captures a where-clause opaquely: the where keyword followed by all
// tokens up to the opening brace of the declaration body.
type Where struct {
	Pos    lexer.Position
	Tokens []string
}

func (w *Where) Parse(lex *lexer.PeekingLexer) error {
	tok := lex.Peek()
	if tok.EOF() || tok.Value != "where" {
		return participle.NextMatch
	}

	w.Pos = tok.Pos
	lex.Next()

	depth := 0

	for {
		tok = lex.Peek()
		if tok.EOF() {
			return fmt.Errorf("unterminated where clause starting at %s", w.Pos)
		}

		if depth == 0 && tok.Value == "{" {
			return nil
		}

		switch tok.Value {
		case "(", "[", "<":
			depth++
		case ")", "]", ">":
			depth--
		}

		w.Tokens = append(w.Tokens, lex.Next().Value)
	}
}

// String renders the clause including the where keyword.
func (w Where) String() string {
	if len(w.Tokens) == 0 {
		return "where"
	}

	return "where " + joinTokens(w.Tokens)
}

// joinTokens glues token values back together with a minimal set of spacing
// rules, so that the result stays token-equivalent to the original source.
func joinTokens(toks []string) string {
	sb := &strings.Builder{}

	for i, tok := range toks {
		if i > 0 && needSpace(toks[i-1], tok) {
			sb.WriteByte(' ')
		}

		sb.WriteString(tok)
	}

	return sb.String()
}

func needSpace(prev, next string) bool {
	switch next {
	case ",", ";", ":", ")", "]", ">", "::", ".", "!", "?":
		return false
	}

	switch prev {
	case "(", "[", "<", "::", "&", ".", "#", "@", "!":
		return false
	}

	return true
}
