// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrDetail is one annotated location belonging to a PosError.
type ErrDetail struct {
	Node    Node
	Message string
}

func NewErrDetail(node Node, msg string) ErrDetail {
	return ErrDetail{
		Node:    node,
		Message: msg,
	}
}

// PosError represents a positional error with enough context to render a
// helpful console message. Use Explain.
type PosError struct {
	Details []ErrDetail
	Cause   error
	Hint    string
}

// NewPosError creates a new PosError with the given primary location and message.
func NewPosError(node Node, msg string, details ...ErrDetail) *PosError {
	tmp := append([]ErrDetail{}, ErrDetail{
		Node:    node,
		Message: msg,
	})
	tmp = append(tmp, details...)

	return &PosError{
		Details: tmp,
	}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) SetHint(str string) *PosError {
	p.Hint = str
	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

func (p *PosError) firstDetail() ErrDetail {
	if len(p.Details) > 0 {
		return p.Details[0]
	}

	return ErrDetail{}
}

func (p *PosError) Error() string {
	first := p.firstDetail()

	msg := first.Message
	if first.Node != nil {
		msg = first.Node.Begin().String() + ": " + msg
	}

	if p.Cause == nil {
		return msg
	}

	return msg + ": " + p.Cause.Error()
}

// Explain returns a multi-line text suited to be printed into the console.
func (p *PosError) Explain() string {
	indent := 0

	for _, detail := range p.Details {
		l := len(strconv.Itoa(detail.Node.Begin().Line))
		if l > indent {
			indent = l
		}
	}

	sb := &strings.Builder{}

	for i, detail := range p.Details {
		lines := srcLines(detail.Node.Begin().File)
		line := posLine(lines, detail.Node.Begin())

		if i == 0 || detail.Node.Begin().File != p.Details[i-1].Node.Begin().File {
			sb.WriteString(detail.Node.Begin().String())
			sb.WriteString("\n")
		}

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d |", detail.Node.Begin().Line))
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(detail.Node.Begin().Col-1)+"s", ""))

		width := detail.Node.End().Col - detail.Node.Begin().Col
		if width <= 1 {
			sb.WriteString("^~~~ ")
		} else {
			for i := 0; i < width; i++ {
				sb.WriteRune('^')
			}

			sb.WriteRune(' ')
		}

		sb.WriteString(detail.Message)
		sb.WriteString("\n")
	}

	if p.Hint != "" {
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s = hint: %s\n", "", p.Hint))
	}

	return sb.String()
}

// srcLines loads the source behind the given file name. If the file cannot be
// read, no source lines are available and the caret rendering degrades to the
// position and message only.
func srcLines(fname string) []string {
	buf, err := os.ReadFile(fname)
	if err != nil {
		return nil
	}

	return strings.Split(string(buf), "\n")
}

// posLine returns the line from lines which fits to the given pos.
func posLine(lines []string, pos Pos) string {
	no := pos.Line - 1

	if no >= 0 && no < len(lines) {
		return lines[no]
	}

	return ""
}
