// SPDX-FileCopyrightText: © 2021 The astgen authors <https://github.com/golangee/astgen/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/golangee/astgen/parser"
	"github.com/golangee/astgen/token"
)

var (
	// ErrNotLoaded is returned when Expand or Build is called on a Module
	// that has never been loaded. This is a programmer error at the call
	// site, not a data error.
	ErrNotLoaded = errors.New("module not loaded yet")

	// ErrNotExpanded is returned when Build is called before Expand, which
	// would silently drop unexpanded placeholders from the schema.
	ErrNotExpanded = errors.New("module not expanded yet")
)

type moduleState int

const (
	stateCreated moduleState = iota
	stateLoaded
	stateExpanded
	stateBuilt
)

// Module is the per-file unit of work. It progresses through the irreversible
// lifecycle Created, Loaded, Expanded, Built and must not be shared between
// goroutines.
type Module struct {
	name    string
	path    string
	shebang string
	attrs   []string
	src     string
	nodes   *arena
	items   []NodeID
	state   moduleState
}

// NewModule creates a Module in the Created state. The module name derives
// from the file's base name.
func NewModule(path string) *Module {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return &Module{
		name:  name,
		path:  path,
		nodes: &arena{},
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Path returns the originating file path.
func (m *Module) Path() string {
	return m.path
}

// DeclNames returns the identifiers of all retained declarations that have
// one, in source order.
func (m *Module) DeclNames() []string {
	var names []string

	for _, id := range m.items {
		if name, ok := declName(m.nodes.node(id)); ok {
			names = append(names, name)
		}
	}

	return names
}

// Load reads and parses the module's file and classifies its declarations.
// Loading the same Module twice is a programmer error and panics.
func (m *Module) Load() error {
	if m.state != stateCreated {
		panic("schema: module " + m.name + " loaded twice")
	}

	buf, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", m.path, err)
	}

	return m.loadSource(string(buf))
}

// loadSource parses the given source text and classifies its declarations.
// On any failure the Module stays in the Created state.
func (m *Module) loadSource(src string) error {
	if m.state != stateCreated {
		panic("schema: module " + m.name + " loaded twice")
	}

	file, err := parser.Parse(m.path, src)
	if err != nil {
		return syntaxError(m.path, err)
	}

	items, err := classify(src, file, m.nodes)
	if err != nil {
		return err
	}

	m.src = src
	if file.Shebang != nil {
		m.shebang = *file.Shebang
	}

	for _, a := range file.Attrs {
		m.attrs = append(m.attrs, renderInnerAttr(a))
	}

	m.items = items
	m.state = stateLoaded

	return nil
}

// Expand applies the inheritance expansion to every declaration node. It
// aborts on the first invalid construct body. Expanding an already expanded
// Module is a no-op, since no placeholder survives the first pass.
func (m *Module) Expand() error {
	if m.state == stateCreated {
		return ErrNotLoaded
	}

	for _, id := range m.items {
		if err := expandNode(m, id); err != nil {
			return err
		}
	}

	if m.state == stateLoaded {
		m.state = stateExpanded
	}

	return nil
}

// Build projects the declaration nodes into the exported Schema. Only enum
// and struct declarations survive, pass-through nodes are dropped. Build
// requires a prior Expand, otherwise unexpanded placeholders would silently
// vanish from the schema.
func (m *Module) Build() (*Schema, error) {
	switch m.state {
	case stateCreated:
		return nil, ErrNotLoaded
	case stateLoaded:
		return nil, ErrNotExpanded
	}

	defs := Definitions{Types: []TypeDef{}}

	for _, id := range m.items {
		if def, ok := typeDef(m.nodes.node(id)); ok {
			defs.Types = append(defs.Types, def)
		}
	}

	m.state = stateBuilt

	return &Schema{
		Version:     FormatVersion,
		Source:      m.path,
		Definitions: defs,
	}, nil
}

// WriteSource renders the module back into source syntax: the shebang line,
// the file-level attributes and every retained declaration. Called directly
// after Load this reproduces a token-equivalent form of the filtered file;
// called after Expand the inheritance placeholders appear in their expanded
// form.
func (m *Module) WriteSource(w io.Writer) error {
	if m.state == stateCreated {
		return ErrNotLoaded
	}

	sb := &strings.Builder{}

	if m.shebang != "" {
		sb.WriteString(m.shebang)
		sb.WriteByte('\n')
	}

	for _, a := range m.attrs {
		sb.WriteString(a)
		sb.WriteByte('\n')
	}

	if len(m.attrs) > 0 || m.shebang != "" {
		sb.WriteByte('\n')
	}

	for _, id := range m.items {
		renderDecl(sb, m.nodes.node(id))
		sb.WriteString("\n\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// syntaxError converts a parse failure into a positional error where the
// underlying parser provides a position.
func syntaxError(path string, err error) error {
	var perr participle.Error

	if errors.As(err, &perr) {
		pos := perr.Position()

		return token.NewPosError(token.Pos{
			File:   path,
			Line:   pos.Line,
			Col:    pos.Column,
			Offset: pos.Offset,
		}, perr.Message()).SetCause(err)
	}

	return fmt.Errorf("unable to parse %s: %w", path, err)
}
