// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/netcodec/lib/codec"
	"github.com/bureau-foundation/netcodec/lib/value"
)

// TreeRenderer draws values as trees. The zero value is not usable;
// construct with [NewTreeRenderer].
type TreeRenderer struct {
	key     lipgloss.Style
	text    lipgloss.Style
	number  lipgloss.Style
	boolean lipgloss.Style
	null    lipgloss.Style
	branch  lipgloss.Style
	tag     lipgloss.Style
}

// NewTreeRenderer returns a renderer that emits ANSI256 colors when
// color is true and plain text otherwise.
func NewTreeRenderer(color bool) *TreeRenderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	// SetColorProfile is required because lipgloss re-detects the
	// profile from the environment unless it is set explicitly.
	renderer := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return &TreeRenderer{
		key:     renderer.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		text:    renderer.NewStyle().Foreground(lipgloss.Color("150")),
		number:  renderer.NewStyle().Foreground(lipgloss.Color("215")),
		boolean: renderer.NewStyle().Foreground(lipgloss.Color("204")),
		null:    renderer.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		branch:  renderer.NewStyle().Foreground(lipgloss.Color("240")),
		tag:     renderer.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

type treeLine struct {
	label string
	tag   string
}

// Render draws v. The root is labelled "$"; sequence items are
// labelled by index and mapping entries by key, in sorted order. Type
// tags are aligned in a column two cells right of the widest label.
func (r *TreeRenderer) Render(v value.Value) string {
	var lines []treeLine
	r.walk(&lines, "", "", r.key.Render("$"), v)

	width := 0
	for _, line := range lines {
		width = max(width, ansi.StringWidth(line.label))
	}

	var builder strings.Builder
	for i, line := range lines {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(line.label)
		builder.WriteString(strings.Repeat(" ", width-ansi.StringWidth(line.label)+2))
		builder.WriteString(r.tag.Render(line.tag))
	}
	return builder.String()
}

func (r *TreeRenderer) walk(lines *[]treeLine, indent, connector, name string, v value.Value) {
	label := indent + r.branch.Render(connector) + name
	switch v.Kind() {
	case value.KindSequence, value.KindMapping:
		*lines = append(*lines, treeLine{label: label, tag: fmt.Sprintf("%s(%d)", codec.WireTypeOf(v), v.Len())})
	default:
		*lines = append(*lines, treeLine{label: label + ": " + r.scalar(v), tag: typeName(v)})
		return
	}

	childIndent := indent
	switch connector {
	case "├─ ":
		childIndent += r.branch.Render("│  ")
	case "└─ ":
		childIndent += "   "
	}

	if v.Kind() == value.KindSequence {
		for i, item := range v.Items() {
			r.walk(lines, childIndent, connectorFor(i, v.Len()), r.key.Render("["+strconv.Itoa(i)+"]"), item)
		}
		return
	}
	keys := v.Keys()
	for i, key := range keys {
		entry, _ := v.Get(key)
		r.walk(lines, childIndent, connectorFor(i, len(keys)), r.key.Render(key), entry)
	}
}

func connectorFor(index, count int) string {
	if index == count-1 {
		return "└─ "
	}
	return "├─ "
}

func (r *TreeRenderer) scalar(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return r.null.Render("null")
	case value.KindBool:
		return r.boolean.Render(v.DisplayString())
	case value.KindInt, value.KindFloat:
		return r.number.Render(v.DisplayString())
	default:
		return r.text.Render(strconv.Quote(v.DisplayString()))
	}
}

// typeName is the wire type of a scalar, with the two kinds the XML
// dialect marks without a type attribute named explicitly.
func typeName(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "null"
	case value.KindText:
		return "text"
	default:
		return codec.WireTypeOf(v).String()
	}
}
