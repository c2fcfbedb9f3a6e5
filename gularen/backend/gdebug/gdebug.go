// Package gdebug implements the indented, s-expression-ish debug-dump
// backend for Gularen document trees: one line per node, kind-specific
// fields in parentheses, the source range as a trailing comment,
// children indented two spaces deeper than their parent. Output is
// colorized with the project's lipgloss theme when writing to a
// terminal, matching the rest of the CLI's styling.
package gdebug

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/gularen-lang/gularen/gularen"
	"github.com/gularen-lang/gularen/internal/theme"
)

// Dump renders n as an indented debug string, uncolorized.
func Dump(n *gularen.Node) string {
	var buf bytes.Buffer
	d := &dumper{w: &buf}
	d.print(n)

	return buf.String()
}

// DumpTo streams the debug rendering of n to w, enabling color when w is
// a terminal (os.Stdout/os.Stderr attached to a tty).
func DumpTo(w io.Writer, n *gularen.Node) error {
	d := &dumper{w: w, color: isTerminal(w)}
	d.print(n)

	return d.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type dumper struct {
	w     io.Writer
	err   error
	color bool
}

func (d *dumper) writeString(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}

// print walks the tree, writing one line per node with each child
// indented two spaces deeper than its parent.
func (d *dumper) print(root *gularen.Node) {
	depth := 0
	_ = gularen.WalkEnterLeave(root,
		func(n *gularen.Node) error {
			d.printLine(n, depth)
			depth++

			return d.err
		},
		func(*gularen.Node) error {
			depth--

			return d.err
		})
}

func (d *dumper) printLine(n *gularen.Node, depth int) {
	d.writeString(strings.Repeat("  ", depth))
	d.writeString(d.kindLabel(n))

	if fields := kindFields(n); len(fields) > 0 {
		d.writeString("(" + strings.Join(fields, ", ") + ")")
	}

	if len(n.Annotations) > 0 {
		pairs := make([]string, len(n.Annotations))
		for i, a := range n.Annotations {
			pairs[i] = a.Key + "=" + strconv.Quote(a.Value)
		}
		d.writeString(" {" + strings.Join(pairs, ", ") + "}")
	}

	d.writeString(" @" + rangeLabel(n.Range) + "\n")
}

func (d *dumper) kindLabel(n *gularen.Node) string {
	name := n.Kind.String()
	if !d.color {
		return name
	}

	return lipgloss.NewStyle().Foreground(theme.Current().Primary).Render(name)
}

func rangeLabel(r gularen.Range) string {
	return strconv.Itoa(r.Start.Line) + ":" + strconv.Itoa(r.Start.Col) +
		"-" + strconv.Itoa(r.End.Line) + ":" + strconv.Itoa(r.End.Col)
}

// kindFields returns the "key=value" pairs for n's kind-specific payload,
// in the same field order the JSON backend uses, so the two renderings
// stay easy to cross-reference while debugging.
func kindFields(n *gularen.Node) []string {
	var out []string

	add := func(key, value string) {
		out = append(out, key+"="+strconv.Quote(value))
	}

	switch n.Kind {
	case gularen.NodeText, gularen.NodeComment:
		add("content", string(n.Content))

	case gularen.NodeEmoji:
		add("code", n.Code)

	case gularen.NodeDateTime:
		if n.Date != "" {
			add("date", n.Date)
		}
		if n.Time != "" {
			add("time", n.Time)
		}

	case gularen.NodePunct:
		add("type", n.Punct.String())

	case gularen.NodeAccountTag, gularen.NodeHashTag:
		add("resource", n.Resource)

	case gularen.NodeEmphasis:
		add("type", n.Emphasis.String())

	case gularen.NodeChange:
		add("type", n.Change.String())

	case gularen.NodeCode, gularen.NodeCodeBlock:
		if n.HasLabel {
			add("label", n.Label)
		}
		add("content", string(n.Content))

	case gularen.NodeLink:
		if n.HasResource {
			add("resource", n.Resource)
		}
		if len(n.Headings) > 0 {
			add("headings", strings.Join(n.Headings, ","))
		}
		if n.HasLabel {
			add("label", n.Label)
		}

	case gularen.NodeView:
		if n.HasResource {
			add("resource", n.Resource)
		}
		if n.HasLabel {
			add("label", n.Label)
		}

	case gularen.NodeFootnote:
		add("desc", string(n.Content))

	case gularen.NodeInText, gularen.NodeReference:
		add("id", n.ID)

	case gularen.NodeReferenceInfo:
		add("key", n.Key)

	case gularen.NodeDocument:
		if n.Path != "" {
			add("path", n.Path)
		}
		if len(n.Source) > 0 {
			out = append(out, "source="+strconv.Itoa(len(n.Source))+" bytes")
		}

	case gularen.NodeHeading:
		add("type", n.Heading.String())

	case gularen.NodeAdmonition:
		add("label", n.AdmonLabel)

	case gularen.NodeCheckItem:
		add("checked", n.Checked.String())

	case gularen.NodeTable:
		labels := make([]string, len(n.Alignments))
		for i, a := range n.Alignments {
			labels[i] = a.String()
		}
		out = append(out, "alignments=["+strings.Join(labels, ",")+"]")

	case gularen.NodeRow:
		add("type", n.Row.String())
	}

	return out
}
