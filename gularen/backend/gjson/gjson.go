// Package gjson implements the JSON serialisation backend for Gularen
// document trees. It is an external collaborator to the gularen package:
// the core guarantees stable node kind names and a content/range model,
// and this package walks that model to produce the JSON contract tests
// rely on (kind/range always present, children omitted when empty,
// annotations as an object, node-specific fields per kind).
package gjson

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/gularen-lang/gularen/gularen"
)

// Marshal renders a node (typically a Document root) as JSON.
func Marshal(n *gularen.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := MarshalTo(&buf, n); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalTo streams the JSON rendering of n to w.
func MarshalTo(w io.Writer, n *gularen.Node) error {
	e := &encoder{w: w}
	e.writeNode(n)

	return e.err
}

// encoder walks a node tree writing JSON directly, mirroring the
// write/writeString/err-accumulating shape the package's other tree
// walkers use instead of building an intermediate value and handing it
// to encoding/json — the custom string-escaping rule in the JSON
// contract (verbatim printable ASCII, \uXXXX for everything else) isn't
// something encoding/json's string marshaling does, so fields are
// written by hand.
type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *encoder) writeRaw(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

// jsonString writes s as a quoted JSON string literal per the escaping
// contract: the named control characters and quote/backslash/slash get
// their conventional escapes, printable ASCII passes through verbatim,
// and every other decoded code point (BMP only) is emitted as \uXXXX.
func (e *encoder) jsonString(s string) {
	e.writeString(`"`)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '"':
			e.writeString(`\"`)
		case '\\':
			e.writeString(`\\`)
		case '/':
			e.writeString(`\/`)
		case '\b':
			e.writeString(`\b`)
		case '\f':
			e.writeString(`\f`)
		case '\r':
			e.writeString(`\r`)
		case '\n':
			e.writeString(`\n`)
		case '\t':
			e.writeString(`\t`)
		default:
			if r >= 0x20 && r < 0x7f {
				e.writeString(string(r))
			} else {
				e.writeString(fmt.Sprintf(`\u%04x`, r&0xffff))
			}
		}
		i += size
	}
	e.writeString(`"`)
}

func (e *encoder) field(name string, first bool) {
	if !first {
		e.writeString(",")
	}
	e.jsonString(name)
	e.writeString(":")
}

func (e *encoder) rangeArray(r gularen.Range) {
	e.writeRaw([]byte(fmt.Sprintf("[%d,%d,%d,%d]", r.Start.Line, r.Start.Col, r.End.Line, r.End.Col)))
}

func (e *encoder) stringArray(items []string) {
	e.writeString("[")
	for i, s := range items {
		if i > 0 {
			e.writeString(",")
		}
		e.jsonString(s)
	}
	e.writeString("]")
}

func (e *encoder) annotations(n *gularen.Node) {
	e.writeString("{")
	for i, a := range n.Annotations {
		if i > 0 {
			e.writeString(",")
		}
		e.jsonString(a.Key)
		e.writeString(":")
		e.jsonString(a.Value)
	}
	e.writeString("}")
}

// writeNode emits one node object: kind, range, optional annotations,
// kind-specific fields, then children (omitted when empty).
func (e *encoder) writeNode(n *gularen.Node) {
	if e.err != nil {
		return
	}
	if n == nil {
		e.writeString("null")

		return
	}

	e.writeString("{")
	e.field("kind", true)
	e.jsonString(n.Kind.String())

	e.field("range", false)
	e.rangeArray(n.Range)

	if len(n.Annotations) > 0 {
		e.field("annotations", false)
		e.annotations(n)
	}

	e.kindFields(n)

	if len(n.Children) > 0 {
		e.field("children", false)
		e.writeString("[")
		for i, c := range n.Children {
			if i > 0 {
				e.writeString(",")
			}
			e.writeNode(c)
		}
		e.writeString("]")
	}

	e.writeString("}")
}

// kindFields emits the node-specific payload for n.Kind.
// Fields that don't apply to the kind are simply absent.
func (e *encoder) kindFields(n *gularen.Node) {
	switch n.Kind {
	case gularen.NodeText, gularen.NodeComment:
		e.field("content", false)
		e.jsonString(string(n.Content))

	case gularen.NodeEmoji:
		e.field("code", false)
		e.jsonString(n.Code)

	case gularen.NodeDateTime:
		if n.Date != "" {
			e.field("date", false)
			e.jsonString(n.Date)
		}
		if n.Time != "" {
			e.field("time", false)
			e.jsonString(n.Time)
		}

	case gularen.NodePunct:
		e.field("type", false)
		e.jsonString(n.Punct.String())

	case gularen.NodeAccountTag, gularen.NodeHashTag:
		e.field("resource", false)
		e.jsonString(n.Resource)

	case gularen.NodeEmphasis:
		e.field("type", false)
		e.jsonString(n.Emphasis.String())

	case gularen.NodeChange:
		e.field("type", false)
		e.jsonString(n.Change.String())

	case gularen.NodeCode, gularen.NodeCodeBlock:
		if n.HasLabel {
			e.field("label", false)
			e.jsonString(n.Label)
		}
		e.field("content", false)
		e.jsonString(string(n.Content))

	case gularen.NodeLink:
		if n.HasResource {
			e.field("resource", false)
			e.jsonString(n.Resource)
		}
		if len(n.Headings) > 0 {
			e.field("headings", false)
			e.stringArray(n.Headings)
		}
		if n.HasLabel {
			e.field("label", false)
			e.jsonString(n.Label)
		}

	case gularen.NodeView:
		if n.HasResource {
			e.field("resource", false)
			e.jsonString(n.Resource)
		}
		if n.HasLabel {
			e.field("label", false)
			e.jsonString(n.Label)
		}

	case gularen.NodeFootnote:
		e.field("desc", false)
		e.jsonString(string(n.Content))

	case gularen.NodeInText, gularen.NodeReference:
		e.field("id", false)
		e.jsonString(n.ID)

	case gularen.NodeReferenceInfo:
		e.field("key", false)
		e.jsonString(n.Key)

	case gularen.NodeDocument:
		if n.Path != "" {
			e.field("path", false)
			e.jsonString(n.Path)
		}
		if len(n.Source) > 0 {
			e.field("source", false)
			e.jsonString(string(n.Source))
		}

	case gularen.NodeHeading:
		e.field("type", false)
		e.jsonString(n.Heading.String())

	case gularen.NodeAdmonition:
		e.field("label", false)
		e.jsonString(n.AdmonLabel)

	case gularen.NodeCheckItem:
		e.field("checked", false)
		e.jsonString(n.Checked.String())

	case gularen.NodeTable:
		e.field("alignments", false)
		e.writeString("[")
		for i, a := range n.Alignments {
			if i > 0 {
				e.writeString(",")
			}
			e.jsonString(a.String())
		}
		e.writeString("]")

	case gularen.NodeRow:
		e.field("type", false)
		e.jsonString(n.Row.String())
	}
}
