package gularen

import (
	"hash/fnv"
)

// NodeKind is the discriminant of the closed tagged variant every Node
// carries. Every node has exactly one parent and the kind set is
// closed, so one concrete struct with a kind tag serves better than an
// interface per kind.
type NodeKind uint8

const (
	// Leaf inlines
	NodeText NodeKind = iota
	NodeSpace
	NodeLineBreak
	NodeComment
	NodeEmoji
	NodeDateTime
	NodePunct
	NodeAccountTag
	NodeHashTag

	// Inline containers
	NodeEmphasis
	NodeHighlight
	NodeChange

	// Resources
	NodeCode
	NodeCodeBlock
	NodeLink
	NodeView
	NodeFootnote
	NodeInText
	NodeReference
	NodeReferenceInfo
	NodeDocument

	// Block structural
	NodeParagraph
	NodeHeading
	NodeSubtitle
	NodeTitle
	NodeIndent
	NodeBlockquote
	NodeAdmonition
	NodeList
	NodeNumberedList
	NodeCheckList
	NodeItem
	NodeCheckItem
	NodeDefinitionList
	NodeDefinitionItem
	NodeDefinitionTerm
	NodeDefinitionDesc
	NodeTable
	NodeRow
	NodeCell
	NodeDinkus
	NodePageBreak
)

var nodeKindNames = [...]string{
	NodeText:           "text",
	NodeSpace:          "space",
	NodeLineBreak:      "lineBreak",
	NodeComment:        "comment",
	NodeEmoji:          "emoji",
	NodeDateTime:       "dateTime",
	NodePunct:          "punct",
	NodeAccountTag:     "accountTag",
	NodeHashTag:        "hashTag",
	NodeEmphasis:       "emphasis",
	NodeHighlight:      "highlight",
	NodeChange:         "change",
	NodeCode:           "code",
	NodeCodeBlock:      "codeBlock",
	NodeLink:           "link",
	NodeView:           "view",
	NodeFootnote:       "footnote",
	NodeInText:         "inText",
	NodeReference:      "reference",
	NodeReferenceInfo:  "referenceInfo",
	NodeDocument:       "document",
	NodeParagraph:      "paragraph",
	NodeHeading:        "heading",
	NodeSubtitle:       "subtitle",
	NodeTitle:          "title",
	NodeIndent:         "indent",
	NodeBlockquote:     "blockquote",
	NodeAdmonition:     "admonition",
	NodeList:           "list",
	NodeNumberedList:   "numberedList",
	NodeCheckList:      "checkList",
	NodeItem:           "item",
	NodeCheckItem:      "checkItem",
	NodeDefinitionList: "definitionList",
	NodeDefinitionItem: "definitionItem",
	NodeDefinitionTerm: "definitionTerm",
	NodeDefinitionDesc: "definitionDesc",
	NodeTable:          "table",
	NodeRow:            "row",
	NodeCell:           "cell",
	NodeDinkus:         "dinkus",
	NodePageBreak:      "pageBreak",
}

// String returns the stable node-kind name used by backends (JSON,
// debug dump) and listed in the package's public contract.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}

	return "unknown"
}

// PunctType distinguishes the typographic punctuation a punct node
// carries.
type PunctType uint8

const (
	PunctHyphen PunctType = iota
	PunctEnDash
	PunctEmDash
	PunctQuoteOpen
	PunctQuoteClose
	PunctSquoteOpen
	PunctSquoteClose
)

func (p PunctType) String() string {
	switch p {
	case PunctHyphen:
		return "hyphen"
	case PunctEnDash:
		return "enDash"
	case PunctEmDash:
		return "emDash"
	case PunctQuoteOpen:
		return "quoteOpen"
	case PunctQuoteClose:
		return "quoteClose"
	case PunctSquoteOpen:
		return "squoteOpen"
	case PunctSquoteClose:
		return "squoteClose"
	default:
		return "unknown"
	}
}

// HeadingType is the depth tag a heading node carries. A head1 line
// produces Subsubsection, head2 produces Subsection, and head3
// produces Section — the reverse of the marker count.
type HeadingType uint8

const (
	HeadingChapter HeadingType = iota
	HeadingSection
	HeadingSubsection
	HeadingSubsubsection
)

func (h HeadingType) String() string {
	switch h {
	case HeadingChapter:
		return "chapter"
	case HeadingSection:
		return "section"
	case HeadingSubsection:
		return "subsection"
	case HeadingSubsubsection:
		return "subsubsection"
	default:
		return "unknown"
	}
}

// EmphasisType distinguishes the three emphasis container shapes.
type EmphasisType uint8

const (
	EmphasisBold EmphasisType = iota
	EmphasisItalic
	EmphasisUnderline
)

func (e EmphasisType) String() string {
	switch e {
	case EmphasisBold:
		return "bold"
	case EmphasisItalic:
		return "italic"
	case EmphasisUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// ChangeType distinguishes an inserted from a removed change-tracking span.
type ChangeType uint8

const (
	ChangeAdded ChangeType = iota
	ChangeRemoved
)

func (c ChangeType) String() string {
	if c == ChangeAdded {
		return "added"
	}

	return "removed"
}

// CheckState is the two-state value a checkItem derives from its checkbox
// marker's second byte.
type CheckState uint8

const (
	CheckUnchecked CheckState = iota
	CheckChecked
)

func (c CheckState) String() string {
	if c == CheckChecked {
		return "checked"
	}

	return "unchecked"
}

// Alignment is a declared table column alignment.
type Alignment uint8

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "default"
	}
}

// RowType is the header/content/footer classification a table row
// carries once the table has seen a separator row.
type RowType uint8

const (
	RowContent RowType = iota
	RowHeader
	RowFooter
)

func (r RowType) String() string {
	switch r {
	case RowHeader:
		return "header"
	case RowFooter:
		return "footer"
	default:
		return "content"
	}
}

// Annotation is a single key/value pair attached to a node or to the
// document. Keys are unique per node; a later duplicate overwrites an
// earlier one, so Annotations is kept as an ordered slice rather than a
// map to preserve source order for backends while Set enforces the
// uniqueness invariant.
type Annotation struct {
	Key   string
	Value string
}

// Node is the single concrete representation of every Gularen tree
// element. Only the fields relevant to Kind are meaningful; the zero
// value of the others is simply unused.
type Node struct {
	Kind        NodeKind
	Range       Range
	Annotations []Annotation
	Children    []*Node

	hash uint64

	Content     []byte // text/comment content; footnote desc; inline code/codeBlock body
	Code        string // emoji code
	Date        string // dateTime date component, empty if absent
	Time        string // dateTime time component, empty if absent
	Punct       PunctType
	Resource    string // accountTag/hashTag symbol; link/view/document path
	HasResource bool
	Headings    []string // link same-document jump targets
	Label       string
	HasLabel    bool
	ID          string // inText/reference identifier
	Key         string // referenceInfo key
	Heading     HeadingType
	AdmonLabel  string
	Checked     CheckState
	Emphasis    EmphasisType
	Change      ChangeType
	Alignments  []Alignment // table column alignments
	Row         RowType
	Path        string // document path, root or include
	Source      []byte // document content-backing buffer, root only
}

// Hash returns a content hash suitable for structural-equality checks
// and caching. It is computed once by the builder at construction time.
func (n *Node) Hash() uint64 {
	if n == nil {
		return 0
	}

	return n.hash
}

// Annotation looks up an annotation by key, honoring the
// last-write-wins duplicate rule.
func (n *Node) Annotation(key string) (string, bool) {
	for i := len(n.Annotations) - 1; i >= 0; i-- {
		if n.Annotations[i].Key == key {
			return n.Annotations[i].Value, true
		}
	}

	return "", false
}

// SetAnnotation appends or overwrites an annotation, preserving the
// first-seen position for an overwritten key: later duplicates
// overwrite the value but not the order.
func (n *Node) SetAnnotation(key, value string) {
	for i := range n.Annotations {
		if n.Annotations[i].Key == key {
			n.Annotations[i].Value = value

			return
		}
	}
	n.Annotations = append(n.Annotations, Annotation{Key: key, Value: value})
}

// Equal performs a deep structural comparison of two nodes: same kind,
// same kind-specific payload, same annotations, and recursively equal
// children. Ranges are intentionally excluded — two trees parsed from
// differently-offset includes of the same text are structurally equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	if n.hash != other.hash {
		return false
	}
	if len(n.Annotations) != len(other.Annotations) {
		return false
	}
	for i := range n.Annotations {
		if n.Annotations[i] != other.Annotations[i] {
			return false
		}
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}

	return true
}

// computeHash hashes the node kind, its kind-specific payload bytes, and
// the hashes of its children, in that order, via FNV-1a — the same
// incremental-hash idiom used throughout this codebase's tree types.
func computeHash(kind NodeKind, payload []byte, children []*Node) uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(kind)})
	if len(payload) > 0 {
		h.Write(payload)
	}
	for _, c := range children {
		ch := c.Hash()
		h.Write([]byte{
			byte(ch >> 56), byte(ch >> 48), byte(ch >> 40), byte(ch >> 32),
			byte(ch >> 24), byte(ch >> 16), byte(ch >> 8), byte(ch),
		})
	}

	return h.Sum64()
}

// NodeBuilder collects the fields of a node under construction and
// validates them once on Build. The parser uses one builder per node it
// assembles; every kind-specific field lives inline on the builder, the
// same "flat struct, switch in Build" shape the rest of this tree model
// uses instead of one constructor function per kind.
type NodeBuilder struct {
	kind        NodeKind
	rng         Range
	annotations []Annotation
	children    []*Node

	content     []byte
	code        string
	date        string
	time        string
	punct       PunctType
	resource    string
	hasResource bool
	headings    []string
	label       string
	hasLabel    bool
	id          string
	key         string
	heading     HeadingType
	admonLabel  string
	checked     CheckState
	emphasis    EmphasisType
	change      ChangeType
	alignments  []Alignment
	row         RowType
	path        string
	source      []byte
}

// NewNodeBuilder starts a builder for the given kind and range.
func NewNodeBuilder(kind NodeKind, rng Range) *NodeBuilder {
	return &NodeBuilder{kind: kind, rng: rng}
}

func (b *NodeBuilder) WithChildren(children ...*Node) *NodeBuilder {
	b.children = append(b.children, children...)

	return b
}

func (b *NodeBuilder) WithAnnotations(annotations []Annotation) *NodeBuilder {
	b.annotations = annotations

	return b
}

func (b *NodeBuilder) WithContent(content []byte) *NodeBuilder {
	b.content = content

	return b
}

func (b *NodeBuilder) WithCode(code string) *NodeBuilder {
	b.code = code

	return b
}

func (b *NodeBuilder) WithDateTime(date, time string) *NodeBuilder {
	b.date = date
	b.time = time

	return b
}

func (b *NodeBuilder) WithPunct(p PunctType) *NodeBuilder {
	b.punct = p

	return b
}

func (b *NodeBuilder) WithResource(resource string) *NodeBuilder {
	b.resource = resource
	b.hasResource = true

	return b
}

func (b *NodeBuilder) WithHeadings(headings []string) *NodeBuilder {
	b.headings = headings

	return b
}

func (b *NodeBuilder) WithLabel(label string) *NodeBuilder {
	b.label = label
	b.hasLabel = true

	return b
}

func (b *NodeBuilder) WithID(id string) *NodeBuilder {
	b.id = id

	return b
}

func (b *NodeBuilder) WithKey(key string) *NodeBuilder {
	b.key = key

	return b
}

func (b *NodeBuilder) WithHeadingType(h HeadingType) *NodeBuilder {
	b.heading = h

	return b
}

func (b *NodeBuilder) WithAdmonLabel(label string) *NodeBuilder {
	b.admonLabel = label

	return b
}

func (b *NodeBuilder) WithChecked(c CheckState) *NodeBuilder {
	b.checked = c

	return b
}

func (b *NodeBuilder) WithEmphasisType(e EmphasisType) *NodeBuilder {
	b.emphasis = e

	return b
}

func (b *NodeBuilder) WithChangeType(c ChangeType) *NodeBuilder {
	b.change = c

	return b
}

func (b *NodeBuilder) WithAlignments(a []Alignment) *NodeBuilder {
	b.alignments = a

	return b
}

func (b *NodeBuilder) WithRowType(r RowType) *NodeBuilder {
	b.row = r

	return b
}

func (b *NodeBuilder) WithPath(path string) *NodeBuilder {
	b.path = path

	return b
}

func (b *NodeBuilder) WithSource(source []byte) *NodeBuilder {
	b.source = source

	return b
}

// BuilderValidationError reports a structural invariant the builder
// refused to materialize.
type BuilderValidationError struct {
	Kind   NodeKind
	Reason string
}

func (e *BuilderValidationError) Error() string {
	return "gularen: invalid " + e.Kind.String() + " node: " + e.Reason
}

// validate enforces the invariants that are cheap to check
// structurally: range containment over children, and the table
// alignment/cell-count invariant.
func (b *NodeBuilder) validate() error {
	for _, c := range b.children {
		// An included file's Document child carries its own independent
		// line/column space (it is re-lexed from offset zero), so its
		// Range is not expected to nest inside the including document's.
		if c.Kind == NodeDocument {
			continue
		}
		if !b.rng.Contains(c.Range) {
			return &BuilderValidationError{Kind: b.kind, Reason: "child range escapes parent range"}
		}
	}
	if b.kind == NodeTable && len(b.alignments) > 0 {
		for _, row := range b.children {
			if len(row.Children) > len(b.alignments) {
				return &BuilderValidationError{Kind: b.kind, Reason: "row has more cells than declared alignments"}
			}
		}
	}
	if b.kind == NodeHeading && (b.heading < HeadingChapter || b.heading > HeadingSubsubsection) {
		return &BuilderValidationError{Kind: b.kind, Reason: "heading type out of range"}
	}

	return nil
}

// Build validates the accumulated fields and materializes the Node,
// computing its content hash from its kind-specific payload and its
// children's hashes.
func (b *NodeBuilder) Build() (*Node, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	n := &Node{
		Kind:        b.kind,
		Range:       b.rng,
		Annotations: b.annotations,
		Children:    b.children,
		Content:     b.content,
		Code:        b.code,
		Date:        b.date,
		Time:        b.time,
		Punct:       b.punct,
		Resource:    b.resource,
		HasResource: b.hasResource,
		Headings:    b.headings,
		Label:       b.label,
		HasLabel:    b.hasLabel,
		ID:          b.id,
		Key:         b.key,
		Heading:     b.heading,
		AdmonLabel:  b.admonLabel,
		Checked:     b.checked,
		Emphasis:    b.emphasis,
		Change:      b.change,
		Alignments:  b.alignments,
		Row:         b.row,
		Path:        b.path,
		Source:      b.source,
	}

	n.hash = computeHash(n.Kind, b.hashPayload(), n.Children)

	return n, nil
}

// hashPayload concatenates the kind-specific scalar fields that
// distinguish otherwise-identical nodes so Hash can double as a
// structural-equality fingerprint.
func (b *NodeBuilder) hashPayload() []byte {
	var buf []byte
	buf = append(buf, b.content...)
	buf = append(buf, b.code...)
	buf = append(buf, b.date...)
	buf = append(buf, b.time...)
	buf = append(buf, byte(b.punct))
	buf = append(buf, b.resource...)
	buf = append(buf, b.label...)
	buf = append(buf, b.id...)
	buf = append(buf, b.key...)
	buf = append(buf, byte(b.heading))
	buf = append(buf, b.admonLabel...)
	buf = append(buf, byte(b.checked))
	buf = append(buf, byte(b.emphasis))
	buf = append(buf, byte(b.change))
	for _, a := range b.alignments {
		buf = append(buf, byte(a))
	}
	buf = append(buf, byte(b.row))
	buf = append(buf, b.path...)

	return buf
}
