package gularen

// This file collects the inline-node constructors the parser calls
// while assembling a block's inline content: the leaf inlines, the
// inline containers, and the inline resource kinds.

func newText(rng Range, content []byte) (*Node, error) {
	return NewNodeBuilder(NodeText, rng).WithContent(content).Build()
}

func newSpace(rng Range) (*Node, error) {
	return NewNodeBuilder(NodeSpace, rng).Build()
}

func newLineBreak(rng Range) (*Node, error) {
	return NewNodeBuilder(NodeLineBreak, rng).Build()
}

func newComment(rng Range, content []byte) (*Node, error) {
	return NewNodeBuilder(NodeComment, rng).WithContent(content).Build()
}

func newEmoji(rng Range, code string) (*Node, error) {
	return NewNodeBuilder(NodeEmoji, rng).WithCode(code).Build()
}

func newDateTime(rng Range, date, time string) (*Node, error) {
	return NewNodeBuilder(NodeDateTime, rng).WithDateTime(date, time).Build()
}

func newPunct(rng Range, p PunctType) (*Node, error) {
	return NewNodeBuilder(NodePunct, rng).WithPunct(p).Build()
}

func newAccountTag(rng Range, resource string) (*Node, error) {
	return NewNodeBuilder(NodeAccountTag, rng).WithResource(resource).Build()
}

func newHashTag(rng Range, resource string) (*Node, error) {
	return NewNodeBuilder(NodeHashTag, rng).WithResource(resource).Build()
}

func newEmphasis(rng Range, t EmphasisType, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeEmphasis, rng).WithEmphasisType(t).WithChildren(children...).Build()
}

func newHighlight(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeHighlight, rng).WithChildren(children...).Build()
}

func newChange(rng Range, t ChangeType, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeChange, rng).WithChangeType(t).WithChildren(children...).Build()
}

func newCode(rng Range, label string, hasLabel bool, content []byte) (*Node, error) {
	b := NewNodeBuilder(NodeCode, rng).WithContent(content)
	if hasLabel {
		b = b.WithLabel(label)
	}

	return b.Build()
}

func newLink(rng Range, resource string, hasResource bool, headings []string, label string, hasLabel bool, children []*Node) (*Node, error) {
	b := NewNodeBuilder(NodeLink, rng).WithHeadings(headings).WithChildren(children...)
	if hasResource {
		b = b.WithResource(resource)
	}
	if hasLabel {
		b = b.WithLabel(label)
	}

	return b.Build()
}

func newView(rng Range, resource string, hasResource bool, label string, hasLabel bool) (*Node, error) {
	b := NewNodeBuilder(NodeView, rng)
	if hasResource {
		b = b.WithResource(resource)
	}
	if hasLabel {
		b = b.WithLabel(label)
	}

	return b.Build()
}

func newFootnote(rng Range, desc []byte) (*Node, error) {
	return NewNodeBuilder(NodeFootnote, rng).WithContent(desc).Build()
}

func newInText(rng Range, id string) (*Node, error) {
	return NewNodeBuilder(NodeInText, rng).WithID(id).Build()
}
