package gularen

// This file collects the block-level node constructors the parser
// calls once it has fully assembled a block's children. Each wraps
// NewNodeBuilder with the fields that particular kind carries.

func newDocument(rng Range, path string, source []byte, annotations []Annotation, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeDocument, rng).
		WithPath(path).
		WithSource(source).
		WithAnnotations(annotations).
		WithChildren(children...).
		Build()
}

func newParagraph(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeParagraph, rng).WithChildren(children...).Build()
}

func newHeading(rng Range, t HeadingType, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeHeading, rng).WithHeadingType(t).WithChildren(children...).Build()
}

func newSubtitle(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeSubtitle, rng).WithChildren(children...).Build()
}

func newTitle(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeTitle, rng).WithChildren(children...).Build()
}

func newIndent(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeIndent, rng).WithChildren(children...).Build()
}

func newBlockquote(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeBlockquote, rng).WithChildren(children...).Build()
}

func newAdmonition(rng Range, label string, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeAdmonition, rng).WithAdmonLabel(label).WithChildren(children...).Build()
}

func newList(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeList, rng).WithChildren(children...).Build()
}

func newNumberedList(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeNumberedList, rng).WithChildren(children...).Build()
}

func newCheckList(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeCheckList, rng).WithChildren(children...).Build()
}

func newItem(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeItem, rng).WithChildren(children...).Build()
}

func newCheckItem(rng Range, checked CheckState, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeCheckItem, rng).WithChecked(checked).WithChildren(children...).Build()
}

func newDefinitionList(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeDefinitionList, rng).WithChildren(children...).Build()
}

func newDefinitionItem(rng Range, term, desc *Node) (*Node, error) {
	return NewNodeBuilder(NodeDefinitionItem, rng).WithChildren(term, desc).Build()
}

func newDefinitionTerm(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeDefinitionTerm, rng).WithChildren(children...).Build()
}

func newDefinitionDesc(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeDefinitionDesc, rng).WithChildren(children...).Build()
}

func newTable(rng Range, alignments []Alignment, rows []*Node) (*Node, error) {
	return NewNodeBuilder(NodeTable, rng).WithAlignments(alignments).WithChildren(rows...).Build()
}

func newRow(rng Range, t RowType, cells []*Node) (*Node, error) {
	return NewNodeBuilder(NodeRow, rng).WithRowType(t).WithChildren(cells...).Build()
}

func newCell(rng Range, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeCell, rng).WithChildren(children...).Build()
}

func newDinkus(rng Range) (*Node, error) {
	return NewNodeBuilder(NodeDinkus, rng).Build()
}

func newPageBreak(rng Range) (*Node, error) {
	return NewNodeBuilder(NodePageBreak, rng).Build()
}

func newCodeBlock(rng Range, label string, hasLabel bool, content []byte) (*Node, error) {
	b := NewNodeBuilder(NodeCodeBlock, rng).WithContent(content)
	if hasLabel {
		b = b.WithLabel(label)
	}

	return b.Build()
}

func newReference(rng Range, id string, infos []*Node) (*Node, error) {
	return NewNodeBuilder(NodeReference, rng).WithID(id).WithChildren(infos...).Build()
}

func newReferenceInfo(rng Range, key string, children []*Node) (*Node, error) {
	return NewNodeBuilder(NodeReferenceInfo, rng).WithKey(key).WithChildren(children...).Build()
}
