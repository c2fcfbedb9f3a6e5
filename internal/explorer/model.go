package explorer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gularen-lang/gularen/gularen"
	"github.com/gularen-lang/gularen/gularen/backend/gjson"
)

const tableHeight = 10

// frame is one level of the breadcrumb stack the Explorer maintains as
// the user drills into a node's children and backs out.
type frame struct {
	node  *gularen.Node
	title string
}

// Explorer is the bubbletea model for `gularen explore`: it renders a
// parsed Document's node tree one level at a time in a table, drilling
// into a selected node's children on enter and popping back to the
// parent level on backspace. Unlike a generic reusable picker
// widget, it owns its table and key handling directly, since a tree
// browser over a Gularen node tree is its one and only use.
type Explorer struct {
	stack       []frame
	table       table.Model
	rowNodes    []*gularen.Node // children[i] shown at table row i, after any active kind filter
	projectPath string

	filter    *kindFilterMenu // non-nil while the "f" kind-filter picker is open
	activeKey gularen.NodeKind
	hasFilter bool

	status   string
	quitting bool
	showHelp bool
}

// New builds an Explorer rooted at doc (typically a parsed Document).
func New(doc *gularen.Node, projectPath string) *Explorer {
	e := &Explorer{projectPath: projectPath}
	e.push(doc, "document")

	return e
}

// push enters a new breadcrumb level rooted at n and (re)builds the
// table for it.
func (e *Explorer) push(n *gularen.Node, title string) {
	e.stack = append(e.stack, frame{node: n, title: title})
	e.hasFilter = false
	e.rebuildTable()
}

// pop returns to the parent breadcrumb level, if any.
func (e *Explorer) pop() {
	if len(e.stack) <= 1 {
		return
	}
	e.stack = e.stack[:len(e.stack)-1]
	e.hasFilter = false
	e.rebuildTable()
}

// current returns the node whose children are shown at the active
// breadcrumb level.
func (e *Explorer) current() *gularen.Node {
	return e.stack[len(e.stack)-1].node
}

// rebuildTable recomputes rowNodes (applying the active kind filter,
// if any) and replaces the table model with rows for that set.
func (e *Explorer) rebuildTable() {
	n := e.current()

	e.rowNodes = e.rowNodes[:0]
	for _, c := range n.Children {
		if e.hasFilter && c.Kind != e.activeKey {
			continue
		}
		e.rowNodes = append(e.rowNodes, c)
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "kind", Width: 16},
		{Title: "range", Width: 14},
		{Title: "preview", Width: 48},
	}

	rows := make([]table.Row, 0, len(e.rowNodes))
	for i, c := range e.rowNodes {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i),
			KindStyle(c.Kind).Render(c.Kind.String()),
			fmt.Sprintf("%d:%d", c.Range.Start.Line, c.Range.Start.Col),
			TruncateString(previewOf(c), 48),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	ApplyTableStyles(&t)
	e.table = t
}

// selected returns the node backing the table's current cursor row, or
// nil if the table is empty.
func (e *Explorer) selected() *gularen.Node {
	cursor := e.table.Cursor()
	if cursor < 0 || cursor >= len(e.rowNodes) {
		return nil
	}

	return e.rowNodes[cursor]
}

// previewOf renders a short single-line preview of a node: its text
// content for leaf inlines, its resource for resource nodes, or its
// child count otherwise.
func previewOf(n *gularen.Node) string {
	if len(n.Content) > 0 {
		return string(n.Content)
	}
	if n.Resource != "" {
		return n.Resource
	}
	if len(n.Children) > 0 {
		return fmt.Sprintf("(%d children)", len(n.Children))
	}

	return ""
}

// Init implements tea.Model.
func (e *Explorer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (e *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		e.quitting = true

		return e, tea.Quit
	}

	if e.filter != nil {
		return e.updateFilter(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		e.table, cmd = e.table.Update(msg)

		return e, cmd
	}

	keyStr := keyMsg.String()

	switch keyStr {
	case "q":
		e.quitting = true

		return e, tea.Quit

	case "?":
		e.showHelp = !e.showHelp

		return e, nil

	case "f":
		e.filter = newKindFilterMenu(e.current().Children)
		e.showHelp = false

		return e, nil

	case "enter":
		if n := e.selected(); n != nil {
			e.push(n, n.Kind.String())
		}

		return e, nil

	case "backspace":
		if e.hasFilter {
			e.hasFilter = false
			e.rebuildTable()

			return e, nil
		}
		e.pop()

		return e, nil

	case "y":
		if n := e.selected(); n != nil {
			e.copyNode(n)
		}

		return e, nil
	}

	if keyStr == "up" || keyStr == "down" || keyStr == "j" || keyStr == "k" {
		e.showHelp = false
	}

	var cmd tea.Cmd
	e.table, cmd = e.table.Update(msg)

	return e, cmd
}

// updateFilter forwards input to the open kind-filter menu and, once
// it closes, applies, clears, or leaves untouched the active filter
// per its outcome.
func (e *Explorer) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch e.filter.Update(msg) {
	case filterPending:
		return e, nil
	case filterApply:
		e.activeKey = e.filter.selectedKind()
		e.hasFilter = true
	case filterClear:
		e.hasFilter = false
	case filterCancel:
		// leave e.hasFilter/e.activeKey exactly as they were before "f" opened the menu
	}
	e.filter = nil
	e.rebuildTable()

	return e, nil
}

// copyNode marshals n to JSON and copies it to the clipboard,
// recording the outcome in the status line.
func (e *Explorer) copyNode(n *gularen.Node) {
	data, err := gjson.Marshal(n)
	if err != nil {
		e.status = fmt.Sprintf("error: %v", err)

		return
	}
	if err := CopyToClipboard(string(data)); err != nil {
		e.status = fmt.Sprintf("error: %v", err)

		return
	}
	e.status = fmt.Sprintf("copied: %s", n.Kind.String())
}

// View implements tea.Model.
func (e *Explorer) View() string {
	if e.quitting {
		return ""
	}

	breadcrumb := ""
	for i, f := range e.stack {
		if i > 0 {
			breadcrumb += " > "
		}
		breadcrumb += f.title
	}

	if e.filter != nil {
		return breadcrumb + "\n\n" + e.filter.View()
	}

	footer := e.footerLine()
	view := breadcrumb + "\n\n" + e.table.View() + "\n" + footer + "\n"
	if e.status != "" {
		view += "\n" + e.status + "\n"
	}

	return view
}

func (e *Explorer) footerLine() string {
	if e.showHelp {
		return HelpStyle().Render(
			"↑/↓/j/k: navigate | enter: drill in | backspace: back | f: filter by kind | y: copy JSON | q: quit",
		)
	}

	parts := fmt.Sprintf("showing: %d", len(e.rowNodes))
	if e.projectPath != "" {
		parts += fmt.Sprintf(" | project: %s", e.projectPath)
	}
	if e.hasFilter {
		parts += fmt.Sprintf(" | filter: %s", e.activeKey.String())
	}
	parts += " | ?: help"

	return HelpStyle().Render(parts)
}

// Run launches the interactive explorer program and blocks until the
// user quits.
func (e *Explorer) Run() error {
	prog := tea.NewProgram(e)
	_, err := prog.Run()

	return err
}
