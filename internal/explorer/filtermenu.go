package explorer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gularen-lang/gularen/gularen"
)

// kindFilterMenu is a small picker that narrows the node table to only
// the children whose Kind matches the chosen entry, or clears any
// active filter via its leading "(all kinds)" choice. It is built
// afresh each time the menu is opened, from the distinct kinds
// actually present among the current level's children — there is
// nothing to choose among kinds the document doesn't use at that
// level.
type kindFilterMenu struct {
	kinds  []gularen.NodeKind // nil entry at index 0 means "no filter"
	cursor int
}

// newKindFilterMenu collects the distinct kinds present in children, in
// first-seen order, prefixed with the "clear filter" choice at index 0
// (its gularen.NodeText placeholder value is never read — isAllChoice
// checks the cursor position, not the kind).
func newKindFilterMenu(children []*gularen.Node) *kindFilterMenu {
	m := &kindFilterMenu{kinds: []gularen.NodeKind{gularen.NodeText}}

	seen := map[gularen.NodeKind]bool{}
	for _, c := range children {
		if !seen[c.Kind] {
			seen[c.Kind] = true
			m.kinds = append(m.kinds, c.Kind)
		}
	}

	return m
}

// isAllChoice reports whether the menu's current cursor position is
// the leading "clear filter" entry.
func (m *kindFilterMenu) isAllChoice() bool {
	return m.cursor == 0
}

func (m *kindFilterMenu) selectedKind() gularen.NodeKind {
	return m.kinds[m.cursor]
}

func (m *kindFilterMenu) choiceLabel(i int) string {
	if i == 0 {
		return "(all kinds)"
	}

	return m.kinds[i].String()
}

// filterOutcome reports what, if anything, Update decided once the
// menu closes.
type filterOutcome int

const (
	filterPending filterOutcome = iota // still open, keep forwarding input
	filterApply                        // apply selectedKind()
	filterClear                        // clear any active filter
	filterCancel                       // close without changing the active filter
)

// Update handles navigation/selection keys and reports the outcome
// once the menu closes (enter applies/clears; esc/q/f cancels without
// touching whatever filter was active before the menu opened).
func (m *kindFilterMenu) Update(msg tea.Msg) filterOutcome {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return filterPending
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
		}
	case "enter":
		if m.isAllChoice() {
			return filterClear
		}

		return filterApply
	case "esc", "q", "f":
		return filterCancel
	}

	return filterPending
}

// View renders the menu as a vertical choice list.
func (m *kindFilterMenu) View() string {
	s := TitleStyle().Render("filter by kind") + "\n\n"

	for i := range m.kinds {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s", cursor, m.choiceLabel(i))
		if m.cursor == i {
			s += SelectedStyle().Render(line) + "\n"
		} else {
			s += ChoiceStyle().Render(line) + "\n"
		}
	}

	s += "\n" + HelpStyle().Render("↑/↓ or j/k: navigate | enter: apply | esc: cancel")

	return s
}
