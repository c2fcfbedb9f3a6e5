package explorer

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/gularen-lang/gularen/gularen"
	"github.com/gularen-lang/gularen/internal/theme"
)

// ApplyTableStyles applies the current theme to the node table: header
// row, border and the cursor's selected-row highlight.
func ApplyTableStyles(t *table.Model) {
	th := theme.Current()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(th.Header)
	s.Selected = s.Selected.
		Foreground(th.Selected).
		Background(th.Highlight).
		Bold(true)

	t.SetStyles(s)
}

// TitleStyle renders the kind-filter menu's title.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Current().Header).
		MarginBottom(1)
}

// HelpStyle renders the keybinding help line shown under the table.
func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Muted).
		MarginTop(1)
}

// SelectedStyle renders the highlighted choice in the kind-filter menu.
func SelectedStyle() lipgloss.Style {
	th := theme.Current()

	return lipgloss.NewStyle().
		Foreground(th.Selected).
		Background(th.Highlight).
		Bold(true).
		PaddingLeft(2)
}

// ChoiceStyle renders an unselected choice in the kind-filter menu.
func ChoiceStyle() lipgloss.Style {
	return lipgloss.NewStyle().PaddingLeft(2)
}

// KindStyle colors a node's kind name by the group it belongs to
// (leaf inline, inline container, resource, or block structural), so
// the "kind" column reads as a structural outline at a glance instead
// of a flat list of identical-looking strings.
func KindStyle(k gularen.NodeKind) lipgloss.Style {
	th := theme.Current()

	switch {
	case k >= gularen.NodeParagraph:
		return lipgloss.NewStyle().Foreground(th.Header).Bold(true)
	case k >= gularen.NodeCode:
		return lipgloss.NewStyle().Foreground(th.Primary)
	case k >= gularen.NodeEmphasis:
		return lipgloss.NewStyle().Foreground(th.Secondary)
	default:
		return lipgloss.NewStyle().Foreground(th.Muted)
	}
}
