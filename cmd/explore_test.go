package cmd

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/gularen-lang/gularen/gularen"
	"github.com/gularen-lang/gularen/internal/explorer"
)

func TestExploreCmd_Run_MissingFile(t *testing.T) {
	cli := &CLI{}
	cmd := &ExploreCmd{Path: "/nonexistent/doc.gr"}

	if err := cmd.Run(cli); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestExplorer_InteractiveSession(t *testing.T) {
	doc := gularen.ParseString("> Title\n\nHello world.\n")
	model := explorer.New(doc, "/tmp/project")

	tm := teatest.NewTestModel(t, model)

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return strings.Contains(string(b), "document")
		},
		teatest.WithCheckInterval(time.Millisecond*50),
		teatest.WithDuration(time.Second*5),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second*2))
}
