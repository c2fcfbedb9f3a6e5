package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gularen-lang/gularen/gularen"
)

func TestWatchCmd_RenderPrintsDebugDump(t *testing.T) {
	doc := gularen.ParseString("> Title\n\nHello world.\n")
	cmd := &WatchCmd{}

	output := captureStdout(t, func() {
		require.NoError(t, cmd.render(doc))
	})

	assert.Contains(t, output, "document")
	assert.Contains(t, output, "heading")
}

func TestWatchCmd_RenderPrintsJSON(t *testing.T) {
	doc := gularen.ParseString("> Title\n\nHello world.\n")
	cmd := &WatchCmd{JSON: true}

	output := captureStdout(t, func() {
		require.NoError(t, cmd.render(doc))
	})

	assert.Contains(t, output, `"kind"`)
	assert.Contains(t, output, `"range"`)
}

func TestWatchCmd_RunMissingFile(t *testing.T) {
	cli := &CLI{}
	cmd := &WatchCmd{Path: filepath.Join(t.TempDir(), "missing.gr")}

	assert.Error(t, cmd.Run(cli))
}
