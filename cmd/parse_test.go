package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempDoc(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.gr")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	return buf.String()
}

func TestParseCmd_DebugOutput(t *testing.T) {
	path := writeTempDoc(t, "> Title\n\nHello world.\n")
	cli := &CLI{}
	cmd := &ParseCmd{Path: path}

	output := captureStdout(t, func() {
		require.NoError(t, cmd.Run(cli))
	})

	assert.Contains(t, output, "document")
	assert.Contains(t, output, "heading")
}

func TestParseCmd_JSONOutput(t *testing.T) {
	path := writeTempDoc(t, "> Title\n\nHello world.\n")
	cli := &CLI{}
	cmd := &ParseCmd{Path: path, JSON: true}

	output := captureStdout(t, func() {
		require.NoError(t, cmd.Run(cli))
	})

	assert.Contains(t, output, `"kind"`)
	assert.Contains(t, output, `"range"`)
}

func TestParseCmd_QuietSuppressesDiagnostics(t *testing.T) {
	path := writeTempDoc(t, "*unterminated emphasis\n")
	cli := &CLI{}
	cmd := &ParseCmd{Path: path, Quiet: true}

	require.NoError(t, cmd.Run(cli))
}

func TestParseCmd_MissingFile(t *testing.T) {
	cli := &CLI{}
	cmd := &ParseCmd{Path: filepath.Join(t.TempDir(), "missing.gr")}

	assert.Error(t, cmd.Run(cli))
}

func TestParseCmd_NoInclude(t *testing.T) {
	path := writeTempDoc(t, "?[other.gr]\n")
	cli := &CLI{NoInclude: true}
	cmd := &ParseCmd{Path: path}

	output := captureStdout(t, func() {
		require.NoError(t, cmd.Run(cli))
	})

	assert.NotEmpty(t, output)
	assert.Contains(t, output, "other.gr")
}
