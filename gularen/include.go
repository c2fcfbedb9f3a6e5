package gularen

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Includer is the minimal collaborator the parser calls when it
// encounters `?[path]` with file inclusion enabled. It never
// parses anything itself — it only resolves a relative path against a
// base directory and returns the raw bytes.
type Includer interface {
	Resolve(basePath, relative string) (content []byte, absolutePath string, ok bool)
}

// OSIncluder resolves includes against the real filesystem.
type OSIncluder struct{}

func (OSIncluder) Resolve(basePath, relative string) ([]byte, string, bool) {
	abs := filepath.Join(basePath, relative)
	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, abs, false
	}

	return content, abs, true
}

// AferoIncluder resolves includes against an afero.Fs, letting tests
// (and hosts that sandbox the filesystem) substitute an in-memory tree.
type AferoIncluder struct {
	Fs afero.Fs
}

func (a AferoIncluder) Resolve(basePath, relative string) ([]byte, string, bool) {
	abs := filepath.Join(basePath, relative)
	content, err := afero.ReadFile(a.Fs, abs)
	if err != nil {
		return nil, abs, false
	}

	return content, abs, true
}
