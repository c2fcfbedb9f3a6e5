package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/gularen-lang/gularen/gularen"
	"github.com/gularen-lang/gularen/internal/explorer"
)

// ExploreCmd parses a document and launches the interactive tree
// browser over its node tree.
type ExploreCmd struct {
	Path string `arg:"" help:"Path to the .gr document to explore" type:"existingfile"`
}

// Run executes the explore command.
func (c *ExploreCmd) Run(cli *CLI) error {
	opts := []gularen.Option{
		gularen.WithFileInclusion(!cli.NoInclude),
	}

	doc, err := gularen.ParseFile(c.Path, opts...)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.Path, err)
	}

	return explorer.New(doc, filepath.Dir(c.Path)).Run()
}
