package cmd

import (
	"fmt"
	"os"

	"github.com/gularen-lang/gularen/gularen"
	"github.com/gularen-lang/gularen/gularen/backend/gdebug"
	"github.com/gularen-lang/gularen/gularen/backend/gjson"
	"github.com/gularen-lang/gularen/internal/explorer"
)

// ParseCmd parses a single document and prints its node tree, either as
// the indented debug dump or as JSON.
type ParseCmd struct {
	Path string `arg:"" help:"Path to the .gr document to parse" type:"existingfile"`

	JSON  bool `help:"Print the node tree as JSON"    name:"json"`
	Copy  bool `help:"Copy the rendered output to the clipboard" name:"copy"`
	Quiet bool `help:"Suppress diagnostics on stderr" name:"quiet"`
}

// Run executes the parse command.
func (c *ParseCmd) Run(cli *CLI) error {
	sink := gularen.StderrSink
	if c.Quiet {
		sink = &gularen.CollectingSink{}
	}

	opts := []gularen.Option{
		gularen.WithDiagnosticSink(sink),
		gularen.WithFileInclusion(!cli.NoInclude),
	}

	doc, err := gularen.ParseFile(c.Path, opts...)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.Path, err)
	}

	var rendered string
	if c.JSON {
		data, marshalErr := gjson.Marshal(doc)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal document: %w", marshalErr)
		}
		rendered = string(data)
	} else {
		rendered = gdebug.Dump(doc)
	}

	fmt.Println(rendered)

	if c.Copy {
		if copyErr := explorer.CopyToClipboard(rendered); copyErr != nil {
			fmt.Fprintf(os.Stderr, "failed to copy to clipboard: %v\n", copyErr)
		}
	}

	return nil
}
