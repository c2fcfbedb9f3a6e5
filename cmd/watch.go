package cmd

import (
	"fmt"
	"os"

	"github.com/gularen-lang/gularen/gularen"
	"github.com/gularen-lang/gularen/gularen/backend/gdebug"
	"github.com/gularen-lang/gularen/gularen/backend/gjson"
	"github.com/gularen-lang/gularen/internal/watchutil"
)

// WatchCmd reprints a document's tree every time the file changes on
// disk, until interrupted. Saves that don't change the parsed tree are
// skipped by the watcher, so the output only scrolls on real edits.
type WatchCmd struct {
	Path string `arg:"" help:"Path to the .gr document to watch" type:"existingfile"`

	JSON bool `help:"Print the node tree as JSON on each change" name:"json"`
}

// Run executes the watch command.
func (c *WatchCmd) Run(cli *CLI) error {
	w, err := watchutil.New(c.Path, gularen.WithFileInclusion(!cli.NoInclude))
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", c.Path, err)
	}
	defer w.Close()

	if err := c.render(w.Current()); err != nil {
		return err
	}

	for {
		select {
		case doc := <-w.Documents():
			if err := c.render(doc); err != nil {
				fmt.Fprintf(os.Stderr, "render error: %v\n", err)
			}
		case err := <-w.Errors():
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func (c *WatchCmd) render(doc *gularen.Node) error {
	if c.JSON {
		data, err := gjson.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		fmt.Println(string(data))

		return nil
	}

	fmt.Println(gdebug.Dump(doc))

	return nil
}
