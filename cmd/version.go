package cmd

import (
	"fmt"

	"github.com/gularen-lang/gularen/internal/version"
)

// VersionCmd prints build information: multi-line by default, the bare
// version with --short, or JSON with --json (which wins if both flags
// are set).
type VersionCmd struct {
	JSON  bool `kong:"help='Output in JSON format for scripting'"`
	Short bool `kong:"help='Output version number only'"`
}

// Run executes the version command.
func (c *VersionCmd) Run() error {
	info := version.GetBuildInfo()

	switch {
	case c.JSON:
		jsonBytes, err := info.JSON()
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	case c.Short:
		fmt.Println(info.Short())
	default:
		fmt.Println(info.String())
	}

	return nil
}
