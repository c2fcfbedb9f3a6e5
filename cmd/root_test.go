package cmd

import "testing"

func TestCLI_HasExpectedCommands(t *testing.T) {
	cli := &CLI{}

	_ = cli.Parse
	_ = cli.Watch
	_ = cli.Explore
	_ = cli.Version
	_ = cli.Completion
}
