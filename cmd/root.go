// Package cmd provides command-line interface implementations for Gularen.
package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	// Global flags (apply to all commands)
	NoInclude bool   `help:"Disable ?[path] file inclusion" name:"no-include"`
	Theme     string `help:"Color theme to use, overriding gularen.yaml" name:"theme"`

	// Commands
	Parse      ParseCmd                  `cmd:"" help:"Parse a document and print its node tree"`  //nolint:lll,revive // Kong struct tag with alignment
	Watch      WatchCmd                  `cmd:"" help:"Watch a document and re-parse on change"`   //nolint:lll,revive // Kong struct tag with alignment
	Explore    ExploreCmd                `cmd:"" help:"Browse a document's node tree interactively"` //nolint:lll,revive // Kong struct tag with alignment
	Version    VersionCmd                `cmd:"" help:"Show version info"`                         //nolint:lll,revive // Kong struct tag with alignment
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completions"`                //nolint:lll,revive // Kong struct tag with alignment
}
