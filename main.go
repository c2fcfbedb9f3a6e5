// Gularen is the command-line frontend for the Gularen markup language:
// a lexer and recursive-descent parser exposed through parse, watch,
// and explore subcommands.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	kongcompletion "github.com/jotaen/kong-completion"

	"github.com/gularen-lang/gularen/cmd"
	"github.com/gularen-lang/gularen/internal/config"
	"github.com/gularen-lang/gularen/internal/theme"
)

func main() {
	cli := &cmd.CLI{}
	parser := kong.Must(cli,
		kong.Name("gularen"),
		kong.Description("A frontend for the Gularen markup language"),
		kong.UsageOnError(),
	)
	kongcompletion.Register(parser)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cfg, cfgErr := config.Load()
	switch {
	case cfgErr == nil && cli.Theme != "":
		_ = theme.Load(cli.Theme)
	case cfgErr == nil:
		_ = theme.Load(cfg.Theme)
	}
	// Ignore errors - theme will default to "default" if config not found

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
