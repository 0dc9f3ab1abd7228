/*
Command llpas is a command line front-end for package ll and package pascal.

Grammar commands work on a grammar definition file (TOML or YAML) given with
flag --grammar, or on the built-in toy-Pascal grammar if the flag is omitted:

    llpas first  --grammar sums.toml
    llpas table  --grammar sums.toml --html > table.html
    llpas check  --grammar sums.toml "(1+1)"
    llpas repl   --grammar sums.toml

Pascal commands work on toy-Pascal source files:

    llpas parse     prog.pas
    llpas translate prog.pas
    llpas run       prog.pas < input.txt

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// tracer traces with key 'llpas.cli'.
func tracer() tracing.Trace {
	return tracing.Select("llpas.cli")
}

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
