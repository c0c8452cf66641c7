// Egg is an interpreter for the Egg expression language, a tiny language
// where everything is an expression and applications are the only compound
// syntax. It is suitable for both running scripts and interactive use.
package main

import (
	"os"

	"github.com/emekler0729/egg/pkg/lsp"
	"github.com/emekler0729/egg/pkg/prog"
	"github.com/emekler0729/egg/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			prog.VersionProgram{}, prog.BuildInfoProgram{},
			lsp.Program{}, shell.Program{})))
}
