// Package shell is the entry point for the terminal interface of Egg.
package shell

import (
	"fmt"
	"os"

	"github.com/emekler0729/egg/pkg/eval"
	"github.com/emekler0729/egg/pkg/logutil"
	"github.com/emekler0729/egg/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the interpreter subprogram. It runs a script when given
// arguments and an interactive session otherwise.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	ev := eval.NewEvaler()

	if len(args) > 0 {
		exit := script(ev, fds, args, &scriptCfg{
			Cmd: f.CodeInArg, CompileOnly: f.CompileOnly, JSON: f.JSON})
		return prog.Exit(exit)
	}
	if f.CodeInArg {
		return prog.BadUsage("argument required to -c")
	}

	rc := ""
	if !f.NoRc {
		if f.RC != "" {
			rc = f.RC
		} else {
			p, err := rcPath()
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
			} else {
				rc = p
			}
		}
	}
	Interact(fds, &InteractConfig{Evaler: ev, RC: rc, DB: f.DB})
	return nil
}
