package shell_test

import (
	"testing"

	"github.com/emekler0729/egg/pkg/prog/progtest"
	"github.com/emekler0729/egg/pkg/shell"
	"github.com/emekler0729/egg/pkg/testutil"
)

var (
	Test    = progtest.Test
	ThatEgg = progtest.ThatEgg
)

func TestScript_File(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile("a.egg", "print(+(40, 2))")

	Test(t, shell.Program{},
		ThatEgg("a.egg").WritesStdout("42\n"),
	)
}

func TestScript_BadFile(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, shell.Program{},
		ThatEgg("nonexistent.egg").
			ExitsWith(2).
			WritesStderrContaining("cannot read script"),
	)
}

func TestScript_Cmd(t *testing.T) {
	Test(t, shell.Program{},
		ThatEgg("-c", "print(*(6, 7))").WritesStdout("42\n"),
		ThatEgg("-c").
			ExitsWith(2).
			WritesStderrContaining("argument required to -c"),
	)
}

func TestScript_ParseError(t *testing.T) {
	Test(t, shell.Program{},
		ThatEgg("-c", "f(x").
			ExitsWith(2).
			WritesStderrContaining("Expected ',' or ')'"),
	)
}

func TestScript_Exception(t *testing.T) {
	Test(t, shell.Program{},
		ThatEgg("-c", "bogus").
			ExitsWith(2).
			WritesStderrContaining("undefined variable: bogus"),
	)
}

func TestScript_CompileOnly(t *testing.T) {
	Test(t, shell.Program{},
		// A valid program is checked but not run.
		ThatEgg("-compileonly", "-c", "print(55)").DoesNothing(),
		ThatEgg("-compileonly", "-c", "f(x").
			ExitsWith(2).
			WritesStderrContaining("Expected ',' or ')'"),
	)
}

func TestScript_CompileOnlyJSON(t *testing.T) {
	Test(t, shell.Program{},
		ThatEgg("-compileonly", "-json", "-c", "print(55)").
			WritesStdout("[]\n"),
		ThatEgg("-compileonly", "-json", "-c", "f(x").
			ExitsWith(2).
			WritesStdoutContaining(`"message":"Expected ',' or ')'"`),
	)
}
