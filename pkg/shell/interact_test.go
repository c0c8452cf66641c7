package shell_test

import (
	"testing"

	"github.com/emekler0729/egg/pkg/shell"
	"github.com/emekler0729/egg/pkg/store"
	"github.com/emekler0729/egg/pkg/testutil"
)

func TestInteract_Evaluates(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, shell.Program{},
		ThatEgg("-norc", "-db", "db.bolt").
			WithStdin("print(+(1, 2))\n").
			WritesStdout("3\n▶ 3\n"),
	)
}

func TestInteract_DefinitionsPersistAcrossCommands(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, shell.Program{},
		ThatEgg("-norc", "-db", "db.bolt").
			WithStdin("define(x, 10)\n+(x, 1)\n").
			WritesStdout("▶ 10\n▶ 11\n"),
	)
}

func TestInteract_ErrorDoesNotEndSession(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, shell.Program{},
		ThatEgg("-norc", "-db", "db.bolt").
			WithStdin("bogus\nprint(1)\n").
			WritesStdout("1\n▶ 1\n").
			WritesStderrContaining("undefined variable: bogus"),
	)
}

func TestInteract_BlankLinesAreSkipped(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, shell.Program{},
		ThatEgg("-norc", "-db", "db.bolt").
			WithStdin("\n  \n+(1, 1)\n\n").
			WritesStdout("▶ 2\n"),
	)
}

func TestInteract_RCCustomizesValuePrefix(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile("rc.yaml", "value-prefix: '=> '\n")

	Test(t, shell.Program{},
		ThatEgg("-rc", "rc.yaml", "-db", "db.bolt").
			WithStdin("+(1, 1)\n").
			WritesStdout("=> 2\n"),
	)
}

func TestInteract_BadRCFallsBackToDefaults(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile("rc.yaml", ":\n-")

	Test(t, shell.Program{},
		ThatEgg("-rc", "rc.yaml", "-db", "db.bolt").
			WithStdin("+(1, 1)\n").
			WritesStdout("▶ 2\n").
			WritesStderrContaining("Warning: cannot parse rc file"),
	)
}

func TestInteract_SavesCommandsToHistory(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, shell.Program{},
		ThatEgg("-norc", "-db", "db.bolt").
			WithStdin("print(1)\ndefine(x, 2)\n").
			WritesStdout("1\n▶ 1\n▶ 2\n"),
	)

	st, err := store.NewStore("db.bolt")
	if err != nil {
		t.Fatalf("cannot open history database: %v", err)
	}
	defer st.Close()
	if cmd, err := st.Cmd(1); cmd != "print(1)" || err != nil {
		t.Errorf("Cmd(1) -> (%q, %v), want (%q, nil)", cmd, err, "print(1)")
	}
	if cmd, err := st.Cmd(2); cmd != "define(x, 2)" || err != nil {
		t.Errorf("Cmd(2) -> (%q, %v), want (%q, nil)", cmd, err, "define(x, 2)")
	}
}
