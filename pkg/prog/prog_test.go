package prog_test

import (
	"os"
	"testing"

	. "github.com/emekler0729/egg/pkg/prog"
	"github.com/emekler0729/egg/pkg/prog/progtest"
	"github.com/emekler0729/egg/pkg/testutil"
)

var (
	Test    = progtest.Test
	ThatEgg = progtest.ThatEgg
)

func TestCommonFlagHandling(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, testProgram{},
		ThatEgg("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatEgg("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatEgg("-help").
			WritesStdoutContaining("Usage: egg [flags] [script]"),

		ThatEgg("-cpuprofile", "cpuprof").DoesNothing(),
		ThatEgg("-cpuprofile", "/a/bad/path").
			WritesStderrContaining("Warning: cannot create CPU profile:"),
	)

	// Check for the effect of -cpuprofile. There isn't much to test beyond a
	// sanity check that the profile file now exists.
	_, err := os.Stat("cpuprof")
	if err != nil {
		t.Errorf("CPU profile file does not exist: %v", err)
	}
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatEgg().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatEgg().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatEgg().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatEgg().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatEgg().ExitsWith(2).WritesStderrContaining("lorem ipsum\n"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatEgg().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatEgg().ExitsWith(0),
	)
}

func TestVersionProgram(t *testing.T) {
	Test(t, VersionProgram{},
		ThatEgg("-version").WritesStdoutContaining("."),
	)
}

func TestBuildInfoProgram(t *testing.T) {
	Test(t, BuildInfoProgram{},
		ThatEgg("-buildinfo").WritesStdoutContaining("Version:"),
		ThatEgg("-buildinfo", "-json").WritesStdoutContaining(`"version":`),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
}

func (p testProgram) Run(fds [3]*os.File, _ *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}
