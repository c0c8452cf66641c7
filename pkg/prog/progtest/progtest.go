// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, the Program implementation under test, and any number of test
// cases.
//
// Test cases are constructed using the ThatEgg function, followed by method
// calls that add additional information to it.
//
// Example:
//
//	Test(t, someProgram,
//	    ThatEgg("-c", "print(hello)").WritesStdout("hello\n"))
package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/emekler0729/egg/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("%q", o.content)
}

// ThatEgg returns a new Case with the given CLI arguments.
func ThatEgg(args ...string) Case {
	return Case{args: append([]string{"egg"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example those just exercising the fact
// that the program doesn't crash.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exit != c.want.exit {
				t.Errorf("got exit code %v, want %v", r.exit, c.want.exit)
			}
			if !matchOutput(c.want.stdout, r.stdout.content) {
				t.Errorf("got stdout %q, want %v", r.stdout.content, c.want.stdout)
			}
			if !matchOutput(c.want.stderr, r.stderr.content) {
				t.Errorf("got stderr %q, want %v", r.stderr.content, c.want.stderr)
			}
		})
	}
}

func matchOutput(want output, got string) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func run(p prog.Program, args []string, stdin string) result {
	r0, w0 := mustPipe()
	r1, w1 := mustPipe()
	r2, w2 := mustPipe()

	go func() {
		w0.WriteString(stdin)
		w0.Close()
	}()
	stdout := capture(r1)
	stderr := capture(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	r0.Close()

	return result{exit, output{content: <-stdout}, output{content: <-stderr}}
}

func capture(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}

func mustPipe() (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	return r, w
}
