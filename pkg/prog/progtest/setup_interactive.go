//go:build !windows

package progtest

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

// SetupInteractive opens a pseudo-terminal pair for driving a program that
// reads commands from a tty. The returned ptmx is the controlling side, used
// to feed input and observe echoed output; tty is the side to pass as the
// program's stdin.
//
// Both files are closed automatically when the test finishes.
func SetupInteractive(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("cannot open pty: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	return ptmx, tty
}
