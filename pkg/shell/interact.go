package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/emekler0729/egg/pkg/diag"
	"github.com/emekler0729/egg/pkg/eval"
	"github.com/emekler0729/egg/pkg/eval/vals"
	"github.com/emekler0729/egg/pkg/parse"
	"github.com/emekler0729/egg/pkg/store"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	// Evaler to use. If nil, a new one is created.
	Evaler *eval.Evaler
	// Path of the rc file. Empty to skip loading one.
	RC string
	// Path of the command history database. Empty to use the path from the
	// rc file, falling back to the default path.
	DB string
}

// Interact runs an interactive session, reading commands line by line from
// fds[0] until it is exhausted. Each command is evaluated in the persistent
// global frame, and its value is echoed to fds[1]. An error terminates the
// command, not the session.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	ev := cfg.Evaler
	if ev == nil {
		ev = eval.NewEvaler()
	}

	rc := readConfigOrDefault(cfg.RC, fds[2])

	st := openHistoryStore(cfg.DB, rc.DB, fds[2])
	if st != nil {
		defer st.Close()
	}

	// Showing the prompt on a non-terminal stdin only adds noise to the
	// output of whatever is driving the session.
	showPrompt := isatty.IsTerminal(fds[0].Fd())

	rd := bufio.NewReader(fds[0])
	cmdNum := 0

	for {
		cmdNum++

		if showPrompt {
			fmt.Fprint(fds[2], rc.Prompt)
		}
		line, err := rd.ReadString('\n')

		if code := strings.TrimSpace(line); code != "" {
			if st != nil {
				if _, err := st.AddCmd(code); err != nil {
					logger.Println("failed to save command to history:", err)
				}
			}
			val, evalErr := ev.Eval(
				parse.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: code},
				eval.EvalCfg{Out: fds[1], Frame: ev.Global()})
			if evalErr != nil {
				diag.ShowError(fds[2], evalErr)
			} else {
				fmt.Fprintf(fds[1], "%s%s\n", rc.ValuePrefix, vals.Repr(val))
			}
		}

		if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(fds[2], "cannot read command:", err)
			break
		}
	}
}

// Opens the command history store, trying the paths in order: the -db flag,
// the db key of the rc file, the default path. Failure to open the store
// degrades the session to one without history instead of aborting it.
func openHistoryStore(flagPath, rcPath string, stderr io.Writer) store.DBStore {
	path := flagPath
	if path == "" {
		path = rcPath
	}
	if path == "" {
		p, err := dbPath()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			fmt.Fprintln(stderr, "Command history will not be persisted.")
			return nil
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
		fmt.Fprintln(stderr, "Command history will not be persisted.")
		return nil
	}
	st, err := store.NewStore(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open command history database:", err)
		fmt.Fprintln(stderr, "Command history will not be persisted.")
		return nil
	}
	return st
}
