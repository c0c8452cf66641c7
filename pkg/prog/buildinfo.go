package prog

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/emekler0729/egg/pkg/buildinfo"
)

// BuildInfoProgram implements the -buildinfo subprogram.
type BuildInfoProgram struct{}

func (BuildInfoProgram) Run(fds [3]*os.File, f *Flags, _ []string) error {
	if !f.BuildInfo {
		return ErrNotSuitable
	}
	if f.JSON {
		fmt.Fprintf(fds[1],
			`{"version":%s,"goversion":%s,"reproducible":%v}`+"\n",
			quoteJSON(buildinfo.Version), quoteJSON(runtime.Version()),
			buildinfo.Reproducible)
	} else {
		fmt.Fprintln(fds[1], "Version:", buildinfo.Version)
		fmt.Fprintln(fds[1], "Go version:", runtime.Version())
		fmt.Fprintln(fds[1], "Reproducible build:", buildinfo.Reproducible)
	}
	return nil
}

// VersionProgram implements the -version subprogram.
type VersionProgram struct{}

func (VersionProgram) Run(fds [3]*os.File, f *Flags, _ []string) error {
	if !f.Version {
		return ErrNotSuitable
	}
	fmt.Fprintln(fds[1], buildinfo.Version)
	return nil
}

func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshaling a string never fails.
		panic(err)
	}
	return string(b)
}
