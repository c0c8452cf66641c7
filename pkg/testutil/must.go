package testutil

import (
	"os"
	"path/filepath"
)

// Must panics if the error is not nil. It is typically used like this:
//
//	testutil.Must(someFunction(...))
//
// where someFunction returns a single error value.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustMkdirAll calls os.MkdirAll for each argument, panicking on error.
func MustMkdirAll(names ...string) {
	for _, name := range names {
		Must(os.MkdirAll(name, 0700))
	}
}

// MustWriteFile writes data to a file, creating intermediate
// directories if needed, panicking on error.
func MustWriteFile(filename, data string) {
	Must(os.MkdirAll(filepath.Dir(filename), 0700))
	Must(os.WriteFile(filename, []byte(data), 0600))
}

func resolveSymlinks(p string) (string, error) {
	return filepath.EvalSymlinks(p)
}
